package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/raywall/item-name-api/pkg/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		zerolog.DefaultContextLogger = nil
	})

	t.Run("Default Level Info", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "DEBUG"})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Invalid Level Falls Back", func(t *testing.T) {
		_ = Configure(config.LoggingConf{Enabled: true, Level: "loud"})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("JSON Output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := configure(config.LoggingConf{Enabled: true, Format: "json"}, &buf)
		logger.Info().Str("endpoint", "list").Msg("teste")
		assert.Contains(t, buf.String(), `"endpoint":"list"`)
	})

	t.Run("Context Fallback", func(t *testing.T) {
		var buf bytes.Buffer
		_ = configure(config.LoggingConf{Enabled: true}, &buf)
		log.Ctx(context.Background()).Info().Msg("sem logger no contexto")
		assert.Contains(t, buf.String(), "sem logger no contexto")
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := configure(config.LoggingConf{Enabled: false}, &buf)
		logger.Info().Msg("teste")
		assert.Empty(t, buf.String())
	})
}
