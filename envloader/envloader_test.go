package envloader

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_StringFields(t *testing.T) {
	type Config struct {
		Table   string `env:"TABLE_NAME" envDefault:"items"`
		HashKey string `env:"TABLE_HASH_KEY" envDefault:"ID"`
	}

	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, "items", config.Table)
	assert.Equal(t, "ID", config.HashKey)

	t.Setenv("TABLE_NAME", "item-names")
	t.Setenv("TABLE_HASH_KEY", "ItemID")

	config2 := &Config{}
	require.NoError(t, Load(config2))
	assert.Equal(t, "item-names", config2.Table)
	assert.Equal(t, "ItemID", config2.HashKey)
}

func TestLoad_NumericFields(t *testing.T) {
	type Config struct {
		Port      int     `env:"SERVICE_PORT" envDefault:"8080"`
		PageSize  int32   `env:"PAGE_SIZE" envDefault:"25"`
		MaxKeys   uint64  `env:"MAX_KEYS" envDefault:"100"`
		Ratio     float64 `env:"RATIO" envDefault:"0.5"`
		Precision float32 `env:"PRECISION"`
	}

	t.Setenv("PRECISION", "1.25")

	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, int32(25), config.PageSize)
	assert.Equal(t, uint64(100), config.MaxKeys)
	assert.Equal(t, 0.5, config.Ratio)
	assert.Equal(t, float32(1.25), config.Precision)
}

func TestLoad_BoolFields(t *testing.T) {
	type Config struct {
		Enabled    bool `env:"LOG_ENABLED" envDefault:"true"`
		Consistent bool `env:"TABLE_CONSISTENT_READ"`
	}

	t.Setenv("TABLE_CONSISTENT_READ", "TRUE")

	config := &Config{}
	require.NoError(t, Load(config))
	assert.True(t, config.Enabled)
	assert.True(t, config.Consistent)
}

func TestLoad_DurationFields(t *testing.T) {
	type Config struct {
		Timeout time.Duration `env:"SERVICE_TIMEOUT" envDefault:"3s"`
		Idle    time.Duration `env:"IDLE_TIMEOUT"`
	}

	config := &Config{}
	require.NoError(t, Load(config))
	assert.Equal(t, 3*time.Second, config.Timeout)
	assert.Zero(t, config.Idle)

	t.Setenv("IDLE_TIMEOUT", "1m30s")
	require.NoError(t, Load(config))
	assert.Equal(t, 90*time.Second, config.Idle)

	t.Setenv("IDLE_TIMEOUT", "soon")
	err := Load(config)
	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Idle", fieldErr.FieldName)
}

func TestLoad_UnsetKeepsCurrentValue(t *testing.T) {
	type Config struct {
		Table  string `env:"TABLE_NAME"`
		NoTag  string
		hidden string `env:"HIDDEN"`
	}

	t.Setenv("TABLE_NAME", "")
	t.Setenv("HIDDEN", "x")

	config := &Config{Table: "preset", NoTag: "kept"}
	require.NoError(t, Load(config))
	assert.Equal(t, "preset", config.Table)
	assert.Equal(t, "kept", config.NoTag)
	assert.Empty(t, config.hidden)
}

func TestLoad_Required(t *testing.T) {
	type Config struct {
		Table string `env:"TABLE_NAME" envRequired:"true"`
	}

	t.Setenv("TABLE_NAME", "")

	err := Load(&Config{})
	require.Error(t, err)
	var missing *MissingValueError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "TABLE_NAME", missing.EnvVar)

	// valor pré-preenchido satisfaz o requisito
	require.NoError(t, Load(&Config{Table: "preset"}))
}

func TestLoad_InvalidConfig(t *testing.T) {
	var config string
	err := Load(config)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pointer to struct")

	var config2 int
	err = Load(&config2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pointer to struct")

	err = Load(nil)
	assert.Error(t, err)
}

func TestLoad_ConversionErrors(t *testing.T) {
	type Config struct {
		Port int `env:"SERVICE_PORT" envDefault:"not-a-number"`
	}

	err := Load(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error setting field Port")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestLoad_UnsupportedType(t *testing.T) {
	type Config struct {
		Routes []string `env:"ROUTES" envDefault:"list,search"`
	}

	err := Load(&Config{})
	require.Error(t, err)
	var unsupported *UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestMustLoad(t *testing.T) {
	type Config struct {
		Port string `env:"SERVICE_PORT" envDefault:"8080"`
	}

	config := &Config{}
	assert.NotPanics(t, func() {
		MustLoad(config)
	})
	assert.Equal(t, "8080", config.Port)

	assert.Panics(t, func() {
		MustLoad("not-a-pointer")
	})
}

func TestLoad_NestedStructs(t *testing.T) {
	type TableConf struct {
		Name    string `env:"TABLE_NAME" envDefault:"items"`
		HashKey string `env:"TABLE_HASH_KEY" envDefault:"ID"`
	}
	type LoggingConf struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}
	type AppConfig struct {
		Table   TableConf
		Logging *LoggingConf
		Runtime string `env:"SERVICE_RUNTIME" envDefault:"lambda"`
	}

	t.Setenv("TABLE_NAME", "item-names")
	t.Setenv("LOG_LEVEL", "debug")

	config := &AppConfig{}
	require.NoError(t, Load(config))

	assert.Equal(t, "lambda", config.Runtime)
	assert.Equal(t, "item-names", config.Table.Name)
	assert.Equal(t, "ID", config.Table.HashKey)
	require.NotNil(t, config.Logging)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}
