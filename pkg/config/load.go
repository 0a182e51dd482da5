package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/raywall/item-name-api/envloader"
	"github.com/raywall/item-name-api/pkg/config/injector"
)

// Load lê a configuração do ambiente. Placeholders ainda não são resolvidos.
func Load() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Resolve interpola ${env.*} e ${ssm.*} e, se o nome da tabela ainda estiver
// vazio, busca TABLE_NAME_PARAMETER no Parameter Store.
func Resolve(ctx context.Context, cfg *ServiceConfig, inj *injector.Injector) error {
	if err := inj.Inject(ctx, cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Table.Name == "" && cfg.Table.Parameter != "" && cfg.Table.FixtureFile == "" {
		name, err := inj.Parameter(ctx, cfg.Table.Parameter)
		if err != nil {
			return fmt.Errorf("config: resolve table name: %w", err)
		}
		cfg.Table.Name = name
	}
	return nil
}

func hasPlaceholder(s, source string) bool {
	return strings.Contains(s, "${"+source+".")
}
