package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/raywall/item-name-api/dyndb"
	"github.com/raywall/item-name-api/pkg/awsclient"
	"github.com/raywall/item-name-api/pkg/config"
	"github.com/raywall/item-name-api/pkg/config/injector"
	"github.com/raywall/item-name-api/pkg/handler"
	"github.com/raywall/item-name-api/pkg/items"
	"github.com/raywall/item-name-api/pkg/logger"
	"github.com/raywall/item-name-api/pkg/transport"
	"github.com/raywall/item-name-api/tools/emulator"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter   = transport.StartHTTPServer
	lambdaStarter   = lambda.Start
	awsConfigLoader = awsclient.LoadConfig
)

func main() {
	// .env é opcional (execução local)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("FATAL: falha na inicialização")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.Logging)

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return err
	}

	store := dyndb.New(client, dyndb.TableConfig{
		TableName:      cfg.Table.Name,
		HashKey:        cfg.Table.HashKey,
		ConsistentRead: cfg.Table.ConsistentRead,
	})
	repo := items.NewRepository(store)

	lambdaHandler, err := transport.NewLambdaHandler(
		[]handler.Handler{handler.NewList(repo), handler.NewSearch(repo)},
		transport.WithEndpoint(cfg.Service.Endpoint),
		transport.WithTimeout(cfg.Service.Timeout),
	)
	if err != nil {
		return err
	}

	log.Info().
		Str("service", cfg.Service.Name).
		Str("runtime", cfg.Service.Runtime).
		Str("table", cfg.Table.Name).
		Str("endpoint", cfg.Service.Endpoint).
		Msg("service initialized")

	switch cfg.Service.Runtime {
	case config.RuntimeLocal:
		return serverStarter(ctx, cfg.Service.Port, lambdaHandler)
	case config.RuntimeLambda:
		lambdaStarter(lambdaHandler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}

// newClient escolhe a origem dos itens: dataset local (FIXTURE_FILE) ou
// DynamoDB. Também resolve placeholders e o nome da tabela via SSM.
func newClient(ctx context.Context, cfg *config.ServiceConfig) (dyndb.DynamoDBClient, error) {
	if cfg.Table.FixtureFile != "" {
		if err := config.Resolve(ctx, cfg, injector.New(nil)); err != nil {
			return nil, err
		}
		ds, err := emulator.LoadFile(cfg.Table.FixtureFile)
		if err != nil {
			return nil, err
		}
		client, err := emulator.New(ds, emulator.Options{
			PageSize:   cfg.Table.FixturePageSize,
			BatchLimit: cfg.Table.FixtureBatchLimit,
		})
		if err != nil {
			return nil, err
		}
		cfg.Table.Name = client.Table()
		cfg.Table.HashKey = client.HashKey()
		return client, nil
	}

	awsCfg, err := awsConfigLoader(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}

	inj := injector.New(nil)
	if cfg.NeedsParameterStore() {
		inj = injector.New(awsclient.NewParameterClient(awsCfg))
	}
	if err := config.Resolve(ctx, cfg, inj); err != nil {
		return nil, err
	}

	return awsclient.NewDynamoClient(awsCfg, cfg.AWS.DynamoDBEndpoint), nil
}
