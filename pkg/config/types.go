package config

import "time"

// Runtimes suportados.
const (
	RuntimeLambda = "lambda"
	RuntimeLocal  = "local"
)

// ServiceConfig é a configuração completa do serviço, carregada do ambiente.
type ServiceConfig struct {
	Service ServiceDetails
	Table   TableConf
	AWS     AWSConf
	Logging LoggingConf
}

// ServiceDetails contém as configurações de runtime do serviço.
type ServiceDetails struct {
	Name     string        `env:"SERVICE_NAME" envDefault:"item-name-api" validate:"required"`
	Runtime  string        `env:"SERVICE_RUNTIME" envDefault:"lambda" validate:"required,oneof=lambda local"`
	Port     int           `env:"SERVICE_PORT" envDefault:"8080" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Endpoint string        `env:"SERVICE_ENDPOINT" validate:"omitempty,oneof=list search"` // vazio: roteia pelo path
	Timeout  time.Duration `env:"SERVICE_TIMEOUT" validate:"gte=0"`
}

// TableConf descreve a origem dos itens. Name pode ser literal, uma
// interpolação (${ssm./path}) ou ser resolvido via Parameter.
type TableConf struct {
	Name           string `env:"TABLE_NAME"`
	Parameter      string `env:"TABLE_NAME_PARAMETER" validate:"omitempty,startswith=/"`
	HashKey        string `env:"TABLE_HASH_KEY" envDefault:"ID" validate:"required"`
	ConsistentRead bool   `env:"TABLE_CONSISTENT_READ"`
	FixtureFile    string `env:"FIXTURE_FILE"`
	// paginação simulada do dataset local
	FixturePageSize   int `env:"FIXTURE_PAGE_SIZE" validate:"gte=0"`
	FixtureBatchLimit int `env:"FIXTURE_BATCH_LIMIT" validate:"gte=0,lte=100"`
}

type AWSConf struct {
	Region           string `env:"AWS_REGION"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
}

type LoggingConf struct {
	Enabled bool   `env:"LOG_ENABLED" envDefault:"true"`
	Level   string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

// NeedsParameterStore indica se o boot precisa de um client SSM.
func (c *ServiceConfig) NeedsParameterStore() bool {
	return c.Table.FixtureFile == "" && (c.Table.Parameter != "" || hasPlaceholder(c.Table.Name, "ssm"))
}
