// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/raywall/item-name-api/document"
)

// MaxBatchGetKeys é o limite de chaves por chamada BatchGetItem.
const MaxBatchGetKeys = 100

var (
	// ErrMissingTable: TableConfig sem nome de tabela
	ErrMissingTable = errors.New("dyndb: table name is required")
	// ErrInvalidToken: token de continuação que não pôde ser decodificado
	ErrInvalidToken = errors.New("dyndb: invalid continuation token")
)

// DynamoDBClient é o subconjunto de leitura do *dynamodb.Client usado pelo Store.
type DynamoDBClient interface {
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store: interface principal de leitura
type Store interface {
	// BatchGet busca os itens das chaves (hash, sort). A ordem do retorno não
	// segue a ordem das chaves.
	BatchGet(ctx context.Context, keys [][2]any) ([]document.Document, error)

	// Scan inicia um ScanBuilder sobre a tabela inteira
	Scan() *ScanBuilder
}

// TableConfig: configuração da tabela
type TableConfig struct {
	TableName      string `env:"TABLE_NAME"`
	HashKey        string `env:"TABLE_HASH_KEY" envDefault:"ID"`
	SortKey        string `env:"TABLE_SORT_KEY"` // opcional
	ConsistentRead bool   `env:"TABLE_CONSISTENT_READ"`
}
