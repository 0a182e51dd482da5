// dyndb/mock.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotMocked é devolvido pelo MockDynamoClient quando a função da operação não foi definida.
var ErrNotMocked = errors.New("dyndb: operation not mocked")

// MockDynamoClient é um mock da interface DynamoDBClient de baixo nível.
//
// Permite testar a lógica do store (lotes, UnprocessedKeys, paginação) sem
// tocar no AWS SDK.
type MockDynamoClient struct {
	BatchGetItemFn func(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	ScanFn         func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

func (m *MockDynamoClient) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if m.BatchGetItemFn != nil {
		return m.BatchGetItemFn(ctx, params, optFns...)
	}
	return nil, ErrNotMocked
}

func (m *MockDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFn != nil {
		return m.ScanFn(ctx, params, optFns...)
	}
	return nil, ErrNotMocked
}
