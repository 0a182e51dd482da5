// dyndb/store.go
package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/item-name-api/document"
	"github.com/raywall/item-name-api/envloader"
)

type dynamoStore struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New cria um store reutilizável. Sem TableName, a configuração é completada
// pelas variáveis de ambiente da TableConfig.
func New(client DynamoDBClient, cfg TableConfig) Store {
	if cfg.TableName == "" {
		_ = envloader.Load(&cfg)
	}
	if cfg.HashKey == "" {
		cfg.HashKey = "ID"
	}

	return &dynamoStore{
		client: client,
		cfg:    cfg,
	}
}

// BatchGet: lotes de até 100 chaves, drenando UnprocessedKeys de cada lote
// antes de seguir para o próximo
func (s *dynamoStore) BatchGet(ctx context.Context, keys [][2]any) ([]document.Document, error) {
	if s.cfg.TableName == "" {
		return nil, ErrMissingTable
	}

	keysToGet := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		keyMap, err := s.key(k[0], k[1])
		if err != nil {
			return nil, err
		}
		keysToGet = append(keysToGet, keyMap)
	}

	results := make([]document.Document, 0, len(keysToGet))

	for i := 0; i < len(keysToGet); i += MaxBatchGetKeys {
		end := min(i+MaxBatchGetKeys, len(keysToGet))

		pending := types.KeysAndAttributes{
			Keys:           keysToGet[i:end],
			ConsistentRead: s.consistentRead(),
		}

		for len(pending.Keys) > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			resp, err := s.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					s.cfg.TableName: pending,
				},
			})
			if err != nil {
				return nil, fmt.Errorf("dyndb: batchget failed: %w", err)
			}

			docs, err := document.FromAttributeList(resp.Responses[s.cfg.TableName])
			if err != nil {
				return nil, err
			}
			results = append(results, docs...)

			// Sem backoff: o DynamoDB devolve as chaves não processadas e elas são reenviadas de imediato
			pending = resp.UnprocessedKeys[s.cfg.TableName]
		}
	}

	return results, nil
}

// Scan inicia um Scan
func (s *dynamoStore) Scan() *ScanBuilder {
	return &ScanBuilder{store: s}
}

func (s *dynamoStore) key(hashKey, sortKey any) (map[string]types.AttributeValue, error) {
	hash, err := attributevalue.Marshal(hashKey)
	if err != nil {
		return nil, fmt.Errorf("dyndb: marshal hash key failed: %w", err)
	}
	keyMap := map[string]types.AttributeValue{s.cfg.HashKey: hash}

	if s.cfg.SortKey != "" && sortKey != nil {
		sort, err := attributevalue.Marshal(sortKey)
		if err != nil {
			return nil, fmt.Errorf("dyndb: marshal sort key failed: %w", err)
		}
		keyMap[s.cfg.SortKey] = sort
	}
	return keyMap, nil
}

func (s *dynamoStore) consistentRead() *bool {
	if !s.cfg.ConsistentRead {
		return nil
	}
	return aws.Bool(true)
}
