// dyndb/scan.go
package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/raywall/item-name-api/document"
)

// ScanBuilder: builder fluente de Scan
type ScanBuilder struct {
	store      *dynamoStore
	filterCond *expression.ConditionBuilder
	projection *expression.ProjectionBuilder
	limit      *int32
	lastKey    map[string]types.AttributeValue
	err        error
}

func (sb *ScanBuilder) and(cond expression.ConditionBuilder) *ScanBuilder {
	if sb.filterCond == nil {
		sb.filterCond = &cond
	} else {
		tmp := sb.filterCond.And(cond)
		sb.filterCond = &tmp
	}
	return sb
}

// FilterContains mantém itens cujo atributo contém value (substring em S,
// elemento em conjuntos de strings)
func (sb *ScanBuilder) FilterContains(field, value string) *ScanBuilder {
	return sb.and(expression.Contains(expression.Name(field), value))
}

func (sb *ScanBuilder) FilterEqual(field string, value any) *ScanBuilder {
	return sb.and(expression.Equal(expression.Name(field), expression.Value(value)))
}

// Project restringe os atributos devolvidos
func (sb *ScanBuilder) Project(fields ...string) *ScanBuilder {
	if len(fields) == 0 {
		return sb
	}
	proj := expression.NamesList(expression.Name(fields[0]))
	for _, f := range fields[1:] {
		proj = proj.AddNames(expression.Name(f))
	}
	sb.projection = &proj
	return sb
}

// Limit define quantos itens o DynamoDB avalia por página
func (sb *ScanBuilder) Limit(n int32) *ScanBuilder {
	sb.limit = &n
	return sb
}

// StartAfter retoma a partir de um token devolvido por Exec
func (sb *ScanBuilder) StartAfter(token string) *ScanBuilder {
	if token == "" {
		return sb
	}
	key, err := DecodeToken(token)
	if err != nil {
		sb.err = err
		return sb
	}
	sb.lastKey = key
	return sb
}

// Exec executa uma única página e devolve o token da próxima ("" no fim)
func (sb *ScanBuilder) Exec(ctx context.Context) ([]document.Document, string, error) {
	input, err := sb.input()
	if err != nil {
		return nil, "", err
	}
	input.ExclusiveStartKey = sb.lastKey

	out, err := sb.store.client.Scan(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("dyndb: scan failed: %w", err)
	}

	docs, err := document.FromAttributeList(out.Items)
	if err != nil {
		return nil, "", err
	}

	token, err := EncodeToken(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", err
	}
	return docs, token, nil
}

// All segue o LastEvaluatedKey até esgotar a tabela, página a página
func (sb *ScanBuilder) All(ctx context.Context) ([]document.Document, error) {
	input, err := sb.input()
	if err != nil {
		return nil, err
	}

	results := make([]document.Document, 0)
	startKey := sb.lastKey

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := *input
		page.ExclusiveStartKey = startKey
		out, err := sb.store.client.Scan(ctx, &page)
		if err != nil {
			return nil, fmt.Errorf("dyndb: scan failed: %w", err)
		}

		docs, err := document.FromAttributeList(out.Items)
		if err != nil {
			return nil, err
		}
		results = append(results, docs...)

		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (sb *ScanBuilder) input() (*dynamodb.ScanInput, error) {
	if sb.err != nil {
		return nil, sb.err
	}
	if sb.store.cfg.TableName == "" {
		return nil, ErrMissingTable
	}

	input := &dynamodb.ScanInput{
		TableName:      aws.String(sb.store.cfg.TableName),
		Limit:          sb.limit,
		ConsistentRead: sb.store.consistentRead(),
	}

	if sb.filterCond == nil && sb.projection == nil {
		return input, nil
	}

	builder := expression.NewBuilder()
	if sb.filterCond != nil {
		builder = builder.WithFilter(*sb.filterCond)
	}
	if sb.projection != nil {
		builder = builder.WithProjection(*sb.projection)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: build expression failed: %w", err)
	}

	input.FilterExpression = expr.Filter()
	input.ProjectionExpression = expr.Projection()
	input.ExpressionAttributeNames = expr.Names()
	input.ExpressionAttributeValues = expr.Values()
	return input, nil
}
