// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb_test

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/mock"

	"github.com/raywall/item-name-api/dyndb"
)

// testifyDynamoClient é um mock testify para a interface DynamoDBClient
type testifyDynamoClient struct {
	mock.Mock
}

func (m *testifyDynamoClient) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.BatchGetItemOutput), args.Error(1)
}

func (m *testifyDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.ScanOutput), args.Error(1)
}

const testTable = "test-table"

// helper function para criar store de teste
func createTestStore(client dyndb.DynamoDBClient) dyndb.Store {
	return dyndb.New(client, dyndb.TableConfig{
		TableName: testTable,
		HashKey:   "ID",
	})
}

// itemAttrs monta um item com ID e categoria
func itemAttrs(id, category int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ID":      &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		"Name_en": &types.AttributeValueMemberS{Value: "Item " + strconv.Itoa(id)},
		"ItemSearchCategory": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"ID": &types.AttributeValueMemberN{Value: strconv.Itoa(category)},
		}},
	}
}

func keyID(key map[string]types.AttributeValue) string {
	if n, ok := key["ID"].(*types.AttributeValueMemberN); ok {
		return n.Value
	}
	return ""
}
