// dyndb/scan_test.go
package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raywall/item-name-api/dyndb"
)

func TestScan_FilterContains_BuildsExpression(t *testing.T) {
	t.Parallel()

	mockClient := &testifyDynamoClient{}
	store := createTestStore(mockClient)

	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
		if *input.TableName != testTable || input.FilterExpression == nil {
			return false
		}
		name, ok := input.ExpressionAttributeNames["#0"]
		value, isS := input.ExpressionAttributeValues[":0"].(*types.AttributeValueMemberS)
		return *input.FilterExpression == "contains (#0, :0)" &&
			ok && name == "Name_en" &&
			isS && value.Value == "Potion"
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{itemAttrs(1, 2)},
	}, nil)

	docs, err := store.Scan().FilterContains("Name_en", "Potion").All(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	mockClient.AssertExpectations(t)
}

func TestScan_All_FollowsLastEvaluatedKey(t *testing.T) {
	t.Parallel()

	pages := []*dynamodb.ScanOutput{
		{
			Items:            []map[string]types.AttributeValue{itemAttrs(1, 5), itemAttrs(2, 4)},
			LastEvaluatedKey: map[string]types.AttributeValue{"ID": &types.AttributeValueMemberN{Value: "2"}},
		},
		{
			Items:            []map[string]types.AttributeValue{},
			LastEvaluatedKey: map[string]types.AttributeValue{"ID": &types.AttributeValueMemberN{Value: "4"}},
		},
		{
			Items: []map[string]types.AttributeValue{itemAttrs(5, 1)},
		},
	}

	var startKeys []string
	call := 0
	client := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			startKeys = append(startKeys, keyID(params.ExclusiveStartKey))
			out := pages[call]
			call++
			return out, nil
		},
	}
	store := createTestStore(client)

	docs, err := store.Scan().FilterContains("Name_en", "Item").All(context.Background())

	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Equal(t, []string{"", "2", "4"}, startKeys)
}

func TestScan_All_NoMatches(t *testing.T) {
	t.Parallel()

	client := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{}, nil
		},
	}

	docs, err := createTestStore(client).Scan().FilterContains("Name_en", "zzz").All(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestScan_Exec_ReturnsToken(t *testing.T) {
	t.Parallel()

	mockClient := &testifyDynamoClient{}
	store := createTestStore(mockClient)

	lastKey := map[string]types.AttributeValue{"ID": &types.AttributeValueMemberN{Value: "1"}}
	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
		return input.ExclusiveStartKey == nil && input.Limit != nil && *input.Limit == 1
	})).Return(&dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{itemAttrs(1, 1)},
		LastEvaluatedKey: lastKey,
	}, nil).Once()

	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(input *dynamodb.ScanInput) bool {
		return keyID(input.ExclusiveStartKey) == "1"
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{itemAttrs(2, 1)},
	}, nil).Once()

	first, token, err := store.Scan().Limit(1).Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotEmpty(t, token)

	second, next, err := store.Scan().Limit(1).StartAfter(token).Exec(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Empty(t, next)
	mockClient.AssertExpectations(t)
}

func TestScan_InvalidToken(t *testing.T) {
	t.Parallel()

	store := createTestStore(&dyndb.MockDynamoClient{})

	_, _, err := store.Scan().StartAfter("%%%").Exec(context.Background())
	assert.ErrorIs(t, err, dyndb.ErrInvalidToken)
}

func TestScan_Error(t *testing.T) {
	t.Parallel()

	mockClient := &testifyDynamoClient{}
	store := createTestStore(mockClient)

	expectedErr := errors.New("scan error")
	mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, expectedErr)

	docs, err := store.Scan().FilterContains("Name_en", "a").All(context.Background())

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, docs)
}

func TestScan_Project(t *testing.T) {
	t.Parallel()

	var projection string
	client := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			projection = *params.ProjectionExpression
			return &dynamodb.ScanOutput{}, nil
		},
	}

	_, err := createTestStore(client).Scan().Project("ID", "Name_en").All(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "#0, #1", projection)
}
