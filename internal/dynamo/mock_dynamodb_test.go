package dynamo_test

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo keeps items per table keyed by cart_key.
type mockDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	getCalls int
	putCalls int
	err      error
}

func newMockDynamo(tables ...string) *mockDynamo {
	m := &mockDynamo{
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
	for _, table := range tables {
		m.tables[table] = map[string]map[string]types.AttributeValue{}
	}
	return m
}

func (m *mockDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++

	if m.err != nil {
		return nil, m.err
	}

	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: params.TableName}
	}

	keyAttr, ok := params.Key["cart_key"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing cart_key")
	}

	item, ok := table[keyAttr.Value]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++

	if m.err != nil {
		return nil, m.err
	}

	table, ok := m.tables[*params.TableName]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: params.TableName}
	}

	keyAttr, ok := params.Item["cart_key"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("missing cart_key")
	}

	table[keyAttr.Value] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}
