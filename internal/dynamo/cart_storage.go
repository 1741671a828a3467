package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

var ErrTableNotFound = errors.New("table not found")

type cartRecord struct {
	CartKey   string    `dynamodbav:"cart_key"`
	Payload   []byte    `dynamodbav:"payload"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

type cartStorage struct {
	client    Client
	tableName string
	nowFunc   func() time.Time
}

// NewCartStorage keeps each cart blob as one item keyed by cart_key.
func NewCartStorage(client Client, tableName string) (port.CartStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if tableName == "" {
		return nil, fmt.Errorf("tableName is empty")
	}

	return &cartStorage{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}, nil
}

func (s *cartStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"cart_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("client.GetItem: %w", s.classify(err))
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var record cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, false, fmt.Errorf("attributevalue.UnmarshalMap: %w", err)
	}

	return record.Payload, true, nil
}

func (s *cartStorage) Save(ctx context.Context, key string, blob []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	item, err := attributevalue.MarshalMap(cartRecord{
		CartKey:   key,
		Payload:   blob,
		UpdatedAt: s.nowFunc().UTC(),
	})
	if err != nil {
		return fmt.Errorf("attributevalue.MarshalMap: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("client.PutItem: %w", s.classify(err))
	}

	return nil
}

func (s *cartStorage) classify(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
		return fmt.Errorf("table[%s]: %w: %w", s.tableName, ErrTableNotFound, err)
	}
	return err
}
