/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	storeerrors "github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// Store implements datastore.ItemStore on one DynamoDB table keyed by Pk and Sk.
type Store struct {
	client    API
	tableName string
	logger    *zap.Logger
}

var _ datastore.ItemStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report store failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Store issuing requests against tableName through client.
func New(client API, tableName string, opts ...Option) *Store {
	s := &Store{
		client:    client,
		tableName: tableName,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TableName returns the table the Store writes to.
func (s *Store) TableName() string { return s.tableName }

// GetItem performs a strongly consistent read of key.
func (s *Store) GetItem(ctx context.Context, key storagemodels.Key) (storagemodels.Record, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            key.Attributes(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, s.fail("get", key, storagemodels.None, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

// QueryByPartition reads every page of the partition pk.
func (s *Store) QueryByPartition(ctx context.Context, pk string) ([]storagemodels.Record, error) {
	keyCond := expression.Key(storagemodels.AttrPartitionKey).Equal(expression.Value(pk))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	paginator := sdk.NewQueryPaginator(s.client, &sdk.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            aws.Bool(true),
	})

	var (
		records []storagemodels.Record
		pages   int
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, s.fail("query", storagemodels.Key{PK: pk}, storagemodels.None, err)
		}
		pages++
		records = append(records, page.Items...)
	}

	s.logger.Debug("partition read",
		zap.String("table", s.tableName),
		zap.String("pk", pk),
		zap.Int("pages", pages),
		zap.Int("items", len(records)),
	)
	return records, nil
}

// PutItem writes rec at key, guarded by cond.
func (s *Store) PutItem(ctx context.Context, key storagemodels.Key, rec storagemodels.Record, cond storagemodels.Condition, opts ...storagemodels.WriteOption) (storagemodels.Record, error) {
	options := storagemodels.ApplyWriteOptions(opts...)

	item := make(storagemodels.Record, len(rec)+2)
	for k, v := range rec {
		item[k] = v
	}
	for k, v := range key.Attributes() {
		item[k] = v
	}

	input := &sdk.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}
	if options.ReturnOld {
		input.ReturnValues = types.ReturnValueAllOld
	}
	expr, err := conditionExpression(cond)
	if err != nil {
		return nil, err
	}
	if expr != nil {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := s.client.PutItem(ctx, input)
	if err != nil {
		return nil, s.fail("put", key, cond, err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return out.Attributes, nil
}

// DeleteItem removes the item at key, guarded by cond, and returns the
// removed attributes.
func (s *Store) DeleteItem(ctx context.Context, key storagemodels.Key, cond storagemodels.Condition) (storagemodels.Record, error) {
	input := &sdk.DeleteItemInput{
		TableName:    aws.String(s.tableName),
		Key:          key.Attributes(),
		ReturnValues: types.ReturnValueAllOld,
	}
	expr, err := conditionExpression(cond)
	if err != nil {
		return nil, err
	}
	if expr != nil {
		input.ConditionExpression = expr.Condition()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	out, err := s.client.DeleteItem(ctx, input)
	if err != nil {
		return nil, s.fail("delete", key, cond, err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return out.Attributes, nil
}

// conditionExpression translates cond into a guard on the partition key
// attribute, which every stored item carries. None yields no expression.
func conditionExpression(cond storagemodels.Condition) (*expression.Expression, error) {
	var c expression.ConditionBuilder
	switch cond {
	case storagemodels.None:
		return nil, nil
	case storagemodels.MustNotExist:
		c = expression.AttributeNotExists(expression.Name(storagemodels.AttrPartitionKey))
	case storagemodels.MustExist:
		c = expression.AttributeExists(expression.Name(storagemodels.AttrPartitionKey))
	default:
		return nil, fmt.Errorf("unsupported write condition %v", cond)
	}

	expr, err := expression.NewBuilder().WithCondition(c).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build condition: %w", err)
	}
	return &expr, nil
}

// fail maps an SDK error onto the store error taxonomy.
func (s *Store) fail(op string, key storagemodels.Key, cond storagemodels.Condition, err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return storeerrors.NewConditionFailedError(op, cond.String())
	}

	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("table", s.tableName),
		zap.String("pk", key.PK),
		zap.String("sk", key.SK),
		zap.Error(err),
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("code", apiErr.ErrorCode()))
	}
	s.logger.Error("dynamodb request failed", fields...)

	return storeerrors.NewStoreUnavailableError(op, err)
}
