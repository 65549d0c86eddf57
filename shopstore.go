/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package shopstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/config"
	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/datastore/ddb"
	"github.com/suparena/shopstore/repository"
)

// Store bundles the repositories of one table, all configured with the same
// options.
type Store struct {
	Products *repository.Products
	Users    *repository.Users
	Carts    *repository.Carts

	items datastore.ItemStore
}

// New returns a Store whose repositories write through items.
func New(items datastore.ItemStore, opts ...repository.Option) *Store {
	return &Store{
		Products: repository.NewProducts(items, opts...),
		Users:    repository.NewUsers(items, opts...),
		Carts:    repository.NewCarts(items, opts...),
		items:    items,
	}
}

// Open connects to the DynamoDB table described by cfg.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...repository.Option) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	items := ddb.New(client, cfg.TableName, ddb.WithLogger(logger))
	logger.Info("shop store opened",
		zap.String("table", cfg.TableName),
		zap.String("region", cfg.AWS.Region),
	)
	return New(items, append([]repository.Option{repository.WithLogger(logger)}, opts...)...), nil
}

// Items returns the underlying item store.
func (s *Store) Items() datastore.ItemStore { return s.items }
