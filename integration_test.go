//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package shopstore_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/config"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/models"
)

func setupTestStore(t *testing.T) *shopstore.Store {
	tableName := os.Getenv("DDB_TEST_TABLE_NAME")
	if tableName == "" {
		t.Skip("DDB_TEST_TABLE_NAME not set, skipping integration test")
	}

	cfg := config.DefaultConfig()
	cfg.TableName = tableName
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.AWS.Region = region
	}
	cfg.AWS.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.AWS.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.AWS.Endpoint = os.Getenv("DDB_ENDPOINT")

	store, err := shopstore.Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	return store
}

func TestIntegrationProductLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore(t)

	id := fmt.Sprintf("%d", time.Now().UnixNano())
	in := &models.ProductInput{
		Name:          aws.String("Integration Rose"),
		Price:         aws.Float64(250),
		Img:           aws.String("https://example.com/rose.png"),
		AmountInStock: aws.Int64(5),
	}

	created, err := store.Products.CreateWithID(ctx, id, in)
	if err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}

	if _, err := store.Products.CreateWithID(ctx, id, in); !errors.IsAlreadyExists(err) {
		t.Errorf("Expected already exists error, got: %v", err)
	}

	retrieved, err := store.Products.Get(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if retrieved != created {
		t.Errorf("Retrieved product doesn't match: got %+v, want %+v", retrieved, created)
	}

	in.AmountInStock = aws.Int64(0)
	if _, err := store.Products.Update(ctx, id, in); err != nil {
		t.Fatalf("Failed to update product: %v", err)
	}

	deleted, err := store.Products.Delete(ctx, id)
	if err != nil {
		t.Fatalf("Failed to delete product: %v", err)
	}
	if deleted.AmountInStock != 0 {
		t.Errorf("Expected deleted product to carry the updated stock, got %d", deleted.AmountInStock)
	}

	if _, err := store.Products.Get(ctx, id); !errors.IsNotFound(err) {
		t.Errorf("Expected not found error, got: %v", err)
	}
	if _, err := store.Products.Delete(ctx, id); !errors.IsNotFound(err) {
		t.Errorf("Expected not found error on second delete, got: %v", err)
	}
}

func TestIntegrationCart(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	store := setupTestStore(t)

	userID := fmt.Sprintf("it-%d", time.Now().UnixNano())
	productID := "1"

	for _, amount := range []int64{3, 7} {
		_, err := store.Carts.Upsert(ctx, &models.CartItemInput{
			UserID:    aws.String(userID),
			ProductID: aws.String(productID),
			Amount:    aws.Int64(amount),
		})
		if err != nil {
			t.Fatalf("Failed to upsert cart line: %v", err)
		}
	}

	lines, err := store.Carts.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(lines) != 1 || lines[0].Amount != 7 {
		t.Fatalf("Expected one line with amount 7, got %+v", lines)
	}

	if _, err := store.Carts.Delete(ctx, userID, productID); err != nil {
		t.Fatalf("Failed to delete cart line: %v", err)
	}

	lines, err = store.Carts.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected empty cart, got %+v", lines)
	}
}
