/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package shopstore_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/config"
	"github.com/suparena/shopstore/datastore/mock"
	"github.com/suparena/shopstore/models"
	"github.com/suparena/shopstore/repository"
)

func TestStoreSharesItems(t *testing.T) {
	ctx := context.Background()
	items := mock.New()
	store := shopstore.New(items, repository.WithUserIDGenerator(func() string { return "u1" }))

	assert.Same(t, items, store.Items())

	u, err := store.Users.Create(ctx, &models.UserInput{Username: aws.String("rose")})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	p, err := store.Products.CreateWithID(ctx, "12", &models.ProductInput{
		Name:          aws.String("Rose"),
		Price:         aws.Float64(250),
		Img:           aws.String("https://x/a.png"),
		AmountInStock: aws.Int64(5),
	})
	require.NoError(t, err)

	_, err = store.Carts.Upsert(ctx, &models.CartItemInput{
		UserID:    aws.String(u.ID),
		ProductID: aws.String(p.ID),
		Amount:    aws.Int64(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, items.Count())
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TableName = ""

	_, err := shopstore.Open(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestGetVersionInfo(t *testing.T) {
	info := shopstore.GetVersionInfo()
	assert.Equal(t, shopstore.Version, info.Version)
	assert.NotEmpty(t, info.GitCommit)
}
