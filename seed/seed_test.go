/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/datastore/mock"
	"github.com/suparena/shopstore/errors"
)

const fixtures = `
products:
  - id: "1"
    name: Rose
    price: 250
    img: https://example.com/rose.png
    amountInStock: 5
  - name: Tulip
    price: 12.5
    img: https://example.com/tulip.png
    amountInStock: 0
users:
  - username: rose
carts:
  - username: rose
    productId: "1"
    amount: 3
`

func TestDecode(t *testing.T) {
	fx, err := Decode(strings.NewReader(fixtures))
	require.NoError(t, err)

	require.Len(t, fx.Products, 2)
	assert.Equal(t, "1", fx.Products[0].ID)
	assert.Equal(t, "Rose", *fx.Products[0].Name)
	assert.Equal(t, 12.5, *fx.Products[1].Price)
	require.Len(t, fx.Users, 1)
	assert.Equal(t, "rose", *fx.Users[0].Username)
	require.Len(t, fx.Carts, 1)
	assert.Equal(t, int64(3), fx.Carts[0].Amount)

	empty, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Products)

	_, err = Decode(strings.NewReader("orders: []\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtures), 0o600))

	fx, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, fx.Products, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	items := mock.New()
	store := shopstore.New(items)

	fx, err := Decode(strings.NewReader(fixtures))
	require.NoError(t, err)

	report, err := Apply(ctx, store, fx, nil)
	require.NoError(t, err)
	assert.Equal(t, Report{ProductsCreated: 2, UsersCreated: 1, CartLines: 1}, report)
	assert.Equal(t, 4, items.Count())

	users, err := store.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	lines, err := store.Carts.ListByUser(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].ProductID)

	fx.Products = fx.Products[:1]
	report, err = Apply(ctx, store, fx, nil)
	require.NoError(t, err)
	assert.Equal(t, Report{ProductsSkipped: 1, UsersSkipped: 1, CartLines: 1}, report)
	assert.Equal(t, 4, items.Count())
}

func TestApplyStopsOnInvalidFixture(t *testing.T) {
	ctx := context.Background()
	store := shopstore.New(mock.New())

	fx, err := Decode(strings.NewReader(`
carts:
  - userId: u1
    productId: "1"
    amount: 11
`))
	require.NoError(t, err)

	_, err = Apply(ctx, store, fx, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = Apply(ctx, store, Fixtures{Carts: []CartFixture{{Username: "ghost", ProductID: "1", Amount: 1}}}, nil)
	assert.ErrorContains(t, err, "unknown username")
}
