/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"context"
	"fmt"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/models"
	"github.com/suparena/shopstore/storagemodels"
)

// Carts stores cart lines, one per (product, user) pair.
type Carts struct {
	base
}

// NewCarts returns a cart repository writing through items.
func NewCarts(items datastore.ItemStore, opts ...Option) *Carts {
	return &Carts{base: newBase(items, opts)}
}

// Upsert sets the amount of the line for in's (product, user) pair, creating
// the line if needed.
func (r *Carts) Upsert(ctx context.Context, in *models.CartItemInput) (models.CartItem, error) {
	c, err := r.validator.CartItem(in)
	if err != nil {
		return models.CartItem{}, err
	}

	if r.productLookup {
		if err := r.checkProduct(ctx, c.ProductID); err != nil {
			return models.CartItem{}, err
		}
	}

	if err := r.write(ctx, c, storagemodels.None); err != nil {
		return models.CartItem{}, err
	}
	return c, nil
}

// Get returns the line for (userID, productID).
func (r *Carts) Get(ctx context.Context, userID, productID string) (models.CartItem, error) {
	key := r.scheme.CartKey(productID, userID)
	if validPair(userID, productID) != nil {
		return models.CartItem{}, errors.NewNotFoundError(string(storagemodels.KindCart), key.String())
	}
	return getOne(ctx, &r.base, storagemodels.KindCart, key, r.validator.StoredCartItem)
}

// List returns every valid cart line of every user.
func (r *Carts) List(ctx context.Context) ([]models.CartItem, error) {
	return listAll(ctx, &r.base, storagemodels.KindCart, r.validator.StoredCartItem)
}

// ListByUser returns the valid lines of userID. The cart partition is read in
// full and filtered on the user id embedded in each sort key.
func (r *Carts) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	if err := models.ValidateUserID(userID); err != nil {
		return nil, err
	}

	pk, err := r.scheme.Partition(storagemodels.KindCart)
	if err != nil {
		return nil, err
	}
	recs, err := r.items.QueryByPartition(ctx, pk)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartItem, 0)
	for _, rec := range recs {
		key, _ := storagemodels.KeyOf(rec)
		_, owner, err := r.scheme.DecodeCartKey(key.SK)
		if err != nil {
			r.dropped(storagemodels.KindCart, key, err)
			continue
		}
		if owner != userID {
			continue
		}

		c, err := r.validator.StoredCartItem(rec)
		if err != nil {
			r.dropped(storagemodels.KindCart, key, err)
			continue
		}
		lines = append(lines, c)
	}
	return lines, nil
}

// UpdateAmount changes the amount of an existing line.
func (r *Carts) UpdateAmount(ctx context.Context, userID, productID string, amount int64) (models.CartItem, error) {
	c, err := r.validator.CartItem(&models.CartItemInput{
		UserID:    &userID,
		ProductID: &productID,
		Amount:    &amount,
	})
	if err != nil {
		return models.CartItem{}, err
	}

	if err := r.write(ctx, c, storagemodels.MustExist); err != nil {
		return models.CartItem{}, err
	}
	return c, nil
}

// Delete removes the line for (userID, productID) and returns it as
// confirmation.
func (r *Carts) Delete(ctx context.Context, userID, productID string) (models.CartItem, error) {
	key := r.scheme.CartKey(productID, userID)
	if validPair(userID, productID) != nil {
		return models.CartItem{}, errors.NewNotFoundError(string(storagemodels.KindCart), key.String())
	}
	return remove(ctx, &r.base, storagemodels.KindCart, key, r.validator.StoredCartItem)
}

func (r *Carts) checkProduct(ctx context.Context, productID string) error {
	key := r.scheme.ProductKey(productID)
	_, err := getOne(ctx, &r.base, storagemodels.KindProduct, key, r.validator.StoredProduct)
	if errors.IsNotFound(err) {
		return errors.NewEntityValidationError(string(storagemodels.KindCart), errors.FieldIssue{
			Field:   "productId",
			Message: fmt.Sprintf("product %s does not exist", productID),
		})
	}
	return err
}

func (r *Carts) write(ctx context.Context, c models.CartItem, cond storagemodels.Condition) error {
	key := r.scheme.CartKey(c.ProductID, c.UserID)
	rec, err := models.MarshalCartItem(key, c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart item: %w", err)
	}
	return r.put(ctx, storagemodels.KindCart, key, rec, cond)
}

func validPair(userID, productID string) error {
	if err := models.ValidateUserID(userID); err != nil {
		return err
	}
	return models.ValidateProductID(productID)
}
