/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/models"
	"github.com/suparena/shopstore/storagemodels"
)

// maxIDAttempts bounds how many generated ids Create tries before giving up.
const maxIDAttempts = 4

// Products stores catalog entries.
type Products struct {
	base
}

// NewProducts returns a product repository writing through items.
func NewProducts(items datastore.ItemStore, opts ...Option) *Products {
	return &Products{base: newBase(items, opts)}
}

// Create validates in and stores it under a generated id. A generated id
// that is already taken is replaced by a fresh one.
func (r *Products) Create(ctx context.Context, in *models.ProductInput) (models.Product, error) {
	p, err := r.validator.Product(in)
	if err != nil {
		return models.Product{}, err
	}

	for attempt := 1; ; attempt++ {
		p.ID = r.productIDs()
		if err := models.ValidateProductID(p.ID); err != nil {
			return models.Product{}, fmt.Errorf("generated product id %q: %w", p.ID, err)
		}

		err := r.write(ctx, p, storagemodels.MustNotExist)
		if err == nil {
			return p, nil
		}
		if !errors.IsAlreadyExists(err) || attempt == maxIDAttempts {
			return models.Product{}, err
		}
		r.logger.Info("generated product id taken, retrying",
			zap.String("productId", p.ID),
			zap.Int("attempt", attempt),
		)
	}
}

// CreateWithID validates in and stores it under the caller's id. An existing
// product with that id is left untouched and reported as already existing.
func (r *Products) CreateWithID(ctx context.Context, id string, in *models.ProductInput) (models.Product, error) {
	if err := models.ValidateProductID(id); err != nil {
		return models.Product{}, err
	}
	p, err := r.validator.Product(in)
	if err != nil {
		return models.Product{}, err
	}

	p.ID = id
	if err := r.write(ctx, p, storagemodels.MustNotExist); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Get returns the product with id.
func (r *Products) Get(ctx context.Context, id string) (models.Product, error) {
	key := r.scheme.ProductKey(id)
	if models.ValidateProductID(id) != nil {
		return models.Product{}, errors.NewNotFoundError(string(storagemodels.KindProduct), key.String())
	}
	return getOne(ctx, &r.base, storagemodels.KindProduct, key, r.validator.StoredProduct)
}

// List returns every valid product. Invalid records are logged and skipped.
func (r *Products) List(ctx context.Context) ([]models.Product, error) {
	return listAll(ctx, &r.base, storagemodels.KindProduct, r.validator.StoredProduct)
}

// Update replaces every attribute of an existing product.
func (r *Products) Update(ctx context.Context, id string, in *models.ProductInput) (models.Product, error) {
	if err := models.ValidateProductID(id); err != nil {
		return models.Product{}, err
	}
	p, err := r.validator.Product(in)
	if err != nil {
		return models.Product{}, err
	}

	p.ID = id
	if err := r.write(ctx, p, storagemodels.MustExist); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes the product with id and returns it.
func (r *Products) Delete(ctx context.Context, id string) (models.Product, error) {
	key := r.scheme.ProductKey(id)
	if models.ValidateProductID(id) != nil {
		return models.Product{}, errors.NewNotFoundError(string(storagemodels.KindProduct), key.String())
	}
	return remove(ctx, &r.base, storagemodels.KindProduct, key, r.validator.StoredProduct)
}

func (r *Products) write(ctx context.Context, p models.Product, cond storagemodels.Condition) error {
	key := r.scheme.ProductKey(p.ID)
	rec, err := models.MarshalProduct(key, p)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return r.put(ctx, storagemodels.KindProduct, key, rec, cond)
}
