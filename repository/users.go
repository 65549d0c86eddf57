/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"context"
	"fmt"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/models"
	"github.com/suparena/shopstore/storagemodels"
)

// Users stores shop customers.
type Users struct {
	base
}

// NewUsers returns a user repository writing through items.
func NewUsers(items datastore.ItemStore, opts ...Option) *Users {
	return &Users{base: newBase(items, opts)}
}

// Create validates in and stores it under a fresh user id.
func (r *Users) Create(ctx context.Context, in *models.UserInput) (models.User, error) {
	u, err := r.validator.User(in)
	if err != nil {
		return models.User{}, err
	}

	u.ID = r.userIDs()
	if err := models.ValidateUserID(u.ID); err != nil {
		return models.User{}, fmt.Errorf("generated user id %q: %w", u.ID, err)
	}
	if err := r.write(ctx, u, storagemodels.MustNotExist); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Get returns the user with id.
func (r *Users) Get(ctx context.Context, id string) (models.User, error) {
	if err := models.ValidateUserID(id); err != nil {
		return models.User{}, err
	}
	return getOne(ctx, &r.base, storagemodels.KindUser, r.scheme.UserKey(id), r.validator.StoredUser)
}

// List returns every valid user.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	return listAll(ctx, &r.base, storagemodels.KindUser, r.validator.StoredUser)
}

// Update renames an existing user.
func (r *Users) Update(ctx context.Context, id string, in *models.UserInput) (models.User, error) {
	if err := models.ValidateUserID(id); err != nil {
		return models.User{}, err
	}
	u, err := r.validator.User(in)
	if err != nil {
		return models.User{}, err
	}

	u.ID = id
	if err := r.write(ctx, u, storagemodels.MustExist); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Delete removes the user with id and returns it. Cart lines of the user are
// not touched.
func (r *Users) Delete(ctx context.Context, id string) (models.User, error) {
	if err := models.ValidateUserID(id); err != nil {
		return models.User{}, err
	}
	return remove(ctx, &r.base, storagemodels.KindUser, r.scheme.UserKey(id), r.validator.StoredUser)
}

func (r *Users) write(ctx context.Context, u models.User, cond storagemodels.Condition) error {
	key := r.scheme.UserKey(u.ID)
	rec, err := models.MarshalUser(key, u)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return r.put(ctx, storagemodels.KindUser, key, rec, cond)
}
