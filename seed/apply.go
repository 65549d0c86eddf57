/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/models"
)

// Report counts what Apply did.
type Report struct {
	ProductsCreated int `json:"productsCreated"`
	ProductsSkipped int `json:"productsSkipped"`
	UsersCreated    int `json:"usersCreated"`
	UsersSkipped    int `json:"usersSkipped"`
	CartLines       int `json:"cartLines"`
}

// Apply writes fx through store: products first, then users, then cart lines.
// Products whose id is taken and users whose username exists are skipped. It
// stops at the first fixture that fails.
func Apply(ctx context.Context, store *shopstore.Store, fx Fixtures, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var report Report

	for i := range fx.Products {
		pf := &fx.Products[i]
		var (
			p   models.Product
			err error
		)
		if pf.ID == "" {
			p, err = store.Products.Create(ctx, &pf.ProductInput)
		} else {
			p, err = store.Products.CreateWithID(ctx, pf.ID, &pf.ProductInput)
		}
		switch {
		case errors.IsAlreadyExists(err):
			logger.Info("product exists, skipping", zap.String("productId", pf.ID))
			report.ProductsSkipped++
		case err != nil:
			return report, fmt.Errorf("product fixture %d: %w", i, err)
		default:
			logger.Debug("product created", zap.String("productId", p.ID), zap.String("name", p.Name))
			report.ProductsCreated++
		}
	}

	existing, err := store.Users.List(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list users: %w", err)
	}
	userIDs := make(map[string]string, len(existing))
	for _, u := range existing {
		userIDs[u.Username] = u.ID
	}

	for i := range fx.Users {
		uf := &fx.Users[i]
		if uf.Username != nil {
			if id, ok := userIDs[*uf.Username]; ok {
				logger.Info("user exists, skipping", zap.String("userId", id), zap.String("username", *uf.Username))
				report.UsersSkipped++
				continue
			}
		}

		u, err := store.Users.Create(ctx, &uf.UserInput)
		if err != nil {
			return report, fmt.Errorf("user fixture %d: %w", i, err)
		}
		userIDs[u.Username] = u.ID
		logger.Debug("user created", zap.String("userId", u.ID), zap.String("username", u.Username))
		report.UsersCreated++
	}

	for i, cf := range fx.Carts {
		userID := cf.UserID
		if userID == "" && cf.Username != "" {
			id, ok := userIDs[cf.Username]
			if !ok {
				return report, fmt.Errorf("cart fixture %d: unknown username %q", i, cf.Username)
			}
			userID = id
		}

		productID, amount := cf.ProductID, cf.Amount
		if _, err := store.Carts.Upsert(ctx, &models.CartItemInput{
			UserID:    &userID,
			ProductID: &productID,
			Amount:    &amount,
		}); err != nil {
			return report, fmt.Errorf("cart fixture %d: %w", i, err)
		}
		report.CartLines++
	}

	return report, nil
}
