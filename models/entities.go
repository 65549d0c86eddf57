/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import "github.com/suparena/shopstore/storagemodels"

// Entity is a validated domain value of one of the table's kinds.
type Entity interface {
	EntityKind() storagemodels.Kind
}

// Product is a catalog entry.
type Product struct {

	// Decimal digits, immutable once created.
	ID string `json:"productId"`

	// Display name, 1 to 30 characters.
	Name string `json:"name"`

	// Unit price, between 1 and 1,000,000 inclusive.
	Price float64 `json:"price"`

	// Absolute http(s) image URL, at most 300 characters.
	Img string `json:"img"`

	// Units available, never negative.
	AmountInStock int64 `json:"amountInStock"`
}

// EntityKind implements Entity.
func (Product) EntityKind() storagemodels.Kind { return storagemodels.KindProduct }

// User is a shop customer.
type User struct {
	ID       string `json:"userId"`
	Username string `json:"username"`
}

// EntityKind implements Entity.
func (User) EntityKind() storagemodels.Kind { return storagemodels.KindUser }

// CartItem is one line of a user's cart. The (ProductID, UserID) pair is its
// identity.
type CartItem struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Amount    int64  `json:"amount"`
}

// EntityKind implements Entity.
func (CartItem) EntityKind() storagemodels.Kind { return storagemodels.KindCart }
