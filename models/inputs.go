/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// ProductInput is the caller-supplied body for creating or replacing a product.
type ProductInput struct {

	// name
	// Required: true
	// Max Length: 30
	// Min Length: 1
	Name *string `json:"name" yaml:"name"`

	// price
	// Required: true
	// Maximum: 1e+06
	// Minimum: 1
	Price *float64 `json:"price" yaml:"price"`

	// img
	// Required: true
	// Max Length: 300
	// Format: image-url
	Img *string `json:"img" yaml:"img"`

	// amount in stock
	// Required: true
	// Minimum: 0
	AmountInStock *int64 `json:"amountInStock" yaml:"amountInStock"`
}

// Validate validates this product input
func (m *ProductInput) Validate(formats strfmt.Registry) error {
	var res results

	if err := validate.Required("name", inBody, m.Name); err != nil {
		res.add(err)
	} else {
		res.addErr(validateName(inBody, *m.Name))
	}

	if err := validate.Required("price", inBody, m.Price); err != nil {
		res.add(err)
	} else {
		res.addErr(validatePrice(inBody, *m.Price))
	}

	if err := validate.Required("img", inBody, m.Img); err != nil {
		res.add(err)
	} else {
		res.addErr(validateImg(inBody, *m.Img, formats))
	}

	if err := validate.Required("amountInStock", inBody, m.AmountInStock); err != nil {
		res.add(err)
	} else {
		res.addErr(validateStock(inBody, *m.AmountInStock))
	}

	return res.err()
}

// product assumes a successful Validate.
func (m *ProductInput) product(id string) Product {
	return Product{
		ID:            id,
		Name:          *m.Name,
		Price:         *m.Price,
		Img:           *m.Img,
		AmountInStock: *m.AmountInStock,
	}
}

// MarshalBinary interface implementation
func (m *ProductInput) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *ProductInput) UnmarshalBinary(b []byte) error {
	var res ProductInput
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// UserInput is the caller-supplied body for creating or renaming a user.
type UserInput struct {

	// username
	// Required: true
	// Max Length: 50
	// Min Length: 1
	Username *string `json:"username" yaml:"username"`
}

// Validate validates this user input
func (m *UserInput) Validate(formats strfmt.Registry) error {
	var res results

	if err := validate.Required("username", inBody, m.Username); err != nil {
		res.add(err)
	} else {
		res.addErr(validateUsername(inBody, *m.Username))
	}

	return res.err()
}

func (m *UserInput) user(id string) User {
	return User{ID: id, Username: *m.Username}
}

// MarshalBinary interface implementation
func (m *UserInput) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *UserInput) UnmarshalBinary(b []byte) error {
	var res UserInput
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// CartItemInput is the caller-supplied body for setting a cart line.
type CartItemInput struct {

	// user Id
	// Required: true
	// Pattern: ^[A-Za-z0-9_-]{1,64}$
	UserID *string `json:"userId" yaml:"userId"`

	// product Id
	// Required: true
	// Pattern: ^[0-9]+$
	ProductID *string `json:"productId" yaml:"productId"`

	// amount
	// Required: true
	// Maximum: 10
	// Minimum: 1
	Amount *int64 `json:"amount" yaml:"amount"`
}

// Validate validates this cart item input
func (m *CartItemInput) Validate(formats strfmt.Registry) error {
	var res results

	if err := validate.Required("userId", inBody, m.UserID); err != nil {
		res.add(err)
	} else {
		res.addErr(validateUserID(inBody, *m.UserID))
	}

	if err := validate.Required("productId", inBody, m.ProductID); err != nil {
		res.add(err)
	} else {
		res.addErr(validateProductID(inBody, *m.ProductID))
	}

	if err := validate.Required("amount", inBody, m.Amount); err != nil {
		res.add(err)
	} else {
		res.addErr(validateAmount(inBody, *m.Amount))
	}

	return res.err()
}

func (m *CartItemInput) cartItem() CartItem {
	return CartItem{UserID: *m.UserID, ProductID: *m.ProductID, Amount: *m.Amount}
}

// MarshalBinary interface implementation
func (m *CartItemInput) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *CartItemInput) UnmarshalBinary(b []byte) error {
	var res CartItemInput
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
