/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	oaierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// Field limits of the shop entities.
const (
	NameMinLength     = 1
	NameMaxLength     = 30
	PriceMinimum      = 1
	PriceMaximum      = 1_000_000
	ImgMaxLength      = 300
	StockMinimum      = 0
	UsernameMinLength = 1
	UsernameMaxLength = 50
	AmountMinimum     = 1
	AmountMaximum     = 10
)

const (
	productIDPattern = `^[0-9]+$`
	userIDPattern    = `^[A-Za-z0-9_-]{1,64}$`
)

// Where a value came from, as reported in validation messages.
const (
	inBody = "body"
	inPath = "path"
	inItem = "item"
)

// results collects rule failures, skipping nil results so no typed nil ends
// up behind an error interface.
type results []error

func (r *results) add(v *oaierrors.Validation) {
	if v != nil {
		*r = append(*r, v)
	}
}

func (r *results) addErr(err error) {
	if err != nil {
		*r = append(*r, err)
	}
}

func (r results) err() error {
	if len(r) == 0 {
		return nil
	}
	return oaierrors.CompositeValidationError(r...)
}

func validateName(in, name string) error {
	var res results
	res.add(validate.MinLength("name", in, name, NameMinLength))
	res.add(validate.MaxLength("name", in, name, NameMaxLength))
	return res.err()
}

func validatePrice(in string, price float64) error {
	var res results
	res.add(validate.Minimum("price", in, price, PriceMinimum, false))
	res.add(validate.Maximum("price", in, price, PriceMaximum, false))
	return res.err()
}

func validateImg(in, img string, formats strfmt.Registry) error {
	if err := validate.MaxLength("img", in, img, ImgMaxLength); err != nil {
		return err
	}
	if err := validate.FormatOf("img", in, FormatImageURL, img, formats); err != nil {
		return err
	}
	return nil
}

func validateStock(in string, stock int64) error {
	if err := validate.MinimumInt("amountInStock", in, stock, StockMinimum, false); err != nil {
		return err
	}
	return nil
}

func validateUsername(in, username string) error {
	var res results
	res.add(validate.MinLength("username", in, username, UsernameMinLength))
	res.add(validate.MaxLength("username", in, username, UsernameMaxLength))
	return res.err()
}

func validateAmount(in string, amount int64) error {
	var res results
	res.add(validate.MinimumInt("amount", in, amount, AmountMinimum, false))
	res.add(validate.MaximumInt("amount", in, amount, AmountMaximum, false))
	return res.err()
}

func validateProductID(in, id string) error {
	if err := validate.RequiredString("productId", in, id); err != nil {
		return err
	}
	if err := validate.Pattern("productId", in, id, productIDPattern); err != nil {
		return err
	}
	return nil
}

func validateUserID(in, id string) error {
	if err := validate.RequiredString("userId", in, id); err != nil {
		return err
	}
	if err := validate.Pattern("userId", in, id, userIDPattern); err != nil {
		return err
	}
	return nil
}
