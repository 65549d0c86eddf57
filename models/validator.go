/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	oaierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	storeerrors "github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/registry"
	"github.com/suparena/shopstore/storagemodels"
)

// Validator gates every value crossing the store boundary. Writes go through
// the Input checks and reads go through the Stored checks.
type Validator struct {
	formats strfmt.Registry
	scheme  *registry.Scheme
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithFormats replaces the format registry used for format rules.
func WithFormats(formats strfmt.Registry) ValidatorOption {
	return func(v *Validator) {
		v.formats = formats
	}
}

// WithKeyScheme replaces the key scheme used to check stored keys.
func WithKeyScheme(scheme *registry.Scheme) ValidatorOption {
	return func(v *Validator) {
		v.scheme = scheme
	}
}

// NewValidator returns a Validator using Formats and the default key scheme
// unless overridden.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.formats == nil {
		v.formats = Formats()
	}
	if v.scheme == nil {
		v.scheme = registry.DefaultScheme()
	}
	return v
}

// Formats returns the format registry in use.
func (v *Validator) Formats() strfmt.Registry { return v.formats }

// Scheme returns the key scheme in use.
func (v *Validator) Scheme() *registry.Scheme { return v.scheme }

// ValidateCreate decodes a JSON create body for kind and validates the
// caller-supplied fields. Product and user identities are never taken from
// the payload; the returned entity has an empty ID.
func (v *Validator) ValidateCreate(kind storagemodels.Kind, payload []byte) (Entity, error) {
	switch kind {
	case storagemodels.KindProduct:
		var in ProductInput
		if err := in.UnmarshalBinary(payload); err != nil {
			return nil, decodeError(kind, err)
		}
		return entity(v.Product(&in))
	case storagemodels.KindUser:
		var in UserInput
		if err := in.UnmarshalBinary(payload); err != nil {
			return nil, decodeError(kind, err)
		}
		return entity(v.User(&in))
	case storagemodels.KindCart:
		var in CartItemInput
		if err := in.UnmarshalBinary(payload); err != nil {
			return nil, decodeError(kind, err)
		}
		return entity(v.CartItem(&in))
	default:
		return nil, storeerrors.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}
}

// ValidateStored validates a full stored record of kind, key attributes
// included, and converts it to its entity.
func (v *Validator) ValidateStored(kind storagemodels.Kind, rec storagemodels.Record) (Entity, error) {
	switch kind {
	case storagemodels.KindProduct:
		return entity(v.StoredProduct(rec))
	case storagemodels.KindUser:
		return entity(v.StoredUser(rec))
	case storagemodels.KindCart:
		return entity(v.StoredCartItem(rec))
	default:
		return nil, storeerrors.NewValidationError("kind", fmt.Sprintf("unknown entity kind %q", kind))
	}
}

// Product validates a product body.
func (v *Validator) Product(in *ProductInput) (Product, error) {
	if in == nil {
		return Product{}, missingBody(storagemodels.KindProduct)
	}
	if err := in.Validate(v.formats); err != nil {
		return Product{}, validationError(storagemodels.KindProduct, err)
	}
	return in.product(""), nil
}

// User validates a user body.
func (v *Validator) User(in *UserInput) (User, error) {
	if in == nil {
		return User{}, missingBody(storagemodels.KindUser)
	}
	if err := in.Validate(v.formats); err != nil {
		return User{}, validationError(storagemodels.KindUser, err)
	}
	return in.user(""), nil
}

// CartItem validates a cart line body, identities included.
func (v *Validator) CartItem(in *CartItemInput) (CartItem, error) {
	if in == nil {
		return CartItem{}, missingBody(storagemodels.KindCart)
	}
	if err := in.Validate(v.formats); err != nil {
		return CartItem{}, validationError(storagemodels.KindCart, err)
	}
	return in.cartItem(), nil
}

// StoredProduct validates a stored product record.
func (v *Validator) StoredProduct(rec storagemodels.Record) (Product, error) {
	var m ProductRecord
	if err := attributevalue.UnmarshalMap(rec, &m); err != nil {
		return Product{}, decodeError(storagemodels.KindProduct, err)
	}
	if err := m.Validate(v.formats, v.scheme); err != nil {
		return Product{}, validationError(storagemodels.KindProduct, err)
	}
	return m.product(), nil
}

// StoredUser validates a stored user record.
func (v *Validator) StoredUser(rec storagemodels.Record) (User, error) {
	var m UserRecord
	if err := attributevalue.UnmarshalMap(rec, &m); err != nil {
		return User{}, decodeError(storagemodels.KindUser, err)
	}
	if err := m.Validate(v.formats, v.scheme); err != nil {
		return User{}, validationError(storagemodels.KindUser, err)
	}
	return m.user(), nil
}

// StoredCartItem validates a stored cart line record.
func (v *Validator) StoredCartItem(rec storagemodels.Record) (CartItem, error) {
	var m CartItemRecord
	if err := attributevalue.UnmarshalMap(rec, &m); err != nil {
		return CartItem{}, decodeError(storagemodels.KindCart, err)
	}
	if err := m.Validate(v.formats, v.scheme); err != nil {
		return CartItem{}, validationError(storagemodels.KindCart, err)
	}
	return m.cartItem(), nil
}

// ValidateProductID checks a caller-supplied product id.
func ValidateProductID(id string) error {
	if err := validateProductID(inPath, id); err != nil {
		return validationError(storagemodels.KindProduct, err)
	}
	return nil
}

// ValidateUserID checks a caller-supplied user id.
func ValidateUserID(id string) error {
	if err := validateUserID(inPath, id); err != nil {
		return validationError(storagemodels.KindUser, err)
	}
	return nil
}

func entity[E Entity](e E, err error) (Entity, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

func missingBody(kind storagemodels.Kind) error {
	return storeerrors.NewEntityValidationError(string(kind), storeerrors.FieldIssue{Message: "body is required"})
}

func decodeError(kind storagemodels.Kind, err error) error {
	return storeerrors.NewEntityValidationError(string(kind), storeerrors.FieldIssue{
		Message: fmt.Sprintf("cannot decode %s: %v", kind, err),
	})
}

// validationError flattens rule failures into a ValidationError.
func validationError(kind storagemodels.Kind, err error) error {
	return storeerrors.NewEntityValidationError(string(kind), flatten(err, nil)...)
}

func flatten(err error, issues []storeerrors.FieldIssue) []storeerrors.FieldIssue {
	switch e := err.(type) {
	case *oaierrors.CompositeError:
		for _, sub := range e.Errors {
			issues = flatten(sub, issues)
		}
	case *oaierrors.Validation:
		issues = append(issues, storeerrors.FieldIssue{Field: e.Name, Message: e.Error()})
	case *storeerrors.MalformedKeyError:
		issues = append(issues, storeerrors.FieldIssue{Field: storagemodels.AttrSortKey, Message: e.Error()})
	default:
		issues = append(issues, storeerrors.FieldIssue{Message: err.Error()})
	}
	return issues
}
