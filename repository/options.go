/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/models"
	"github.com/suparena/shopstore/registry"
)

// Option configures a repository.
type Option func(*options)

type options struct {
	logger        *zap.Logger
	validator     *models.Validator
	scheme        *registry.Scheme
	productIDs    func() string
	userIDs       func() string
	productLookup bool
}

// WithLogger sets the logger that reports dropped records.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithValidator sets the validator gating writes and reads. Keys are derived
// with the validator's scheme.
func WithValidator(v *models.Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

// WithScheme sets the key scheme of the default validator. It has no effect
// together with WithValidator.
func WithScheme(s *registry.Scheme) Option {
	return func(o *options) {
		o.scheme = s
	}
}

// WithProductIDGenerator replaces the generator of product ids. Generated ids
// must be decimal digits.
func WithProductIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.productIDs = gen
	}
}

// WithUserIDGenerator replaces the generator of user ids.
func WithUserIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.userIDs = gen
	}
}

// WithProductLookup makes cart upserts reject lines whose product does not
// exist. The check is best effort: a product deleted right after the lookup
// still leaves a dangling line.
func WithProductLookup() Option {
	return func(o *options) {
		o.productLookup = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.validator == nil {
		o.validator = models.NewValidator(models.WithKeyScheme(o.scheme))
	}
	o.scheme = o.validator.Scheme()
	if o.productIDs == nil {
		o.productIDs = newProductID
	}
	if o.userIDs == nil {
		o.userIDs = uuid.NewString
	}
	return o
}

// newProductID draws a random 32-bit decimal id.
func newProductID() string {
	return strconv.FormatUint(uint64(uuid.New().ID()), 10)
}
