/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no valid entity exists at the derived key
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create an entity that already exists
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write's guard does not hold
	ErrConditionFailed = errors.New("condition check failed")

	// ErrMalformedKey is returned when a sort key does not match its kind's grammar
	ErrMalformedKey = errors.New("malformed key")

	// ErrStoreUnavailable is returned when the call to the backing store itself failed
	ErrStoreUnavailable = errors.New("store unavailable")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// FieldIssue is a single rejected field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError represents an input validation error. Kind tags the entity
// kind being validated; Issues lists every rejected field when more than one
// rule failed.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
	Issues  []FieldIssue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	if e.Kind != "" {
		fmt.Fprintf(&b, " for %s", e.Kind)
	}
	switch {
	case len(e.Issues) > 0:
		parts := make([]string, 0, len(e.Issues))
		for _, is := range e.Issues {
			if is.Field == "" {
				parts = append(parts, is.Message)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Message))
		}
		fmt.Fprintf(&b, ": %s", strings.Join(parts, "; "))
	case e.Field != "":
		fmt.Fprintf(&b, " for field %q: %s", e.Field, e.Message)
	default:
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// MalformedKeyError represents a stored key that does not follow its kind's grammar
type MalformedKeyError struct {
	Kind   string
	Key    string
	Reason string
}

func (e *MalformedKeyError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed %s key %q", e.Kind, e.Key)
	}
	return fmt.Sprintf("malformed %s key %q: %s", e.Kind, e.Key, e.Reason)
}

func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

// StoreUnavailableError wraps a transport or service failure of the backing store
type StoreUnavailableError struct {
	Operation string
	Err       error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Operation, e.Err)
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEntityValidationError creates a ValidationError tagged with the entity
// kind and carrying per-field issues.
func NewEntityValidationError(kind string, issues ...FieldIssue) error {
	e := &ValidationError{Kind: kind, Issues: issues}
	if len(issues) == 1 {
		e.Field = issues[0].Field
		e.Message = issues[0].Message
	}
	return e
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewMalformedKeyError creates a new MalformedKeyError
func NewMalformedKeyError(kind, key, reason string) error {
	return &MalformedKeyError{Kind: kind, Key: key, Reason: reason}
}

// NewStoreUnavailableError creates a new StoreUnavailableError
func NewStoreUnavailableError(operation string, err error) error {
	return &StoreUnavailableError{Operation: operation, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsMalformedKey checks if an error is a malformed key error
func IsMalformedKey(err error) bool {
	return errors.Is(err, ErrMalformedKey)
}

// IsStoreUnavailable checks if an error is a store unavailable error
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// Issues returns the field issues carried by a ValidationError anywhere in
// err's chain, or nil.
func Issues(err error) []FieldIssue {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	if len(ve.Issues) > 0 {
		return ve.Issues
	}
	if ve.Field != "" || ve.Message != "" {
		return []FieldIssue{{Field: ve.Field, Message: ve.Message}}
	}
	return nil
}
