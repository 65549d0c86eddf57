/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("product", "product|p#42")

	expected := `product with key "product|p#42" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("user", "user|user#abc")

	expected := `user with key "user|user#abc" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "with field",
			err:      NewValidationError("img", "must be a URL"),
			expected: `validation failed for field "img": must be a URL`,
		},
		{
			name:     "without field",
			err:      NewValidationError("", "body is not valid JSON"),
			expected: "validation failed: body is not valid JSON",
		},
		{
			name: "kind with issues",
			err: NewEntityValidationError("product",
				FieldIssue{Field: "name", Message: "name in body is required"},
				FieldIssue{Field: "price", Message: "price in body should be less than or equal to 1e+06"},
			),
			expected: "validation failed for product: name: name in body is required; price: price in body should be less than or equal to 1e+06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}

			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(tt.err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestIssues(t *testing.T) {
	single := NewEntityValidationError("cart", FieldIssue{Field: "amount", Message: "too large"})
	issues := Issues(fmt.Errorf("upsert: %w", single))
	if len(issues) != 1 || issues[0].Field != "amount" {
		t.Fatalf("unexpected issues %+v", issues)
	}

	plain := NewValidationError("userId", "bad format")
	issues = Issues(plain)
	if len(issues) != 1 || issues[0].Field != "userId" {
		t.Fatalf("unexpected issues %+v", issues)
	}

	if Issues(ErrNotFound) != nil {
		t.Error("Issues should be nil for non-validation errors")
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("put", "must-exist")

	expected := "condition check failed for put operation: must-exist"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestMalformedKeyError(t *testing.T) {
	err := NewMalformedKeyError("cart", "product#12", "missing #user# segment")

	expected := `malformed cart key "product#12": missing #user# segment`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsMalformedKey(err) {
		t.Error("IsMalformedKey should return true for MalformedKeyError")
	}
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreUnavailableError("query", cause)

	if !IsStoreUnavailable(err) {
		t.Error("IsStoreUnavailable should return true for StoreUnavailableError")
	}

	if !errors.Is(err, cause) {
		t.Error("StoreUnavailableError should unwrap to its cause")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("user", "123")
	wrapped := fmt.Errorf("database operation failed: %w", original)

	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Wrapped NotFoundError should still match ErrNotFound")
	}

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrMalformedKey,
		ErrStoreUnavailable,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
