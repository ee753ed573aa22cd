/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDuplicateKeyError(t *testing.T) {
	err := NewDuplicateKeyError("Currency", "USD")

	// Test error message
	expected := `Currency: duplicate primary key "USD"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrDuplicateKey) {
		t.Error("DuplicateKeyError should match ErrDuplicateKey")
	}

	// Test helper function
	if !IsDuplicateKey(err) {
		t.Error("IsDuplicateKey should return true for DuplicateKeyError")
	}
}

func TestDuplicateSecondaryKeyError(t *testing.T) {
	err := NewDuplicateSecondaryKeyError("Currency", "symbol", "$")

	expected := `Currency: duplicate value "$" for unique attribute "symbol"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsDuplicateSecondaryKey(err) {
		t.Error("IsDuplicateSecondaryKey should return true for DuplicateSecondaryKeyError")
	}
	if IsDuplicateKey(err) {
		t.Error("DuplicateSecondaryKeyError should not match ErrDuplicateKey")
	}
}

func TestMemberDoesNotExistError(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		value    any
		expected string
	}{
		{
			name:     "primary key",
			value:    int64(2),
			expected: "Door with key 2 does not exist",
		},
		{
			name:     "unique attribute",
			attr:     "symbol",
			value:    "¤",
			expected: `Door with symbol "¤" does not exist`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMemberDoesNotExistError("Door", tt.attr, tt.value)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsMemberDoesNotExist(err) {
				t.Error("IsMemberDoesNotExist should return true for MemberDoesNotExistError")
			}
		})
	}
}

func TestNotUniqueErrorMatchesUnknownAttribute(t *testing.T) {
	err := NewNotUniqueError("Currency", "name")

	if !IsNotUnique(err) {
		t.Error("NotUniqueError should match ErrNotUnique")
	}
	if !IsUnknownAttribute(err) {
		t.Error("NotUniqueError should match ErrUnknownAttribute")
	}
}

func TestMissingAttributeError(t *testing.T) {
	err := NewMissingAttributeError("Currency", "name", "plural_name")

	expected := "Currency: missing attributes: name, plural_name"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	var missing *MissingAttributeError
	if !errors.As(err, &missing) || len(missing.Attrs) != 2 {
		t.Errorf("Expected MissingAttributeError with two attributes, got %#v", err)
	}
}

func TestUsageAndConfigurationErrors(t *testing.T) {
	if got := NewUsageError("get", "exactly one lookup key is required").Error(); got != "get: exactly one lookup key is required" {
		t.Errorf("unexpected usage message %q", got)
	}
	if got := NewConfigurationError("", "type name is empty").Error(); got != "configuration error: type name is empty" {
		t.Errorf("unexpected configuration message %q", got)
	}
	if !IsConfiguration(NewConfigurationError("Currency", "duplicate attribute")) {
		t.Error("IsConfiguration should return true for ConfigurationError")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewInvalidKeyError("Door", 1.5, "unsupported key type float64")
	wrapped := fmt.Errorf("loading doors: %w", original)

	if !errors.Is(wrapped, ErrInvalidKey) {
		t.Error("Wrapped InvalidKeyError should still match ErrInvalidKey")
	}

	if !IsInvalidKey(wrapped) {
		t.Error("IsInvalidKey should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrDuplicateKey,
		ErrDuplicateSecondaryKey,
		ErrUnknownAttribute,
		ErrNotUnique,
		ErrMissingAttribute,
		ErrMemberDoesNotExist,
		ErrInvalidKey,
		ErrInvalidValue,
		ErrUsage,
		ErrConfiguration,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
