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
	// ErrDuplicateKey is returned when a primary key is already registered for a type
	ErrDuplicateKey = errors.New("duplicate primary key")

	// ErrDuplicateSecondaryKey is returned when a value of a unique attribute is already registered
	ErrDuplicateSecondaryKey = errors.New("duplicate unique attribute value")

	// ErrUnknownAttribute is returned for attribute names the type does not declare
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNotUnique is returned when a lookup filters on an attribute that is not unique
	ErrNotUnique = errors.New("attribute is not unique")

	// ErrMissingAttribute is returned when a required attribute is not supplied
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrMemberDoesNotExist is returned when a lookup has no match and no default
	ErrMemberDoesNotExist = errors.New("member does not exist")

	// ErrInvalidKey is returned when a primary key has an unsupported type or kind
	ErrInvalidKey = errors.New("invalid primary key")

	// ErrInvalidValue is returned when an attribute value is rejected
	ErrInvalidValue = errors.New("invalid attribute value")

	// ErrUsage is returned for malformed or ambiguous calls
	ErrUsage = errors.New("invalid usage")

	// ErrConfiguration is returned when an enumeration type is declared incorrectly
	ErrConfiguration = errors.New("invalid enumeration configuration")
)

// DuplicateKeyError reports a primary key that is already taken
type DuplicateKeyError struct {
	Type string
	Key  any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate primary key %s", e.Type, quote(e.Key))
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// DuplicateSecondaryKeyError reports a unique attribute value that is already taken
type DuplicateSecondaryKeyError struct {
	Type  string
	Attr  string
	Value any
}

func (e *DuplicateSecondaryKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate value %s for unique attribute %q", e.Type, quote(e.Value), e.Attr)
}

func (e *DuplicateSecondaryKeyError) Is(target error) bool {
	return target == ErrDuplicateSecondaryKey
}

// UnknownAttributeError reports an attribute name the type does not declare
type UnknownAttributeError struct {
	Type string
	Attr string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s: unknown attribute %q", e.Type, e.Attr)
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// NotUniqueError reports a lookup on a declared attribute that has no unique index.
// It matches both ErrNotUnique and ErrUnknownAttribute.
type NotUniqueError struct {
	Type string
	Attr string
}

func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("%s: attribute %q is not unique and cannot be used for lookup", e.Type, e.Attr)
}

func (e *NotUniqueError) Is(target error) bool {
	return target == ErrNotUnique || target == ErrUnknownAttribute
}

// MissingAttributeError lists required attributes that were not supplied
type MissingAttributeError struct {
	Type  string
	Attrs []string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: missing attributes: %s", e.Type, strings.Join(e.Attrs, ", "))
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// MemberDoesNotExistError reports a lookup without a match.
// Attr is empty for primary key lookups.
type MemberDoesNotExistError struct {
	Type  string
	Attr  string
	Value any
}

func (e *MemberDoesNotExistError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s with %s %s does not exist", e.Type, e.Attr, quote(e.Value))
	}
	return fmt.Sprintf("%s with key %s does not exist", e.Type, quote(e.Value))
}

func (e *MemberDoesNotExistError) Is(target error) bool {
	return target == ErrMemberDoesNotExist
}

// InvalidKeyError reports a primary key that cannot be used with a type
type InvalidKeyError struct {
	Type   string
	Key    any
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s: invalid primary key %s: %s", e.Type, quote(e.Key), e.Reason)
}

func (e *InvalidKeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// InvalidValueError reports an attribute value that was rejected
type InvalidValueError struct {
	Type   string
	Attr   string
	Value  any
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %s for attribute %q: %s", e.Type, quote(e.Value), e.Attr, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// UsageError represents a malformed or ambiguous call
type UsageError struct {
	Op      string
	Message string
}

func (e *UsageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// ConfigurationError represents an invalid enumeration type declaration
type ConfigurationError struct {
	Type    string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func quote(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// Helper functions for creating errors

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(typeName string, key any) error {
	return &DuplicateKeyError{Type: typeName, Key: key}
}

// NewDuplicateSecondaryKeyError creates a new DuplicateSecondaryKeyError
func NewDuplicateSecondaryKeyError(typeName, attr string, value any) error {
	return &DuplicateSecondaryKeyError{Type: typeName, Attr: attr, Value: value}
}

// NewUnknownAttributeError creates a new UnknownAttributeError
func NewUnknownAttributeError(typeName, attr string) error {
	return &UnknownAttributeError{Type: typeName, Attr: attr}
}

// NewNotUniqueError creates a new NotUniqueError
func NewNotUniqueError(typeName, attr string) error {
	return &NotUniqueError{Type: typeName, Attr: attr}
}

// NewMissingAttributeError creates a new MissingAttributeError
func NewMissingAttributeError(typeName string, attrs ...string) error {
	return &MissingAttributeError{Type: typeName, Attrs: attrs}
}

// NewMemberDoesNotExistError creates a new MemberDoesNotExistError
func NewMemberDoesNotExistError(typeName, attr string, value any) error {
	return &MemberDoesNotExistError{Type: typeName, Attr: attr, Value: value}
}

// NewInvalidKeyError creates a new InvalidKeyError
func NewInvalidKeyError(typeName string, key any, reason string) error {
	return &InvalidKeyError{Type: typeName, Key: key, Reason: reason}
}

// NewInvalidValueError creates a new InvalidValueError
func NewInvalidValueError(typeName, attr string, value any, reason string) error {
	return &InvalidValueError{Type: typeName, Attr: attr, Value: value, Reason: reason}
}

// NewUsageError creates a new UsageError
func NewUsageError(op, message string) error {
	return &UsageError{Op: op, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(typeName, message string) error {
	return &ConfigurationError{Type: typeName, Message: message}
}

// IsDuplicateKey checks if an error is a duplicate primary key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsDuplicateSecondaryKey checks if an error is a duplicate unique attribute error
func IsDuplicateSecondaryKey(err error) bool {
	return errors.Is(err, ErrDuplicateSecondaryKey)
}

// IsUnknownAttribute checks if an error is an unknown attribute error
func IsUnknownAttribute(err error) bool {
	return errors.Is(err, ErrUnknownAttribute)
}

// IsNotUnique checks if an error is a not unique error
func IsNotUnique(err error) bool {
	return errors.Is(err, ErrNotUnique)
}

// IsMissingAttribute checks if an error is a missing attribute error
func IsMissingAttribute(err error) bool {
	return errors.Is(err, ErrMissingAttribute)
}

// IsMemberDoesNotExist checks if an error is a member does not exist error
func IsMemberDoesNotExist(err error) bool {
	return errors.Is(err, ErrMemberDoesNotExist)
}

// IsInvalidKey checks if an error is an invalid key error
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsInvalidValue checks if an error is an invalid value error
func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsUsage checks if an error is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
