// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Validation kinds. Every *ValidationError wraps exactly one of them.
var (
	ErrEmptyRequiredField   = errors.New("label and secret are required")
	ErrNonASCIIField        = errors.New("only ASCII characters are supported")
	ErrInvalidSecretCharset = errors.New("secret must contain only english letters and digits")
	ErrDigitsOutOfRange     = errors.New("digits must be a number between 4 and 10")
	ErrPeriodOutOfRange     = errors.New("period must be a number between 10 and 120")
	ErrCounterOutOfRange    = errors.New("counter must be a number between 0 and 9223372036854775806")
)

// ValidationError describes which field of an entry failed and why.
type ValidationError struct {
	// Kind is one of the Err* validation kinds above.
	Kind error

	// Field is the name of the offending input field ("label", "secret", ...).
	Field string

	// Label is the label of the entry being validated; may be empty.
	Label string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(kind error, field, label string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Label: label}
}
