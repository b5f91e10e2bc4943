// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// Rule name constants used to select which checks Validate runs.
// When no rule is passed, all of them run in the order below and the
// first failure is returned.
const (
	// FieldRequired requires non-empty label and secret.
	FieldRequired = "required"

	// FieldASCII requires label and issuer to be pure ASCII.
	FieldASCII = "ascii"

	// FieldSecret requires the secret to be ASCII alphanumeric.
	FieldSecret = "secret"

	// FieldDigits requires 4 <= digits <= 10.
	FieldDigits = "digits"

	// FieldPeriod requires 10 <= period <= 120.
	FieldPeriod = "period"

	// FieldCounter requires 0 <= counter < math.MaxInt64.
	FieldCounter = "counter"
)

// Numeric bounds enforced by the entry validator.
const (
	MinDigits  = 4
	MaxDigits  = 10
	MinPeriod  = 10
	MaxPeriod  = 120
	MinCounter = 0
	MaxCounter = math.MaxInt64 - 1
)

var defaultEntryFields = []string{FieldRequired, FieldASCII, FieldSecret, FieldDigits, FieldPeriod, FieldCounter}

// EntryValidator implements Validator for models.RawEntry.
//
// Empty numeric fields are accepted: they stand for the default value
// (see models.DefaultDigits and friends) and the normalizer fills it in.
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator
// and returns it as the Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate checks a models.RawEntry (value or pointer).
// Returns ErrUnsupportedType for anything else and ErrUnknownField for an
// unknown rule name. Rule failures are returned as *ValidationError.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RawEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.RawEntry:
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.RawEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultEntryFields
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if entry.Label == "" {
				return newValidationError(ErrEmptyRequiredField, "label", entry.Label)
			}
			if entry.Secret == "" {
				return newValidationError(ErrEmptyRequiredField, "secret", entry.Label)
			}
		case FieldASCII:
			if !IsASCII(entry.Label) {
				return newValidationError(ErrNonASCIIField, "label", entry.Label)
			}
			if !IsASCII(entry.Issuer) {
				return newValidationError(ErrNonASCIIField, "issuer", entry.Label)
			}
		case FieldSecret:
			if !IsAlphanumeric(entry.Secret) {
				return newValidationError(ErrInvalidSecretCharset, "secret", entry.Label)
			}
		case FieldDigits:
			if !inRange(entry.Digits, models.DefaultDigits, MinDigits, MaxDigits) {
				return newValidationError(ErrDigitsOutOfRange, "digits", entry.Label)
			}
		case FieldPeriod:
			if !inRange(entry.Period, models.DefaultPeriod, MinPeriod, MaxPeriod) {
				return newValidationError(ErrPeriodOutOfRange, "period", entry.Label)
			}
		case FieldCounter:
			if !inRange(entry.Counter, models.DefaultCounter, MinCounter, MaxCounter) {
				return newValidationError(ErrCounterOutOfRange, "counter", entry.Label)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// inRange parses s with ParseNumber and checks lo <= v <= hi.
func inRange(s string, def, lo, hi int64) bool {
	n, err := ParseNumber(s, def)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}
