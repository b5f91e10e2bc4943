// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalizer turns a validated models.RawEntry into a canonical
// models.Account.
//
// Normalize must only be called after the entry validator accepted the entry.
// Anything that still fails here is an ErrInternalInconsistency: a bug in the
// calling layer, never something the user can fix.
package normalizer

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-otp-keeper/internal/validators"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// ErrInternalInconsistency marks failures that indicate a bug in the caller,
// such as an enum selection outside the known set.
var ErrInternalInconsistency = errors.New("internal inconsistency")

// Normalize builds the canonical account for raw.
//
// Label, issuer and secret are passed through unchanged. Numeric fields are
// parsed with validators.ParseNumber; empty fields take the defaults from
// models. The type and algorithm selections must be valid enum members.
func Normalize(raw models.RawEntry) (models.Account, error) {
	if !raw.Type.Valid() {
		return models.Account{}, fmt.Errorf("%w: otp type %s", ErrInternalInconsistency, raw.Type)
	}
	if !raw.Algorithm.Valid() {
		return models.Account{}, fmt.Errorf("%w: algorithm %s", ErrInternalInconsistency, raw.Algorithm)
	}

	digits, err := validators.ParseNumber(raw.Digits, models.DefaultDigits)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: digits %q: %v", ErrInternalInconsistency, raw.Digits, err)
	}
	period, err := validators.ParseNumber(raw.Period, models.DefaultPeriod)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: period %q: %v", ErrInternalInconsistency, raw.Period, err)
	}
	counter, err := validators.ParseNumber(raw.Counter, models.DefaultCounter)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: counter %q: %v", ErrInternalInconsistency, raw.Counter, err)
	}

	return models.Account{
		Label:     raw.Label,
		Issuer:    raw.Issuer,
		Secret:    raw.Secret,
		Digits:    int(digits),
		Period:    int(period),
		Counter:   counter,
		Type:      raw.Type,
		Algorithm: raw.Algorithm,
	}, nil
}
