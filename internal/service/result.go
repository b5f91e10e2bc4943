// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-otp-keeper/internal/diagnostics"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// Result is the outcome of one submission.
type Result struct {
	// Accepted is false when validation rejected the entry.
	Accepted bool

	// Outcome, Fingerprint and Account are set only when Accepted.
	Outcome     models.AcceptOutcome
	Fingerprint models.Fingerprint
	Account     models.Account

	// Message is the error for a rejection or the notice for a skipped
	// duplicate. It is the zero Message for an added entry.
	Message diagnostics.Message
}

// HasMessage reports whether r carries text for the user.
func (r Result) HasMessage() bool {
	return r.Message.Text != ""
}
