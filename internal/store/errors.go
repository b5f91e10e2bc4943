// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the hand-off helpers. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEncodingAccounts is returned when accounts cannot be serialized,
	// e.g. because one carries an unknown enum value.
	ErrEncodingAccounts = errors.New("error encoding accounts")

	// ErrWritingAccounts is returned when the destination writer fails.
	ErrWritingAccounts = errors.New("error writing accounts")

	// ErrDecodingAccounts is returned when a hand-off document is malformed.
	ErrDecodingAccounts = errors.New("error decoding accounts")
)
