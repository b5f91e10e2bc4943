// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Defaults applied when a numeric field of a RawEntry is left empty.
const (
	DefaultDigits  = 6
	DefaultPeriod  = 30
	DefaultCounter = 0
)

// RawEntry is one submission of the "add account" form exactly as the user
// typed it. Numeric fields are kept as text; the selections are already typed.
//
// A RawEntry lives for one submission attempt and is owned by the caller.
type RawEntry struct {
	Label   string
	Issuer  string
	Secret  string
	Digits  string
	Period  string
	Counter string

	Type      OTPType
	Algorithm Algorithm
}

// Account is the canonical, validated representation of one OTP account.
//
// Accounts are produced by the normalizer only, so every field satisfies the
// validation rules. Treat values as immutable: the collector hands out copies.
type Account struct {
	Label     string    `json:"label"`
	Issuer    string    `json:"issuer"`
	Secret    string    `json:"secret"`
	Digits    int       `json:"digits"`
	Period    int       `json:"period"`
	Counter   int64     `json:"counter"`
	Type      OTPType   `json:"type"`
	Algorithm Algorithm `json:"algo"`
}

// Fingerprint is the 32-bit content hash used to detect duplicate accounts.
type Fingerprint uint32

func (f Fingerprint) String() string {
	return fmt.Sprintf("%08x", uint32(f))
}

// AcceptOutcome reports what the collector did with a submitted account.
type AcceptOutcome int

const (
	// Added means the account was appended to the working set.
	Added AcceptOutcome = iota + 1

	// DuplicateSkipped means an account with the same fingerprint was
	// already present; the working set was left untouched.
	DuplicateSkipped
)

func (o AcceptOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case DuplicateSkipped:
		return "duplicate_skipped"
	default:
		return "unknown"
	}
}
