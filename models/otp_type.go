// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOTPType is returned when a selection does not name a known OTP type.
	ErrUnknownOTPType = errors.New("unknown otp type")

	// ErrUnknownAlgorithm is returned when a selection does not name a known hash algorithm.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// OTPType identifies the one-time-password scheme of an account.
// The zero value is never a valid selection.
type OTPType int

const (
	OTPTypeUnknown OTPType = iota

	// TOTP is the time-based scheme (RFC 6238).
	TOTP

	// HOTP is the counter-based scheme (RFC 4226).
	HOTP

	// Steam is the Steam Guard flavour of TOTP.
	Steam
)

var otpTypeNames = map[OTPType]string{
	TOTP:  "TOTP",
	HOTP:  "HOTP",
	Steam: "Steam",
}

// ParseOTPType resolves the text shown by a type selector into an OTPType.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseOTPType(s string) (OTPType, error) {
	for t, name := range otpTypeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return t, nil
		}
	}
	return OTPTypeUnknown, fmt.Errorf("%w: %q", ErrUnknownOTPType, s)
}

// Valid reports whether t is one of the known OTP types.
func (t OTPType) Valid() bool {
	_, ok := otpTypeNames[t]
	return ok
}

func (t OTPType) String() string {
	if name, ok := otpTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OTPType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t OTPType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOTPType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *OTPType) UnmarshalText(b []byte) error {
	v, err := ParseOTPType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Algorithm identifies the HMAC hash function of an account.
// The zero value is never a valid selection.
type Algorithm int

const (
	AlgorithmUnknown Algorithm = iota
	SHA1
	SHA256
	SHA512
)

var algorithmNames = map[Algorithm]string{
	SHA1:   "SHA1",
	SHA256: "SHA256",
	SHA512: "SHA512",
}

// ParseAlgorithm resolves the text shown by an algorithm selector.
// "SHA-256" and "sha256" are both accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	for a, name := range algorithmNames {
		if strings.EqualFold(norm, name) {
			return a, nil
		}
	}
	return AlgorithmUnknown, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
