// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOTPType(t *testing.T) {
	tests := []struct {
		in   string
		want OTPType
	}{
		{"TOTP", TOTP},
		{"totp", TOTP},
		{" HOTP ", HOTP},
		{"steam", Steam},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOTPType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		got, err := ParseOTPType("MOTP")
		require.ErrorIs(t, err, ErrUnknownOTPType)
		assert.Equal(t, OTPTypeUnknown, got)
	})
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"SHA1", SHA1},
		{"sha256", SHA256},
		{"SHA-512", SHA512},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseAlgorithm("MD5")
		require.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

func TestEnumValidity(t *testing.T) {
	assert.False(t, OTPTypeUnknown.Valid())
	assert.True(t, HOTP.Valid())
	assert.False(t, OTPType(42).Valid())
	assert.Equal(t, "OTPType(42)", OTPType(42).String())

	assert.False(t, AlgorithmUnknown.Valid())
	assert.True(t, SHA512.Valid())
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}

func TestAccount_JSONUsesEnumNames(t *testing.T) {
	acc := Account{Label: "GitHub", Digits: 6, Period: 30, Type: TOTP, Algorithm: SHA256}

	b, err := json.Marshal(acc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"type":"TOTP"`)
	assert.Contains(t, string(b), `"algo":"SHA256"`)

	var back Account
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, acc, back)
}

func TestAccount_JSONRejectsUnknownEnum(t *testing.T) {
	_, err := json.Marshal(Account{Type: OTPTypeUnknown, Algorithm: SHA1})
	require.Error(t, err)

	var acc Account
	err = json.Unmarshal([]byte(`{"type":"MOTP","algo":"SHA1"}`), &acc)
	require.ErrorIs(t, err, ErrUnknownOTPType)
}

func TestFingerprint_String(t *testing.T) {
	assert.Equal(t, "0000002a", Fingerprint(42).String())
	assert.Equal(t, "deadbeef", Fingerprint(0xdeadbeef).String())
}

func TestAcceptOutcome_String(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "duplicate_skipped", DuplicateSkipped.String())
	assert.Equal(t, "unknown", AcceptOutcome(0).String())
}
