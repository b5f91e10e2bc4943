// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strconv"
)

// errNotDecimal is returned by ParseNumber for text with non-digit characters.
var errNotDecimal = errors.New("not a decimal number")

// IsDecimal reports whether s consists only of ASCII digits.
// The empty string is decimal.
func IsDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsASCII reports whether every byte of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether s contains only ASCII letters and digits.
func IsAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// ParseNumber parses a decimal numeric field. An empty field yields def.
// Values that do not fit into int64 are reported as strconv range errors.
func ParseNumber(s string, def int64) (int64, error) {
	if s == "" {
		return def, nil
	}
	if !IsDecimal(s) {
		return 0, errNotDecimal
	}
	return strconv.ParseInt(s, 10, 64)
}
