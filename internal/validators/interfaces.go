// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-supplied account fields before they are
// turned into canonical records.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional rule-level scoping for targeted validation.
//   - ValidationError: the recoverable, user-correctable failure returned by
//     every rule. It wraps one of the Err* kind sentinels.
//
// Validators are pure: they never mutate their input and never touch a
// working set.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named rules.
	Validate(context.Context, any, ...string) error
}
