// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidImportConfigs indicates missing import settings
	// (for example, no input file).
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a malformed locale).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker settings
	// (for example, non-positive concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
