// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-otp-keeper importer. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the message locale.
	App App `envPrefix:"APP_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Import holds the files the importer reads and writes.
	Import Import `envPrefix:"IMPORT_"`

	// Workers holds settings for concurrent batch preparation.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the OTP_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Locale is the BCP 47 language tag used for user-facing messages
	// (e.g. "en", "de").
	// Env: OTP_APP_LOCALE
	Locale string `env:"LOCALE"`

	// Version is the semantic version string of the running application.
	// Env: OTP_APP_VERSION
	Version string `env:"VERSION"`
}

// Log holds logging configuration.
type Log struct {
	// Level is the minimal zerolog level ("debug", "info", "warn", ...).
	// Env: OTP_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Import holds the input and output locations of one import run.
type Import struct {
	// InputFile is the YAML batch of account entries to submit. Required.
	// Env: OTP_IMPORT_INPUT_FILE
	InputFile string `env:"INPUT_FILE"`

	// OutputFile receives the committed accounts as JSON. Empty means stdout.
	// Env: OTP_IMPORT_OUTPUT_FILE
	OutputFile string `env:"OUTPUT_FILE"`

	// KnownFile is an optional JSON document from a previous run; its
	// accounts seed the working set so they are reported as duplicates.
	// Env: OTP_IMPORT_KNOWN_FILE
	KnownFile string `env:"KNOWN_FILE"`
}

// Workers holds configuration for concurrent batch preparation.
type Workers struct {
	// Concurrency bounds how many entries are validated and normalized at
	// once. Must be positive.
	// Env: OTP_WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Defaults applied before any other source.
const (
	DefaultLocale      = "en"
	DefaultLogLevel    = "info"
	DefaultConcurrency = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Locale: DefaultLocale},
		Log:     Log{Level: DefaultLogLevel},
		Workers: Workers{Concurrency: DefaultConcurrency},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
