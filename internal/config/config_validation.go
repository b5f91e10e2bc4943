// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Import.InputFile == "" {
		return fmt.Errorf("%w: input file is required", ErrInvalidImportConfigs)
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return fmt.Errorf("%w: locale %q", ErrInvalidAppConfigs, cfg.App.Locale)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Workers.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d", ErrInvalidWorkerConfigs, cfg.Workers.Concurrency)
	}

	return nil
}
