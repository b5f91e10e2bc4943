// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-i input YAML batch file
//	-o output JSON file (stdout when empty)
//	-k previously exported JSON file whose accounts are already known
//	-l message locale (e.g. "en", "de")
//	-log-level zerolog level
//	-w number of entries prepared concurrently
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var inputFile, outputFile, knownFile string
	var locale, logLevel string
	var concurrency int
	var jsonConfigPath string

	fs := flag.NewFlagSet("otp-import", flag.ContinueOnError)
	fs.StringVar(&inputFile, "i", "", "Input YAML batch file")
	fs.StringVar(&outputFile, "o", "", "Output JSON file (default stdout)")
	fs.StringVar(&knownFile, "k", "", "JSON file with already stored accounts")
	fs.StringVar(&locale, "l", "", "Message locale (e.g. en, de)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&concurrency, "w", 0, "Entries prepared concurrently")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale: locale,
		},
		Log: Log{
			Level: logLevel,
		},
		Import: Import{
			InputFile:  inputFile,
			OutputFile: outputFile,
			KnownFile:  knownFile,
		},
		Workers: Workers{
			Concurrency: concurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
