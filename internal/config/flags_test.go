// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-i", "in.yaml",
		"-o", "out.json",
		"-k", "known.json",
		"-l", "de",
		"-log-level", "warn",
		"-w", "3",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App:          App{Locale: "de"},
		Log:          Log{Level: "warn"},
		Import:       Import{InputFile: "in.yaml", OutputFile: "out.json", KnownFile: "known.json"},
		Workers:      Workers{Concurrency: 3},
		JSONFilePath: "cfg.json",
	}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadValue(t *testing.T) {
	_, err := ParseFlags([]string{"-w", "several"})
	require.Error(t, err)
}

// ParseFlags uses its own FlagSet, so repeated calls must not panic with
// "flag redefined".
func TestParseFlags_Repeatable(t *testing.T) {
	for i := 0; i < 2; i++ {
		_, err := ParseFlags([]string{"-i", "x.yaml"})
		require.NoError(t, err)
	}
}
