// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Locale  string `json:"locale"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Import struct {
		InputFile  string `json:"input_file"`
		OutputFile string `json:"output_file"`
		KnownFile  string `json:"known_file"`
	} `json:"import,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Locale:  jsonCfg.App.Locale,
			Version: jsonCfg.App.Version,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Import: Import{
			InputFile:  jsonCfg.Import.InputFile,
			OutputFile: jsonCfg.Import.OutputFile,
			KnownFile:  jsonCfg.Import.KnownFile,
		},
		Workers: Workers{
			Concurrency: jsonCfg.Workers.Concurrency,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
