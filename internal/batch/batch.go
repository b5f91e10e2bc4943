// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package batch reads the YAML document the importer takes as input and turns
// it into raw form submissions.
//
//	entries:
//	  - label: GitHub
//	    issuer: GitHub
//	    secret: JBSWY3DPEHPK3PXP
//	    digits: 6
//	    period: 30
//	    type: TOTP
//	    algorithm: SHA1
//
// Numeric fields are kept as typed text so the entry validator sees exactly
// what the user wrote. A missing type or algorithm selects the form defaults
// (TOTP, SHA1); an unknown one is an error.
package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// ErrInvalidBatch is returned for documents that cannot be decoded or carry
// an unknown selection.
var ErrInvalidBatch = errors.New("invalid batch document")

type document struct {
	Entries []entry `yaml:"entries"`
}

type entry struct {
	Label     string `yaml:"label"`
	Issuer    string `yaml:"issuer"`
	Secret    string `yaml:"secret"`
	Digits    string `yaml:"digits"`
	Period    string `yaml:"period"`
	Counter   string `yaml:"counter"`
	Type      string `yaml:"type"`
	Algorithm string `yaml:"algorithm"`
}

// Read decodes a batch document into raw entries, in document order.
func Read(r io.Reader) ([]models.RawEntry, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	out := make([]models.RawEntry, 0, len(doc.Entries))
	for i, e := range doc.Entries {
		raw, err := e.toRaw()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidBatch, i, err)
		}
		out = append(out, raw)
	}

	return out, nil
}

func (e entry) toRaw() (models.RawEntry, error) {
	otpType := models.TOTP
	if e.Type != "" {
		t, err := models.ParseOTPType(e.Type)
		if err != nil {
			return models.RawEntry{}, err
		}
		otpType = t
	}

	algo := models.SHA1
	if e.Algorithm != "" {
		a, err := models.ParseAlgorithm(e.Algorithm)
		if err != nil {
			return models.RawEntry{}, err
		}
		algo = a
	}

	return models.RawEntry{
		Label:     e.Label,
		Issuer:    e.Issuer,
		Secret:    e.Secret,
		Digits:    e.Digits,
		Period:    e.Period,
		Counter:   e.Counter,
		Type:      otpType,
		Algorithm: algo,
	}, nil
}
