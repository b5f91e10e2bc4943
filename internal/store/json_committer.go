// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type jsonCommitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONCommitter returns a Committer writing each commit to w as an
// indented JSON array of accounts. It logs through the logger carried by the
// commit context (see logger.FromContext).
func NewJSONCommitter(w io.Writer) Committer {
	return &jsonCommitter{w: w}
}

func (c *jsonCommitter) Commit(ctx context.Context, accounts []models.Account) error {
	log := logger.FromContext(ctx)

	if accounts == nil {
		accounts = []models.Account{}
	}

	payload, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		log.Err(err).
			Str("func", "jsonCommitter.Commit").
			Int("accounts", len(accounts)).
			Msg("failed to encode accounts")
		return fmt.Errorf("%w: %w", ErrEncodingAccounts, err)
	}
	payload = append(payload, '\n')

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err = c.w.Write(payload); err != nil {
		log.Err(err).
			Str("func", "jsonCommitter.Commit").
			Msg("failed to write accounts")
		return fmt.Errorf("%w: %w", ErrWritingAccounts, err)
	}

	log.Debug().
		Str("func", "jsonCommitter.Commit").
		Int("accounts", len(accounts)).
		Msg("accounts committed")

	return nil
}

// LoadAccounts reads a document written by a JSONCommitter.
func LoadAccounts(r io.Reader) ([]models.Account, error) {
	var accounts []models.Account
	if err := json.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingAccounts, err)
	}

	return accounts, nil
}
