// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service drives one "add accounts" session: each submitted entry is
// validated, normalized, fingerprinted and collected, and the collected
// accounts are handed to a store.Committer at the end.
package service

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/internal/collector"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// EntryService submits raw form entries into a working set.
//
// A rejected entry is not an error: it is reported through Result.Message and
// leaves the working set untouched. Only internal inconsistencies (see
// normalizer.ErrInternalInconsistency) and commit failures are returned as
// errors.
type EntryService interface {
	Submit(ctx context.Context, ws *collector.WorkingSet, raw models.RawEntry) (Result, error)

	// SubmitBatch submits raws in order. Preparation runs concurrently;
	// accepting is serial, so duplicates inside the batch resolve to the
	// first occurrence.
	SubmitBatch(ctx context.Context, ws *collector.WorkingSet, raws []models.RawEntry) ([]Result, error)

	// Commit hands the accepted accounts to the committer and removes the
	// committed ones from ws. Entries accepted while the committer runs stay
	// in ws. Two commits of the same ws must not run concurrently.
	Commit(ctx context.Context, ws *collector.WorkingSet) error
}
