// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collector accumulates accepted accounts of one editing session.
//
// A WorkingSet is created when a batch "add accounts" session starts, filled
// by Accept, and handed to the persistence layer on commit. Accept and DrainN
// are the only mutating operations; each runs under one lock, so a
// WorkingSet may be shared by goroutines.
package collector

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-otp-keeper/internal/fingerprint"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// WorkingSet is an ordered list of accepted accounts plus the set of
// fingerprints seen so far in the session.
type WorkingSet struct {
	id string

	mu           sync.Mutex
	seen         map[models.Fingerprint]struct{}
	records      []models.Account
	fingerprints []models.Fingerprint
}

// NewWorkingSet starts a session. Fingerprints passed in seen are treated as
// already present (e.g. accounts stored in the database) so matching
// submissions are skipped as duplicates; they do not count as records.
func NewWorkingSet(seen ...models.Fingerprint) *WorkingSet {
	w := &WorkingSet{
		id:   newSessionID(),
		seen: make(map[models.Fingerprint]struct{}, len(seen)),
	}
	for _, fp := range seen {
		w.seen[fp] = struct{}{}
	}
	return w
}

// ID returns the session identifier, used for log correlation.
func (w *WorkingSet) ID() string {
	return w.id
}

// Accept fingerprints acc and adds it unless the fingerprint was seen.
func (w *WorkingSet) Accept(acc models.Account) (models.AcceptOutcome, models.Fingerprint) {
	fp := fingerprint.Of(acc)
	return w.AcceptWithFingerprint(acc, fp), fp
}

// AcceptWithFingerprint is Accept for callers that already computed fp
// with fingerprint.Of.
func (w *WorkingSet) AcceptWithFingerprint(acc models.Account, fp models.Fingerprint) models.AcceptOutcome {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.seen[fp]; ok {
		return models.DuplicateSkipped
	}

	w.seen[fp] = struct{}{}
	w.records = append(w.records, acc)
	w.fingerprints = append(w.fingerprints, fp)

	return models.Added
}

// IsDuplicate reports whether fp has already been seen in this session.
func (w *WorkingSet) IsDuplicate(fp models.Fingerprint) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.seen[fp]
	return ok
}

// Len returns the number of accepted records.
func (w *WorkingSet) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.records)
}

// Records returns a copy of the accepted records in submission order.
func (w *WorkingSet) Records() []models.Account {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.Account, len(w.records))
	copy(out, w.records)
	return out
}

// Fingerprints returns the fingerprints of the accepted records, index-aligned
// with Records.
func (w *WorkingSet) Fingerprints() []models.Fingerprint {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.Fingerprint, len(w.fingerprints))
	copy(out, w.fingerprints)
	return out
}

// DrainN removes the first n accepted records and returns them. n is clamped
// to Len. Records accepted after the first n stay in the set, so a commit of
// an earlier Records snapshot never drops later submissions.
// Fingerprints of drained records stay in the seen-set: once committed they
// are persisted, and re-submitting them must still be reported as duplicate.
func (w *WorkingSet) DrainN(n int) []models.Account {
	w.mu.Lock()
	defer w.mu.Unlock()

	n = max(0, min(n, len(w.records)))

	out := make([]models.Account, n)
	copy(out, w.records[:n])

	w.records = append([]models.Account(nil), w.records[n:]...)
	w.fingerprints = append([]models.Fingerprint(nil), w.fingerprints[n:]...)

	return out
}

func newSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
