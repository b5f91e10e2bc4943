// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package collector

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-otp-keeper/internal/fingerprint"
	"github.com/MKhiriev/go-otp-keeper/models"
)

func account(label string) models.Account {
	return models.Account{
		Label:     label,
		Issuer:    "Example",
		Secret:    "JBSWY3DPEHPK3PXP",
		Digits:    6,
		Period:    30,
		Type:      models.TOTP,
		Algorithm: models.SHA1,
	}
}

func TestNewWorkingSet_Empty(t *testing.T) {
	ws := NewWorkingSet()

	assert.Equal(t, 0, ws.Len())
	assert.Empty(t, ws.Records())
	assert.Empty(t, ws.Fingerprints())

	_, err := uuid.Parse(ws.ID())
	require.NoError(t, err)
	assert.NotEqual(t, ws.ID(), NewWorkingSet().ID())
}

func TestAccept_AddsThenSkipsDuplicate(t *testing.T) {
	ws := NewWorkingSet()

	outcome, fp := ws.Accept(account("GitHub"))
	assert.Equal(t, models.Added, outcome)
	assert.Equal(t, fingerprint.Of(account("GitHub")), fp)
	assert.Equal(t, 1, ws.Len())
	assert.True(t, ws.IsDuplicate(fp))

	outcome, fp2 := ws.Accept(account("GitHub"))
	assert.Equal(t, models.DuplicateSkipped, outcome)
	assert.Equal(t, fp, fp2)
	assert.Equal(t, 1, ws.Len(), "duplicate must not grow the set")
}

func TestAccept_PreservesSubmissionOrder(t *testing.T) {
	ws := NewWorkingSet()
	labels := []string{"c", "a", "b"}
	for _, l := range labels {
		outcome, _ := ws.Accept(account(l))
		require.Equal(t, models.Added, outcome)
	}

	records := ws.Records()
	fps := ws.Fingerprints()
	require.Len(t, records, 3)
	require.Len(t, fps, 3)
	for i, l := range labels {
		assert.Equal(t, l, records[i].Label)
		assert.Equal(t, fingerprint.Of(records[i]), fps[i])
	}
}

func TestNewWorkingSet_SeededFingerprints(t *testing.T) {
	stored := fingerprint.Of(account("GitHub"))
	ws := NewWorkingSet(stored)

	assert.Equal(t, 0, ws.Len())
	assert.True(t, ws.IsDuplicate(stored))

	outcome, _ := ws.Accept(account("GitHub"))
	assert.Equal(t, models.DuplicateSkipped, outcome)
	assert.Equal(t, 0, ws.Len())

	outcome, _ = ws.Accept(account("GitLab"))
	assert.Equal(t, models.Added, outcome)
}

func TestAcceptWithFingerprint_UsesGivenFingerprint(t *testing.T) {
	ws := NewWorkingSet()

	assert.Equal(t, models.Added, ws.AcceptWithFingerprint(account("a"), 7))
	assert.Equal(t, models.DuplicateSkipped, ws.AcceptWithFingerprint(account("b"), 7))
	assert.Equal(t, []models.Fingerprint{7}, ws.Fingerprints())
}

func TestRecords_ReturnsCopy(t *testing.T) {
	ws := NewWorkingSet()
	ws.Accept(account("GitHub"))

	records := ws.Records()
	records[0].Label = "tampered"

	assert.Equal(t, "GitHub", ws.Records()[0].Label)
}

func TestDrainN_KeepsSeenFingerprints(t *testing.T) {
	ws := NewWorkingSet()
	_, fp := ws.Accept(account("GitHub"))

	drained := ws.DrainN(ws.Len())
	require.Len(t, drained, 1)
	assert.Equal(t, 0, ws.Len())
	assert.Empty(t, ws.Fingerprints())
	assert.True(t, ws.IsDuplicate(fp))

	outcome, _ := ws.Accept(account("GitHub"))
	assert.Equal(t, models.DuplicateSkipped, outcome)
}

func TestDrainN_LeavesLaterRecords(t *testing.T) {
	ws := NewWorkingSet()
	ws.Accept(account("a"))
	ws.Accept(account("b"))
	snapshot := ws.Records()

	// Accepted after the snapshot was taken.
	_, lateFP := ws.Accept(account("c"))

	drained := ws.DrainN(len(snapshot))
	assert.Equal(t, snapshot, drained)

	require.Equal(t, 1, ws.Len())
	assert.Equal(t, "c", ws.Records()[0].Label)
	assert.Equal(t, []models.Fingerprint{lateFP}, ws.Fingerprints())
}

func TestDrainN_Clamps(t *testing.T) {
	ws := NewWorkingSet()
	ws.Accept(account("a"))

	assert.Empty(t, ws.DrainN(-1))
	assert.Equal(t, 1, ws.Len())

	assert.Len(t, ws.DrainN(10), 1)
	assert.Equal(t, 0, ws.Len())
	assert.Empty(t, ws.DrainN(1))
}

func TestAccept_ConcurrentDuplicatesAddOnce(t *testing.T) {
	ws := NewWorkingSet()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if outcome, _ := ws.Accept(account("GitHub")); outcome == models.Added {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, ws.Len())
}
