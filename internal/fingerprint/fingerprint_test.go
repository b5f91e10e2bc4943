// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"hash/fnv"
	"sync"
	"testing"

	"github.com/MKhiriev/go-otp-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubAccount() models.Account {
	return models.Account{
		Label:     "GitHub",
		Issuer:    "GitHub",
		Secret:    "JBSWY3DPEHPK3PXP",
		Digits:    6,
		Period:    30,
		Counter:   0,
		Type:      models.TOTP,
		Algorithm: models.SHA1,
	}
}

func TestCanonical_FixedKeyOrder(t *testing.T) {
	data, err := Canonical(githubAccount())
	require.NoError(t, err)

	want := `{"label":"GitHub","issuer":"GitHub","secret":"JBSWY3DPEHPK3PXP","digits":6,"algo":"SHA1","period":30,"counter":0}`
	assert.Equal(t, want, string(data))
}

func TestOf_Deterministic(t *testing.T) {
	a := githubAccount()
	b := githubAccount()

	assert.Equal(t, Of(a), Of(b))
	assert.Equal(t, Of(a), Of(a))
}

func TestOf_MatchesPlainFNV(t *testing.T) {
	data, err := Canonical(githubAccount())
	require.NoError(t, err)

	h := fnv.New32a()
	h.Write(data)
	assert.Equal(t, models.Fingerprint(h.Sum32()), Of(githubAccount()))
}

func TestOf_SensitiveToContent(t *testing.T) {
	base := Of(githubAccount())

	mutations := map[string]func(*models.Account){
		"label":     func(a *models.Account) { a.Label = "GitLab" },
		"issuer":    func(a *models.Account) { a.Issuer = "" },
		"secret":    func(a *models.Account) { a.Secret = "JBSWY3DPEHPK3PXQ" },
		"digits":    func(a *models.Account) { a.Digits = 8 },
		"algorithm": func(a *models.Account) { a.Algorithm = models.SHA256 },
		"period":    func(a *models.Account) { a.Period = 60 },
		"counter":   func(a *models.Account) { a.Counter = 1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			acc := githubAccount()
			mutate(&acc)
			assert.NotEqual(t, base, Of(acc))
		})
	}
}

// The OTP type is not part of the canonical form.
func TestOf_IgnoresOTPType(t *testing.T) {
	acc := githubAccount()
	acc.Type = models.HOTP
	assert.Equal(t, Of(githubAccount()), Of(acc))
}

func TestOf_ConcurrentUse(t *testing.T) {
	want := Of(githubAccount())

	var wg sync.WaitGroup
	results := make([]models.Fingerprint, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Of(githubAccount())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestSum_ResetsPooledHasher(t *testing.T) {
	first := sum([]byte("payload"))
	assert.Equal(t, first, sum([]byte("payload")))
	assert.NotEqual(t, first, sum([]byte("other")))
}
