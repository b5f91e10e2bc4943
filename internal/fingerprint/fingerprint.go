// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint computes the content hash used to detect duplicate
// accounts.
//
// A fingerprint is FNV-1a (32 bit) over the canonical JSON form of an
// account. The canonical form has a fixed key order:
//
//	{"label":…,"issuer":…,"secret":…,"digits":…,"algo":…,"period":…,"counter":…}
//
// so the same account always yields the same fingerprint, in this process and
// across runs. The OTP type is not part of the canonical form. Collisions are
// possible in a 32-bit space and accepted.
package fingerprint

import (
	"encoding/json"
	"hash"
	"hash/fnv"
	"sync"

	"github.com/MKhiriev/go-otp-keeper/models"
)

// hasherPool holds reusable FNV-1a hashers.
var hasherPool = sync.Pool{
	New: func() any {
		return fnv.New32a()
	},
}

// canonicalAccount fixes the serialization order. Do not reorder fields:
// persisted fingerprints depend on it.
type canonicalAccount struct {
	Label   string `json:"label"`
	Issuer  string `json:"issuer"`
	Secret  string `json:"secret"`
	Digits  int    `json:"digits"`
	Algo    string `json:"algo"`
	Period  int    `json:"period"`
	Counter int64  `json:"counter"`
}

// Canonical returns the canonical JSON form of acc.
func Canonical(acc models.Account) ([]byte, error) {
	return json.Marshal(canonicalAccount{
		Label:   acc.Label,
		Issuer:  acc.Issuer,
		Secret:  acc.Secret,
		Digits:  acc.Digits,
		Algo:    acc.Algorithm.String(),
		Period:  acc.Period,
		Counter: acc.Counter,
	})
}

// Of returns the fingerprint of acc.
func Of(acc models.Account) models.Fingerprint {
	// Marshal cannot fail: canonicalAccount holds only strings and integers.
	data, _ := Canonical(acc)
	return sum(data)
}

// sum hashes data with a pooled FNV-1a hasher.
func sum(data []byte) models.Fingerprint {
	h := hasherPool.Get().(hash.Hash32)
	h.Reset()

	h.Write(data)
	sum := h.Sum32()

	h.Reset()
	hasherPool.Put(h)

	return models.Fingerprint(sum)
}
