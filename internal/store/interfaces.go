// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the hand-off point between an import session and the
// persistence layer that owns the real database.
//
// The core never writes the database itself. At session commit it passes the
// accepted accounts to a Committer; JSONCommitter is the implementation used
// by the importer, emitting a JSON document the persistence tool consumes.
package store

import (
	"context"

	"github.com/MKhiriev/go-otp-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Committer receives the accounts of a committed working set, in submission
// order.
type Committer interface {
	Commit(ctx context.Context, accounts []models.Account) error
}
