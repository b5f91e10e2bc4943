// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/diagnostics"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
)

type Services struct {
	EntryService EntryService
}

func NewServices(committer store.Committer, reporter *diagnostics.Reporter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		EntryService: NewEntryService(committer, reporter, cfg.Workers, logger),
	}
}
