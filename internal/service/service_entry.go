// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-otp-keeper/internal/collector"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/diagnostics"
	"github.com/MKhiriev/go-otp-keeper/internal/fingerprint"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/normalizer"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/internal/validators"
	"github.com/MKhiriev/go-otp-keeper/models"
)

type entryService struct {
	validator   validators.Validator
	reporter    *diagnostics.Reporter
	committer   store.Committer
	concurrency int

	logger *logger.Logger
}

// NewEntryService wires an EntryService. A non-positive cfg.Concurrency
// prepares batch entries one at a time.
func NewEntryService(committer store.Committer, reporter *diagnostics.Reporter, cfg config.Workers, logger *logger.Logger) EntryService {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &entryService{
		validator:   validators.NewEntryValidator(),
		reporter:    reporter,
		committer:   committer,
		concurrency: concurrency,
		logger:      logger,
	}
}

// prepared is an entry that went through validation and normalization.
// A rejected entry carries its message and no account.
type prepared struct {
	rejected bool
	message  diagnostics.Message
	account  models.Account
	fp       models.Fingerprint
}

func (s *entryService) Submit(ctx context.Context, ws *collector.WorkingSet, raw models.RawEntry) (Result, error) {
	if ws == nil {
		return Result{}, ErrNilWorkingSet
	}

	ctx = s.sessionContext(ctx, ws)
	log := logger.FromContext(ctx)

	p, err := s.prepare(ctx, raw)
	if err != nil {
		log.Err(err).
			Str("func", "entryService.Submit").
			Str("label", raw.Label).
			Msg("entry could not be prepared")
		return Result{}, err
	}

	return s.accept(ctx, ws, p), nil
}

func (s *entryService) SubmitBatch(ctx context.Context, ws *collector.WorkingSet, raws []models.RawEntry) ([]Result, error) {
	if ws == nil {
		return nil, ErrNilWorkingSet
	}

	ctx = s.sessionContext(ctx, ws)
	log := logger.FromContext(ctx)

	entries := make([]prepared, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, raw := range raws {
		g.Go(func() error {
			p, err := s.prepare(gctx, raw)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			entries[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).
			Str("func", "entryService.SubmitBatch").
			Int("entries", len(raws)).
			Msg("batch aborted before accepting any entry")
		return nil, err
	}

	results := make([]Result, len(entries))
	for i, p := range entries {
		results[i] = s.accept(ctx, ws, p)
	}

	log.Info().
		Str("func", "entryService.SubmitBatch").
		Int("entries", len(raws)).
		Int("records", ws.Len()).
		Msg("batch submitted")

	return results, nil
}

func (s *entryService) Commit(ctx context.Context, ws *collector.WorkingSet) error {
	if ws == nil {
		return ErrNilWorkingSet
	}

	ctx = s.sessionContext(ctx, ws)
	log := logger.FromContext(ctx)

	records := ws.Records()
	if len(records) == 0 {
		log.Debug().
			Str("func", "entryService.Commit").
			Msg("nothing to commit")
		return nil
	}

	if err := s.committer.Commit(ctx, records); err != nil {
		log.Err(err).
			Str("func", "entryService.Commit").
			Int("records", len(records)).
			Msg("committer rejected the working set")
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}
	drained := ws.DrainN(len(records))

	log.Info().
		Str("func", "entryService.Commit").
		Int("records", len(drained)).
		Int("pending", ws.Len()).
		Msg("working set committed")

	return nil
}

// sessionContext attaches the session logger of ws to ctx; downstream code
// (the committer included) reads it with logger.FromContext.
func (s *entryService) sessionContext(ctx context.Context, ws *collector.WorkingSet) context.Context {
	return s.logger.WithSession(ws.ID()).WithContext(ctx)
}

// prepare validates and normalizes raw. Validation failures become a
// rejected entry; anything else is returned as an error.
func (s *entryService) prepare(ctx context.Context, raw models.RawEntry) (prepared, error) {
	if err := ctx.Err(); err != nil {
		return prepared{}, err
	}

	if err := s.validator.Validate(ctx, raw); err != nil {
		var vErr *validators.ValidationError
		if !errors.As(err, &vErr) {
			return prepared{}, fmt.Errorf("%w: %w", normalizer.ErrInternalInconsistency, err)
		}
		return prepared{rejected: true, message: s.reporter.Report(vErr, raw.Label)}, nil
	}

	acc, err := normalizer.Normalize(raw)
	if err != nil {
		return prepared{}, err
	}

	return prepared{account: acc, fp: fingerprint.Of(acc)}, nil
}

func (s *entryService) accept(ctx context.Context, ws *collector.WorkingSet, p prepared) Result {
	log := logger.FromContext(ctx)

	if p.rejected {
		log.Warn().
			Str("func", "entryService.accept").
			Str("message", p.message.Text).
			Msg("entry rejected")
		return Result{Message: p.message}
	}

	res := Result{
		Accepted:    true,
		Outcome:     ws.AcceptWithFingerprint(p.account, p.fp),
		Fingerprint: p.fp,
		Account:     p.account,
	}

	if res.Outcome == models.DuplicateSkipped {
		res.Message = s.reporter.Duplicate(p.account.Label)
		log.Info().
			Str("func", "entryService.accept").
			Str("label", p.account.Label).
			Stringer("fingerprint", p.fp).
			Msg("Duplicate element not added")
		return res
	}

	log.Debug().
		Str("func", "entryService.accept").
		Str("label", p.account.Label).
		Stringer("fingerprint", p.fp).
		Msg("entry added")

	return res
}
