// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-otp-keeper/internal/batch"
	"github.com/MKhiriev/go-otp-keeper/internal/collector"
	"github.com/MKhiriev/go-otp-keeper/internal/config"
	"github.com/MKhiriev/go-otp-keeper/internal/diagnostics"
	"github.com/MKhiriev/go-otp-keeper/internal/fingerprint"
	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/internal/store"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// Summary counts the outcomes of one import run.
type Summary struct {
	Added      int
	Duplicates int
	Rejected   int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d added, %d duplicate(s) skipped, %d rejected", s.Added, s.Duplicates, s.Rejected)
}

// App is one importer run.
type App struct {
	cfg      config.StructuredConfig
	reporter *diagnostics.Reporter

	// stdout receives the hand-off document when no output file is set;
	// messages receives the per-entry user messages.
	stdout   io.Writer
	messages io.Writer

	summary Summary

	logger *logger.Logger
}

var _ Runner = (*App)(nil)

// NewApp prepares an importer run for cfg.
func NewApp(cfg config.StructuredConfig, stdout, messages io.Writer, logger *logger.Logger) (*App, error) {
	reporter, err := diagnostics.NewReporter(cfg.App.Locale)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}

	return &App{
		cfg:      cfg,
		reporter: reporter,
		stdout:   stdout,
		messages: messages,
		logger:   logger,
	}, nil
}

// Summary returns the outcome counts of the last Run.
func (a *App) Summary() Summary {
	return a.summary
}

func (a *App) Run(ctx context.Context) (err error) {
	a.summary = Summary{}

	entries, err := a.readBatch()
	if err != nil {
		return err
	}

	seen, err := a.knownFingerprints()
	if err != nil {
		return err
	}

	ws := collector.NewWorkingSet(seen...)
	log := a.logger.WithSession(ws.ID())
	log.Info().
		Str("func", "App.Run").
		Str("input", a.cfg.Import.InputFile).
		Int("entries", len(entries)).
		Int("known", len(seen)).
		Msg("import started")

	out, closeOut := a.output()
	defer func() {
		if cErr := closeOut(); cErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cErr)
		}
	}()

	services := service.NewServices(store.NewJSONCommitter(out), a.reporter, a.cfg, a.logger)

	results, err := services.EntryService.SubmitBatch(ctx, ws, entries)
	if err != nil {
		return fmt.Errorf("submit batch: %w", err)
	}

	for _, res := range results {
		a.count(res)
		if res.HasMessage() {
			fmt.Fprintln(a.messages, res.Message)
		}
	}

	if err = services.EntryService.Commit(ctx, ws); err != nil {
		return err
	}

	fmt.Fprintln(a.messages, a.summary)
	log.Info().
		Str("func", "App.Run").
		Int("added", a.summary.Added).
		Int("duplicates", a.summary.Duplicates).
		Int("rejected", a.summary.Rejected).
		Msg("import finished")

	return nil
}

func (a *App) count(res service.Result) {
	switch {
	case !res.Accepted:
		a.summary.Rejected++
	case res.Outcome == models.DuplicateSkipped:
		a.summary.Duplicates++
	default:
		a.summary.Added++
	}
}

func (a *App) readBatch() ([]models.RawEntry, error) {
	f, err := os.Open(a.cfg.Import.InputFile)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	entries, err := batch.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", a.cfg.Import.InputFile, err)
	}

	return entries, nil
}

// knownFingerprints loads the accounts of a previous hand-off document. A
// missing file is not an error: the first run has nothing to compare with.
func (a *App) knownFingerprints() ([]models.Fingerprint, error) {
	if a.cfg.Import.KnownFile == "" {
		return nil, nil
	}

	f, err := os.Open(a.cfg.Import.KnownFile)
	if errors.Is(err, os.ErrNotExist) {
		a.logger.Warn().
			Str("func", "App.knownFingerprints").
			Str("file", a.cfg.Import.KnownFile).
			Msg("known accounts file does not exist, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open known accounts: %w", err)
	}
	defer f.Close()

	accounts, err := store.LoadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("read known accounts %s: %w", a.cfg.Import.KnownFile, err)
	}

	seen := make([]models.Fingerprint, len(accounts))
	for i, acc := range accounts {
		seen[i] = fingerprint.Of(acc)
	}

	return seen, nil
}

// output returns where the hand-off document goes and how to release it.
func (a *App) output() (io.Writer, func() error) {
	if a.cfg.Import.OutputFile == "" {
		return a.stdout, func() error { return nil }
	}

	f := &lazyFile{path: a.cfg.Import.OutputFile}
	return f, f.Close
}
