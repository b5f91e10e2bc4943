// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diagnostics turns validation failures and duplicate notices into
// localized, user-facing messages.
//
// Catalogs are embedded YAML files loaded into a go-i18n bundle; English is
// the fallback for any unsupported language. Every message names the entry
// by its label, or says "this entry" when there is no label to show.
package diagnostics

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-otp-keeper/internal/validators"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// kindMessages maps each validation kind to its catalog message ID.
var kindMessages = []struct {
	kind error
	id   string
}{
	{validators.ErrEmptyRequiredField, msgEmptyRequired},
	{validators.ErrNonASCIIField, msgNonASCII},
	{validators.ErrInvalidSecretCharset, msgSecretCharset},
	{validators.ErrDigitsOutOfRange, msgDigits},
	{validators.ErrPeriodOutOfRange, msgPeriod},
	{validators.ErrCounterOutOfRange, msgCounter},
}

// Reporter renders messages in one language.
type Reporter struct {
	lang      string
	localizer *i18n.Localizer
}

// NewReporter loads the embedded catalogs and returns a Reporter for lang
// (a BCP 47 tag such as "en" or "de-AT").
func NewReporter(lang string) (*Reporter, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("error parsing locale %q: %w", lang, err)
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	return &Reporter{
		lang:      tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("error reading locale catalogs: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("error reading locale catalog %s: %w", f.Name(), err)
		}
		if _, err = bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("error parsing locale catalog %s: %w", f.Name(), err)
		}
	}

	return bundle, nil
}

// Lang returns the language tag the Reporter was created for.
func (r *Reporter) Lang() string {
	return r.lang
}

// Report renders err as an error-level message.
//
// For a *validators.ValidationError the label is taken from the error;
// label is used for any other error. When the label itself is the missing
// field the message says "this entry". Errors that are not validation
// failures are rendered as an internal error.
func (r *Reporter) Report(err error, label string) Message {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		label = vErr.Label
		if vErr.Field == "label" {
			label = ""
		}
	}

	id := msgInternal
	for _, km := range kindMessages {
		if errors.Is(err, km.kind) {
			id = km.id
			break
		}
	}
	return Message{Level: LevelError, Text: r.localize(id, label)}
}

// Duplicate renders the informational notice for a skipped duplicate.
func (r *Reporter) Duplicate(label string) Message {
	return Message{Level: LevelInfo, Text: r.localize(msgDuplicate, label)}
}

func (r *Reporter) localize(id, label string) string {
	return r.plain(id, map[string]string{"Entry": r.entry(label)})
}

// entry renders how a message refers to the entry.
func (r *Reporter) entry(label string) string {
	if label == "" {
		return r.plain(msgEntryUnnamed, nil)
	}
	return r.plain(msgEntryNamed, map[string]string{"Label": label})
}

// plain localizes id. go-i18n still returns the default-language text when
// only the translation is missing, so msg wins over err when present.
func (r *Reporter) plain(id string, data map[string]string) string {
	msg, err := r.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil && msg == "" {
		return id
	}
	return msg
}
