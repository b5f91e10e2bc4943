// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package diagnostics

// Message IDs of the embedded catalogs (locales/*.yaml).
const (
	msgEntryUnnamed = "entry.unnamed"
	msgEntryNamed   = "entry.named"

	msgEmptyRequired = "error.empty_required"
	msgNonASCII      = "error.non_ascii"
	msgSecretCharset = "error.secret_charset"
	msgDigits        = "error.digits"
	msgPeriod        = "error.period"
	msgCounter       = "error.counter"
	msgInternal      = "error.internal"

	msgDuplicate = "info.duplicate"
)

// Level tells the UI how to present a Message.
type Level int

const (
	// LevelError is a rejected submission the user has to correct.
	LevelError Level = iota + 1

	// LevelInfo is an informational notice, e.g. a skipped duplicate.
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Message is user-facing text produced by the Reporter.
type Message struct {
	Level Level
	Text  string
}

func (m Message) String() string {
	return "[" + m.Level.String() + "] " + m.Text
}
