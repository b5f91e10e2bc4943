// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the importer process lifecycle.
//
// It reads a batch document, seeds the working set from a previous hand-off
// document when configured, submits every entry, prints the user messages
// and commits the accepted accounts.
package app
