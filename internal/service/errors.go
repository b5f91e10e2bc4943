// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNilWorkingSet = errors.New("working set is nil")
	ErrCommitFailed  = errors.New("commit failed")
)
