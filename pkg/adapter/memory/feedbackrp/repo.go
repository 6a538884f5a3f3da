// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package feedbackrp realizes the feedback log port as an in-memory
// append-only list.
package feedbackrp

import (
	"context"
	"sync"

	"github.com/momeni/rental-console/pkg/core/model"
)

type Repo struct {
	mu      sync.RWMutex
	entries []model.Feedback
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) Submit(ctx context.Context, f model.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, f)
	return nil
}

func (r *Repo) All(ctx context.Context) ([]model.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]model.Feedback, len(r.entries))
	copy(all, r.entries)
	return all, nil
}
