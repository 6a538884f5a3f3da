// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package customersrp realizes the customer directory port in memory.
// The directory owns the customer records and hands out pointers, so
// the use case layer can apply per-customer state transitions (booking
// history and rented-set updates) on the directory-owned records.
// The mutex guards the directory structure itself; per-customer state
// is driven by the single interactive session (one operation at a
// time), matching the synchronous execution model of this system.
package customersrp

import (
	"context"
	"sync"

	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/repo"
)

type Repo struct {
	mu        sync.RWMutex
	customers []*model.Customer
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) Register(ctx context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.customers {
		if existing.Username == c.Username {
			return repo.ErrDuplicateUsername
		}
	}
	r.customers = append(r.customers, c)
	return nil
}

func (r *Repo) Authenticate(ctx context.Context, username, password string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// first-match linear scan, exact username and password equality
	for _, c := range r.customers {
		if c.Username == username && c.Password == password {
			return c, nil
		}
	}
	return nil, repo.ErrInvalidCredentials
}

func (r *Repo) FindByUsername(ctx context.Context, username string) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

func (r *Repo) ResetPassword(ctx context.Context, username, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Username == username {
			c.Password = newPassword
			return nil
		}
	}
	return repo.ErrUserNotFound
}
