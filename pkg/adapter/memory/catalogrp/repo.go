// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package catalogrp realizes the vehicle catalog port with an
// in-memory arena. Vehicles live in an append-only slice and obtain
// an opaque UUID at insertion time, so other components can reference
// them by identity while end-users keep using 1-based positions.
package catalogrp

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/repo"
)

type Repo struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
	position map[uuid.UUID]int // vehicle ID to zero-based slice index
}

// New instantiates a catalog, seeding it with the given vehicles.
// Seed vehicles are added through the same validation path as the
// admin add operation, so a bad seed fails loudly.
func New(seed ...model.Vehicle) (*Repo, error) {
	r := &Repo{position: make(map[uuid.UUID]int)}
	for _, v := range seed {
		if _, err := r.Add(context.Background(), v); err != nil {
			return nil, fmt.Errorf(
				"seeding %s %s: %w", v.Brand, v.Model, err,
			)
		}
	}
	return r, nil
}

func (r *Repo) Add(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	if err := v.Category.Validate(); err != nil {
		return model.Vehicle{}, err
	}
	if v.PricePerDay <= 0 {
		return model.Vehicle{}, model.ErrNonPositivePrice
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = uuid.New()
	v.Available = true
	r.vehicles = append(r.vehicles, v)
	r.position[v.ID] = len(r.vehicles) - 1
	return v, nil
}

func (r *Repo) List(ctx context.Context) ([]repo.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]repo.Entry, 0, len(r.vehicles))
	for i, v := range r.vehicles {
		entries = append(entries, repo.Entry{Index: i + 1, Vehicle: v})
	}
	return entries, nil
}

func (r *Repo) ListAvailable(ctx context.Context) ([]repo.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []repo.Entry
	for i, v := range r.vehicles {
		if !v.Available {
			continue
		}
		entries = append(entries, repo.Entry{Index: i + 1, Vehicle: v})
	}
	return entries, nil
}

func (r *Repo) Get(ctx context.Context, index int) (model.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 1 || index > len(r.vehicles) {
		return model.Vehicle{}, repo.ErrVehicleOutOfRange
	}
	return r.vehicles[index-1], nil
}

func (r *Repo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.position[id]
	if !ok {
		return repo.ErrVehicleNotFound
	}
	r.vehicles[i].Available = available
	return nil
}

// Size returns the number of vehicles ever added.
func (r *Repo) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vehicles)
}
