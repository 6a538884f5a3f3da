// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package catalogrp_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/momeni/rental-console/pkg/adapter/memory/catalogrp"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVehicles() []model.Vehicle {
	return []model.Vehicle{
		{Category: model.CategorySedan, Brand: "Toyota", Model: "Camry", PricePerDay: 50},
		{Category: model.CategorySUV, Brand: "Honda", Model: "CR-V", PricePerDay: 65},
		{Category: model.CategoryTruck, Brand: "Ford", Model: "F-150", PricePerDay: 80},
	}
}

func TestSeedingAndListing(t *testing.T) {
	ctx := context.Background()
	r, err := catalogrp.New(seedVehicles()...)
	require.NoError(t, err)

	entries, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
		assert.True(t, e.Vehicle.Available)
		assert.NotEqual(t, uuid.Nil, e.Vehicle.ID)
	}
	assert.Equal(t, "Toyota", entries[0].Vehicle.Brand)
	assert.Equal(t, "Honda", entries[1].Vehicle.Brand)
	assert.Equal(t, "Ford", entries[2].Vehicle.Brand)
}

func TestSeedingRejectsBadCategory(t *testing.T) {
	_, err := catalogrp.New(model.Vehicle{
		Category: model.Category(9), Brand: "X", Model: "Y", PricePerDay: 10,
	})
	var ce model.CategoryError
	require.ErrorAs(t, err, &ce)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	r, err := catalogrp.New()
	require.NoError(t, err)

	_, err = r.Add(ctx, model.Vehicle{
		Category: model.CategoryInvalid, Brand: "X", Model: "Y", PricePerDay: 10,
	})
	require.Error(t, err)
	_, err = r.Add(ctx, model.Vehicle{
		Category: model.CategorySedan, Brand: "X", Model: "Y", PricePerDay: 0,
	})
	require.ErrorIs(t, err, model.ErrNonPositivePrice)
	assert.Zero(t, r.Size(), "failed adds must not grow the catalog")
}

func TestGetOutOfRange(t *testing.T) {
	ctx := context.Background()
	r, err := catalogrp.New(seedVehicles()...)
	require.NoError(t, err)

	for _, index := range []int{0, -1, 4} {
		_, err := r.Get(ctx, index)
		assert.ErrorIs(t, err, repo.ErrVehicleOutOfRange, "index %d", index)
	}
	v, err := r.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", v.Brand)
}

func TestAvailabilityFilterKeepsIndices(t *testing.T) {
	ctx := context.Background()
	r, err := catalogrp.New(seedVehicles()...)
	require.NoError(t, err)

	first, err := r.Get(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, r.SetAvailability(ctx, first.ID, false))

	entries, err := r.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// original indices survive the filtering
	assert.Equal(t, 2, entries[0].Index)
	assert.Equal(t, 3, entries[1].Index)

	require.NoError(t, r.SetAvailability(ctx, first.ID, true))
	entries, err = r.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSetAvailabilityUnknownID(t *testing.T) {
	ctx := context.Background()
	r, err := catalogrp.New(seedVehicles()...)
	require.NoError(t, err)
	err = r.SetAvailability(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, repo.ErrVehicleNotFound)
}
