package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/momeni/rental-console/pkg/core/model"
)

// Port-level sentinel errors of the vehicle catalog.
var (
	ErrVehicleOutOfRange = errors.New("vehicle index out of range")
	ErrVehicleNotFound   = errors.New("vehicle not found")
)

// Entry pairs a vehicle with its 1-based position in the catalog.
// Filtered listings keep the original positions, so an entry keeps
// addressing the same vehicle in all listings.
type Entry struct {
	Index   int
	Vehicle model.Vehicle
}

type Catalog interface {
	// Add appends a vehicle with a fresh identity, returning the
	// stored vehicle. Invalid categories are rejected.
	Add(ctx context.Context, v model.Vehicle) (model.Vehicle, error)
	// List returns all vehicles in insertion order.
	List(ctx context.Context) ([]Entry, error)
	// ListAvailable returns available vehicles, preserving their
	// original indices.
	ListAvailable(ctx context.Context) ([]Entry, error)
	// Get resolves a 1-based index, failing with ErrVehicleOutOfRange
	// for indices outside [1, size].
	Get(ctx context.Context, index int) (model.Vehicle, error)
	// SetAvailability flips the availability flag of the id vehicle,
	// failing with ErrVehicleNotFound for unknown identities.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
}
