// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// For the rental console, this package contains the vehicle, booking,
// customer, and feedback entities together with their validation rules
// such as the closed vehicle category enum and the rental duration
// bounds.
package model

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Category specifies the vehicle category enum and accepts the three
// sedan, SUV, and truck categories. Although this enum is numeric, it
// is (de)serialized as a string for readability in the adapter layer.
type Category int

// Valid values for the Category enum.
const (
	CategoryInvalid Category = iota // zero value is invalid

	CategorySedan
	CategorySUV
	CategoryTruck
)

// ErrUnknownCategory indicates that a given string may not be parsed
// as a valid/known vehicle category. This error encodes a description
// err string and does not communicate the invalid category string
// itself because the caller of ParseCategory already knows about the
// invalid category string and is expected to wrap this error with that
// extra context if it has to be propagated.
var ErrUnknownCategory = errors.New("unknown vehicle category")

// CategoryError indicates an invalid vehicle category. This error
// contains the invalid category as an integer, so it can report
// categories which are found to be out of range during an execution
// (in contrast to the ErrUnknownCategory which reports strings that
// callers already have at hand).
type CategoryError int

// Error implements the error interface, returning a string
// representation of the CategoryError.
func (e CategoryError) Error() string {
	return fmt.Sprintf("invalid vehicle category: %d", int(e))
}

// Validate returns nil if Category value is valid. For invalid
// values, an instance of the CategoryError will be returned.
func (c Category) Validate() error {
	switch c {
	case CategorySedan, CategorySUV, CategoryTruck:
		return nil
	default:
		return CategoryError(c)
	}
}

// String converts the Category enum to a string, helping to serialize
// it for presentation to end-users. Invalid category causes a panic.
func (c Category) String() string {
	switch c {
	case CategorySedan:
		return "Sedan"
	case CategorySUV:
		return "SUV"
	case CategoryTruck:
		return "Truck"
	default:
		panic(CategoryError(c))
	}
}

// ParseCategory parses the given string and returns a Category,
// helping to deserialize it when reading a configuration file or an
// interactive admin command. For invalid strings, CategoryInvalid and
// ErrUnknownCategory will be returned.
func ParseCategory(c string) (Category, error) {
	switch c {
	case "Sedan":
		return CategorySedan, nil
	case "SUV":
		return CategorySUV, nil
	case "Truck":
		return CategoryTruck, nil
	default:
		return CategoryInvalid, ErrUnknownCategory
	}
}

// ErrNonPositivePrice indicates that a vehicle was presented with a
// zero or negative daily price.
var ErrNonPositivePrice = errors.New("price per day must be positive")

// Vehicle models a vehicle of the rental catalog.
// The ID field is an opaque identity which is assigned by the catalog
// repository when a vehicle is added. Bookings and the per-customer
// rented sets refer to vehicles by this ID instead of holding direct
// references, so the catalog may be extended (e.g., with removal of
// vehicles) without creating dangling references.
// End-users keep addressing vehicles by their 1-based catalog position
// which is not stored here, but computed by the listing operations.
type Vehicle struct {
	ID          uuid.UUID // assigned by the catalog repository
	Category    Category  // one of the closed category enum values
	Brand       string    // manufacturer, e.g., Toyota
	Model       string    // model name, e.g., Camry
	PricePerDay float64   // positive rental price per day
	Available   bool      // false while the vehicle is rented out
}

// FormatPrice converts a price to a string, dropping insignificant
// trailing zeros, so 50.0 reads as "50" and 62.5 reads as "62.5" in
// listings and receipts.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
