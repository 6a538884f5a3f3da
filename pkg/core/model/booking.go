// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Rental duration bounds, as an inclusive range of days.
const (
	MinRentalDays = 1
	MaxRentalDays = 30
)

// DurationError indicates a rental duration which falls out of the
// [MinRentalDays, MaxRentalDays] range. This error contains the
// invalid duration (in days) as an integer.
type DurationError int

// Error implements the error interface, returning a string
// representation of the DurationError.
func (e DurationError) Error() string {
	return fmt.Sprintf(
		"invalid rental duration: %d days (acceptable range is %d to %d)",
		int(e), MinRentalDays, MaxRentalDays,
	)
}

// ValidateRentalDays returns nil if the given duration is acceptable
// for a single booking. For out of range values, an instance of the
// DurationError will be returned.
func ValidateRentalDays(days int) error {
	if days < MinRentalDays || days > MaxRentalDays {
		return DurationError(days)
	}
	return nil
}

// Booking is an immutable record of one rental transaction.
// The vehicle brand, model, and daily price are snapshotted at the
// booking creation time, hence, the TotalCost stays meaningful even if
// the catalog price changes later. The vehicle itself is referenced by
// its opaque ID and is not owned by the booking.
type Booking struct {
	VehicleID    uuid.UUID // catalog identity of the rented vehicle
	VehicleBrand string    // brand at booking time
	VehicleModel string    // model at booking time
	PricePerDay  float64   // daily price at booking time
	Days         int       // rental duration in the [1, 30] range
	TotalCost    float64   // PricePerDay multiplied by Days
}

// NewBooking creates a booking for the given vehicle and duration,
// computing its total cost. For an out of range duration, a zero
// Booking and a DurationError will be returned.
func NewBooking(v Vehicle, days int) (Booking, error) {
	if err := ValidateRentalDays(days); err != nil {
		return Booking{}, err
	}
	return Booking{
		VehicleID:    v.ID,
		VehicleBrand: v.Brand,
		VehicleModel: v.Model,
		PricePerDay:  v.PricePerDay,
		Days:         days,
		TotalCost:    v.PricePerDay * float64(days),
	}, nil
}

// Receipt renders the bill receipt of this booking for the given
// customer name. The layout is fixed and shows no availability state.
func (b Booking) Receipt(customerName string) string {
	var sb strings.Builder
	sb.WriteString("\n--------------- Bill Receipt ---------------\n")
	fmt.Fprintf(&sb, "Customer: %s\n", customerName)
	fmt.Fprintf(&sb, "Vehicle: %s %s\n", b.VehicleBrand, b.VehicleModel)
	fmt.Fprintf(&sb, "Days: %d\n", b.Days)
	fmt.Fprintf(&sb, "Price per day: $%s\n", FormatPrice(b.PricePerDay))
	fmt.Fprintf(&sb, "Total Cost: $%s\n", FormatPrice(b.TotalCost))
	sb.WriteString("--------------------------------------------\n")
	return sb.String()
}
