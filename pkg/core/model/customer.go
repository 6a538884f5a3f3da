// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Customer models a registered customer of the rental system.
// The Username is the unique key within the customer directory and the
// Password is stored as plaintext on purpose; hiding it behind a hash
// would change the observable reset/authenticate semantics of this
// system (which has no real security goals).
// The booking history grows in insertion order and is never rolled
// back, while the rented set tracks the vehicles which are currently
// held by this customer, keyed by their opaque catalog IDs.
type Customer struct {
	Name     string
	Username string
	Password string

	BookingHistory []Booking

	rented map[uuid.UUID]struct{}
}

// NewCustomer creates a customer with an empty booking history and an
// empty rented set.
func NewCustomer(name, username, password string) *Customer {
	return &Customer{
		Name:     name,
		Username: username,
		Password: password,
		rented:   make(map[uuid.UUID]struct{}),
	}
}

// AddBooking appends a booking record to the booking history.
func (c *Customer) AddBooking(b Booking) {
	c.BookingHistory = append(c.BookingHistory, b)
}

// History returns the booking history in insertion order.
// The returned slice is a copy, so callers may not mutate the history.
func (c *Customer) History() []Booking {
	h := make([]Booking, len(c.BookingHistory))
	copy(h, c.BookingHistory)
	return h
}

// AddRented puts the id vehicle into the currently rented set.
func (c *Customer) AddRented(id uuid.UUID) {
	c.rented[id] = struct{}{}
}

// RemoveRented takes the id vehicle out of the currently rented set,
// reporting false if it was not a member.
func (c *Customer) RemoveRented(id uuid.UUID) bool {
	if _, ok := c.rented[id]; !ok {
		return false
	}
	delete(c.rented, id)
	return true
}

// IsRenting reports whether the id vehicle is currently held by this
// customer.
func (c *Customer) IsRenting(id uuid.UUID) bool {
	_, ok := c.rented[id]
	return ok
}

// RentedCount returns the number of currently held vehicles.
func (c *Customer) RentedCount() int {
	return len(c.rented)
}
