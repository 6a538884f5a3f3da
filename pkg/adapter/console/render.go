// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/repo"
	"github.com/momeni/rental-console/pkg/core/usecase/rentaluc"
)

// categoryTag returns the padded category column of a listing line,
// keeping the brand names aligned across categories.
func categoryTag(c model.Category) string {
	switch c {
	case model.CategorySUV:
		return "SUV:   "
	default:
		return c.String() + ": "
	}
}

func vehicleLine(e repo.Entry) string {
	state := "(Available)"
	if !e.Vehicle.Available {
		state = "(Rented)"
	}
	return fmt.Sprintf(
		"%d. %s%s %s - $%s per day %s",
		e.Index, categoryTag(e.Vehicle.Category),
		e.Vehicle.Brand, e.Vehicle.Model,
		model.FormatPrice(e.Vehicle.PricePerDay), state,
	)
}

func printAllVehicles(w io.Writer, entries []repo.Entry) {
	fmt.Fprint(w, "\n----- All Vehicles -----\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "No vehicles have been added to the system yet.")
	}
	for _, e := range entries {
		fmt.Fprintln(w, vehicleLine(e))
	}
	fmt.Fprintln(w, "------------------------")
}

func printAvailableVehicles(w io.Writer, entries []repo.Entry) {
	fmt.Fprint(w, "\n----- Available Vehicles -----\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "❗ No vehicles available at the moment.")
	}
	for _, e := range entries {
		fmt.Fprintln(w, vehicleLine(e))
	}
	fmt.Fprintln(w, "------------------------------")
}

func printHistory(w io.Writer, name string, bookings []model.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No booking history available.")
		return
	}
	fmt.Fprintf(w, "\n----- Booking History for %s -----\n", name)
	for _, b := range bookings {
		fmt.Fprint(w, b.Receipt(name))
	}
	fmt.Fprintln(w, "---------------------------------------")
}

func printFeedback(w io.Writer, entries []model.Feedback) {
	fmt.Fprint(w, "\n----- Customer Feedback -----\n")
	if len(entries) == 0 {
		fmt.Fprintln(w, "No feedback has been submitted yet.")
	}
	for _, f := range entries {
		fmt.Fprintf(w, "%s: %s\n", f.Username, f.Comment)
	}
	fmt.Fprintln(w, "-----------------------------")
}

// ExportFeedbackJSON writes the feedback log to w as an indented JSON
// document, so it can be redirected to a file and post-processed.
func ExportFeedbackJSON(w io.Writer, entries []model.Feedback) error {
	if entries == nil {
		entries = []model.Feedback{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling feedback: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing feedback: %w", err)
	}
	return nil
}

// errMessage maps core errors to the user-facing console messages.
// Unrecognized errors are reported verbatim; nothing here terminates
// the console since every failure is recoverable by re-prompting.
func errMessage(err error) string {
	switch {
	case errors.Is(err, repo.ErrDuplicateUsername):
		return "❌ Username already taken. Please choose a different username."
	case errors.Is(err, repo.ErrInvalidCredentials):
		return "❌ Invalid username or password!"
	case errors.Is(err, repo.ErrUserNotFound):
		return "❌ Username not found!"
	case errors.Is(err, repo.ErrVehicleOutOfRange):
		return "❌ Invalid vehicle selection!"
	case errors.Is(err, rentaluc.ErrAlreadyRented):
		return "❌ Vehicle is already rented!"
	case errors.Is(err, rentaluc.ErrNotRented):
		return "❌ This vehicle is not currently rented."
	case errors.Is(err, rentaluc.ErrNotYourRental):
		return "❌ You have not rented this vehicle!"
	case errors.Is(err, rentaluc.ErrNotAuthenticated):
		return "❌ No user is currently logged in."
	case errors.Is(err, model.ErrUnknownCategory):
		return "❌ Invalid vehicle type!"
	default:
		var de model.DurationError
		if errors.As(err, &de) {
			return "❌ Invalid number of days! Please enter between 1 and 30."
		}
		return "❌ " + err.Error()
	}
}
