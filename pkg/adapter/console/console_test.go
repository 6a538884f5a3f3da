// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package console_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/momeni/rental-console/pkg/adapter/console"
	"github.com/momeni/rental-console/pkg/adapter/memory/catalogrp"
	"github.com/momeni/rental-console/pkg/adapter/memory/customersrp"
	"github.com/momeni/rental-console/pkg/adapter/memory/feedbackrp"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/usecase/rentaluc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds the given input lines to a fresh console backed by
// the three vehicles seed catalog and returns everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	catalog, err := catalogrp.New(
		model.Vehicle{Category: model.CategorySedan, Brand: "Toyota", Model: "Camry", PricePerDay: 50},
		model.Vehicle{Category: model.CategorySUV, Brand: "Honda", Model: "CR-V", PricePerDay: 65},
		model.Vehicle{Category: model.CategoryTruck, Brand: "Ford", Model: "F-150", PricePerDay: 80},
	)
	require.NoError(t, err)
	uc, err := rentaluc.New(catalog, customersrp.New(), feedbackrp.New())
	require.NoError(t, err)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}
	require.NoError(t, console.New(uc, in, out).Run(context.Background()))
	return out.String()
}

func TestMainMenuExit(t *testing.T) {
	out := runScript(t, "4")
	assert.Contains(t, out, "       🚗 Car Rental System Main Menu 🚗")
	assert.Contains(t, out, "1. Customer Registration")
	assert.Contains(t, out, "\n👋 Thank you for using the Car Rental System. Goodbye!")
}

func TestMainMenuInvalidChoice(t *testing.T) {
	out := runScript(t, "9", "x", "4")
	assert.Equal(t, 2, strings.Count(out, "❌ Invalid choice! Please try again."),
		"both the out-of-range and the non-numeric choices re-prompt")
	assert.Equal(t, 3, strings.Count(out, "Car Rental System Main Menu"))
}

func TestMainMenuEndsOnInputExhaustion(t *testing.T) {
	out := runScript(t, "1", "Alice", "alice")
	// the script ends mid-registration; no crash, no goodbye banner
	assert.Contains(t, out, "Enter Password: ")
	assert.NotContains(t, out, "Goodbye")
}

func TestRegisterRentReturnScript(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1", // register
		"2", "alice", "pw1", // login
		"1",           // view available
		"2", "1", "3", // rent vehicle 1 for 3 days
		"1",      // available list now lacks vehicle 1
		"4",      // booking history
		"3", "1", // return vehicle 1
		"6", // logout
		"4", // exit
	)
	assert.Contains(t, out, "✅ User registered successfully!")
	assert.Contains(t, out, "✅ Login successful! Welcome, Alice.")
	assert.Contains(t, out, "\n----- Available Vehicles -----\n")
	assert.Contains(t, out,
		"1. Sedan: Toyota Camry - $50 per day (Available)")
	assert.Contains(t, out,
		"2. SUV:   Honda CR-V - $65 per day (Available)")
	assert.Contains(t, out,
		"3. Truck: Ford F-150 - $80 per day (Available)")
	assert.Contains(t, out, "✅ Vehicle rented successfully!")
	assert.Contains(t, out,
		"\n--------------- Bill Receipt ---------------\n"+
			"Customer: Alice\n"+
			"Vehicle: Toyota Camry\n"+
			"Days: 3\n"+
			"Price per day: $50\n"+
			"Total Cost: $150\n"+
			"--------------------------------------------\n")
	assert.Contains(t, out, "\n----- Booking History for Alice -----\n")
	assert.Contains(t, out, "✅ Vehicle returned successfully!")
	assert.Contains(t, out, "👋 Logging out...")

	// after renting, the first listing shows vehicle 1 and the second
	// does not
	assert.Equal(t, 2, strings.Count(out, "1. Sedan: Toyota Camry"))
}

func TestRentRejectionsReprompt(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1",
		"2", "alice", "pw1",
		"2", "9", "3", // out of range index
		"2", "1", "31", // too many days
		"2", "1", "2", // fine
		"3", "2", // return a vehicle which is not rented
		"6",
		"4",
	)
	assert.Contains(t, out, "❌ Invalid vehicle selection!")
	assert.Contains(t, out,
		"❌ Invalid number of days! Please enter between 1 and 30.")
	assert.Contains(t, out, "❌ This vehicle is not currently rented.")
	assert.Contains(t, out, "✅ Vehicle rented successfully!")
}

func TestDuplicateRegistration(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1",
		"1", "Another Alice", "alice", "pw2",
		"4",
	)
	assert.Contains(t, out,
		"❌ Username already taken. Please choose a different username.")
}

func TestFailedLoginOffersPasswordReset(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1",
		"2", "alice", "wrong", // failed login
		"n",                   // decline the reset
		"2", "alice", "wrong", // fail again
		"y", "alice", "new", // reset this time
		"2", "alice", "new", // and login with the new password
		"6",
		"4",
	)
	assert.Contains(t, out, "❌ Invalid username or password!")
	assert.Contains(t, out, "Forgot password? (y/n): ")
	assert.Contains(t, out,
		"✅ Password has been reset successfully for user alice!")
	assert.Contains(t, out, "✅ Login successful! Welcome, Alice.")
}

func TestPasswordResetUnknownUser(t *testing.T) {
	out := runScript(t,
		"2", "bob", "pw", // nobody registered
		"y", "bob", "new",
		"4",
	)
	assert.Contains(t, out, "❌ Username not found!")
}

func TestEmptyBookingHistory(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1",
		"2", "alice", "pw1",
		"4", // history while empty
		"6",
		"4",
	)
	assert.Contains(t, out, "No booking history available.")
}

func TestAdminFlow(t *testing.T) {
	out := runScript(t,
		"3", "admin", "admin123",
		"2",                                  // view all vehicles
		"1", "2", "Kia", "Sportage", "55.5", // add an SUV
		"2", // view again, now four entries
		"3", // feedback, empty so far
		"5", // logout
		"4",
	)
	assert.Contains(t, out, "✅ Admin login successful!")
	assert.Contains(t, out, "\n-------- Admin Menu --------\n")
	assert.Contains(t, out, "\n----- All Vehicles -----\n")
	assert.Contains(t, out, "✅ SUV added successfully!")
	assert.Contains(t, out,
		"4. SUV:   Kia Sportage - $55.5 per day (Available)")
	assert.Contains(t, out, "No feedback has been submitted yet.")
	assert.Contains(t, out, "👋 Admin logged out.")
}

func TestAdminLoginRejected(t *testing.T) {
	out := runScript(t, "3", "admin", "wrong", "4")
	assert.Contains(t, out, "❌ Invalid admin credentials!")
	assert.NotContains(t, out, "Admin Menu")
}

func TestAdminAddVehicleInvalidType(t *testing.T) {
	out := runScript(t,
		"3", "admin", "admin123",
		"1", "7", // unknown type choice
		"5",
		"4",
	)
	assert.Contains(t, out, "❌ Invalid vehicle type!")
}

func TestFeedbackRoundTrip(t *testing.T) {
	out := runScript(t,
		"1", "Alice", "alice", "pw1",
		"2", "alice", "pw1",
		"5", "Great service!",
		"6",
		"3", "admin", "admin123",
		"3", // view feedback
		"4", // export feedback as JSON
		"5",
		"4",
	)
	assert.Contains(t, out, "✅ Feedback submitted. Thank you!")
	assert.Contains(t, out, "\n----- Customer Feedback -----\n")
	assert.Contains(t, out, "alice: Great service!")
	assert.Contains(t, out, `"username": "alice"`)
	assert.Contains(t, out, `"comment": "Great service!"`)
}

func ExampleExportFeedbackJSON() {
	entries := []model.Feedback{
		{Username: "alice", Comment: "great"},
		{Username: "bob", Comment: "meh"},
	}
	_ = console.ExportFeedbackJSON(os.Stdout, entries)
	// Output:
	// [
	//   {
	//     "username": "alice",
	//     "comment": "great"
	//   },
	//   {
	//     "username": "bob",
	//     "comment": "meh"
	//   }
	// ]
}
