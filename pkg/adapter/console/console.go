// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package console is the interactive shell adapter. It owns the menu
// loops, prompts, and message rendering, delegating every state
// transition to the rental use case and mapping its categorized
// errors back to user-facing text. No business rule lives here.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/momeni/rental-console/pkg/core/usecase/rentaluc"
)

// Console drives one interactive session over an input/output pair.
// It remembers at most one session token at a time; logging in again
// simply replaces the remembered token, mirroring the permissive
// behavior of the original menu shell (the use case keeps the older
// token alive until its logout).
type Console struct {
	uc  *rentaluc.UseCase
	in  *bufio.Scanner
	out io.Writer
}

// New instantiates a console over the given reader and writer.
func New(uc *rentaluc.UseCase, in io.Reader, out io.Writer) *Console {
	return &Console{
		uc:  uc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops over the main menu until the end-user exits or the input
// stream ends. All operation failures are rendered and re-prompted;
// only I/O exhaustion ends the loop.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, "\n========================================\n")
		fmt.Fprintln(c.out, "       🚗 Car Rental System Main Menu 🚗")
		fmt.Fprintln(c.out, "========================================")
		fmt.Fprintln(c.out, "1. Customer Registration")
		fmt.Fprintln(c.out, "2. Customer Login")
		fmt.Fprintln(c.out, "3. Admin Login")
		fmt.Fprintln(c.out, "4. Exit")
		fmt.Fprintln(c.out, "========================================")
		choice, err := c.readInt("Enter your choice: ")
		if err != nil {
			return nil // input stream ended
		}
		switch choice {
		case 1:
			c.register(ctx)
		case 2:
			c.customerLogin(ctx)
		case 3:
			c.adminLogin(ctx)
		case 4:
			fmt.Fprintln(c.out, "\n👋 Thank you for using the Car Rental System. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "❌ Invalid choice! Please try again.")
		}
	}
}

func (c *Console) register(ctx context.Context) {
	name, err := c.readLine("Enter Name: ")
	if err != nil {
		return
	}
	username, err := c.readLine("Enter Username: ")
	if err != nil {
		return
	}
	password, err := c.readLine("Enter Password: ")
	if err != nil {
		return
	}
	if err := c.uc.Register(ctx, name, username, password); err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	fmt.Fprintln(c.out, "✅ User registered successfully!")
}

func (c *Console) customerLogin(ctx context.Context) {
	username, err := c.readLine("Enter Username: ")
	if err != nil {
		return
	}
	password, err := c.readLine("Enter Password: ")
	if err != nil {
		return
	}
	sess, err := c.uc.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		c.offerPasswordReset(ctx)
		return
	}
	fmt.Fprintf(c.out, "✅ Login successful! Welcome, %s.\n", sess.Name)
	c.customerMenu(ctx, sess)
}

// offerPasswordReset is the forgot-password flow which follows a
// failed customer login.
func (c *Console) offerPasswordReset(ctx context.Context) {
	answer, err := c.readLine("Forgot password? (y/n): ")
	if err != nil || (answer != "y" && answer != "Y") {
		return
	}
	username, err := c.readLine("Enter your username: ")
	if err != nil {
		return
	}
	newPassword, err := c.readLine("Enter new password: ")
	if err != nil {
		return
	}
	if err := c.uc.ResetPassword(ctx, username, newPassword); err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	fmt.Fprintf(
		c.out,
		"✅ Password has been reset successfully for user %s!\n",
		username,
	)
}

func (c *Console) customerMenu(ctx context.Context, sess rentaluc.Session) {
	for {
		fmt.Fprint(c.out, "\n--------- Customer Menu ---------\n")
		fmt.Fprintln(c.out, "1. View Available Vehicles")
		fmt.Fprintln(c.out, "2. Rent Vehicle")
		fmt.Fprintln(c.out, "3. Return Vehicle")
		fmt.Fprintln(c.out, "4. View Booking History")
		fmt.Fprintln(c.out, "5. Submit Feedback")
		fmt.Fprintln(c.out, "6. Logout")
		fmt.Fprintln(c.out, "---------------------------------")
		choice, err := c.readInt("Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case 1:
			c.showAvailable(ctx)
		case 2:
			c.rent(ctx, sess)
		case 3:
			c.giveBack(ctx, sess)
		case 4:
			c.history(ctx, sess)
		case 5:
			c.submitFeedback(ctx, sess)
		case 6:
			fmt.Fprintln(c.out, "👋 Logging out...")
			_ = c.uc.Logout(ctx, sess.Token)
			return
		default:
			fmt.Fprintln(c.out, "❌ Invalid choice! Please try again.")
		}
	}
}

func (c *Console) showAvailable(ctx context.Context) {
	entries, err := c.uc.AvailableVehicles(ctx)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	printAvailableVehicles(c.out, entries)
}

func (c *Console) rent(ctx context.Context, sess rentaluc.Session) {
	c.showAvailable(ctx)
	index, err := c.readInt("Enter vehicle number to rent: ")
	if err != nil {
		return
	}
	days, err := c.readInt("Enter number of days to rent (max 30): ")
	if err != nil {
		return
	}
	b, err := c.uc.Rent(ctx, sess.Token, index, days)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Vehicle rented successfully!")
	fmt.Fprint(c.out, b.Receipt(sess.Name))
}

func (c *Console) giveBack(ctx context.Context, sess rentaluc.Session) {
	index, err := c.readInt("Enter vehicle number to return: ")
	if err != nil {
		return
	}
	if err := c.uc.Return(ctx, sess.Token, index); err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	fmt.Fprintln(c.out, "✅ Vehicle returned successfully!")
}

func (c *Console) history(ctx context.Context, sess rentaluc.Session) {
	bookings, err := c.uc.History(ctx, sess.Token)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	printHistory(c.out, sess.Name, bookings)
}

func (c *Console) submitFeedback(ctx context.Context, sess rentaluc.Session) {
	comment, err := c.readLine("Enter feedback: ")
	if err != nil {
		return
	}
	if err := c.uc.SubmitFeedback(ctx, sess.Token, comment); err != nil {
		fmt.Fprintln(c.out, "❌ Please login as customer to give feedback.")
		return
	}
	fmt.Fprintln(c.out, "✅ Feedback submitted. Thank you!")
}

func (c *Console) adminLogin(ctx context.Context) {
	username, err := c.readLine("Enter Admin username: ")
	if err != nil {
		return
	}
	password, err := c.readLine("Enter Admin password: ")
	if err != nil {
		return
	}
	sess, err := c.uc.LoginAdmin(ctx, username, password)
	if err != nil {
		fmt.Fprintln(c.out, "❌ Invalid admin credentials!")
		return
	}
	fmt.Fprintln(c.out, "✅ Admin login successful!")
	c.adminMenu(ctx, sess)
}

func (c *Console) adminMenu(ctx context.Context, sess rentaluc.Session) {
	for {
		fmt.Fprint(c.out, "\n-------- Admin Menu --------\n")
		fmt.Fprintln(c.out, "1. Add New Vehicle")
		fmt.Fprintln(c.out, "2. View All Vehicles")
		fmt.Fprintln(c.out, "3. View All Feedback")
		fmt.Fprintln(c.out, "4. Export Feedback (JSON)")
		fmt.Fprintln(c.out, "5. Logout")
		fmt.Fprintln(c.out, "----------------------------")
		choice, err := c.readInt("Enter your choice: ")
		if err != nil {
			return
		}
		switch choice {
		case 1:
			c.addVehicle(ctx, sess)
		case 2:
			c.showAll(ctx)
		case 3:
			c.showFeedback(ctx, sess)
		case 4:
			c.exportFeedback(ctx, sess)
		case 5:
			fmt.Fprintln(c.out, "👋 Admin logged out.")
			_ = c.uc.Logout(ctx, sess.Token)
			return
		default:
			fmt.Fprintln(c.out, "❌ Invalid choice! Please try again.")
		}
	}
}

// vehicleTypes maps the numeric admin menu choices to category names.
var vehicleTypes = map[int]string{1: "Sedan", 2: "SUV", 3: "Truck"}

func (c *Console) addVehicle(ctx context.Context, sess rentaluc.Session) {
	typeChoice, err := c.readInt("Select vehicle type (1: Sedan, 2: SUV, 3: Truck): ")
	if err != nil {
		return
	}
	category, ok := vehicleTypes[typeChoice]
	if !ok {
		fmt.Fprintln(c.out, "❌ Invalid vehicle type!")
		return
	}
	brand, err := c.readLine("Enter brand: ")
	if err != nil {
		return
	}
	vmodel, err := c.readLine("Enter model: ")
	if err != nil {
		return
	}
	price, err := c.readFloat("Enter price per day: ")
	if err != nil {
		return
	}
	if _, err := c.uc.AddVehicle(ctx, sess.Token, category, brand, vmodel, price); err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	fmt.Fprintf(c.out, "✅ %s added successfully!\n", category)
}

func (c *Console) showAll(ctx context.Context) {
	entries, err := c.uc.Vehicles(ctx)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	printAllVehicles(c.out, entries)
}

func (c *Console) showFeedback(ctx context.Context, sess rentaluc.Session) {
	entries, err := c.uc.AllFeedback(ctx, sess.Token)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	printFeedback(c.out, entries)
}

func (c *Console) exportFeedback(ctx context.Context, sess rentaluc.Session) {
	entries, err := c.uc.AllFeedback(ctx, sess.Token)
	if err != nil {
		fmt.Fprintln(c.out, errMessage(err))
		return
	}
	if err := ExportFeedbackJSON(c.out, entries); err != nil {
		fmt.Fprintln(c.out, errMessage(err))
	}
}

// readLine prompts and reads one input line, trimming surrounding
// whitespace. It fails only when the input stream ends.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts and parses an integer. Non-numeric input maps to
// zero, which every menu and operation treats as an invalid choice,
// so the end-user is re-prompted instead of crashing the loop.
func (c *Console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// readFloat behaves like readInt for decimal numbers.
func (c *Console) readFloat(prompt string) (float64, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, nil
	}
	return f, nil
}
