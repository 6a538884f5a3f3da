// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentaluc contains the rental UseCase which orchestrates the
// vehicle catalog, customer directory, and feedback log in order to
// support the rental console use cases:
//  1. Registering a customer and logging in/out,
//  2. Resetting a forgotten password,
//  3. Renting and returning vehicles with billed bookings,
//  4. Submitting and reviewing feedback,
//  5. Administering the catalog.
//
// Session bound operations take an opaque token which was minted by a
// login operation. Every successful login mints a fresh token and
// older tokens stay valid until their logout, so the single-session
// console behavior is a policy of the caller, not of this layer.
package rentaluc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/momeni/rental-console/pkg/core/cerr"
	"github.com/momeni/rental-console/pkg/core/log"
	"github.com/momeni/rental-console/pkg/core/model"
	"github.com/momeni/rental-console/pkg/core/repo"
)

// Sentinel errors for session and rental state rule violations.
// Validation errors of the lower layers (such as the duration and
// category errors of the model package or the not-found errors of the
// repository ports) pass through this package wrapped in a categorized
// cerr.Error, so callers can rely on errors.Is/As uniformly.
var (
	ErrNotAuthenticated     = errors.New("no customer is currently logged in")
	ErrAdminSessionRequired = errors.New("operation requires an admin session")
	ErrAlreadyRented        = errors.New("vehicle is already rented")
	ErrNotRented            = errors.New("vehicle is not currently rented")
	ErrNotYourRental        = errors.New("vehicle is rented by another customer")
)

// UseCase represents the rental use case. It holds the three
// repository ports and the admin credential checker, plus the set of
// active sessions keyed by their tokens.
type UseCase struct {
	catalog   repo.Catalog
	customers repo.Customers
	feedback  repo.FeedbackLog

	admin    Credentials
	sessions map[uuid.UUID]*session
}

// New instantiates a rental use case.
// Required collaborators are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	catalog repo.Catalog,
	customers repo.Customers,
	feedback repo.FeedbackLog,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		catalog:   catalog,
		customers: customers,
		feedback:  feedback,
		sessions:  make(map[uuid.UUID]*session),
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.admin == nil {
		uc.admin = StaticCredentials("admin", "admin123")
	}
	return uc, nil
}

// Register appends a new customer to the directory, failing with a
// conflict wrapping repo.ErrDuplicateUsername if the username is
// already taken.
func (uc *UseCase) Register(ctx context.Context, name, username, password string) error {
	err := uc.customers.Register(ctx, model.NewCustomer(name, username, password))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return cerr.Conflict(err)
		}
		return err
	}
	log.Info(ctx, "customer registered", slog.String("username", username))
	return nil
}

// Login authenticates a customer and mints a session token for them,
// failing with an authentication error wrapping
// repo.ErrInvalidCredentials for an unknown username/password pair.
func (uc *UseCase) Login(ctx context.Context, username, password string) (Session, error) {
	c, err := uc.customers.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			return Session{}, cerr.Authentication(err)
		}
		return Session{}, err
	}
	s := &session{customer: c, username: c.Username}
	token := uc.mint(s)
	log.Info(
		ctx, "customer logged in",
		slog.String("username", c.Username), log.Token("session", token),
	)
	return s.describe(token), nil
}

// LoginAdmin checks the given pair against the configured admin
// credentials and mints an admin session token on an exact match.
func (uc *UseCase) LoginAdmin(ctx context.Context, username, password string) (Session, error) {
	if !uc.admin.Check(username, password) {
		return Session{}, cerr.Authentication(repo.ErrInvalidCredentials)
	}
	s := &session{username: username, admin: true}
	token := uc.mint(s)
	log.Info(
		ctx, "admin logged in",
		slog.String("username", username), log.Token("session", token),
	)
	return s.describe(token), nil
}

// Logout invalidates the given session token. Unknown tokens fail
// with an authentication error.
func (uc *UseCase) Logout(ctx context.Context, token uuid.UUID) error {
	if _, ok := uc.sessions[token]; !ok {
		return cerr.Authentication(ErrNotAuthenticated)
	}
	delete(uc.sessions, token)
	log.Debug(ctx, "session closed", log.Token("session", token))
	return nil
}

// CurrentUser describes the session behind the given token.
func (uc *UseCase) CurrentUser(ctx context.Context, token uuid.UUID) (Session, error) {
	s, ok := uc.sessions[token]
	if !ok {
		return Session{}, cerr.Authentication(ErrNotAuthenticated)
	}
	return s.describe(token), nil
}

// ResetPassword overwrites the password of the username customer with
// no old-password check, failing with a not-found error wrapping
// repo.ErrUserNotFound for unknown usernames.
func (uc *UseCase) ResetPassword(ctx context.Context, username, newPassword string) error {
	err := uc.customers.ResetPassword(ctx, username, newPassword)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return cerr.NotFound(err)
		}
		return err
	}
	log.Info(ctx, "password reset", slog.String("username", username))
	return nil
}

// AddVehicle appends a new available vehicle to the catalog on behalf
// of an admin session. Unrecognized categories and non-positive
// prices are rejected as bad requests and never grow the catalog.
func (uc *UseCase) AddVehicle(
	ctx context.Context,
	token uuid.UUID,
	category, brand, vmodel string,
	pricePerDay float64,
) (model.Vehicle, error) {
	if _, err := uc.adminSession(token); err != nil {
		return model.Vehicle{}, err
	}
	cat, err := model.ParseCategory(category)
	if err != nil {
		return model.Vehicle{}, cerr.BadRequest(
			fmt.Errorf("%w: %q", err, category),
		)
	}
	v, err := uc.catalog.Add(ctx, model.Vehicle{
		Category:    cat,
		Brand:       brand,
		Model:       vmodel,
		PricePerDay: pricePerDay,
	})
	if err != nil {
		return model.Vehicle{}, cerr.BadRequest(err)
	}
	log.Info(
		ctx, "vehicle added",
		slog.String("category", cat.String()),
		slog.String("brand", v.Brand), slog.String("model", v.Model),
		log.Token("vehicle", v.ID),
	)
	return v, nil
}

// Vehicles lists the whole catalog in insertion order.
func (uc *UseCase) Vehicles(ctx context.Context) ([]repo.Entry, error) {
	return uc.catalog.List(ctx)
}

// AvailableVehicles lists the available vehicles, preserving their
// catalog positions.
func (uc *UseCase) AvailableVehicles(ctx context.Context) ([]repo.Entry, error) {
	return uc.catalog.ListAvailable(ctx)
}

// Rent rents the index vehicle for the session customer during the
// given number of days, returning the created booking for receipt
// rendering. The checks run in order: active customer session, index
// validity, availability, duration. The first failing check
// short-circuits with no mutation at all.
func (uc *UseCase) Rent(ctx context.Context, token uuid.UUID, index, days int) (model.Booking, error) {
	s, err := uc.customerSession(token)
	if err != nil {
		return model.Booking{}, err
	}
	v, err := uc.catalog.Get(ctx, index)
	if err != nil {
		return model.Booking{}, cerr.NotFound(err)
	}
	if !v.Available {
		return model.Booking{}, cerr.Conflict(ErrAlreadyRented)
	}
	b, err := model.NewBooking(v, days)
	if err != nil {
		return model.Booking{}, cerr.BadRequest(err)
	}
	if err := uc.catalog.SetAvailability(ctx, v.ID, false); err != nil {
		return model.Booking{}, err
	}
	s.customer.AddRented(v.ID)
	s.customer.AddBooking(b)
	log.Info(
		ctx, "vehicle rented",
		slog.String("username", s.customer.Username),
		log.Token("vehicle", v.ID), slog.Int("days", days),
	)
	return b, nil
}

// Return gives the index vehicle back on behalf of the session
// customer, marking it available again. The checks run in order:
// active customer session, index validity, the vehicle being rented
// at all, and the session customer being its holder.
// The booking history is not touched; it is never rolled back.
func (uc *UseCase) Return(ctx context.Context, token uuid.UUID, index int) error {
	s, err := uc.customerSession(token)
	if err != nil {
		return err
	}
	v, err := uc.catalog.Get(ctx, index)
	if err != nil {
		return cerr.NotFound(err)
	}
	if v.Available {
		return cerr.Conflict(ErrNotRented)
	}
	if !s.customer.IsRenting(v.ID) {
		return cerr.Authorization(ErrNotYourRental)
	}
	if err := uc.catalog.SetAvailability(ctx, v.ID, true); err != nil {
		return err
	}
	s.customer.RemoveRented(v.ID)
	log.Info(
		ctx, "vehicle returned",
		slog.String("username", s.customer.Username),
		log.Token("vehicle", v.ID),
	)
	return nil
}

// History returns a copy of the session customer booking history in
// insertion order.
func (uc *UseCase) History(ctx context.Context, token uuid.UUID) ([]model.Booking, error) {
	s, err := uc.customerSession(token)
	if err != nil {
		return nil, err
	}
	return s.customer.History(), nil
}

// SubmitFeedback appends a feedback comment on behalf of the session
// customer.
func (uc *UseCase) SubmitFeedback(ctx context.Context, token uuid.UUID, comment string) error {
	s, err := uc.customerSession(token)
	if err != nil {
		return err
	}
	return uc.feedback.Submit(ctx, model.Feedback{
		Username: s.customer.Username,
		Comment:  comment,
	})
}

// AllFeedback returns the submitted feedback entries for an admin
// session review.
func (uc *UseCase) AllFeedback(ctx context.Context, token uuid.UUID) ([]model.Feedback, error) {
	if _, err := uc.adminSession(token); err != nil {
		return nil, err
	}
	return uc.feedback.All(ctx)
}

func (uc *UseCase) mint(s *session) uuid.UUID {
	token := uuid.New()
	uc.sessions[token] = s
	return token
}

func (uc *UseCase) customerSession(token uuid.UUID) (*session, error) {
	s, ok := uc.sessions[token]
	if !ok || s.customer == nil {
		return nil, cerr.Authentication(ErrNotAuthenticated)
	}
	return s, nil
}

func (uc *UseCase) adminSession(token uuid.UUID) (*session, error) {
	s, ok := uc.sessions[token]
	if !ok {
		return nil, cerr.Authentication(ErrNotAuthenticated)
	}
	if !s.admin {
		return nil, cerr.Authorization(ErrAdminSessionRequired)
	}
	return s, nil
}
