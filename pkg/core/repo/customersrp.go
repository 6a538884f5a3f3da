package repo

import (
	"context"
	"errors"

	"github.com/momeni/rental-console/pkg/core/model"
)

// Port-level sentinel errors of the customer directory.
var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("username not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Customers interface {
	// Register appends a new customer, failing with
	// ErrDuplicateUsername if the username is taken (case-sensitive
	// exact match).
	Register(ctx context.Context, c *model.Customer) error
	// Authenticate scans for the first customer with exactly the
	// given username and password, failing with ErrInvalidCredentials
	// when no such pair exists. The returned pointer aliases the
	// directory-owned customer, so its state transitions are visible
	// to subsequent calls.
	Authenticate(ctx context.Context, username, password string) (*model.Customer, error)
	// FindByUsername fails with ErrUserNotFound for unknown usernames.
	FindByUsername(ctx context.Context, username string) (*model.Customer, error)
	// ResetPassword overwrites the password of the username customer,
	// failing with ErrUserNotFound for unknown usernames. No old
	// password is required.
	ResetPassword(ctx context.Context, username, newPassword string) error
}
