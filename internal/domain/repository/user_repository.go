package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailExists indicates the email address is already registered.
	ErrUserEmailExists = errors.New("user email already exists")
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user account.
	// Returns ErrUserEmailExists when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by primary key.
	// Returns ErrUserNotFound when no active user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	// Returns ErrUserNotFound when no active user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAny retrieves a user by email address, including
	// soft-deleted rows. Used by registration so a closed account can be
	// restored instead of colliding with the email uniqueness constraint.
	FindByEmailAny(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user account.
	Update(ctx context.Context, user *entity.User) error

	// UpdateLoginState persists only the login bookkeeping columns
	// (login attempts, lock expiry and last login) for a user.
	UpdateLoginState(ctx context.Context, user *entity.User) error
}
