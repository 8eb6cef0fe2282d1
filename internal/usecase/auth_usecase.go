// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Device    entity.Device
}

// ActivateInput defines the data required to activate an account with a PIN.
type ActivateInput struct {
	Email  string
	Pin    string
	Device entity.Device
}

// ResendActivationPinInput defines the data required to reissue an activation PIN.
type ResendActivationPinInput struct {
	Email  string
	Device entity.Device
}

// RequestLoginPinInput defines the data required to request a login PIN.
type RequestLoginPinInput struct {
	Email  string
	Device entity.Device
}

// LoginInput defines the data required to log in with a PIN.
type LoginInput struct {
	Email  string
	Pin    string
	Device entity.Device
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// ActivateOutput returns the activated account's basic information. No
// tokens are minted here; the user logs in through the PIN flow afterwards.
type ActivateOutput struct {
	User *entity.User
}

// AuthOutput returns the tokens and session after a successful login.
type AuthOutput struct {
	User         *entity.User
	Session      *entity.Session
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for the PIN-based authentication flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an inactive account and sends an activation PIN to
	// the given email address.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Activate redeems an activation PIN and activates the account. Logging
	// in stays a separate step through the login PIN flow.
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	// ResendActivationPin reissues the activation PIN for an inactive
	// account. Unlike the login path, activation guides a known user
	// through signup, so an unknown email fails with a typed error.
	ResendActivationPin(ctx context.Context, input *ResendActivationPinInput) error

	// RequestLoginPin issues a login PIN bound to the requesting device.
	// Unknown and inactive accounts are answered as if a PIN was sent so
	// the endpoint cannot be used to discover which emails exist.
	RequestLoginPin(ctx context.Context, input *RequestLoginPinInput) error

	// Login redeems a login PIN on the requesting device and returns a
	// token pair. Repeated failures lock the account temporarily.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
