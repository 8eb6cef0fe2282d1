package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RefreshInput defines the data required to refresh an access token.
type RefreshInput struct {
	RefreshToken string
	Device       entity.Device
}

// RefreshOutput returns the newly minted access token. The refresh token is
// not rotated, so the caller keeps using the one it presented.
type RefreshOutput struct {
	AccessToken string
	User        *entity.User
}

// TokenUsecase defines the interface for token lifecycle operations.
type TokenUsecase interface {
	// Refresh validates a refresh token against its stored record and the
	// requesting device, then mints a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}
