// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// bcryptHasher is a concrete implementation of the PinHasher interface using bcrypt.
// bcrypt automatically handles salt generation, so equal PINs produce distinct hashes.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PinHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PinHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Pin != nil && cfg.Pin.BcryptCost >= bcrypt.MinCost && cfg.Pin.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Pin.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext PIN using bcrypt.
func (h *bcryptHasher) Hash(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash pin")
	}

	return string(bytes), nil
}

// Compare checks a plaintext PIN against a bcrypt hash.
func (h *bcryptHasher) Compare(hash string, pin string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return service.ErrPinMismatch
	}

	return nil
}
