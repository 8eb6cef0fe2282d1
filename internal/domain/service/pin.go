package service

import "storefront/internal/errors"

// ErrPinMismatch indicates a candidate PIN does not match its stored hash.
var ErrPinMismatch = errors.New("pin does not match")

// PinGenerator produces random numeric PIN codes.
type PinGenerator interface {
	// Generate returns a random numeric code of the given length, zero
	// padded, drawn from a cryptographic source.
	Generate(length int) (string, error)
}

// PinHasher hashes PIN codes for storage and verifies candidates against
// stored hashes. PINs are never persisted in plaintext.
type PinHasher interface {
	// Hash returns a one-way hash of the plaintext PIN.
	Hash(pin string) (string, error)

	// Compare checks a candidate PIN against a stored hash.
	// Returns ErrPinMismatch when they do not match.
	Compare(hash string, pin string) error
}
