// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"math/big"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// cryptoPinGenerator draws numeric PINs from crypto/rand.
type cryptoPinGenerator struct{}

// NewPinGenerator is the constructor for cryptoPinGenerator.
func NewPinGenerator() service.PinGenerator {
	return &cryptoPinGenerator{}
}

// Generate returns a random numeric code of the given length. The code is
// drawn uniformly from [10^(length-1), 10^length - 1], so the leading digit
// is never zero.
func (g *cryptoPinGenerator) Generate(length int) (string, error) {
	if length < 4 || length > 12 {
		return "", errors.New("pin length out of range")
	}

	floor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(floor, big.NewInt(9))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random pin")
	}

	return n.Add(n, floor).String(), nil
}
