package service

import "storefront/internal/domain/entity"

// RequestSignals carries the raw request attributes a fingerprint is
// derived from.
type RequestSignals struct {
	IP             string
	UserAgent      string
	AcceptLanguage string
	AcceptEncoding string
}

// Fingerprinter derives a stable device identity from request signals.
type Fingerprinter interface {
	// Fingerprint computes the device hash and a human readable device
	// name from the request signals. The same signals always produce the
	// same hash.
	Fingerprint(signals RequestSignals) entity.Device
}
