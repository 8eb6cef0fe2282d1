// Package fingerprint derives stable device identities from HTTP request signals.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// sha256Fingerprinter is a concrete implementation of the Fingerprinter
// interface. The hash covers the client IP, user agent and accept headers,
// which is a weak identifier but stable enough to bind PINs and tokens to a
// browser installation.
type sha256Fingerprinter struct{}

// NewFingerprinter is the constructor for sha256Fingerprinter.
func NewFingerprinter() service.Fingerprinter {
	return &sha256Fingerprinter{}
}

// Fingerprint computes the device hash and a human readable device name.
func (f *sha256Fingerprinter) Fingerprint(signals service.RequestSignals) entity.Device {
	// Field order is part of the identity. Changing it would invalidate
	// every stored device hash.
	raw := strings.Join([]string{
		signals.IP,
		signals.UserAgent,
		signals.AcceptLanguage,
		signals.AcceptEncoding,
	}, "|")
	sum := sha256.Sum256([]byte(raw))

	return entity.Device{
		Hash:           hex.EncodeToString(sum[:]),
		Name:           deviceName(signals.UserAgent),
		IP:             signals.IP,
		UserAgent:      signals.UserAgent,
		AcceptLanguage: signals.AcceptLanguage,
		AcceptEncoding: signals.AcceptEncoding,
	}
}

// deviceName classifies a user agent into a "Browser on OS" label.
// The label is display only and never part of the hash.
func deviceName(userAgent string) string {
	if userAgent == "" {
		return "Unknown Device"
	}

	ua := strings.ToLower(userAgent)

	os := "Unknown OS"
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "mac os"), strings.Contains(ua, "macintosh"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	}

	browser := "Unknown Browser"
	switch {
	// Edge and Opera embed "chrome" in their user agents, so check them first.
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "opr"), strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	}

	return browser + " on " + os
}
