package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  7 * 24 * time.Hour,
			MaxLoginFailures: 5,
			LockoutDuration:  15 * time.Minute,
		},
		Pin: &config.PinConfig{
			Length:           6,
			BcryptCost:       10,
			ActivationTTL:    10 * time.Minute,
			LoginTTL:         5 * time.Minute,
			MaxIssuesPerHour: 3,
			NotFoundDelay:    time.Millisecond,
		},
	}
}

func newTestDevice() entity.Device {
	return entity.Device{
		Hash:      "device-hash-1",
		Name:      "Chrome on macOS",
		IP:        "203.0.113.10",
		UserAgent: "Mozilla/5.0",
	}
}
