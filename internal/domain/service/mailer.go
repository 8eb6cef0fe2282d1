package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Mailer sends transactional email.
type Mailer interface {
	// Send delivers a plain text message to the recipient.
	Send(ctx context.Context, to string, subject string, body string) error
}

// PinMailer delivers one-time PINs and account lifecycle notices to users.
type PinMailer interface {
	// SendActivationPin delivers an account activation PIN. The ttlMinutes
	// value is rendered into the message so the user knows the deadline.
	SendActivationPin(ctx context.Context, user *entity.User, pin string, ttlMinutes int) error

	// SendLoginPin delivers a login PIN bound to the requesting device.
	SendLoginPin(ctx context.Context, user *entity.User, pin string, ttlMinutes int, deviceName string) error

	// SendWelcome delivers a welcome notice after successful activation.
	SendWelcome(ctx context.Context, user *entity.User) error
}
