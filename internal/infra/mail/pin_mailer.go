package mail

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// pinMailer renders PIN and lifecycle messages and hands them to a Mailer.
type pinMailer struct {
	mailer service.Mailer
}

// NewPinMailer is the constructor for pinMailer.
func NewPinMailer(mailer service.Mailer) service.PinMailer {
	return &pinMailer{mailer: mailer}
}

// SendActivationPin delivers an account activation PIN.
func (m *pinMailer) SendActivationPin(ctx context.Context, user *entity.User, pin string, ttlMinutes int) error {
	subject := "Activate your account"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account activation code is:\n\n    %s\n\nThe code expires in %d minutes. If you did not create an account, ignore this message.\n",
		user.FirstName, pin, ttlMinutes,
	)

	return m.mailer.Send(ctx, user.Email, subject, body)
}

// SendLoginPin delivers a login PIN bound to the requesting device.
func (m *pinMailer) SendLoginPin(ctx context.Context, user *entity.User, pin string, ttlMinutes int, deviceName string) error {
	subject := "Your login code"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour login code is:\n\n    %s\n\nThe code expires in %d minutes and only works on the device that requested it (%s). If you did not request a login code, you can safely ignore this message.\n",
		user.FirstName, pin, ttlMinutes, deviceName,
	)

	return m.mailer.Send(ctx, user.Email, subject, body)
}

// SendWelcome delivers a welcome notice after successful activation.
func (m *pinMailer) SendWelcome(ctx context.Context, user *entity.User) error {
	subject := "Welcome aboard"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account is now active. You can request a login code from any of your devices to sign in.\n",
		user.FirstName,
	)

	return m.mailer.Send(ctx, user.Email, subject, body)
}
