package middleware

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// deviceContextKey stores the computed device identity in echo.Context.
const deviceContextKey = "device"

// DeviceMiddleware derives the device fingerprint for every request so
// handlers and the auth middleware can rely on it being present.
type DeviceMiddleware struct {
	fingerprinter service.Fingerprinter
}

// NewDeviceMiddleware is the constructor for DeviceMiddleware.
func NewDeviceMiddleware(fingerprinter service.Fingerprinter) *DeviceMiddleware {
	return &DeviceMiddleware{fingerprinter: fingerprinter}
}

// Handle computes the device identity from the request signals.
func (m *DeviceMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		device := m.fingerprinter.Fingerprint(service.RequestSignals{
			IP:             c.RealIP(),
			UserAgent:      req.UserAgent(),
			AcceptLanguage: req.Header.Get("Accept-Language"),
			AcceptEncoding: req.Header.Get("Accept-Encoding"),
		})
		c.Set(deviceContextKey, device)

		return next(c)
	}
}

// GetDevice returns the device identity computed for the request.
// The zero Device is returned when the middleware did not run.
func GetDevice(c echo.Context) entity.Device {
	if device, ok := c.Get(deviceContextKey).(entity.Device); ok {
		return device
	}

	return entity.Device{}
}
