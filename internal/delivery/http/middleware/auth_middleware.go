package middleware

import (
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the auth middleware for handlers to use.
const (
	userIDContextKey = "userID"
	claimsContextKey = "claims"
)

// AuthMiddleware provides middleware for access token authentication and authorization.
type AuthMiddleware struct {
	signer    service.TokenSigner
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(signer service.TokenSigner, sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{signer: signer, sessionUC: sessionUC}
}

// Authenticate is the core middleware function that validates the access token.
// The token must have been minted for the device making the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verify(c)
		if err != nil {
			return err
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Set(claimsContextKey, claims)

		return next(c)
	}
}

// RequireCapability is a middleware factory that checks the role's capability
// table. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := GetClaims(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !claims.Role.Can(capability) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// verify extracts and validates the bearer token and its device binding.
func (m *AuthMiddleware) verify(c echo.Context) (*entity.AccessClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, err := m.signer.VerifyAccessToken(tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrInvalidToken
	}

	// A token stolen from another device fails here even though its
	// signature is valid.
	if claims.DeviceHash != GetDevice(c).Hash {
		return nil, domainerrors.ErrDeviceMismatch
	}

	// The session must still be open. Logging out retires outstanding
	// access tokens through this check before they expire.
	if err := m.sessionUC.Heartbeat(c.Request().Context(), claims.UserID, claims.DeviceHash); err != nil {
		return nil, err
	}

	return claims, nil
}

// GetUserID returns the authenticated user's ID from the context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDContextKey).(uuid.UUID)

	return id, ok
}

// GetClaims returns the verified access token claims from the context.
func GetClaims(c echo.Context) (*entity.AccessClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(*entity.AccessClaims)

	return claims, ok
}

// IsOwnerOrAdmin reports whether the authenticated user is the owner of the
// resource or holds the admin role.
func IsOwnerOrAdmin(c echo.Context, ownerID uuid.UUID) bool {
	claims, ok := GetClaims(c)
	if !ok {
		return false
	}

	return claims.UserID == ownerID || claims.Role == entity.RoleAdmin
}
