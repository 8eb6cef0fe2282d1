package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for the session handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(sessionUC usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// ListSessions returns the caller's active sessions.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	sessions, err := h.sessionUC.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}

// Logout ends the caller's session on the current device.
func (h *SessionHandler) Logout(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.sessionUC.Logout(c.Request().Context(), claims.UserID, claims.DeviceHash); err != nil {
		return errors.WithStack(err)
	}
	clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// LogoutAll ends every session of the caller.
func (h *SessionHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	revoked, err := h.sessionUC.LogoutAll(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]int64{"tokens_revoked": revoked}, "Logged out everywhere")
}

// ListUserSessions returns another user's active sessions. Only the owner
// or an admin may view them.
func (h *SessionHandler) ListUserSessions(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	if !middleware.IsOwnerOrAdmin(c, targetID) {
		return domainerrors.ErrForbidden
	}

	sessions, err := h.sessionUC.ListSessions(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}

// LogoutUserEverywhere force-ends every session of the given user. Meant
// for admin use; the route guards it with the manage-users capability.
func (h *SessionHandler) LogoutUserEverywhere(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid user id")
	}

	revoked, err := h.sessionUC.LogoutAll(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"tokens_revoked": revoked}, "User logged out everywhere")
}
