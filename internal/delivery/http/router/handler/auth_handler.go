// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const refreshTokenCookie = "refresh_token"

// pinSentMessage is shared by the endpoints that must not reveal whether an
// email address exists.
const pinSentMessage = "If an account exists for that email, a code has been sent"

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	tokenUC usecase.TokenUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, tokenUC usecase.TokenUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		tokenUC: tokenUC,
		cfg:     cfg,
		logger:  logger,
	}
}

// --- Request bodies ---

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
}

type activateRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pin   string `json:"pin" validate:"required,numeric"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pin   string `json:"pin" validate:"required,numeric"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// --- Response bodies ---

// userView is the account representation returned to clients. Lock and
// attempt bookkeeping stays server side.
type userView struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type authView struct {
	User        userView            `json:"user"`
	Session     *entity.SessionInfo `json:"session"`
	AccessToken string              `json:"access_token"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Device:    middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "Account created, check your email for the activation code")
}

// Activate handles the account activation request.
func (h *AuthHandler) Activate(c echo.Context) error {
	var req activateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Activate(c.Request().Context(), &usecase.ActivateInput{
		Email:  req.Email,
		Pin:    req.Pin,
		Device: middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(output.User), "Account activated, request a login code to sign in")
}

// ResendActivationPin handles reissuing the activation PIN.
func (h *AuthHandler) ResendActivationPin(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.authUC.ResendActivationPin(c.Request().Context(), &usecase.ResendActivationPinInput{
		Email:  req.Email,
		Device: middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, pinSentMessage)
}

// RequestLoginPin handles issuing a login PIN for the requesting device.
func (h *AuthHandler) RequestLoginPin(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.authUC.RequestLoginPin(c.Request().Context(), &usecase.RequestLoginPinInput{
		Email:  req.Email,
		Device: middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, pinSentMessage)
}

// Login handles the PIN login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:  req.Email,
		Pin:    req.Pin,
		Device: middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, h.toAuthView(output), "Login successful")
}

// Refresh handles minting a new access token from a refresh token. The token
// is read from the request body, falling back to the refresh cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}
	if req.RefreshToken == "" {
		return response.Unauthorized(c, "INVALID_REFRESH_TOKEN", "Refresh token is missing")
	}

	output, err := h.tokenUC.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
		Device:       middleware.GetDevice(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken}, "Token refreshed")
}

func (h *AuthHandler) toAuthView(output *usecase.AuthOutput) authView {
	return authView{
		User:        toUserView(output.User),
		Session:     output.Session.Info(),
		AccessToken: output.AccessToken,
	}
}

// setRefreshCookie stores the refresh token in an HTTP-only cookie so browser
// clients never have to touch it from script.
func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    token,
		Path:     "/auth",
		MaxAge:   int(h.cfg.Auth.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie expires the refresh cookie.
func clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
