// Package handler contains the HTTP handlers for the admin console.
package handler

import (
	"log/slog"
	"net/http"

	"ketalog/internal/delivery/http/response"
	"ketalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for sign-in and session handlers.
type SessionHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.AuthUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the console sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	session, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// Logout drops the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Current returns the active session.
func (h *SessionHandler) Current(c echo.Context) error {
	session, err := h.uc.Session(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// themeInput is the body of the theme preference update.
type themeInput struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// SetTheme updates the operator's theme preference.
func (h *SessionHandler) SetTheme(c echo.Context) error {
	var input themeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.SetTheme(c.Request().Context(), input.Theme); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Theme updated")
}

// Profile returns the admin account behind the session.
func (h *SessionHandler) Profile(c echo.Context) error {
	admin, err := h.uc.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "")
}

// UpdateProfile modifies the admin account.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	admin, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "Profile updated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
