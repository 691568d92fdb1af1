// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ketalog/internal/domain/entity"
	"ketalog/internal/domain/service"
)

// AuthUsecase defines the interface for console sign-in, sign-out and the
// admin's own profile.
type AuthUsecase interface {
	// Login exchanges credentials for a backend session and installs it.
	Login(ctx context.Context, input *LoginInput) (*service.Session, error)

	// Logout drops the session and its persisted snapshot.
	Logout(ctx context.Context) error

	// Session returns the active session, or nil when signed out.
	Session(ctx context.Context) (*service.Session, error)

	// SetTheme updates the operator's theme preference.
	SetTheme(ctx context.Context, theme string) error

	// Profile returns the admin account behind the session.
	Profile(ctx context.Context) (*entity.Admin, error)

	// UpdateProfile modifies the admin account, optionally rotating the
	// password.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Admin, error)
}

// --- Input DTOs ---

// LoginInput defines the credentials for a console sign-in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the data required to update the admin profile.
// Password fields stay empty when only contact details change.
type UpdateProfileInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}
