package impl

import (
	"context"
	"strings"
	"time"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"
	"ketalog/internal/domain/upstream"
	"ketalog/internal/errors"
	"ketalog/internal/usecase"
)

type authService struct {
	auth     upstream.AuthAPI
	sessions service.SessionService
}

// NewAuthService creates a new auth service instance
func NewAuthService(auth upstream.AuthAPI, sessions service.SessionService) usecase.AuthUsecase {
	return &authService{
		auth:     auth,
		sessions: sessions,
	}
}

// Login exchanges credentials for a backend session and installs it.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*service.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	result, err := s.auth.Login(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	session := &service.Session{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		Admin:        result.Admin,
		SavedAt:      time.Now(),
	}
	if err := s.sessions.Establish(session); err != nil {
		return nil, errors.Wrap(err, "establish session")
	}

	return session, nil
}

// Logout drops the session and its persisted snapshot.
func (s *authService) Logout(_ context.Context) error {
	return s.sessions.Terminate()
}

// Session returns the active session.
func (s *authService) Session(_ context.Context) (*service.Session, error) {
	session := s.sessions.Current()
	if session == nil {
		return nil, domainerrors.ErrSessionRequired
	}

	return session, nil
}

// SetTheme updates the operator's theme preference.
func (s *authService) SetTheme(_ context.Context, theme string) error {
	return s.sessions.SetTheme(theme)
}

// Profile returns the admin account behind the session. The account is
// served from the session snapshot; the backend exposes no profile read,
// only the update below.
func (s *authService) Profile(_ context.Context) (*entity.Admin, error) {
	session := s.sessions.Current()
	if session == nil {
		return nil, domainerrors.ErrSessionRequired
	}

	admin := session.Admin
	return &admin, nil
}

// UpdateProfile modifies the admin account, optionally rotating the password.
func (s *authService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Admin, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return nil, domainerrors.ErrMissingFields
	}

	mobile := strings.TrimSpace(input.Mobile)
	if mobile != "" && !validMobile(mobile) {
		return nil, domainerrors.ErrInvalidMobile
	}

	if input.NewPassword != "" {
		if input.CurrentPassword == "" {
			return nil, domainerrors.ErrCurrentPasswordRequired
		}
		if input.NewPassword != input.ConfirmPassword {
			return nil, domainerrors.ErrPasswordMismatch
		}
	}

	admin := &entity.Admin{
		Name:   name,
		Email:  email,
		Mobile: mobile,
	}

	updated, err := s.auth.UpdateProfile(ctx, admin, input.CurrentPassword, input.NewPassword)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			_ = s.sessions.Terminate()
			return nil, domainerrors.ErrSessionExpired
		}
		return nil, errors.Wrap(err, "update profile")
	}

	// Keep the session's copy of the account in step.
	if session := s.sessions.Current(); session != nil {
		session.Admin = *updated
		if err := s.sessions.Establish(session); err != nil {
			return nil, errors.Wrap(err, "refresh session")
		}
	}

	return updated, nil
}
