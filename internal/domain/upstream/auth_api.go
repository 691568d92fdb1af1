package upstream

import (
	"context"

	"ketalog/internal/domain/entity"
)

// LoginResult carries the token pair and admin account returned by a
// successful backend login.
type LoginResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	Admin        entity.Admin `json:"admin"`
}

// AuthAPI defines the admin authentication operations of the marketplace backend.
type AuthAPI interface {
	// Login exchanges credentials for a session token pair.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// UpdateProfile modifies the admin account. password fields are empty
	// when only contact details change.
	UpdateProfile(ctx context.Context, admin *entity.Admin, currentPassword, newPassword string) (*entity.Admin, error)
}
