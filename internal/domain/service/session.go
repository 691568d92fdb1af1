// Package service defines the interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"time"

	"ketalog/internal/domain/entity"
)

// Session is the console's authenticated state: the backend token pair plus
// the admin account it belongs to and the operator's UI preferences. The
// refresh token is persisted but never exercised here; expiry is the
// backend's concern and surfaces as a rejected access token.
type Session struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	Admin        entity.Admin `json:"admin"`
	Theme        string       `json:"theme,omitempty"`
	SavedAt      time.Time    `json:"saved_at"`
}

// StateStore persists a session across process restarts. Implementations
// must treat a missing or unreadable snapshot as "no session", never as an
// error the caller has to handle.
type StateStore interface {
	// Load returns the persisted session, or nil when none is stored or
	// the snapshot cannot be decoded.
	Load() (*Session, error)

	// Save persists the session snapshot.
	Save(session *Session) error

	// Clear removes the persisted snapshot.
	Clear() error
}

// SessionService holds the live session and keeps the StateStore in sync.
type SessionService interface {
	// Current returns the active session, or nil when signed out or the
	// token has expired.
	Current() *Session

	// Token returns the backend token of the active session, or "" when
	// signed out.
	Token() string

	// Establish installs a new session after login and persists it.
	Establish(session *Session) error

	// Terminate drops the session and clears the persisted snapshot.
	Terminate() error

	// SetTheme updates the operator's theme preference in place.
	SetTheme(theme string) error
}
