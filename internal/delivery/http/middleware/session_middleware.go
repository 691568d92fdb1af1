package middleware

import (
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context key under which the gate stores the active session.
const SessionContextKey = "session"

// SessionMiddleware guards the dashboard routes: every request behind it
// needs a live, unexpired backend session. There is no token in the request
// itself; the console holds exactly one operator session.
type SessionMiddleware struct {
	sessions service.SessionService
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession rejects the request when no session is active. The active
// session is stored on the echo context for handlers that need the admin
// identity.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := m.sessions.Current()
		if session == nil {
			return domainerrors.ErrSessionRequired
		}

		c.Set(SessionContextKey, session)

		return next(c)
	}
}
