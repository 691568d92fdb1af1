package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ketalog/internal/domain/service"
)

type sessionService struct {
	store  service.StateStore
	logger *slog.Logger

	mu      sync.RWMutex
	session *service.Session
}

// NewSessionService creates the live session holder, rehydrating any
// persisted snapshot. An expired snapshot is discarded on the spot.
func NewSessionService(store service.StateStore, logger *slog.Logger) (service.SessionService, error) {
	s := &sessionService{
		store:  store,
		logger: logger,
	}

	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	if session != nil {
		if tokenExpired(session.Token) {
			logger.Info("persisted session expired, discarding")
			_ = store.Clear()
		} else {
			s.session = session
		}
	}

	return s, nil
}

// Current returns the active session, dropping it when the token has
// expired since the last check.
func (s *sessionService) Current() *service.Session {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if session == nil {
		return nil
	}

	if tokenExpired(session.Token) {
		if err := s.Terminate(); err != nil {
			s.logger.Warn("expired session cleanup failed", "error", err)
		}
		return nil
	}

	copied := *session
	return &copied
}

func (s *sessionService) Token() string {
	if session := s.Current(); session != nil {
		return session.Token
	}

	return ""
}

func (s *sessionService) Establish(session *service.Session) error {
	s.mu.Lock()
	copied := *session
	s.session = &copied
	s.mu.Unlock()

	return s.store.Save(session)
}

func (s *sessionService) Terminate() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	return s.store.Clear()
}

func (s *sessionService) SetTheme(theme string) error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil
	}
	s.session.Theme = theme
	copied := *s.session
	s.mu.Unlock()

	return s.store.Save(&copied)
}

// tokenExpired inspects the backend token's exp claim without verifying the
// signature; verification is the backend's job, the console only needs to
// know when to stop presenting the token.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens carry no expiry the console can read.
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
