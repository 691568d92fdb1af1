package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"
	mockService "ketalog/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware_RequireSession(t *testing.T) {
	sessions := mockService.NewMockSessionService(t)
	sessions.EXPECT().Current().Return(&service.Session{Token: "backend-token"})

	gate := NewSessionMiddleware(sessions)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/orders", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	var stored *service.Session
	next := func(c echo.Context) error {
		stored, _ = c.Get(SessionContextKey).(*service.Session)
		return nil
	}

	err := gate.RequireSession(next)(c)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "backend-token", stored.Token)
}

func TestSessionMiddleware_RejectsWithoutSession(t *testing.T) {
	sessions := mockService.NewMockSessionService(t)
	sessions.EXPECT().Current().Return(nil)

	gate := NewSessionMiddleware(sessions)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/orders", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	next := func(echo.Context) error {
		called = true
		return nil
	}

	err := gate.RequireSession(next)(c)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)
	assert.False(t, called)
}
