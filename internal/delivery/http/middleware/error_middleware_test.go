package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "ketalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrOrderNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, domainerrors.ErrOrderNotFound.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrSessionRequired, "refresh order board"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.ErrSessionRequired.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Method Not Allowed", body.Message)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := handleError(t, errors.New("upstream parser blew up"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, "upstream parser blew up", body.Error.Details)
}
