package session

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"ketalog/internal/domain/entity"
	"ketalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestSessionService_RehydratesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&service.Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		Admin: entity.Admin{ID: "a1", Name: "Priya"},
	}))

	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Priya", session.Admin.Name)
}

func TestSessionService_DiscardsExpiredSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(&service.Session{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
	}))

	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)
	assert.Nil(t, svc.Current())

	// The stale snapshot must not come back on the next startup either.
	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, reloaded)
}

func TestSessionService_CurrentDropsExpiredToken(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, svc.Establish(&service.Session{
		Token: signedToken(t, time.Now().Add(-time.Minute)),
	}))

	assert.Nil(t, svc.Current())
	assert.Empty(t, svc.Token())
}

func TestSessionService_OpaqueTokenNeverExpires(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, svc.Establish(&service.Session{Token: "opaque-backend-token"}))

	assert.Equal(t, "opaque-backend-token", svc.Token())
}

func TestSessionService_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	assert.Nil(t, svc.Current())

	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, svc.Establish(&service.Session{
		Token: token,
		Admin: entity.Admin{ID: "a1"},
	}))
	assert.Equal(t, token, svc.Token())

	require.NoError(t, svc.SetTheme("dark"))
	assert.Equal(t, "dark", svc.Current().Theme)

	// Theme survives a restart through the snapshot.
	restarted, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, "dark", restarted.Current().Theme)

	require.NoError(t, svc.Terminate())
	assert.Nil(t, svc.Current())
	assert.Empty(t, svc.Token())
}

func TestSessionService_SetThemeWithoutSession(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	assert.NoError(t, svc.SetTheme("dark"))
	assert.Nil(t, svc.Current())
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	svc, err := NewSessionService(store, newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, svc.Establish(&service.Session{
		Token: "opaque-backend-token",
		Admin: entity.Admin{Name: "Priya"},
	}))

	first := svc.Current()
	first.Admin.Name = "mutated"

	assert.Equal(t, "Priya", svc.Current().Admin.Name)
}
