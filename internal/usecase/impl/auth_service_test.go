package impl

import (
	"context"
	"testing"

	"ketalog/internal/domain/entity"
	domainerrors "ketalog/internal/domain/errors"
	"ketalog/internal/domain/service"
	"ketalog/internal/domain/upstream"
	mockService "ketalog/internal/mocks/service"
	mockUpstream "ketalog/internal/mocks/upstream"
	"ketalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	service  usecase.AuthUsecase
	auth     *mockUpstream.MockAuthAPI
	sessions *mockService.MockSessionService
}

func createTestAuthService(t *testing.T) authFixtures {
	auth := mockUpstream.NewMockAuthAPI(t)
	sessions := mockService.NewMockSessionService(t)

	return authFixtures{
		service:  NewAuthService(auth, sessions),
		auth:     auth,
		sessions: sessions,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := entity.Admin{ID: "a1", Name: "Priya", Email: "admin@ketalog.in"}
	fx.auth.EXPECT().
		Login(ctx, "admin@ketalog.in", "secret").
		Return(&upstream.LoginResult{AccessToken: "jwt-token", RefreshToken: "refresh-token", Admin: admin}, nil)

	fx.sessions.EXPECT().
		Establish(mock.MatchedBy(func(s *service.Session) bool {
			return s.Token == "jwt-token" && s.RefreshToken == "refresh-token" &&
				s.Admin.ID == "a1" && !s.SavedAt.IsZero()
		})).
		Return(nil)

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " admin@ketalog.in ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, "refresh-token", session.RefreshToken)
	assert.Equal(t, "Priya", session.Admin.Name)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "  ", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@ketalog.in"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAuthService_Session(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Current().Return(nil).Once()
	_, err := fx.service.Session(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)

	fx.sessions.EXPECT().Current().Return(&service.Session{Token: "jwt-token"}).Once()
	session, err := fx.service.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	fx.sessions.EXPECT().Terminate().Return(nil)
	assert.NoError(t, fx.service.Logout(context.Background()))
}

func TestAuthService_Profile_FromSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.sessions.EXPECT().Current().Return(nil).Once()
	_, err := fx.service.Profile(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionRequired)

	live := &service.Session{Token: "jwt-token", Admin: entity.Admin{ID: "a1", Name: "Priya"}}
	fx.sessions.EXPECT().Current().Return(live).Once()

	admin, err := fx.service.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Priya", admin.Name)

	// The returned account is a copy, not a pointer into the session.
	admin.Name = "changed"
	assert.Equal(t, "Priya", live.Admin.Name)
}

func TestAuthService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	updated := entity.Admin{ID: "a1", Name: "Priya S", Email: "admin@ketalog.in"}
	fx.auth.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(a *entity.Admin) bool {
			return a.Name == "Priya S" && a.Email == "admin@ketalog.in"
		}), "", "").
		Return(&updated, nil)

	// The live session's copy of the account is refreshed too.
	live := &service.Session{Token: "jwt-token", Admin: entity.Admin{ID: "a1", Name: "Priya"}}
	fx.sessions.EXPECT().Current().Return(live)
	fx.sessions.EXPECT().
		Establish(mock.MatchedBy(func(s *service.Session) bool {
			return s.Admin.Name == "Priya S"
		})).
		Return(nil)

	admin, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		Name:  " Priya S ",
		Email: "admin@ketalog.in",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya S", admin.Name)
}

func TestAuthService_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.UpdateProfileInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   usecase.UpdateProfileInput{Email: "admin@ketalog.in"},
			wantErr: domainerrors.ErrMissingFields,
		},
		{
			name:    "bad mobile",
			input:   usecase.UpdateProfileInput{Name: "Priya", Email: "admin@ketalog.in", Mobile: "12345"},
			wantErr: domainerrors.ErrInvalidMobile,
		},
		{
			name:    "new password without current",
			input:   usecase.UpdateProfileInput{Name: "Priya", Email: "admin@ketalog.in", NewPassword: "hunter2"},
			wantErr: domainerrors.ErrCurrentPasswordRequired,
		},
		{
			name: "password confirmation differs",
			input: usecase.UpdateProfileInput{
				Name: "Priya", Email: "admin@ketalog.in",
				CurrentPassword: "old", NewPassword: "hunter2", ConfirmPassword: "hunter3",
			},
			wantErr: domainerrors.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.UpdateProfile(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_UpdateProfile_PasswordRotation(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	updated := entity.Admin{ID: "a1", Name: "Priya", Email: "admin@ketalog.in"}
	fx.auth.EXPECT().
		UpdateProfile(ctx, mock.Anything, "old-secret", "new-secret").
		Return(&updated, nil)
	fx.sessions.EXPECT().Current().Return(nil)

	_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		Name:            "Priya",
		Email:           "admin@ketalog.in",
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	})
	require.NoError(t, err)
}

func TestAuthService_SetTheme(t *testing.T) {
	fx := createTestAuthService(t)

	fx.sessions.EXPECT().SetTheme("dark").Return(nil)
	assert.NoError(t, fx.service.SetTheme(context.Background(), "dark"))
}
