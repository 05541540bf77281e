package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/mock"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	testingclock "k8s.io/utils/clock/testing"
)

var clientNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestClientAuthSvc(t *testing.T) (*clientAuthService, *mock.MockLocalSessionRepository, *mock.MockServerAdapter, *mock.MockIdentityPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockLocalSessionRepository(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	identities := mock.NewMockIdentityPublisher(ctrl)

	svc := NewClientAuthService(sessions, serverAdapter, identities, logger.Nop()).(*clientAuthService)
	svc.clock = testingclock.NewFakePassiveClock(clientNow)
	return svc, sessions, serverAdapter, identities
}

func signTestToken(t *testing.T, userID string, role models.Role, expiresAt time.Time) string {
	t.Helper()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)
	return signed
}

func TestClientAuthService_Login(t *testing.T) {
	t.Run("stores session and publishes identity", func(t *testing.T) {
		svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)
		ctx := context.Background()
		token := signTestToken(t, "u-1", models.RoleUser, clientNow.Add(time.Hour))
		creds := models.User{Login: "dev@securecode.dev", Password: "secret"}

		want := models.Session{
			UserID:  "u-1",
			Login:   "dev@securecode.dev",
			Name:    "Dev",
			Role:    models.RoleUser,
			Token:   token,
			SavedAt: clientNow,
		}

		gomock.InOrder(
			serverAdapter.EXPECT().Login(ctx, creds).Return(models.User{Login: "dev@securecode.dev", Name: "Dev"}, nil),
			serverAdapter.EXPECT().Token().Return(token),
			sessions.EXPECT().SaveSession(ctx, want).Return(nil),
			identities.EXPECT().Set(want.Identity()),
		)

		session, err := svc.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, want, session)
	})

	t.Run("admin role comes from the token", func(t *testing.T) {
		svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)
		token := signTestToken(t, "a-1", models.RoleAdmin, clientNow.Add(time.Hour))

		serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Login: "admin@securecode.dev"}, nil)
		serverAdapter.EXPECT().Token().Return(token)
		sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
		identities.EXPECT().Set(gomock.Any()).Do(func(id models.Identity) {
			assert.True(t, id.IsPrivileged())
		})

		session, err := svc.Login(context.Background(), models.User{Login: "admin@securecode.dev", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, session.Role)
	})

	t.Run("persist failure does not fail login", func(t *testing.T) {
		svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)
		token := signTestToken(t, "u-1", models.RoleUser, clientNow.Add(time.Hour))

		serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Login: "dev@securecode.dev"}, nil)
		serverAdapter.EXPECT().Token().Return(token)
		sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		identities.EXPECT().Set(gomock.Any())

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: "secret"})
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, serverAdapter, _ := newTestClientAuthSvc(t)

		serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword))

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: "bad"})
		assert.ErrorIs(t, err, ErrLoginOnServer)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc, _, _, _ := newTestClientAuthSvc(t)

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestClientAuthService_Register(t *testing.T) {
	svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)
	token := signTestToken(t, "u-2", models.RoleUser, clientNow.Add(time.Hour))

	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{Login: "new@securecode.dev", Name: "New"}, nil)
	serverAdapter.EXPECT().Token().Return(token)
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)
	identities.EXPECT().Set(models.Identity{UserID: "u-2", Email: "new@securecode.dev", Name: "New", Role: models.RoleUser})

	session, err := svc.Register(context.Background(), models.User{Login: "new@securecode.dev", Name: "New", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u-2", session.UserID)

	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrConflict)
	_, err = svc.Register(context.Background(), models.User{Login: "new@securecode.dev", Password: "secret"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)
		token := signTestToken(t, "u-1", models.RoleUser, clientNow.Add(time.Hour))
		stored := models.Session{UserID: "u-1", Login: "dev@securecode.dev", Role: models.RoleUser, Token: token}

		sessions.EXPECT().GetSession(gomock.Any()).Return(stored, nil)
		serverAdapter.EXPECT().SetToken(token)
		identities.EXPECT().Set(stored.Identity())

		session, err := svc.RestoreSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, session)
	})

	t.Run("expired token is deleted", func(t *testing.T) {
		svc, sessions, _, _ := newTestClientAuthSvc(t)
		token := signTestToken(t, "u-1", models.RoleUser, clientNow.Add(-time.Minute))

		sessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{UserID: "u-1", Token: token}, nil)
		sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

		_, err := svc.RestoreSession(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("garbage token is deleted", func(t *testing.T) {
		svc, sessions, _, _ := newTestClientAuthSvc(t)

		sessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{UserID: "u-1", Token: "garbage"}, nil)
		sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

		_, err := svc.RestoreSession(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("nothing stored", func(t *testing.T) {
		svc, sessions, _, _ := newTestClientAuthSvc(t)
		sessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

		_, err := svc.RestoreSession(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, sessions, _, _ := newTestClientAuthSvc(t)
		dbErr := errors.New("database is locked")
		sessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, dbErr)

		_, err := svc.RestoreSession(context.Background())
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestClientAuthService_Logout(t *testing.T) {
	svc, sessions, serverAdapter, identities := newTestClientAuthSvc(t)

	gomock.InOrder(
		identities.EXPECT().Clear(),
		serverAdapter.EXPECT().SetToken(""),
		sessions.EXPECT().DeleteSession(gomock.Any()).Return(nil),
	)
	require.NoError(t, svc.Logout(context.Background()))

	identities.EXPECT().Clear()
	serverAdapter.EXPECT().SetToken("")
	sessions.EXPECT().DeleteSession(gomock.Any()).Return(errors.New("io error"))
	assert.Error(t, svc.Logout(context.Background()))
}
