package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/mock"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/internal/validators"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "securecode-test",
	TokenDuration: time.Hour,
	AdminLogins:   []string{" Admin@SecureCode.dev "},
	Version:       "1.0.0",
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

func TestAuthService_RegisterUser(t *testing.T) {
	t.Run("regular user", func(t *testing.T) {
		svc, repo := newTestAuthService(t)

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEmpty(t, u.UserID)
				assert.Empty(t, u.Password)
				assert.Equal(t, models.RoleUser, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
				return u, nil
			})

		user, err := svc.RegisterUser(context.Background(), models.User{Login: " dev@securecode.dev ", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "dev@securecode.dev", user.Login)
	})

	t.Run("configured admin login", func(t *testing.T) {
		svc, repo := newTestAuthService(t)

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) { return u, nil })

		user, err := svc.RegisterUser(context.Background(), models.User{Login: "admin@securecode.dev", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.RegisterUser(context.Background(), models.User{Login: "dev@securecode.dev"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("login is not an email", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.RegisterUser(context.Background(), models.User{Login: "dev", Password: "secret"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidLogin)
	})

	t.Run("login taken", func(t *testing.T) {
		svc, repo := newTestAuthService(t)

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

		_, err := svc.RegisterUser(context.Background(), models.User{Login: "dev@securecode.dev", Password: "secret"})
		assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: "u-1", Login: "dev@securecode.dev", PasswordHash: string(hash), Role: models.RoleUser}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "dev@securecode.dev").Return(stored, nil)

		user, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.UserID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "dev@securecode.dev").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: "nope"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown login", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByLogin(gomock.Any(), "ghost@securecode.dev").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(context.Background(), models.User{Login: "ghost@securecode.dev", Password: "secret"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("password longer than any registered one", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: strings.Repeat("p", 73)})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		dbErr := errors.New("connection reset")
		repo.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.Login(context.Background(), models.User{Login: "dev@securecode.dev", Password: "secret"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrWrongPassword)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.CreateToken(ctx, models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
