package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/internal/utils"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"k8s.io/utils/clock"
)

type clientAuthService struct {
	sessions   store.LocalSessionRepository
	adapter    adapter.ServerAdapter
	identities IdentityPublisher
	clock      clock.PassiveClock

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter,
	identities IdentityPublisher, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:   sessions,
		adapter:    serverAdapter,
		identities: identities,
		clock:      clock.RealClock{},
		logger:     logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if user.Login == "" || user.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, registered)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if user.Login == "" || user.Password == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, found)
}

// startSession persists the session for user and publishes its identity. The
// token set on the adapter by Register/Login is the source of truth for the
// user id and role.
func (a *clientAuthService) startSession(ctx context.Context, user models.User) (models.Session, error) {
	token, err := utils.ParseTokenUnverified(a.adapter.Token())
	if err != nil {
		return models.Session{}, fmt.Errorf("reading session token: %w", err)
	}

	session := models.Session{
		UserID:  token.UserID,
		Login:   user.Login,
		Name:    user.Name,
		Role:    token.Role,
		Token:   token.SignedString,
		SavedAt: a.clock.Now(),
	}

	if err = a.sessions.SaveSession(ctx, session); err != nil {
		// the session still works for this run
		a.logger.Err(err).Msg("failed to persist session")
	}

	a.identities.Set(session.Identity())
	a.logger.Info().Str("user_id", session.UserID).Str("role", string(session.Role)).Msg("signed in")
	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("reading stored session: %w", err)
	}

	token, err := utils.ParseTokenUnverified(session.Token)
	if err != nil || token.ExpiresAt == nil || !token.ExpiresAt.After(a.clock.Now()) {
		a.logger.Info().Msg("stored session expired")
		if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
			a.logger.Err(delErr).Msg("failed to delete expired session")
		}
		return models.Session{}, ErrNoSession
	}

	a.adapter.SetToken(session.Token)
	a.identities.Set(session.Identity())
	a.logger.Info().Str("user_id", session.UserID).Msg("session restored")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.identities.Clear()
	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("deleting stored session: %w", err)
	}
	a.logger.Info().Msg("signed out")
	return nil
}
