package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and admin record reads against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account. UserID, PasswordHash and Role must be
// set by the caller; the canonical row is returned via RETURNING.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, createUser, user.UserID, user.Login, user.Name, user.PasswordHash, user.Role).
			Scan(&created.UserID, &created.Login, &created.Name, &created.Role, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByLogin retrieves the account with the given login, including its
// password hash.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findUserByLogin, login).
			Scan(&found.UserID, &found.Login, &found.Name, &found.PasswordHash, &found.Role, &found.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserRecord reads the administrative record of the user.
func (r *userRepository) GetUserRecord(ctx context.Context, userID string) (models.UserRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.UserRecord
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, getUserRecord, userID).
			Scan(&rec.UserID, &rec.Email, &rec.Name, &rec.Role, &rec.Plan, &rec.ScansUsed, &rec.ScanLimit, &rec.XP, &rec.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserRecord{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserRecord").Msg("error reading user record")
		return models.UserRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rec, nil
}
