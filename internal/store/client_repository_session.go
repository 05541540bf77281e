package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// localSessionRepository stores the client session in a single SQLite row.
type localSessionRepository struct {
	logger *logger.Logger
	db     *DB
	sqlite sq.StatementBuilderType
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	logger.Debug().Msg("creating local session repository")
	return &localSessionRepository{
		db:     db,
		logger: logger,
		sqlite: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// SaveSession replaces the stored session.
func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := r.sqlite.
		Insert(localSessionTable).
		Columns("id", "user_id", "login", "name", "role", "token", "saved_at").
		Values(localSessionID, session.UserID, session.Login, session.Name, string(session.Role), session.Token, session.SavedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			login = excluded.login,
			name = excluded.name,
			role = excluded.role,
			token = excluded.token,
			saved_at = excluded.saved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetSession returns the stored session or [ErrLocalSessionNotFound].
func (r *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := r.sqlite.
		Select("user_id", "login", "name", "role", "token", "saved_at").
		From(localSessionTable).
		Where(sq.Eq{"id": localSessionID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.UserID, &s.Login, &s.Name, &s.Role, &s.Token, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

// DeleteSession forgets the stored session. Deleting a missing session is not
// an error.
func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := r.sqlite.
		Delete(localSessionTable).
		Where(sq.Eq{"id": localSessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
