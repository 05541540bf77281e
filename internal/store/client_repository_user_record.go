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

// localUserRecordRepository caches admin records in SQLite.
type localUserRecordRepository struct {
	logger *logger.Logger
	db     *DB
	sqlite sq.StatementBuilderType
}

func NewLocalUserRecordRepository(db *DB, logger *logger.Logger) LocalUserRecordRepository {
	logger.Debug().Msg("creating local user record repository")
	return &localUserRecordRepository{
		db:     db,
		logger: logger,
		sqlite: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// SaveUserRecord upserts the record. A copy older than the cached one is
// ignored, so overlapping sync attempts cannot roll the cache back.
func (r *localUserRecordRepository) SaveUserRecord(ctx context.Context, synced models.SyncResponse) error {
	rec := synced.Record
	query, args, err := r.sqlite.
		Insert(localUserRecordTable).
		Columns("user_id", "email", "name", "role", "plan", "scans_used", "scan_limit", "xp", "updated_at", "synced_at").
		Values(rec.UserID, rec.Email, rec.Name, string(rec.Role), rec.Plan, rec.ScansUsed, rec.ScanLimit, rec.XP, rec.UpdatedAt, synced.SyncedAt).
		Suffix(`ON CONFLICT(user_id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			role = excluded.role,
			plan = excluded.plan,
			scans_used = excluded.scans_used,
			scan_limit = excluded.scan_limit,
			xp = excluded.xp,
			updated_at = excluded.updated_at,
			synced_at = excluded.synced_at
			WHERE excluded.synced_at >= local_user_records.synced_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localUserRecordRepository.SaveUserRecord").Msg("error saving user record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetUserRecord returns the cached record of userID or [ErrLocalRecordNotFound].
func (r *localUserRecordRepository) GetUserRecord(ctx context.Context, userID string) (models.SyncResponse, error) {
	query, args, err := r.sqlite.
		Select("user_id", "email", "name", "role", "plan", "scans_used", "scan_limit", "xp", "updated_at", "synced_at").
		From(localUserRecordTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out models.SyncResponse
	rec := &out.Record
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&rec.UserID, &rec.Email, &rec.Name, &rec.Role, &rec.Plan, &rec.ScansUsed, &rec.ScanLimit, &rec.XP, &rec.UpdatedAt, &out.SyncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncResponse{}, ErrLocalRecordNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localUserRecordRepository.GetUserRecord").Msg("error reading user record")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return out, nil
}
