package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// syncRecordRepository is the PostgreSQL implementation of [SyncRecordRepository].
type syncRecordRepository struct {
	logger *logger.Logger
	db     *DB
	psql   sq.StatementBuilderType
}

func NewSyncRecordRepository(db *DB, logger *logger.Logger) SyncRecordRepository {
	logger.Debug().Msg("creating sync record repository")
	return &syncRecordRepository{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveSyncRecord appends one entry to the sync log and returns it with its id.
// A reference to an unknown user yields [ErrNoUserWasFound].
func (r *syncRecordRepository) SaveSyncRecord(ctx context.Context, record models.SyncRecord) (models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.psql.
		Insert(syncRecordsTable).
		Columns("user_id", "requested_by", "synced_at").
		Values(record.UserID, record.RequestedBy, record.SyncedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*syncRecordRepository.SaveSyncRecord").Msg("error saving sync record")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.SyncRecord{}, ErrNoUserWasFound
		default:
			return models.SyncRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return record, nil
}

// GetSyncStats aggregates the whole sync log in one query.
func (r *syncRecordRepository) GetSyncStats(ctx context.Context) (models.SyncStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.psql.
		Select("COUNT(*)", "COUNT(DISTINCT user_id)", "MAX(synced_at)").
		From(syncRecordsTable).
		ToSql()
	if err != nil {
		return models.SyncStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		stats  models.SyncStats
		lastAt sql.NullTime
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&stats.TotalSyncs, &stats.DistinctUsers, &lastAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*syncRecordRepository.GetSyncStats").Msg("error aggregating sync records")
		return models.SyncStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if lastAt.Valid {
		stats.LastSyncAt = &lastAt.Time
	}
	return stats, nil
}
