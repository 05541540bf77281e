package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSyncRecordRepo(t *testing.T) (SyncRecordRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewSyncRecordRepository(db, logger.Nop()), mock
}

func TestSaveSyncRecord_Success(t *testing.T) {
	repo, mock := newTestSyncRecordRepo(t)
	at := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO sync_records \(user_id,requested_by,synced_at\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs("u1", "u1", at).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	saved, err := repo.SaveSyncRecord(context.Background(), models.SyncRecord{UserID: "u1", RequestedBy: "u1", SyncedAt: at})
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSyncRecord_UnknownUser(t *testing.T) {
	repo, mock := newTestSyncRecordRepo(t)

	mock.ExpectQuery("INSERT INTO sync_records").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.SaveSyncRecord(context.Background(), models.SyncRecord{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSaveSyncRecord_DBError(t *testing.T) {
	repo, mock := newTestSyncRecordRepo(t)

	mock.ExpectQuery("INSERT INTO sync_records").WillReturnError(errors.New("boom"))

	_, err := repo.SaveSyncRecord(context.Background(), models.SyncRecord{UserID: "u1"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetSyncStats_Success(t *testing.T) {
	repo, mock := newTestSyncRecordRepo(t)
	last := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\), COUNT\(DISTINCT user_id\), MAX\(synced_at\) FROM sync_records`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "distinct", "max"}).AddRow(int64(10), int64(3), last))

	stats, err := repo.GetSyncStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalSyncs)
	assert.Equal(t, int64(3), stats.DistinctUsers)
	require.NotNil(t, stats.LastSyncAt)
	assert.Equal(t, last, *stats.LastSyncAt)
}

func TestGetSyncStats_Empty(t *testing.T) {
	repo, mock := newTestSyncRecordRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sync_records").
		WillReturnRows(sqlmock.NewRows([]string{"count", "distinct", "max"}).AddRow(int64(0), int64(0), nil))

	stats, err := repo.GetSyncStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSyncs)
	assert.Nil(t, stats.LastSyncAt)
}
