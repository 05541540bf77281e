// Package store implements persistence for the admin record store server
// (PostgreSQL) and the dashboard client cache (SQLite).
package store

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts and their administrative records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUserRecord(ctx context.Context, userID string) (models.UserRecord, error)
}

// SyncRecordRepository logs sync requests and aggregates them.
type SyncRecordRepository interface {
	SaveSyncRecord(ctx context.Context, record models.SyncRecord) (models.SyncRecord, error)
	GetSyncStats(ctx context.Context) (models.SyncStats, error)
}

// LocalSessionRepository keeps the single signed-in session of the client.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// LocalUserRecordRepository caches the last admin record received per user.
type LocalUserRecordRepository interface {
	SaveUserRecord(ctx context.Context, synced models.SyncResponse) error
	GetUserRecord(ctx context.Context, userID string) (models.SyncResponse, error)
}
