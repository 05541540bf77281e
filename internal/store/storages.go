package store

import (
	"context"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository       UserRepository
	SyncRecordRepository SyncRecordRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// server repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SyncRecordRepository: NewSyncRecordRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ClientStorages groups the client-side repositories backed by one SQLite file.
type ClientStorages struct {
	SessionRepository    LocalSessionRepository
	UserRecordRepository LocalUserRecordRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file from cfg,
// applies migrations and builds the client repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository:    NewLocalSessionRepository(db, logger),
		UserRecordRepository: NewLocalUserRecordRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
