package service

import (
	"context"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

type clientSyncService struct {
	records store.LocalUserRecordRepository
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSyncService(records store.LocalUserRecordRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{records: records, adapter: serverAdapter, logger: logger}
}

// SyncUserData fetches the record from the server and caches it. A failure to
// cache fails the attempt, since the local copy is what the sync keeps fresh.
func (s *clientSyncService) SyncUserData(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	synced, err := s.adapter.SyncUserData(ctx, userID)
	if err != nil {
		return fmt.Errorf("sync user data on server: %w", mapAdapterError(err))
	}

	if err = s.records.SaveUserRecord(ctx, synced); err != nil {
		return fmt.Errorf("caching user record: %w", err)
	}

	log.Debug().Int("scans_used", synced.Record.ScansUsed).Int("xp", synced.Record.XP).Msg("user record cached")
	return nil
}

func (s *clientSyncService) CachedRecord(ctx context.Context, userID string) (models.SyncResponse, error) {
	return s.records.GetUserRecord(ctx, userID)
}

func (s *clientSyncService) SyncStats(ctx context.Context) (models.SyncStats, error) {
	stats, err := s.adapter.GetSyncStats(ctx)
	if err != nil {
		return models.SyncStats{}, mapAdapterError(err)
	}
	return stats, nil
}

func (s *clientSyncService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
