package service

import (
	"context"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

type analyticsService struct {
	syncRecordRepository store.SyncRecordRepository

	logger *logger.Logger
}

func NewAnalyticsService(records store.SyncRecordRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{syncRecordRepository: records, logger: logger}
}

// GetSyncStats implements AnalyticsService.
func (s *analyticsService) GetSyncStats(ctx context.Context) (models.SyncStats, error) {
	stats, err := s.syncRecordRepository.GetSyncStats(ctx)
	if err != nil {
		return models.SyncStats{}, fmt.Errorf("aggregating sync records: %w", err)
	}
	return stats, nil
}
