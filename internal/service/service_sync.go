package service

import (
	"context"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/internal/validators"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"k8s.io/utils/clock"
)

// syncService answers sync requests by reading the admin record and logging
// the request. Repeating a request for the same user has no effect other
// than one more log entry.
type syncService struct {
	userRepository       store.UserRepository
	syncRecordRepository store.SyncRecordRepository
	validator            validators.Validator
	clock                clock.PassiveClock

	logger *logger.Logger
}

func NewSyncService(users store.UserRepository, records store.SyncRecordRepository, logger *logger.Logger) SyncService {
	return &syncService{
		userRepository:       users,
		syncRecordRepository: records,
		validator:            validators.NewUserValidator(),
		clock:                clock.RealClock{},
		logger:               logger,
	}
}

// SyncUserData implements SyncService.
func (s *syncService) SyncUserData(ctx context.Context, requester models.Identity, userID string) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, requester); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: requester: %w", ErrInvalidDataProvided, err)
	}
	if err := s.validator.Validate(ctx, models.Identity{UserID: userID}); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if requester.UserID != userID && !requester.IsPrivileged() {
		log.Warn().Str("requester", requester.UserID).Str("user_id", userID).Msg("sync of another user's record denied")
		return models.SyncResponse{}, ErrAccessDenied
	}

	record, err := s.userRepository.GetUserRecord(ctx, userID)
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("reading user record: %w", err)
	}

	syncedAt := s.clock.Now().UTC()
	if _, err = s.syncRecordRepository.SaveSyncRecord(ctx, models.SyncRecord{
		UserID:      userID,
		RequestedBy: requester.UserID,
		SyncedAt:    syncedAt,
	}); err != nil {
		return models.SyncResponse{}, fmt.Errorf("saving sync record: %w", err)
	}

	log.Debug().Str("user_id", userID).Msg("user data synced")
	return models.SyncResponse{Record: record, SyncedAt: syncedAt}, nil
}
