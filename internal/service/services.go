package service

import (
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
)

type Services struct {
	AuthService      AuthService
	SyncService      SyncService
	AnalyticsService AnalyticsService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		SyncService:      NewSyncService(storages.UserRepository, storages.SyncRecordRepository, logger),
		AnalyticsService: NewAnalyticsService(storages.SyncRecordRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
