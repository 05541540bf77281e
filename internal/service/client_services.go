package service

import (
	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	SyncService ClientSyncService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter,
	identities IdentityPublisher, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages.SessionRepository, serverAdapter, identities, logger),
		SyncService: NewClientSyncService(storages.UserRecordRepository, serverAdapter, logger),
	}
}
