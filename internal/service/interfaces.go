package service

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, verifies credentials and issues tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SyncService serves sync requests coming from dashboard clients.
type SyncService interface {
	// SyncUserData records a sync of userID requested by requester and
	// returns the current admin record. Regular users may only sync
	// themselves.
	SyncUserData(ctx context.Context, requester models.Identity, userID string) (models.SyncResponse, error)
}

// AnalyticsService aggregates sync activity for the admin screens.
type AnalyticsService interface {
	GetSyncStats(ctx context.Context) (models.SyncStats, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
