package service

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// IdentityPublisher receives the identity of the signed-in user.
type IdentityPublisher interface {
	Set(id models.Identity)
	Clear()
}

// ClientAuthService defines the client-side contract for registration,
// authentication and session persistence. Every successful call publishes
// the identity; Logout clears it.
type ClientAuthService interface {
	// Register creates an account on the server and signs in.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates with the server and stores the session locally.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads the stored session if its token has not expired.
	// Returns ErrNoSession otherwise.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the stored session and clears the identity.
	Logout(ctx context.Context) error
}

// ClientSyncService synchronises the signed-in user's admin record with the
// server and keeps the local copy.
type ClientSyncService interface {
	// SyncUserData fetches the admin record of userID and caches it.
	SyncUserData(ctx context.Context, userID string) error

	// CachedRecord returns the last record cached for userID.
	CachedRecord(ctx context.Context, userID string) (models.SyncResponse, error)

	// SyncStats returns server-side sync analytics. Admin only.
	SyncStats(ctx context.Context) (models.SyncStats, error)

	// ServerVersion returns the server application version.
	ServerVersion(ctx context.Context) (string, error)
}
