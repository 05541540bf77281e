// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the SecureCode admin record store.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the admin record
// store. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the bearer token is stored via
	// SetToken and the server-side user (id, login, name, role) is returned.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. On success the bearer token
	// is stored via SetToken and the server-side user is returned.
	Login(ctx context.Context, user models.User) (models.User, error)

	// SyncUserData records a sync of userID on the server and returns the
	// user's current admin record.
	SyncUserData(ctx context.Context, userID string) (models.SyncResponse, error)

	// GetSyncStats returns aggregated sync analytics. Admin only.
	GetSyncStats(ctx context.Context) (models.SyncStats, error)

	// GetServerVersion returns the server application version.
	GetServerVersion(ctx context.Context) (string, error)
}
