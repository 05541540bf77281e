// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier
	// in the context.
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey is the key used to store the authenticated user role.
	RoleCtxKey = contextKey("role")
)

// WithUser returns a copy of ctx carrying the authenticated user id and role.
func WithUser(ctx context.Context, userID string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true: value is found, has the correct type and is non-empty
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the authenticated user role from the context.
// Missing values resolve to [models.RoleUser].
func GetRoleFromContext(ctx context.Context) models.Role {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	if !ok || role == "" {
		return models.RoleUser
	}
	return role
}
