// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
)

// humanizeError turns client service errors into short messages for the
// screens.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong login or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Login and password are required"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrAdminOnly):
		return "Admin role required"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
