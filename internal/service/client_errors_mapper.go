// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/app"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The transport error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error
	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidDataProvided || msg == app.MsgNoUserIDProvided {
			mapped = ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			mapped = ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			mapped = ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgAdminOnly:
			mapped = ErrAdminOnly
		default:
			mapped = ErrAccessDenied
		}

	case errors.Is(err, adapter.ErrNotFound):
		mapped = ErrUserNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			mapped = store.ErrLoginAlreadyExists
		}
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
