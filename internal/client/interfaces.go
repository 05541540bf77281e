// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client.
type UI interface {
	// LoginFlow blocks until a session is started or the user quits.
	LoginFlow(ctx context.Context) (models.Session, error)
	// Dashboard blocks until the user quits (false) or logs out (true).
	Dashboard(ctx context.Context, session models.Session) (logout bool, err error)
}

// Tracker is the background sync tracker as seen by the app lifecycle.
type Tracker interface {
	Run(ctx context.Context) error
	Close()
	Wait()
}
