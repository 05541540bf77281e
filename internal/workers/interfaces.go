// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface, a Workers aggregate that runs several
// workers under one context, and the SyncTracker that keeps the signed-in
// user's data synchronised in the background.
package workers

import (
	"context"

	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// UserDataSyncer performs one synchronisation of a user's data with the
// remote record store. Any returned error counts as a failed attempt.
type UserDataSyncer interface {
	SyncUserData(ctx context.Context, userID string) error
}

// IdentitySource publishes the current identity and every later change;
// nil means nobody is signed in.
type IdentitySource interface {
	Watch(ctx context.Context) <-chan *models.Identity
}
