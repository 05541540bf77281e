package tui

import "github.com/memehoueibib/securecode-platform-sub001/models"

// SyncTracker is the part of the background sync tracker the dashboard
// reads and drives.
type SyncTracker interface {
	Snapshot() models.SyncSnapshot
	Subscribe() <-chan models.SyncSnapshot
	Unsubscribe(ch <-chan models.SyncSnapshot)
	TriggerManualSync()
}
