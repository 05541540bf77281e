package models

import "time"

// SyncStatus is the observable health of background synchronisation.
type SyncStatus string

const (
	// SyncStatusIdle means no attempt has been made yet or no user is active.
	SyncStatusIdle SyncStatus = "idle"

	// SyncStatusSyncing means an attempt is in flight.
	SyncStatusSyncing SyncStatus = "syncing"

	// SyncStatusSuccess means the most recently completed attempt succeeded.
	SyncStatusSuccess SyncStatus = "success"

	// SyncStatusError means the most recently completed attempt failed. The
	// state is transient: the next scheduled attempt runs regardless.
	SyncStatusError SyncStatus = "error"
)

// String implements [fmt.Stringer].
func (s SyncStatus) String() string {
	return string(s)
}

// SyncSnapshot is a consistent copy of the tracker state taken under lock.
type SyncSnapshot struct {
	Status       SyncStatus `json:"status"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	UserID       string     `json:"user_id,omitempty"`
	LastError    string     `json:"last_error,omitempty"`
}

// SyncRecord is one server-side log entry of a sync request.
type SyncRecord struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	RequestedBy string    `json:"requested_by"`
	SyncedAt    time.Time `json:"synced_at"`
}

// SyncResponse is the body returned by the sync endpoint.
type SyncResponse struct {
	Record   UserRecord `json:"record"`
	SyncedAt time.Time  `json:"synced_at"`
}

// SyncStats is the aggregated sync analytics shown on the admin screens.
type SyncStats struct {
	TotalSyncs    int64      `json:"total_syncs"`
	DistinctUsers int64      `json:"distinct_users"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
}
