package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/memehoueibib/securecode-platform-sub001/internal/mock"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTracker struct {
	snapshot models.SyncSnapshot
	triggers atomic.Int32
}

func (f *fakeTracker) Snapshot() models.SyncSnapshot { return f.snapshot }

func (f *fakeTracker) Subscribe() <-chan models.SyncSnapshot {
	return make(chan models.SyncSnapshot, 1)
}

func (f *fakeTracker) Unsubscribe(<-chan models.SyncSnapshot) {}

func (f *fakeTracker) TriggerManualSync() { f.triggers.Add(1) }

var dashboardNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type dashboardFixture struct {
	model   dashboardModel
	tracker *fakeTracker
	auth    *mock.MockClientAuthService
	sync    *mock.MockClientSyncService
	updates chan models.SyncSnapshot
}

func newDashboardFixture(t *testing.T, role models.Role) dashboardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	syncService := mock.NewMockClientSyncService(ctrl)
	tracker := &fakeTracker{snapshot: models.SyncSnapshot{Status: models.SyncStatusIdle}}
	updates := make(chan models.SyncSnapshot, 1)

	session := models.Session{UserID: "u-1", Login: "dev@securecode.dev", Name: "Dev", Role: role}
	m := newDashboardModel(context.Background(), &service.ClientServices{AuthService: auth, SyncService: syncService},
		tracker, session, updates)
	m.now = func() time.Time { return dashboardNow }

	return dashboardFixture{model: m, tracker: tracker, auth: auth, sync: syncService, updates: updates}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m dashboardModel, msg tea.Msg) (dashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(dashboardModel)
	require.True(t, ok)
	return dm, cmd
}

func TestDashboard_RendersSnapshots(t *testing.T) {
	f := newDashboardFixture(t, models.RoleUser)

	view := f.model.View()
	assert.Contains(t, view, "IDLE")
	assert.Contains(t, view, "never")

	syncedAt := dashboardNow.Add(-90 * time.Second)
	m, cmd := update(t, f.model, snapshotMsg{snapshot: models.SyncSnapshot{
		Status:       models.SyncStatusSuccess,
		LastSyncedAt: &syncedAt,
		UserID:       "u-1",
	}})
	require.NotNil(t, cmd, "waits for the next snapshot and reloads the record")

	view = m.View()
	assert.Contains(t, view, "SUCCESS")
	assert.Contains(t, view, "1m ago")

	m, _ = update(t, m, snapshotMsg{snapshot: models.SyncSnapshot{
		Status:       models.SyncStatusError,
		LastSyncedAt: &syncedAt,
		LastError:    "bad gateway",
	}})
	view = m.View()
	assert.Contains(t, view, "ERROR")
	assert.Contains(t, view, "bad gateway")
	assert.Contains(t, view, "1m ago", "a failure keeps the last successful time")
}

func TestDashboard_RecordLoaded(t *testing.T) {
	f := newDashboardFixture(t, models.RoleUser)

	m, _ := update(t, f.model, recordLoadedMsg{synced: models.SyncResponse{
		Record: models.UserRecord{Plan: "pro", ScansUsed: 25, ScanLimit: 50, XP: 150},
	}})

	view := m.View()
	assert.Contains(t, view, "pro")
	assert.Contains(t, view, "25 / 50 (50%)")
	assert.Contains(t, view, "Level         │ 2 (150 XP, 150 to next)")

	m, _ = update(t, m, recordLoadedMsg{err: store.ErrLocalRecordNotFound})
	assert.Empty(t, m.errMsg, "no cached record yet is not an error")
}

func TestDashboard_ManualSync(t *testing.T) {
	f := newDashboardFixture(t, models.RoleUser)

	m, cmd := update(t, f.model, keyPress("r"))
	assert.Equal(t, int32(1), f.tracker.triggers.Load())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Manual sync requested")

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestDashboard_AdminStats(t *testing.T) {
	f := newDashboardFixture(t, models.RoleAdmin)

	last := dashboardNow.Add(-2 * time.Hour)
	m, _ := update(t, f.model, statsLoadedMsg{stats: models.SyncStats{TotalSyncs: 12, DistinctUsers: 4, LastSyncAt: &last}})

	view := m.View()
	assert.Contains(t, view, "off for admin accounts")
	assert.Contains(t, view, "Total syncs   │ 12")
	assert.Contains(t, view, "2h ago")

	f.sync.EXPECT().SyncStats(gomock.Any()).Return(models.SyncStats{TotalSyncs: 13}, nil)
	_, cmd := update(t, m, keyPress("r"))
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var got []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		// the status timer blocks for its TTL, skip it
		if msg, done := runWithin(c, 100*time.Millisecond); done {
			got = append(got, msg)
		}
	}
	assert.Contains(t, got, statsLoadedMsg{stats: models.SyncStats{TotalSyncs: 13}})
}

func TestDashboard_CopyStatus(t *testing.T) {
	f := newDashboardFixture(t, models.RoleUser)

	var copied string
	f.model.writeClipboard = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := update(t, f.model, keyPress("y"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "sync idle, last synced never", copied)
	assert.Equal(t, "Status copied to clipboard", m.status)

	m, _ = update(t, m, copiedMsg{err: errors.New("no clipboard utility")})
	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestDashboard_Logout(t *testing.T) {
	f := newDashboardFixture(t, models.RoleUser)
	f.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	m, cmd := update(t, f.model, keyPress("l"))
	require.NotNil(t, cmd)

	m, cmd = update(t, m, cmd())
	assert.True(t, m.logout)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboard_WaitForSnapshot(t *testing.T) {
	updates := make(chan models.SyncSnapshot, 1)
	updates <- models.SyncSnapshot{Status: models.SyncStatusSyncing}

	assert.Equal(t, snapshotMsg{snapshot: models.SyncSnapshot{Status: models.SyncStatusSyncing}}, waitForSnapshot(updates)())

	close(updates)
	assert.Equal(t, updatesClosedMsg{}, waitForSnapshot(updates)())
}

func TestSyncedSince(t *testing.T) {
	t1 := dashboardNow
	t2 := dashboardNow.Add(time.Second)

	assert.False(t, syncedSince(models.SyncSnapshot{}, models.SyncSnapshot{}))
	assert.True(t, syncedSince(models.SyncSnapshot{}, models.SyncSnapshot{LastSyncedAt: &t1}))
	assert.False(t, syncedSince(models.SyncSnapshot{LastSyncedAt: &t1}, models.SyncSnapshot{LastSyncedAt: &t1}))
	assert.True(t, syncedSince(models.SyncSnapshot{LastSyncedAt: &t1}, models.SyncSnapshot{LastSyncedAt: &t2}))
}

func runWithin(cmd tea.Cmd, d time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(d):
		return nil, false
	}
}
