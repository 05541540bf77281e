package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login and register pages. A nil Err ends the
// sign-in flow.
type LoginResult struct {
	Session models.Session
	Err     error
}

type snapshotMsg struct {
	snapshot models.SyncSnapshot
}

type updatesClosedMsg struct{}

type recordLoadedMsg struct {
	synced models.SyncResponse
	err    error
}

type statsLoadedMsg struct {
	stats models.SyncStats
	err   error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
