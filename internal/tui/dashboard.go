package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

const statusMessageTTL = 3 * time.Second

// dashboardModel renders the tracker state for the signed-in session. It
// never decides when to sync; r only asks the tracker for a manual attempt.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	tracker  SyncTracker
	session  models.Session
	updates  <-chan models.SyncSnapshot

	snapshot      models.SyncSnapshot
	synced        *models.SyncResponse
	stats         *models.SyncStats
	serverVersion string

	spinner spinner.Model
	status  string
	errMsg  string
	now     func() time.Time

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error

	logout bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, tracker SyncTracker,
	session models.Session, updates <-chan models.SyncSnapshot) dashboardModel {
	return dashboardModel{
		ctx:            ctx,
		services:       services,
		tracker:        tracker,
		session:        session,
		updates:        updates,
		snapshot:       tracker.Snapshot(),
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:            time.Now,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m dashboardModel) isAdmin() bool {
	return m.session.Role == models.RoleAdmin
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		waitForSnapshot(m.updates),
		m.cmdLoadRecord(),
		m.cmdLoadVersion(),
	}
	if m.isAdmin() {
		cmds = append(cmds, m.cmdLoadStats())
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		previous := m.snapshot
		m.snapshot = msg.snapshot
		cmds := []tea.Cmd{waitForSnapshot(m.updates)}
		if syncedSince(previous, msg.snapshot) {
			cmds = append(cmds, m.cmdLoadRecord())
		}
		return m, tea.Batch(cmds...)
	case updatesClosedMsg:
		return m, nil
	case recordLoadedMsg:
		switch {
		case msg.err == nil:
			synced := msg.synced
			m.synced = &synced
		case !errors.Is(msg.err, store.ErrLocalRecordNotFound):
			m.errMsg = "Cached record: " + humanizeError(msg.err)
		}
		return m, nil
	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Sync stats: " + humanizeError(msg.err)
			return m, nil
		}
		stats := msg.stats
		m.stats = &stats
		return m, nil
	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = "Status copied to clipboard"
		return m, clearStatusAfter(statusMessageTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = "Logout: " + humanizeError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.sync):
		m.tracker.TriggerManualSync()
		m.status = "Manual sync requested"
		m.errMsg = ""
		cmds := []tea.Cmd{clearStatusAfter(statusMessageTTL)}
		if m.isAdmin() {
			cmds = append(cmds, m.cmdLoadStats())
		}
		return m, tea.Batch(cmds...)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.statusLine())
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "User          │ %s <%s>\n", valueOrDash(m.session.Name), m.session.Login)
	fmt.Fprintf(&b, "Role          │ %s\n", m.session.Role)
	if m.serverVersion != "" {
		fmt.Fprintf(&b, "Server        │ %s\n", m.serverVersion)
	}
	b.WriteString("\n")

	b.WriteString("Sync status   │ ")
	b.WriteString(renderStatusBadge(m.snapshot.Status))
	if m.snapshot.Status == models.SyncStatusSyncing {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Last synced   │ %s\n", formatSyncTime(m.snapshot.LastSyncedAt, m.now()))
	if m.snapshot.Status == models.SyncStatusError && m.snapshot.LastError != "" {
		fmt.Fprintf(&b, "Last error    │ %s\n", m.snapshot.LastError)
	}
	if m.isAdmin() {
		b.WriteString("Background    │ off for admin accounts\n")
	}

	if m.synced != nil {
		record := m.synced.Record
		b.WriteString("\n")
		fmt.Fprintf(&b, "Plan          │ %s\n", valueOrDash(record.Plan))
		fmt.Fprintf(&b, "Scans         │ %d / %d (%d%%)\n", record.ScansUsed, record.ScanLimit, record.UsagePercent())
		fmt.Fprintf(&b, "Level         │ %d (%d XP", record.Level(), record.XP)
		if next := record.NextLevelXP(); next > 0 {
			fmt.Fprintf(&b, ", %d to next", next)
		}
		b.WriteString(")\n")
	}

	if m.stats != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Total syncs   │ %d\n", m.stats.TotalSyncs)
		fmt.Fprintf(&b, "Users synced  │ %d\n", m.stats.DistinctUsers)
		fmt.Fprintf(&b, "Latest sync   │ %s\n", formatSyncTime(m.stats.LastSyncAt, m.now()))
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SECURECODE DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"r: sync now │ y: copy status │ l: logout │ q: quit")
}

// statusLine is the one-line summary copied by y.
func (m dashboardModel) statusLine() string {
	line := fmt.Sprintf("sync %s, last synced %s", m.snapshot.Status, formatSyncTime(m.snapshot.LastSyncedAt, m.now()))
	if m.snapshot.Status == models.SyncStatusError && m.snapshot.LastError != "" {
		line += ": " + m.snapshot.LastError
	}
	return line
}

// syncedSince reports whether a new success was recorded between two
// snapshots.
func syncedSince(prev, next models.SyncSnapshot) bool {
	if next.LastSyncedAt == nil {
		return false
	}
	return prev.LastSyncedAt == nil || !prev.LastSyncedAt.Equal(*next.LastSyncedAt)
}

func waitForSnapshot(updates <-chan models.SyncSnapshot) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return snapshotMsg{snapshot: snapshot}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) cmdLoadRecord() tea.Cmd {
	ctx, syncService, userID := m.ctx, m.services.SyncService, m.session.UserID
	return func() tea.Msg {
		synced, err := syncService.CachedRecord(ctx, userID)
		return recordLoadedMsg{synced: synced, err: err}
	}
}

func (m dashboardModel) cmdLoadStats() tea.Cmd {
	ctx, syncService := m.ctx, m.services.SyncService
	return func() tea.Msg {
		stats, err := syncService.SyncStats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m dashboardModel) cmdLoadVersion() tea.Cmd {
	ctx, syncService := m.ctx, m.services.SyncService
	return func() tea.Msg {
		version, err := syncService.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func (m dashboardModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
