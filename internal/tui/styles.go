package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/memehoueibib/securecode-platform-sub001/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

var statusStyles = map[models.SyncStatus]lipgloss.Style{
	models.SyncStatusIdle:    lipgloss.NewStyle().Faint(true),
	models.SyncStatusSyncing: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	models.SyncStatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	models.SyncStatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

func renderStatusBadge(status models.SyncStatus) string {
	return badgeStyle.Inherit(statusStyles[status]).Render(strings.ToUpper(status.String()))
}
