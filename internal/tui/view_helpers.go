package tui

import (
	"fmt"
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// formatSyncTime renders ts in local time with its age relative to now.
func formatSyncTime(ts *time.Time, now time.Time) string {
	if ts == nil {
		return "never"
	}

	age := now.Sub(*ts)
	var ago string
	switch {
	case age < 0:
		ago = "just now"
	case age < time.Minute:
		ago = fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		ago = fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		ago = fmt.Sprintf("%dh ago", int(age.Hours()))
	}

	return fmt.Sprintf("%s (%s)", ts.Local().Format(time.DateTime), ago)
}
