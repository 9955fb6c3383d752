package components

import (
	"strings"

	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the
// left, an optional flash message centered, and the connection status
// on the right.
func RenderStatusBar(width int, flash, connection string, connected bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [?]help  [R]eset  [q]uit"

	connStyle := lipgloss.NewStyle().Foreground(t.Red)
	if connected {
		connStyle = lipgloss.NewStyle().Foreground(t.Green)
	}
	right := connStyle.Render("● "+connection) + " "

	mid := ""
	if flash != "" {
		mid = lipgloss.NewStyle().Foreground(t.AccentBright).Render(flash)
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	leftPad := pad / 2
	rightPad := pad - leftPad

	return barStyle.Render(left + strings.Repeat(" ", leftPad) + mid + strings.Repeat(" ", rightPad) + right)
}
