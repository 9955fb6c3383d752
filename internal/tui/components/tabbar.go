package components

import (
	"strings"

	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a single entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the dashboard tabs in order.
var Tabs = []Tab{
	{Name: "Desk", Key: 'd'},
	{Name: "Flow", Key: 'f'},
	{Name: "Policy", Key: 'p'},
	{Name: "Audit", Key: 'a'},
	{Name: "Projection", Key: 'j'},
}

// TabIdxByKey returns the tab index for a key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// RenderTabBar renders the single-row tab bar with the active tab
// highlighted and each shortcut key marked.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render("▪ "+tab.Name))
			continue
		}

		// Highlight the shortcut letter inside the name when present.
		pos := strings.IndexRune(strings.ToLower(tab.Name), tab.Key)
		if pos >= 0 {
			parts = append(parts,
				inactiveStyle.Render(tab.Name[:pos])+
					dimStyle.Render("[")+keyStyle.Render(string(tab.Name[pos]))+dimStyle.Render("]")+
					inactiveStyle.Render(tab.Name[pos+1:]))
		} else {
			parts = append(parts,
				inactiveStyle.Render(tab.Name)+
					dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]"))
		}
	}

	return " " + strings.Join(parts, "  ")
}
