package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sweepdesk/internal/audit"
	"sweepdesk/internal/config"
	"sweepdesk/internal/store"
	"sweepdesk/internal/tui/components"
	"sweepdesk/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// auditState holds the scroll position for the Audit tab.
type auditState struct {
	offset int
}

func (a App) updateAudit(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.auditS.offset < len(a.snap.Events)-1 {
			a.auditS.offset++
		}
		return a, nil, true
	case "k", "up":
		if a.auditS.offset > 0 {
			a.auditS.offset--
		}
		return a, nil, true
	case "g":
		a.auditS.offset = 0
		return a, nil, true
	case "e":
		return a, exportCSVCmd(a.cfg, a.snap.Events), true
	case "s":
		return a, archiveCmd(a.cfg, a.snap.Events), true
	}
	return a, nil, false
}

// exportCSVCmd writes the trail to a timestamped CSV file.
func exportCSVCmd(cfg config.Config, events []audit.Event) tea.Cmd {
	return func() tea.Msg {
		if len(events) == 0 {
			return exportDoneMsg{err: fmt.Errorf("audit trail is empty")}
		}
		dir := config.ExportDir(cfg)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(dir,
			fmt.Sprintf("sweepdesk-audit-%s.csv", time.Now().Format("20060102-150405")))

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		if err := audit.WriteCSV(f, events); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, rows: len(events)}
	}
}

// archiveCmd saves the trail into the SQLite archive.
func archiveCmd(cfg config.Config, events []audit.Event) tea.Cmd {
	return func() tea.Msg {
		if len(events) == 0 {
			return exportDoneMsg{err: fmt.Errorf("audit trail is empty")}
		}
		path := filepath.Join(config.ExportDir(cfg), "sweepdesk-audit.db")

		arc, err := store.Open(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer arc.Close()

		n, err := arc.SaveEvents(events)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, rows: n}
	}
}

func (a App) renderAuditTab(width, height int) string {
	t := theme.Active

	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	kindStyle := func(k audit.Kind) lipgloss.Style {
		s := lipgloss.NewStyle().Bold(true)
		switch k {
		case audit.KindSweepExecuted:
			return s.Foreground(t.Green)
		case audit.KindConnected:
			return s.Foreground(t.Blue)
		case audit.KindPolicyUpdated:
			return s.Foreground(t.Yellow)
		default:
			return s.Foreground(t.TextMuted)
		}
	}

	events := a.snap.Events

	// Rows visible inside the card, minus title and padding.
	visible := height - 6
	if visible < 3 {
		visible = 3
	}

	var b strings.Builder
	if len(events) == 0 {
		b.WriteString(emptyStyle.Render("No events yet. Connect a feed and make changes to build a trail."))
	} else {
		end := a.auditS.offset + visible
		if end > len(events) {
			end = len(events)
		}
		for i := a.auditS.offset; i < end; i++ {
			ev := events[i]
			marker := "  "
			if i == a.auditS.offset {
				marker = selStyle.Render("▸ ")
			}
			fmt.Fprintf(&b, "%s%s  %s  %s\n",
				marker,
				timeStyle.Render(ev.At().Local().Format("15:04:05")),
				kindStyle(ev.Kind()).Render(fmt.Sprintf("%-15s", string(ev.Kind()))),
				detailStyle.Render(ev.Details()))
		}
		if end < len(events) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d older", len(events)-end)))
		}
	}

	title := fmt.Sprintf("Audit trail (%d events, newest first)", len(events))
	card := components.ContentCard(title, b.String(), width)
	hint := dimStyle.Render("  [j/k] scroll  [g] newest  [e] export CSV  [s] archive to SQLite")
	return card + "\n" + hint
}
