// Package tui provides the interactive Bubble Tea dashboard for the
// treasury desk. The dashboard is a pure collaborator: it reads engine
// snapshots and invokes engine operations, and the engine remains the
// sole authority on gating.
package tui

import (
	"fmt"
	"strings"
	"time"

	"sweepdesk/internal/config"
	"sweepdesk/internal/engine"
	"sweepdesk/internal/tui/components"
	"sweepdesk/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDesk = iota
	tabFlow
	tabPolicy
	tabAudit
	tabProjection
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5
)

// flashExpireMsg clears the status flash once its generation is stale.
type flashExpireMsg struct {
	gen int
}

// exportDoneMsg reports the outcome of an audit export.
type exportDoneMsg struct {
	path string
	rows int
	err  error
}

// App is the root Bubble Tea model.
type App struct {
	eng  *engine.Engine
	snap engine.Snapshot

	cfg config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Status flash
	flash    string
	flashGen int

	// Per-tab state
	desk   deskState
	policy policyState
	auditS auditState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the dashboard over an engine.
func NewApp(eng *engine.Engine, cfg config.Config) App {
	a := App{
		eng:       eng,
		cfg:       cfg,
		needSetup: !config.Exists(),
	}
	a.refresh()

	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals, cfg)
	}
	return a
}

// refresh re-reads the engine snapshot after any operation.
func (a *App) refresh() {
	a.snap = a.eng.Snapshot()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// setFlash shows a transient status message for a few seconds.
func (a *App) setFlash(msg string) tea.Cmd {
	a.flash = msg
	a.flashGen++
	gen := a.flashGen
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return flashExpireMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case flashExpireMsg:
		if msg.gen == a.flashGen {
			a.flash = ""
		}
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			return a, a.setFlash(fmt.Sprintf("Export failed: %v", msg.err))
		}
		return a, a.setFlash(fmt.Sprintf("Exported %d events to %s", msg.rows, msg.path))

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys.
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Active text inputs intercept all keys.
		if a.activeTab == tabDesk && a.desk.editing {
			return a.updateDeskInput(msg)
		}
		if a.activeTab == tabPolicy && a.policy.editing {
			return a.updatePolicyInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Connection shortcuts work from every tab.
		switch key {
		case "1":
			a.eng.Connect(engine.DemoFeed)
			a.refresh()
			return a, a.setFlash("Demo feed connected")
		case "2":
			a.eng.Connect(engine.WalletLink)
			a.refresh()
			return a, a.setFlash("Wallet link connected")
		case "0":
			a.eng.Disconnect()
			a.refresh()
			return a, a.setFlash("Disconnected")
		}

		// Tab-specific keys.
		var (
			model   tea.Model
			cmd     tea.Cmd
			handled bool
		)
		switch a.activeTab {
		case tabDesk:
			model, cmd, handled = a.updateDesk(key)
		case tabFlow:
			model, cmd, handled = a.updateFlow(key)
		case tabPolicy:
			model, cmd, handled = a.updatePolicy(key)
		case tabAudit:
			model, cmd, handled = a.updateAudit(key)
		case tabProjection:
			model, cmd, handled = a.updateProjection(key)
		}
		if handled {
			return model, cmd
		}

		// Global keys.
		switch key {
		case "q":
			return a, tea.Quit
		case "R":
			a.eng.Reset()
			a.refresh()
			a.desk = deskState{}
			a.policy = policyState{}
			a.auditS = auditState{}
			return a, a.setFlash("Desk reset to scenario state")
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks).
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.activeTab == tabDesk && a.desk.editing {
		var cmd tea.Cmd
		a.desk.input, cmd = a.desk.input.Update(msg)
		return a, cmd
	}
	if a.activeTab == tabPolicy && a.policy.editing {
		var cmd tea.Cmd
		a.policy.input, cmd = a.policy.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  sweepdesk needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar plus a stage pill.
	pillDim := lipgloss.NewStyle().Foreground(t.TextDim)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	stageLine := " " + pillDim.Render("step ") +
		pillAccent.Render(a.snap.Stage.String()) +
		pillDim.Render(fmt.Sprintf(" (%d/%d)", int(a.snap.Stage)+1, len(engine.Stages)))

	header := components.RenderTabBar(a.activeTab) + "\n" + stageLine

	statusBar := components.RenderStatusBar(w, a.flash,
		a.snap.Connection.Label(), a.snap.Connection.Connected())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDesk:
		content = a.renderDeskTab(cw)
	case tabFlow:
		content = a.renderFlowTab(cw)
	case tabPolicy:
		content = a.renderPolicyTab(cw)
	case tabAudit:
		content = a.renderAuditTab(cw, contentH)
	case tabProjection:
		content = a.renderProjectionTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	section := func(b *strings.Builder, name string, binds []struct{ key, desc string }) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	section(&b, "Navigation", []struct{ key, desc string }{
		{"d f p a j", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	})
	section(&b, "Connection", []struct{ key, desc string }{
		{"1", "Connect demo feed"},
		{"2", "Connect wallet link"},
		{"0", "Disconnect"},
	})
	section(&b, "Actions", []struct{ key, desc string }{
		{"Enter", "Edit / Confirm"},
		{"Esc", "Cancel edit"},
		{"x", "Execute sweep"},
		{"v", "Approve sweep"},
		{"n b", "Flow forward / back"},
		{"e s", "Export audit (CSV / SQLite)"},
		{"R", "Reset desk"},
		{"q", "Quit"},
	})
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
