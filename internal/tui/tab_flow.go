package tui

import (
	"fmt"
	"strings"

	"sweepdesk/internal/engine"
	"sweepdesk/internal/money"
	"sweepdesk/internal/tui/components"
	"sweepdesk/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateFlow(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "n":
		if a.eng.AdvanceStage() {
			a.refresh()
			return a, nil, true
		}
		return a, a.setFlash(a.advanceBlockedReason()), true
	case "b":
		a.eng.RetreatStage()
		a.refresh()
		return a, nil, true
	case "v":
		return a.approve()
	case "x":
		return a.execute(engine.PathGuided)
	}
	return a, nil, false
}

// advanceBlockedReason explains why the flow cannot move forward.
func (a App) advanceBlockedReason() string {
	switch a.snap.Stage {
	case engine.StageConnect:
		return "Connect a balance feed before moving on"
	case engine.StageAllocate:
		return "The sweep needs approval before moving on"
	case engine.StageMonitor:
		return "You are at the last step"
	}
	return "Cannot move forward"
}

func (a App) renderFlowTab(width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	pendingStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for _, st := range engine.Stages {
		var marker, name string
		switch {
		case st == a.snap.Stage:
			marker = activeStyle.Render("▸")
			name = activeStyle.Render(st.String())
		case st < a.snap.Stage:
			marker = doneStyle.Render("✓")
			name = doneStyle.Render(st.String())
		default:
			marker = pendingStyle.Render("○")
			name = pendingStyle.Render(st.String())
		}
		fmt.Fprintf(&b, " %s %s\n", marker, name)

		if st == a.snap.Stage {
			for _, line := range a.stageGuidance() {
				b.WriteString(bodyStyle.Render("     "+line) + "\n")
			}
		}
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	card := components.ContentCard("Guided sweep", b.String(), width)
	return card + "\n" + hintStyle.Render("  [n] next step  [b] back  [v] approve  [x] execute sweep")
}

// stageGuidance returns the instruction lines for the current stage.
func (a App) stageGuidance() []string {
	switch a.snap.Stage {
	case engine.StageConnect:
		if a.snap.Connection.Connected() {
			return []string{
				fmt.Sprintf("%s is connected.", a.snap.Connection.Label()),
				"Press n to analyze the cash position.",
			}
		}
		return []string{
			"Pick a balance source: 1 for the demo feed, 2 for a wallet link.",
		}

	case engine.StageAnalyze:
		lines := []string{
			fmt.Sprintf("Operating holds %s against a %s target.",
				money.FormatUSD(a.snap.Balances[engine.Operating]),
				money.FormatUSD(a.snap.Policy.OperatingTarget)),
		}
		if a.snap.Recommendation.HasSweep() {
			lines = append(lines, fmt.Sprintf("Recommendation: sweep %s into Yield.",
				money.FormatUSD(a.snap.Recommendation.SweepAmount)))
		} else {
			lines = append(lines, "No sweep is recommended right now.")
		}
		return append(lines, "Press n to continue to allocation.")

	case engine.StageAllocate:
		if !a.snap.Approval.Required() {
			return []string{
				"Approval is off for this desk.",
				"Press x to execute the sweep.",
			}
		}
		if a.snap.Approval.Approved() {
			return []string{
				"Sweep is approved.",
				"Press x to execute, then n to monitor.",
			}
		}
		return []string{
			"This desk requires approval before sweeping.",
			"Press v to approve the sweep.",
		}

	case engine.StageMonitor:
		lines := []string{
			fmt.Sprintf("Yield now holds %s.", money.FormatUSD(a.snap.Balances[engine.Yield])),
		}
		if a.snap.LastSweep != nil {
			lines = append(lines, fmt.Sprintf("Last sweep moved %s at %s.",
				money.FormatUSD(a.snap.LastSweep.Amount),
				a.snap.LastSweep.Time.Format("15:04:05")))
		}
		return append(lines, "Check the Projection tab for the earnings outlook.")
	}
	return nil
}
