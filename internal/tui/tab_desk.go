package tui

import (
	"fmt"
	"strings"

	"sweepdesk/internal/engine"
	"sweepdesk/internal/money"
	"sweepdesk/internal/tui/components"
	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// deskState holds cursor and edit state for the Desk tab.
type deskState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func (a App) updateDesk(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.desk.cursor < len(engine.Accounts)-1 {
			a.desk.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.desk.cursor > 0 {
			a.desk.cursor--
		}
		return a, nil, true
	case "enter":
		if !a.snap.Connection.Connected() {
			return a, a.setFlash("Connect a balance feed to edit balances"), true
		}
		acct := engine.Accounts[a.desk.cursor]
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 16
		ti.Width = 18
		ti.SetValue(fmt.Sprintf("%.0f", a.snap.Balances[acct]))
		ti.Focus()
		a.desk.input = ti
		a.desk.editing = true
		return a, textinput.Blink, true
	case "v":
		return a.approve()
	case "x":
		return a.execute(engine.PathQuick)
	}
	return a, nil, false
}

// updateDeskInput handles keys while a balance edit is open.
func (a App) updateDeskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.desk.editing = false
		return a, nil
	case "enter":
		acct := engine.Accounts[a.desk.cursor]
		applied := a.eng.SetBalance(acct, a.desk.input.Value())
		a.desk.editing = false
		a.refresh()
		return a, a.setFlash(fmt.Sprintf("%s balance set to %s",
			acct, money.FormatUSD(applied)))
	}
	var cmd tea.Cmd
	a.desk.input, cmd = a.desk.input.Update(msg)
	return a, cmd
}

// approve and execute are shared by the Desk and Flow tabs.
func (a App) approve() (tea.Model, tea.Cmd, bool) {
	if !a.snap.Approval.Required() {
		return a, a.setFlash("Approval is not required for this desk"), true
	}
	if a.snap.Approval.Approved() {
		return a, a.setFlash("Sweep is already approved"), true
	}
	a.eng.Approve()
	a.refresh()
	if a.snap.Approval.Approved() {
		return a, a.setFlash("Sweep approved"), true
	}
	return a, a.setFlash("Connect a balance feed before approving"), true
}

func (a App) execute(path engine.SweepPath) (tea.Model, tea.Cmd, bool) {
	status := a.snap.Status
	if !status.Executable {
		return a, a.setFlash(status.Reason.Message()), true
	}
	amount := a.snap.Recommendation.SweepAmount
	if a.eng.Execute(path) {
		a.refresh()
		return a, a.setFlash(fmt.Sprintf("Swept %s into Yield", money.FormatUSD(amount))), true
	}
	a.refresh()
	return a, a.setFlash("Sweep could not be executed"), true
}

func (a App) renderDeskTab(width int) string {
	t := theme.Active
	var sections []string

	// Account balance cards, with the cursor marking the editable row.
	cards := make([]struct{ Label, Value, Note string }, 0, len(engine.Accounts)+1)
	for i, acct := range engine.Accounts {
		label := string(acct)
		if i == a.desk.cursor {
			label = "▸ " + label
		}
		note := ""
		if acct == engine.Operating {
			note = "target " + money.FormatUSD(a.snap.Policy.OperatingTarget)
		}
		value := money.FormatUSD(a.snap.Balances[acct])
		if a.desk.editing && i == a.desk.cursor {
			value = a.desk.input.View()
		}
		cards = append(cards, struct{ Label, Value, Note string }{label, value, note})
	}
	cards = append(cards, struct{ Label, Value, Note string }{
		"Total cash", money.FormatUSD(a.snap.TotalCash), "across all accounts",
	})
	sections = append(sections, components.MetricCardRow(cards, width))

	// Recommendation card.
	recStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	var rec strings.Builder
	if a.snap.Recommendation.HasSweep() {
		rec.WriteString(amountStyle.Render("Sweep " + money.FormatUSD(a.snap.Recommendation.SweepAmount)))
		rec.WriteString("\n\n")
	}
	halves := components.LayoutRow(width, 2)
	rec.WriteString(recStyle.Render(wrap(a.snap.Recommendation.Rationale, components.CardInnerWidth(halves[0]))))
	sections = append(sections, components.CardRow([]string{
		components.ContentCard("Recommendation", rec.String(), halves[0]),
		components.ContentCard("Execution", a.renderExecStatus(halves[1]), halves[1]),
	}))

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	sections = append(sections, hintStyle.Render(
		"  [j/k] select  [enter] edit balance  [v] approve  [x] quick sweep  [1/2/0] connection"))

	return strings.Join(sections, "\n")
}

func (a App) renderExecStatus(width int) string {
	t := theme.Active
	okStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	blockStyle := lipgloss.NewStyle().Foreground(t.Orange)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	if a.snap.Status.Executable {
		b.WriteString(okStyle.Render("● Ready to execute"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press x for a quick sweep, or walk the Flow tab."))
	} else {
		b.WriteString(blockStyle.Render("◌ Blocked"))
		b.WriteString("\n")
		b.WriteString(blockStyle.Render(wrap(a.snap.Status.Reason.Message(), components.CardInnerWidth(width))))
	}

	if a.snap.LastSweep != nil {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Last sweep: %s at %s (%s)",
			money.FormatUSD(a.snap.LastSweep.Amount),
			a.snap.LastSweep.Time.Format("15:04:05"),
			a.snap.LastSweep.Path)))
	}
	return b.String()
}

// wrap soft-wraps text at word boundaries.
func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+len(w) > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
