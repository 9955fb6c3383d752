package tui

import (
	"fmt"
	"strconv"
	"strings"

	"sweepdesk/internal/config"
	"sweepdesk/internal/money"
	"sweepdesk/internal/tui/components"
	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	policyFieldTarget = iota
	policyFieldBaseline
	policyFieldAlternative
	policyFieldHorizon
	policyFieldApproval
	policyFieldTheme
	policyFieldCount
)

// policyState holds cursor and edit state for the Policy tab.
type policyState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

// connectionGated reports whether a policy field needs a live feed.
func connectionGated(field int) bool {
	switch field {
	case policyFieldTarget, policyFieldBaseline, policyFieldAlternative:
		return true
	}
	return false
}

func (a App) updatePolicy(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.policy.cursor < policyFieldCount-1 {
			a.policy.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.policy.cursor > 0 {
			a.policy.cursor--
		}
		return a, nil, true
	case "enter":
		return a.activatePolicyField()
	}
	return a, nil, false
}

func (a App) activatePolicyField() (tea.Model, tea.Cmd, bool) {
	switch a.policy.cursor {
	case policyFieldApproval:
		a.eng.SetApprovalRequired(!a.snap.Approval.Required())
		a.refresh()
		a.cfg.General.ApprovalRequired = a.snap.Approval.Required()
		_ = config.Save(a.cfg)
		if a.snap.Approval.Required() {
			return a, a.setFlash("Sweeps now require approval"), true
		}
		return a, a.setFlash("Sweeps no longer require approval"), true

	case policyFieldTheme:
		a.cfg.Appearance.Theme = nextThemeName(a.cfg.Appearance.Theme)
		theme.SetActive(a.cfg.Appearance.Theme)
		_ = config.Save(a.cfg)
		return a, a.setFlash("Theme: " + a.cfg.Appearance.Theme), true
	}

	if connectionGated(a.policy.cursor) && !a.snap.Connection.Connected() {
		return a, a.setFlash("Connect a balance feed to edit policy"), true
	}

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 18
	ti.SetValue(a.policyFieldValue(a.policy.cursor))
	ti.Focus()
	a.policy.input = ti
	a.policy.editing = true
	return a, textinput.Blink, true
}

// policyFieldValue returns the raw edit seed for a field.
func (a App) policyFieldValue(field int) string {
	p := a.snap.Policy
	switch field {
	case policyFieldTarget:
		return fmt.Sprintf("%.0f", p.OperatingTarget)
	case policyFieldBaseline:
		return strconv.FormatFloat(p.BaselineRatePct, 'f', -1, 64)
	case policyFieldAlternative:
		return strconv.FormatFloat(p.AlternativeRatePct, 'f', -1, 64)
	case policyFieldHorizon:
		return strconv.Itoa(p.HorizonMonths)
	}
	return ""
}

// updatePolicyInput handles keys while a policy edit is open.
func (a App) updatePolicyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.policy.editing = false
		return a, nil
	case "enter":
		raw := a.policy.input.Value()
		a.policy.editing = false

		var flash string
		switch a.policy.cursor {
		case policyFieldTarget:
			a.eng.SetTarget(raw)
			a.refresh()
			flash = "Operating target set to " + money.FormatUSD(a.snap.Policy.OperatingTarget)
		case policyFieldBaseline:
			a.eng.SetBaselineRate(money.ParsePercent(raw))
			a.refresh()
			flash = "Baseline rate set to " + money.FormatPercent(a.snap.Policy.BaselineRatePct)
		case policyFieldAlternative:
			a.eng.SetAlternativeRate(money.ParsePercent(raw))
			a.refresh()
			flash = "Alternative rate set to " + money.FormatPercent(a.snap.Policy.AlternativeRatePct)
		case policyFieldHorizon:
			months, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return a, a.setFlash("Horizon must be a whole number of months")
			}
			a.eng.SetHorizon(months)
			a.refresh()
			flash = fmt.Sprintf("Horizon set to %d months", a.snap.Policy.HorizonMonths)
		}
		return a, a.setFlash(flash)
	}
	var cmd tea.Cmd
	a.policy.input, cmd = a.policy.input.Update(msg)
	return a, cmd
}

func nextThemeName(current string) string {
	for i, t := range theme.All {
		if t.Name == current {
			return theme.All[(i+1)%len(theme.All)].Name
		}
	}
	return theme.All[0].Name
}

func (a App) renderPolicyTab(width int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	p := a.snap.Policy

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	rows := []struct {
		label string
		value string
		note  string
	}{
		{"Operating target", money.FormatUSD(p.OperatingTarget), "buffer kept in Operating"},
		{"Baseline rate", money.FormatPercent(p.BaselineRatePct), "APY where cash sits today"},
		{"Alternative rate", money.FormatPercent(p.AlternativeRatePct), "APY of the yield route"},
		{"Horizon", fmt.Sprintf("%d months", p.HorizonMonths), "projection window"},
		{"Approval required", onOff(a.snap.Approval.Required()), "enter toggles"},
		{"Theme", a.cfg.Appearance.Theme, "enter cycles"},
	}

	var b strings.Builder
	for i, row := range rows {
		marker := "  "
		label := labelStyle.Render(row.label)
		if i == a.policy.cursor {
			marker = selStyle.Render("▸ ")
			label = selStyle.Render(fmt.Sprintf("%-22s", row.label))
		}
		value := valueStyle.Render(row.value)
		if a.policy.editing && i == a.policy.cursor {
			value = a.policy.input.View()
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", marker, label, value, dimStyle.Render(row.note))
	}

	card := components.ContentCard("Sweep policy", b.String(), width)
	hint := dimStyle.Render("  [j/k] select  [enter] edit or toggle  [esc] cancel")
	return card + "\n" + hint
}
