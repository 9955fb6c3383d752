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

func (a App) updateProjection(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "+", "=":
		a.eng.SetHorizon(a.snap.Policy.HorizonMonths + 1)
		a.refresh()
		return a, nil, true
	case "-", "_":
		a.eng.SetHorizon(a.snap.Policy.HorizonMonths - 1)
		a.refresh()
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderProjectionTab(width int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	points := a.snap.Projection
	principal := a.snap.Balances[engine.Yield]

	var endBase, endAlt float64
	if n := len(points); n > 0 {
		endBase = points[n-1].Baseline
		endAlt = points[n-1].Alternative
	}

	cards := []struct{ Label, Value, Note string }{
		{"Principal", money.FormatUSD(principal), "Yield balance today"},
		{
			fmt.Sprintf("Baseline · %s", money.FormatPercent(a.snap.Policy.BaselineRatePct)),
			money.FormatUSD(endBase),
			fmt.Sprintf("earned over %d months", a.snap.Policy.HorizonMonths),
		},
		{
			fmt.Sprintf("Alternative · %s", money.FormatPercent(a.snap.Policy.AlternativeRatePct)),
			money.FormatUSD(endAlt),
			fmt.Sprintf("earned over %d months", a.snap.Policy.HorizonMonths),
		},
		{"Uplift", money.FormatUSD(endAlt - endBase), "alternative minus baseline"},
	}
	top := components.MetricCardRow(cards, width)

	// Chart of cumulative earnings, one label per month group.
	labels := make([]string, len(points))
	baseline := make([]float64, len(points))
	alternative := make([]float64, len(points))
	for i, p := range points {
		labels[i] = fmt.Sprintf("M%d", p.Month)
		baseline[i] = p.Baseline
		alternative[i] = p.Alternative
	}

	chartH := 10
	chart := components.PairedBarChart(labels, baseline, alternative,
		t.Blue, t.Green, components.CardInnerWidth(width), chartH)

	legend := lipgloss.NewStyle().Foreground(t.Blue).Render("■ baseline") + "  " +
		lipgloss.NewStyle().Foreground(t.Green).Render("■ alternative")

	body := chart + "\n" + legend
	card := components.ContentCard("Cumulative earnings outlook", body, width)

	hint := dimStyle.Render("  [+/-] adjust horizon  (simple interest, monthly accrual)")
	return strings.Join([]string{top, card, hint}, "\n")
}
