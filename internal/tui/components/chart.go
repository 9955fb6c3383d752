package components

import (
	"fmt"
	"math"
	"strings"

	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// PairedBarChart renders two series side by side per label: one bar
// pair per label, first series in colorA, second in colorB. Used for
// the baseline-vs-alternative yield comparison.
func PairedBarChart(labels []string, seriesA, seriesB []float64, colorA, colorB lipgloss.Color, width, height int) string {
	n := len(labels)
	if n == 0 || len(seriesA) != n || len(seriesB) != n {
		return ""
	}
	if height < 3 {
		height = 3
	}

	t := theme.Active

	peak := 0.0
	for i := 0; i < n; i++ {
		if seriesA[i] > peak {
			peak = seriesA[i]
		}
		if seriesB[i] > peak {
			peak = seriesB[i]
		}
	}
	if peak == 0 {
		peak = 1
	}

	yLabelW := len(formatAxisLabel(peak)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	// Each group: barW for A, barW for B, one space between groups.
	barW := (chartW/n - 1) / 2
	if barW < 1 {
		barW = 1
	}
	if barW > 3 {
		barW = 3
	}
	groupW := barW*2 + 1
	axisLen := n * groupW

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	styleA := lipgloss.NewStyle().Foreground(colorA)
	styleB := lipgloss.NewStyle().Foreground(colorB)

	cell := func(v float64, rowTop, rowBottom float64, style lipgloss.Style) string {
		switch {
		case v >= rowTop:
			return style.Render(strings.Repeat("█", barW))
		case v > rowBottom:
			frac := (v - rowBottom) / (rowTop - rowBottom)
			idx := int(frac * 8)
			if idx < 1 {
				idx = 1
			}
			if idx > 8 {
				idx = 8
			}
			return style.Render(strings.Repeat(string(blocks[idx]), barW))
		default:
			return strings.Repeat(" ", barW)
		}
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := peak * float64(row) / float64(height)
		rowBottom := peak * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatAxisLabel(peak)
		} else if row == (height+1)/2 {
			label = formatAxisLabel(peak / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i := 0; i < n; i++ {
			b.WriteString(cell(seriesA[i], rowTop, rowBottom, styleA))
			b.WriteString(cell(seriesB[i], rowTop, rowBottom, styleB))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// X axis and labels.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -2
	for i, lbl := range labels {
		pos := i * groupW
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))

	return b.String()
}

func formatAxisLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", math.Round(v))
	}
}
