package components

import (
	"strings"
	"testing"

	"sweepdesk/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total int
		n     int
	}{
		{120, 3},
		{121, 3},
		{122, 4},
		{80, 1},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d", c.total, c.n, sum)
		}
	}
	if LayoutRow(100, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	t.Logf("Joined lines: %d", len(lines))

	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestMetricCardRowRendersAllValues(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := MetricCardRow([]struct{ Label, Value, Note string }{
		{"Operating", "$80,000", "target $60,000"},
		{"Yield", "$250,000", ""},
		{"Payment", "$40,000", ""},
	}, 120)

	for _, want := range []string{"Operating", "$80,000", "Yield", "$250,000", "Payment", "$40,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("MetricCardRow output missing %q", want)
		}
	}
}

func TestSparklineLength(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := Sparkline([]float64{1, 2, 3, 4, 5}, theme.Active.Blue)
	stripped := []rune(stripANSI(out))
	if len(stripped) != 5 {
		t.Errorf("Sparkline should emit one rune per value: got %d", len(stripped))
	}
}

// stripANSI removes escape sequences so rune counts reflect glyphs.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
