package money

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"80000", 80000},
		{"$80,000", 80000},
		{" 1,234.56 ", 1234.56},
		{"usd 500", 500},
		{"", 0},
		{"abc", 0},
		{"-250", 250}, // minus sign stripped, digits survive
		{"...", 0},
	}

	for _, c := range cases {
		got := ParseAmount(c.in)
		if got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseAmountNeverNegative(t *testing.T) {
	inputs := []string{"-1", "−99", "0", "$-42.50"}
	for _, in := range inputs {
		if got := ParseAmount(in); got < 0 {
			t.Fatalf("ParseAmount(%q) = %v, want >= 0", in, got)
		}
	}
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"5.0%", 5},
		{"0.2", 0.2},
		{"150", 100},
		{"-3", 0},
		{"junk", 0},
	}

	for _, c := range cases {
		if got := ParsePercent(c.in); got != c.want {
			t.Fatalf("ParsePercent(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(0, 1, 24); got != 1 {
		t.Fatalf("ClampInt(0,1,24) = %d, want 1", got)
	}
	if got := ClampInt(99, 1, 24); got != 24 {
		t.Fatalf("ClampInt(99,1,24) = %d, want 24", got)
	}
	if got := ClampInt(12, 1, 24); got != 12 {
		t.Fatalf("ClampInt(12,1,24) = %d, want 12", got)
	}
}

func TestFormatUSD(t *testing.T) {
	if got := FormatUSD(1234567.4); got != "$1,234,567" {
		t.Fatalf("FormatUSD = %q, want $1,234,567", got)
	}
	if got := FormatUSD(0); got != "$0" {
		t.Fatalf("FormatUSD(0) = %q, want $0", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(5.0); got != "5%" {
		t.Fatalf("FormatPercent(5.0) = %q, want 5%%", got)
	}
	if got := FormatPercent(0.25); got != "0.25%" {
		t.Fatalf("FormatPercent(0.25) = %q, want 0.25%%", got)
	}
}
