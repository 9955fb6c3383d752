package engine

import (
	"fmt"

	"sweepdesk/internal/money"
)

// Recommendation is the derived sweep advice. It is recomputed from
// current state on every read and never stored, so it cannot drift.
type Recommendation struct {
	SweepAmount float64
	Rationale   string
}

// HasSweep reports whether there is idle cash to move.
func (r Recommendation) HasSweep() bool {
	return r.SweepAmount > 0
}

// Recommend derives the sweep amount and rationale from the current
// ledger and policy. The amount is max(0, Operating - target); there
// is no hysteresis and no minimum threshold, so a $1 excess recommends
// a $1 sweep. Operating exactly at target recommends nothing.
func Recommend(l *Ledger, p Policy) Recommendation {
	excess := l.Balance(Operating) - p.OperatingTarget
	if excess <= 0 {
		return Recommendation{
			SweepAmount: 0,
			Rationale: fmt.Sprintf(
				"Operating is at or below the %s target. No sweep recommended; keep the buffer intact.",
				money.FormatUSD(p.OperatingTarget)),
		}
	}

	return Recommendation{
		SweepAmount: excess,
		Rationale: fmt.Sprintf(
			"Operating exceeds the %s target by %s. Sweep the excess into Yield to put idle cash to work.",
			money.FormatUSD(p.OperatingTarget), money.FormatUSD(excess)),
	}
}
