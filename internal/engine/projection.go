package engine

import (
	"math"

	"sweepdesk/internal/money"
)

// ProjectionPoint is one month of the cumulative-yield comparison.
type ProjectionPoint struct {
	Month       int
	Baseline    float64
	Alternative float64
}

// Project returns the month-by-month cumulative yield on principal for
// the two rates over horizonMonths. Simple (non-compounding) interest,
// rounded to whole currency units per point:
//
//	cumulative(rate, n) = principal * (rate/12) * n
//
// Purely derived; never mutates state and never appears in the audit
// trail.
func Project(principal, baselineRatePct, alternativeRatePct float64, horizonMonths int) []ProjectionPoint {
	months := money.ClampInt(horizonMonths, MinHorizonMonths, MaxHorizonMonths)
	baseMonthly := principal * (baselineRatePct / 100 / 12)
	altMonthly := principal * (alternativeRatePct / 100 / 12)

	points := make([]ProjectionPoint, 0, months)
	for n := 1; n <= months; n++ {
		points = append(points, ProjectionPoint{
			Month:       n,
			Baseline:    math.Round(baseMonthly * float64(n)),
			Alternative: math.Round(altMonthly * float64(n)),
		})
	}
	return points
}
