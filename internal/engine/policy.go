package engine

// Policy holds the desk's tunable allocation parameters. Target and
// rates feed the recommendation and projection; the horizon is a
// display-only projection window.
type Policy struct {
	OperatingTarget    float64 // minimum cash buffer kept in Operating, >= 0
	BaselineRatePct    float64 // current route yield, [0, 100]
	AlternativeRatePct float64 // alternative route yield, [0, 100]
	HorizonMonths      int     // projection window, [1, 24]
}

// Horizon bounds for the projection window.
const (
	MinHorizonMonths = 1
	MaxHorizonMonths = 24
)

// DefaultPolicy returns the desk's starting policy.
func DefaultPolicy() Policy {
	return Policy{
		OperatingTarget:    60000,
		BaselineRatePct:    0.2,
		AlternativeRatePct: 5.0,
		HorizonMonths:      12,
	}
}
