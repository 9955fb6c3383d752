// Package scenario loads demo-feed scenarios: YAML files declaring the
// desk's starting balances and policy presets.
package scenario

import (
	"fmt"
	"os"

	"sweepdesk/internal/engine"

	"gopkg.in/yaml.v3"
)

// Scenario is a named desk setup.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Balances    Balances `yaml:"balances"`
	Policy      Policy   `yaml:"policy"`
	Approval    Approval `yaml:"approval"`
}

// Balances holds the three starting account balances.
type Balances struct {
	Operating float64 `yaml:"operating"`
	Yield     float64 `yaml:"yield"`
	Payment   float64 `yaml:"payment"`
}

// Policy holds the scenario's policy presets.
type Policy struct {
	OperatingTarget    float64 `yaml:"operating_target"`
	BaselineRatePct    float64 `yaml:"baseline_rate_pct"`
	AlternativeRatePct float64 `yaml:"alternative_rate_pct"`
	HorizonMonths      int     `yaml:"horizon_months"`
}

// Approval holds the scenario's approval-gate preset.
type Approval struct {
	Required bool `yaml:"required"`
}

// Default returns the built-in demo scenario, used when no file is
// given.
func Default() Scenario {
	return Scenario{
		Name:        "demo-desk",
		Description: "Built-in demo treasury with idle cash in Operating",
		Balances:    Balances{Operating: 80000, Yield: 250000, Payment: 40000},
		Policy: Policy{
			OperatingTarget:    60000,
			BaselineRatePct:    0.2,
			AlternativeRatePct: 5.0,
			HorizonMonths:      12,
		},
		Approval: Approval{Required: true},
	}
}

// Load reads a scenario file. Fields the file omits keep the default
// scenario's values, so a minimal file only needs what it overrides.
func Load(path string) (Scenario, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario: %w", err)
	}
	return s, nil
}

// Seed converts the scenario to an engine seed. Out-of-range values
// are normalized by the engine, not here.
func (s Scenario) Seed() engine.Seed {
	return engine.Seed{
		Balances: map[engine.Account]float64{
			engine.Operating: s.Balances.Operating,
			engine.Yield:     s.Balances.Yield,
			engine.Payment:   s.Balances.Payment,
		},
		Policy: engine.Policy{
			OperatingTarget:    s.Policy.OperatingTarget,
			BaselineRatePct:    s.Policy.BaselineRatePct,
			AlternativeRatePct: s.Policy.AlternativeRatePct,
			HorizonMonths:      s.Policy.HorizonMonths,
		},
		ApprovalRequired: s.Approval.Required,
	}
}
