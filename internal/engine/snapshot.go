package engine

import "sweepdesk/internal/audit"

// Snapshot is the read surface handed to the presentation layer on
// every change. Everything in it is a copy or a derived value; holding
// a Snapshot never aliases engine state.
type Snapshot struct {
	Balances       map[Account]float64
	TotalCash      float64
	Policy         Policy
	Connection     ConnectionMode
	Approval       ApprovalGate
	Recommendation Recommendation
	Status         ExecStatus
	LastSweep      *SweepSummary
	Stage          Stage
	Projection     []ProjectionPoint
	Events         []audit.Event
}

// Snapshot captures the full desk state for display.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Balances:       e.ledger.Balances(),
		TotalCash:      e.ledger.TotalCash(),
		Policy:         e.policy,
		Connection:     e.conn,
		Approval:       e.gate,
		Recommendation: e.Recommendation(),
		Status:         e.ExecStatus(),
		LastSweep:      e.LastSweep(),
		Stage:          e.stage,
		Projection:     e.Projection(),
		Events:         e.log.Events(),
	}
}
