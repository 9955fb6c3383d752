package engine

import (
	"time"

	"sweepdesk/internal/audit"
	"sweepdesk/internal/money"
)

// SweepPath tags which entry point triggered an execution. Both paths
// perform the identical transition; the tag is audit metadata only.
type SweepPath string

const (
	PathGuided SweepPath = "guided"
	PathQuick  SweepPath = "quick"
)

// BlockReason explains why execution is currently unavailable.
type BlockReason string

const (
	BlockNone            BlockReason = ""
	BlockNotConnected    BlockReason = "not-connected"
	BlockApprovalPending BlockReason = "approval-pending"
	BlockNothingToSweep  BlockReason = "nothing-to-sweep"
)

// Message returns the user-facing explanation for a disabled action.
func (r BlockReason) Message() string {
	switch r {
	case BlockNotConnected:
		return "Connect a balance feed first"
	case BlockApprovalPending:
		return "Waiting on approval"
	case BlockNothingToSweep:
		return "Nothing to sweep"
	default:
		return ""
	}
}

// ExecStatus is the sweep executor's current gate check.
type ExecStatus struct {
	Executable bool
	Reason     BlockReason
}

// SweepSummary describes the most recent successful execution.
// Overwritten, not appended, on each execution.
type SweepSummary struct {
	Amount float64
	Time   time.Time
	Path   SweepPath
}

// Seed is the desk's starting state, restored by Reset.
type Seed struct {
	Balances         map[Account]float64
	Policy           Policy
	ApprovalRequired bool
}

// DefaultSeed returns the built-in demo desk.
func DefaultSeed() Seed {
	return Seed{
		Balances: map[Account]float64{
			Operating: 80000,
			Yield:     250000,
			Payment:   40000,
		},
		Policy:           DefaultPolicy(),
		ApprovalRequired: true,
	}
}

// Engine owns the desk's session state. The presentation layer reads
// Snapshot and invokes the operations here; it never mutates fields
// directly. The engine is the sole authority on gating: every guarded
// operation re-checks its own gates rather than trusting callers.
//
// Single-actor by design: one user action runs to completion before
// the next.
type Engine struct {
	seed Seed

	ledger    *Ledger
	policy    Policy
	conn      ConnectionMode
	gate      ApprovalGate
	stage     Stage
	log       *audit.Log
	lastSweep *SweepSummary
}

// New constructs a desk engine from seed.
func New(seed Seed) *Engine {
	e := &Engine{log: audit.NewLog()}
	e.apply(seed)
	return e
}

func (e *Engine) apply(seed Seed) {
	e.seed = seed
	e.ledger = NewLedger(seed.Balances)
	e.policy = normalizePolicy(seed.Policy)
	e.conn = NotConnected
	e.gate = ApprovalGate{}
	e.gate.SetRequired(seed.ApprovalRequired)
	e.stage = StageConnect
	e.lastSweep = nil
}

func normalizePolicy(p Policy) Policy {
	if p.OperatingTarget < 0 {
		p.OperatingTarget = 0
	}
	p.BaselineRatePct = money.ClampPercent(p.BaselineRatePct)
	p.AlternativeRatePct = money.ClampPercent(p.AlternativeRatePct)
	p.HorizonMonths = money.ClampInt(p.HorizonMonths, MinHorizonMonths, MaxHorizonMonths)
	return p
}

// ─── Connection ─────────────────────────────────────────────────

// Connect links the given feed and records it. Connecting while
// already linked to another mode simply overwrites and records again.
// NotConnected is not a valid argument; use Disconnect.
func (e *Engine) Connect(mode ConnectionMode) {
	if !mode.Connected() {
		return
	}
	e.conn = mode
	e.log.Append(audit.Connected{Meta: audit.NewMeta(), Mode: mode.Label()})
}

// Disconnect drops the link. Deliberately silent in the audit trail:
// a disconnect is a local reset, not a reportable treasury action.
func (e *Engine) Disconnect() {
	e.conn = NotConnected
}

// Connection returns the current link status.
func (e *Engine) Connection() ConnectionMode {
	return e.conn
}

// ─── Ledger ─────────────────────────────────────────────────────

// SetBalance parses raw input, replaces the account balance, records
// the edit, and returns the normalized amount for display. Gated on a
// live connection: when not connected the ledger is untouched and the
// current balance is returned.
func (e *Engine) SetBalance(a Account, raw string) float64 {
	if !e.conn.Connected() || !a.Valid() {
		return e.ledger.Balance(a)
	}
	v := e.ledger.SetBalance(a, raw)
	e.log.Append(audit.BalanceUpdated{
		Meta:     audit.NewMeta(),
		Account:  string(a),
		NewValue: v,
	})
	return v
}

// Balance reads one account balance.
func (e *Engine) Balance(a Account) float64 {
	return e.ledger.Balance(a)
}

// TotalCash is the sum of the three balances.
func (e *Engine) TotalCash() float64 {
	return e.ledger.TotalCash()
}

// ─── Policy ─────────────────────────────────────────────────────

// SetTarget updates the operating buffer target from raw input and
// records the full resulting policy.
func (e *Engine) SetTarget(raw string) {
	if !e.conn.Connected() {
		return
	}
	e.policy.OperatingTarget = money.ParseAmount(raw)
	e.appendPolicyEvent("operating target updated")
}

// SetBaselineRate updates the baseline route yield, clamped to
// [0, 100], and records the full resulting policy.
func (e *Engine) SetBaselineRate(pct float64) {
	if !e.conn.Connected() {
		return
	}
	e.policy.BaselineRatePct = money.ClampPercent(pct)
	e.appendPolicyEvent("baseline rate updated")
}

// SetAlternativeRate updates the alternative route yield, clamped to
// [0, 100], and records the full resulting policy.
func (e *Engine) SetAlternativeRate(pct float64) {
	if !e.conn.Connected() {
		return
	}
	e.policy.AlternativeRatePct = money.ClampPercent(pct)
	e.appendPolicyEvent("alternative rate updated")
}

// SetHorizon updates the projection window, clamped to [1, 24].
// Display-only parameter: no audit event.
func (e *Engine) SetHorizon(months int) {
	e.policy.HorizonMonths = money.ClampInt(months, MinHorizonMonths, MaxHorizonMonths)
}

// Policy returns the current policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Each policy event snapshots all three tunable values even though
// only one changed, so the trail can reconstruct the whole policy at
// any point.
func (e *Engine) appendPolicyEvent(note string) {
	e.log.Append(audit.PolicyUpdated{
		Meta:            audit.NewMeta(),
		Target:          e.policy.OperatingTarget,
		BaselineRate:    e.policy.BaselineRatePct,
		AlternativeRate: e.policy.AlternativeRatePct,
		Note:            note,
	})
}

// ─── Approval ───────────────────────────────────────────────────

// SetApprovalRequired toggles the approval requirement. Either
// direction of the toggle clears any standing approval.
func (e *Engine) SetApprovalRequired(required bool) {
	e.gate.SetRequired(required)
}

// Approve satisfies the approval gate. Gated on a live connection;
// a no-op when approval is not required.
func (e *Engine) Approve() {
	if !e.conn.Connected() {
		return
	}
	e.gate.Approve()
}

// Approval returns the current gate state.
func (e *Engine) Approval() ApprovalGate {
	return e.gate
}

// ─── Recommendation & execution ─────────────────────────────────

// Recommendation derives the current sweep advice. Pure read.
func (e *Engine) Recommendation() Recommendation {
	return Recommend(e.ledger, e.policy)
}

// ExecStatus checks the executor's gates: connection, a positive
// sweep amount, and approval. When several gates fail at once the
// reported reason follows the priority
// not-connected > approval-pending > nothing-to-sweep.
func (e *Engine) ExecStatus() ExecStatus {
	if !e.conn.Connected() {
		return ExecStatus{Reason: BlockNotConnected}
	}
	if !e.gate.Satisfied() {
		return ExecStatus{Reason: BlockApprovalPending}
	}
	if !e.Recommendation().HasSweep() {
		return ExecStatus{Reason: BlockNothingToSweep}
	}
	return ExecStatus{Executable: true}
}

// Execute applies the recommended sweep: debit Operating, credit Yield,
// both together or neither. Callers are expected to disable the action
// while blocked, but Execute re-checks and silently refuses rather
// than trust caller discipline. On success it records the last-sweep
// summary and audit event, consumes the approval, and advances the
// guided flow to Monitor. Returns whether a sweep happened.
func (e *Engine) Execute(path SweepPath) bool {
	if path != PathGuided && path != PathQuick {
		return false
	}
	if !e.ExecStatus().Executable {
		return false
	}

	amount := e.Recommendation().SweepAmount
	if !e.ledger.Transfer(Operating, Yield, amount) {
		return false
	}

	e.lastSweep = &SweepSummary{Amount: amount, Time: time.Now(), Path: path}
	e.log.Append(audit.SweepExecuted{
		Meta:   audit.NewMeta(),
		Amount: amount,
		Path:   string(path),
	})
	e.gate.ClearApproval()
	e.stage = StageMonitor
	return true
}

// LastSweep returns a copy of the most recent execution summary, or
// nil if none occurred this session.
func (e *Engine) LastSweep() *SweepSummary {
	if e.lastSweep == nil {
		return nil
	}
	cp := *e.lastSweep
	return &cp
}

// ─── Guided flow ────────────────────────────────────────────────

// Stage returns the current guided-flow position.
func (e *Engine) Stage() Stage {
	return e.stage
}

// AdvanceStage steps the guided flow forward. Leaving Connect requires
// a live connection and leaving Allocate requires a satisfied approval
// gate; the Analyze step is unconditional. Returns whether the flow
// moved.
func (e *Engine) AdvanceStage() bool {
	switch e.stage {
	case StageConnect:
		if !e.conn.Connected() {
			return false
		}
		e.stage = StageAnalyze
	case StageAnalyze:
		e.stage = StageAllocate
	case StageAllocate:
		if !e.gate.Satisfied() {
			return false
		}
		e.stage = StageMonitor
	default:
		return false
	}
	return true
}

// RetreatStage steps the guided flow back. Always allowed, ungated.
func (e *Engine) RetreatStage() bool {
	if e.stage == StageConnect {
		return false
	}
	e.stage--
	return true
}

// ─── Projection & audit reads ───────────────────────────────────

// Projection returns the cumulative-yield series for the Yield
// principal under the current policy. Read-only chart feed.
func (e *Engine) Projection() []ProjectionPoint {
	return Project(
		e.ledger.Balance(Yield),
		e.policy.BaselineRatePct,
		e.policy.AlternativeRatePct,
		e.policy.HorizonMonths,
	)
}

// Events returns the audit trail, newest first.
func (e *Engine) Events() []audit.Event {
	return e.log.Events()
}

// ─── Reset ──────────────────────────────────────────────────────

// Reset restores the seed state: balances and policy back to their
// starting values, disconnected, approval cleared, flow rewound to
// Connect, and the audit trail emptied. Irreversible within the
// session.
func (e *Engine) Reset() {
	e.apply(e.seed)
	e.log.Clear()
}
