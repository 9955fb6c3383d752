// Package audit provides the typed, append-only event trail for the
// treasury desk. Every mutating desk action emits exactly one event;
// events are immutable once appended.
package audit

import (
	"fmt"
	"time"

	"sweepdesk/internal/money"
)

// Kind identifies the event variant.
type Kind string

const (
	KindConnected      Kind = "connected"
	KindPolicyUpdated  Kind = "policy_updated"
	KindBalanceUpdated Kind = "balance_updated"
	KindSweepExecuted  Kind = "sweep_executed"
)

// Event is the closed set of audit record variants. Only the four
// concrete types in this package implement it.
type Event interface {
	EventID() string
	At() time.Time
	Kind() Kind
	// Details renders the kind-specific free-text column for listings
	// and export. It is descriptive metadata, not machine-parseable.
	Details() string
}

// Meta carries the identity and timestamp shared by all variants.
type Meta struct {
	ID   string
	Time time.Time
}

// NewMeta stamps a fresh ULID and the current time.
func NewMeta() Meta {
	return Meta{ID: NewID(), Time: time.Now()}
}

func (m Meta) EventID() string { return m.ID }
func (m Meta) At() time.Time   { return m.Time }

// Connected records a link to a balance feed. Disconnects are
// deliberately silent: they are a local reset, not a treasury action.
type Connected struct {
	Meta
	Mode string
}

func (Connected) Kind() Kind { return KindConnected }

func (e Connected) Details() string {
	return fmt.Sprintf("connected via %s", e.Mode)
}

// PolicyUpdated snapshots the complete policy after an edit, so the
// trail can reconstruct the full policy at any point, not just deltas.
// Note names the field that changed.
type PolicyUpdated struct {
	Meta
	Target          float64
	BaselineRate    float64
	AlternativeRate float64
	Note            string
}

func (PolicyUpdated) Kind() Kind { return KindPolicyUpdated }

func (e PolicyUpdated) Details() string {
	return fmt.Sprintf("%s (target %s, baseline %s, alternative %s)",
		e.Note,
		money.FormatUSD(e.Target),
		money.FormatPercent(e.BaselineRate),
		money.FormatPercent(e.AlternativeRate),
	)
}

// BalanceUpdated records a direct balance edit on one account.
type BalanceUpdated struct {
	Meta
	Account  string
	NewValue float64
}

func (BalanceUpdated) Kind() Kind { return KindBalanceUpdated }

func (e BalanceUpdated) Details() string {
	return fmt.Sprintf("%s balance set to %s", e.Account, money.FormatUSD(e.NewValue))
}

// SweepExecuted records a completed Operating-to-Yield transfer.
// Path distinguishes which entry point triggered it (guided or quick);
// it never affects the amount or gating.
type SweepExecuted struct {
	Meta
	Amount float64
	Path   string
}

func (SweepExecuted) Kind() Kind { return KindSweepExecuted }

func (e SweepExecuted) Details() string {
	return fmt.Sprintf("swept %s from Operating to Yield (%s path)",
		money.FormatUSD(e.Amount), e.Path)
}
