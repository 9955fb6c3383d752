package engine

import (
	"testing"

	"sweepdesk/internal/audit"
)

func testEngine() *Engine {
	return New(Seed{
		Balances: map[Account]float64{
			Operating: 80000,
			Yield:     250000,
			Payment:   40000,
		},
		Policy: Policy{
			OperatingTarget:    60000,
			BaselineRatePct:    0.2,
			AlternativeRatePct: 5.0,
			HorizonMonths:      6,
		},
	})
}

func kinds(events []audit.Event) []audit.Kind {
	out := make([]audit.Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind()
	}
	return out
}

func TestConnectEmitsEventDisconnectSilent(t *testing.T) {
	e := testEngine()

	e.Connect(WalletLink)
	if e.Connection() != WalletLink {
		t.Fatalf("Connection = %v, want WalletLink", e.Connection())
	}
	if got := len(e.Events()); got != 1 {
		t.Fatalf("event count after connect = %d, want 1", got)
	}

	e.Disconnect()
	if e.Connection() != NotConnected {
		t.Fatalf("Connection = %v, want NotConnected", e.Connection())
	}
	if got := len(e.Events()); got != 1 {
		t.Fatalf("event count after disconnect = %d, want 1 (disconnect is silent)", got)
	}
}

func TestConnectOverwritesWithoutError(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)
	e.Connect(WalletLink)

	if e.Connection() != WalletLink {
		t.Fatalf("Connection = %v, want WalletLink after overwrite", e.Connection())
	}
	if got := len(e.Events()); got != 2 {
		t.Fatalf("event count = %d, want 2 (one per connect)", got)
	}
}

func TestConnectRejectsNotConnected(t *testing.T) {
	e := testEngine()
	e.Connect(NotConnected)
	if e.Connection() != NotConnected || len(e.Events()) != 0 {
		t.Fatal("Connect(NotConnected) should be a no-op")
	}
}

func TestMutationsGatedOnConnection(t *testing.T) {
	e := testEngine()

	if got := e.SetBalance(Operating, "99999"); got != 80000 {
		t.Fatalf("SetBalance while disconnected returned %v, want unchanged 80000", got)
	}
	e.SetTarget("10000")
	e.SetBaselineRate(1)
	e.SetAlternativeRate(9)

	if e.Balance(Operating) != 80000 {
		t.Fatal("balance changed while disconnected")
	}
	if e.Policy().OperatingTarget != 60000 {
		t.Fatal("target changed while disconnected")
	}
	if got := len(e.Events()); got != 0 {
		t.Fatalf("events emitted while disconnected: %d", got)
	}
}

func TestSetBalanceEmitsEvent(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)

	if got := e.SetBalance(Operating, "$75,000"); got != 75000 {
		t.Fatalf("SetBalance = %v, want 75000", got)
	}

	events := e.Events()
	if events[0].Kind() != audit.KindBalanceUpdated {
		t.Fatalf("newest event kind = %v, want balance_updated", events[0].Kind())
	}
	ev := events[0].(audit.BalanceUpdated)
	if ev.Account != "Operating" || ev.NewValue != 75000 {
		t.Fatalf("event payload = %+v, want Operating/75000", ev)
	}
}

func TestPolicyEventSnapshotsFullPolicy(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)

	e.SetBaselineRate(1.5)

	ev, ok := e.Events()[0].(audit.PolicyUpdated)
	if !ok {
		t.Fatalf("newest event = %T, want PolicyUpdated", e.Events()[0])
	}
	if ev.Note != "baseline rate updated" {
		t.Fatalf("Note = %q", ev.Note)
	}
	// Unchanged fields are snapshotted too.
	if ev.Target != 60000 || ev.BaselineRate != 1.5 || ev.AlternativeRate != 5.0 {
		t.Fatalf("event snapshot = %+v, want full policy", ev)
	}
}

func TestSetHorizonSilentAndClamped(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)

	e.SetHorizon(99)
	if got := e.Policy().HorizonMonths; got != MaxHorizonMonths {
		t.Fatalf("HorizonMonths = %d, want %d", got, MaxHorizonMonths)
	}
	e.SetHorizon(0)
	if got := e.Policy().HorizonMonths; got != MinHorizonMonths {
		t.Fatalf("HorizonMonths = %d, want %d", got, MinHorizonMonths)
	}

	for _, ev := range e.Events() {
		if ev.Kind() == audit.KindPolicyUpdated {
			t.Fatal("horizon change emitted a policy event")
		}
	}
}

func TestExecStatusReasonPriority(t *testing.T) {
	e := testEngine()
	e.SetApprovalRequired(true)

	// Disconnected outranks everything, even with excess and approval pending.
	if st := e.ExecStatus(); st.Executable || st.Reason != BlockNotConnected {
		t.Fatalf("status = %+v, want blocked not-connected", st)
	}

	e.Connect(WalletLink)
	if st := e.ExecStatus(); st.Reason != BlockApprovalPending {
		t.Fatalf("status = %+v, want blocked approval-pending", st)
	}

	e.Approve()
	e.SetTarget("90000") // target above Operating: nothing to sweep
	if st := e.ExecStatus(); st.Reason != BlockNothingToSweep {
		t.Fatalf("status = %+v, want blocked nothing-to-sweep", st)
	}

	e.SetTarget("60000")
	e.Approve() // SetTarget did not clear approval; re-approve is harmless
	if st := e.ExecStatus(); !st.Executable {
		t.Fatalf("status = %+v, want executable", st)
	}
}

func TestExecuteBlockedIsNoop(t *testing.T) {
	e := testEngine()
	e.SetApprovalRequired(false)

	// NotConnected + positive excess + satisfied gate: still refused.
	if e.Execute(PathQuick) {
		t.Fatal("Execute succeeded while disconnected")
	}
	if e.Balance(Operating) != 80000 || e.Balance(Yield) != 250000 {
		t.Fatal("balances changed on blocked execute")
	}
	if len(e.Events()) != 0 {
		t.Fatal("blocked execute appended an event")
	}
	if e.LastSweep() != nil {
		t.Fatal("blocked execute recorded a sweep summary")
	}
}

func TestExecuteAppliesSweep(t *testing.T) {
	e := testEngine()
	e.Connect(WalletLink)
	e.SetApprovalRequired(false)
	totalBefore := e.TotalCash()

	if !e.Execute(PathGuided) {
		t.Fatal("Execute refused while executable")
	}

	if got := e.Balance(Operating); got != 60000 {
		t.Fatalf("Operating = %v, want 60000", got)
	}
	if got := e.Balance(Yield); got != 270000 {
		t.Fatalf("Yield = %v, want 270000", got)
	}
	if got := e.Balance(Payment); got != 40000 {
		t.Fatalf("Payment = %v, want 40000 (unchanged)", got)
	}
	if got := e.TotalCash(); got != totalBefore {
		t.Fatalf("TotalCash = %v, want %v (conserved)", got, totalBefore)
	}

	sw := e.LastSweep()
	if sw == nil || sw.Amount != 20000 || sw.Path != PathGuided {
		t.Fatalf("LastSweep = %+v, want 20000 via guided", sw)
	}
	if e.Stage() != StageMonitor {
		t.Fatalf("Stage = %v, want Monitor after execute", e.Stage())
	}

	ev := e.Events()[0]
	if ev.Kind() != audit.KindSweepExecuted {
		t.Fatalf("newest event = %v, want sweep_executed", ev.Kind())
	}
	if se := ev.(audit.SweepExecuted); se.Amount != 20000 || se.Path != "guided" {
		t.Fatalf("sweep event payload = %+v", se)
	}
}

func TestApprovalFlowAroundExecution(t *testing.T) {
	// Scenario: wallet linked, approval required but not yet given.
	e := testEngine()
	e.Connect(WalletLink)
	e.SetApprovalRequired(true)

	if st := e.ExecStatus(); st.Reason != BlockApprovalPending {
		t.Fatalf("status = %+v, want approval-pending", st)
	}
	if e.Execute(PathQuick) {
		t.Fatal("Execute succeeded without approval")
	}

	e.Approve()
	if !e.Execute(PathQuick) {
		t.Fatal("Execute refused after approval")
	}
	if sw := e.LastSweep(); sw == nil || sw.Path != PathQuick {
		t.Fatalf("LastSweep path = %+v, want quick", sw)
	}

	// Execution consumes the approval.
	if e.Approval().Approved() {
		t.Fatal("approval survived execution")
	}
}

func TestQuickAndGuidedPathsIdenticalTransition(t *testing.T) {
	for _, path := range []SweepPath{PathGuided, PathQuick} {
		e := testEngine()
		e.Connect(DemoFeed)
		e.SetApprovalRequired(false)

		if !e.Execute(path) {
			t.Fatalf("%s: execute refused", path)
		}
		if got := e.Balance(Operating); got != 60000 {
			t.Fatalf("%s: Operating = %v, want 60000", path, got)
		}
		if e.LastSweep().Path != path {
			t.Fatalf("%s: LastSweep path = %v", path, e.LastSweep().Path)
		}
	}
}

func TestExecuteRejectsUnknownPath(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)
	e.SetApprovalRequired(false)

	if e.Execute(SweepPath("bulk")) {
		t.Fatal("Execute accepted an unknown path")
	}
}

func TestFlowGating(t *testing.T) {
	e := testEngine()
	e.SetApprovalRequired(true)

	// Leaving Connect is blocked until connected.
	if e.AdvanceStage() {
		t.Fatal("advanced out of Connect while disconnected")
	}
	e.Connect(DemoFeed)
	if !e.AdvanceStage() || e.Stage() != StageAnalyze {
		t.Fatalf("Stage = %v, want Analyze", e.Stage())
	}

	// Analyze -> Allocate is unconditional.
	if !e.AdvanceStage() || e.Stage() != StageAllocate {
		t.Fatalf("Stage = %v, want Allocate", e.Stage())
	}

	// Leaving Allocate is blocked until the gate is satisfied.
	if e.AdvanceStage() {
		t.Fatal("advanced out of Allocate without approval")
	}
	e.Approve()
	if !e.AdvanceStage() || e.Stage() != StageMonitor {
		t.Fatalf("Stage = %v, want Monitor", e.Stage())
	}

	// No forward movement from the terminal stage.
	if e.AdvanceStage() {
		t.Fatal("advanced past Monitor")
	}

	// Back is always allowed, all the way to Connect.
	for e.Stage() != StageConnect {
		if !e.RetreatStage() {
			t.Fatalf("RetreatStage refused at %v", e.Stage())
		}
	}
	if e.RetreatStage() {
		t.Fatal("retreated past Connect")
	}
}

func TestAuditOrderingNewestFirst(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)           // E1
	e.SetBalance(Payment, "1000") // E2

	got := kinds(e.Events())
	want := []audit.Kind{audit.KindBalanceUpdated, audit.KindConnected}
	if len(got) != len(want) {
		t.Fatalf("event kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event kinds = %v, want %v", got, want)
		}
	}
}

func TestResetRestoresSeed(t *testing.T) {
	e := testEngine()
	e.Connect(WalletLink)
	e.SetBalance(Operating, "100000")
	e.SetTarget("10000")
	e.SetApprovalRequired(false)
	e.Execute(PathQuick)

	e.Reset()

	if e.Connection() != NotConnected {
		t.Fatal("Reset left the desk connected")
	}
	if e.Balance(Operating) != 80000 || e.Balance(Yield) != 250000 {
		t.Fatal("Reset did not restore seed balances")
	}
	if e.Policy().OperatingTarget != 60000 {
		t.Fatal("Reset did not restore seed policy")
	}
	if len(e.Events()) != 0 {
		t.Fatal("Reset did not clear the audit trail")
	}
	if e.LastSweep() != nil {
		t.Fatal("Reset left a sweep summary")
	}
	if e.Stage() != StageConnect {
		t.Fatalf("Stage = %v, want Connect after reset", e.Stage())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := testEngine()
	e.Connect(DemoFeed)

	snap := e.Snapshot()
	snap.Balances[Operating] = 0

	if e.Balance(Operating) != 80000 {
		t.Fatal("mutating a snapshot reached engine state")
	}
	if snap.Recommendation.SweepAmount != 20000 {
		t.Fatalf("snapshot recommendation = %v, want 20000", snap.Recommendation.SweepAmount)
	}
	if !snap.Status.Executable && snap.Status.Reason == BlockNone {
		t.Fatal("snapshot status inconsistent")
	}
}
