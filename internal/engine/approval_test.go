package engine

import "testing"

func TestSetRequiredAlwaysClearsApproval(t *testing.T) {
	var g ApprovalGate

	g.SetRequired(true)
	g.Approve()
	if !g.Approved() {
		t.Fatal("Approve did not take while required")
	}

	// On -> off clears
	g.SetRequired(false)
	if g.Approved() {
		t.Fatal("approval survived a required toggle off")
	}

	// Off -> on clears too (approve first is a no-op while off)
	g.SetRequired(true)
	g.Approve()
	g.SetRequired(true)
	if g.Approved() {
		t.Fatal("approval survived re-setting required")
	}
}

func TestApproveNoopWhenNotRequired(t *testing.T) {
	var g ApprovalGate
	g.Approve()
	if g.Approved() {
		t.Fatal("Approve took effect while not required")
	}
	if !g.Satisfied() {
		t.Fatal("gate should be satisfied when approval not required")
	}
}

func TestSatisfied(t *testing.T) {
	var g ApprovalGate

	if !g.Satisfied() {
		t.Fatal("zero gate should be satisfied")
	}

	g.SetRequired(true)
	if g.Satisfied() {
		t.Fatal("required but unapproved gate reported satisfied")
	}

	g.Approve()
	if !g.Satisfied() {
		t.Fatal("approved gate reported unsatisfied")
	}

	g.ClearApproval()
	if g.Satisfied() {
		t.Fatal("gate satisfied after post-execution clear")
	}
}
