package engine

// ApprovalGate is the manual confirmation step that may be required
// before a sweep executes. The invariant: approved is only ever true
// immediately after an explicit Approve, never across a required
// toggle or an execution. Both resets are named transitions here so
// the invariant is enforced in one place.
type ApprovalGate struct {
	required bool
	approved bool
}

// SetRequired turns the requirement on or off. Any change of the
// toggle, in either direction, clears approval.
func (g *ApprovalGate) SetRequired(required bool) {
	g.required = required
	g.approved = false
}

// Approve marks the pending action approved. Approval has no meaning
// when not required, so this is a harmless no-op in that case.
func (g *ApprovalGate) Approve() {
	if !g.required {
		return
	}
	g.approved = true
}

// ClearApproval is the post-execution reset: a sweep consumes its
// approval.
func (g *ApprovalGate) ClearApproval() {
	g.approved = false
}

// Required reports whether approval is required.
func (g ApprovalGate) Required() bool { return g.required }

// Approved reports whether the pending action has been approved.
func (g ApprovalGate) Approved() bool { return g.approved }

// Satisfied reports whether the gate permits execution.
func (g ApprovalGate) Satisfied() bool {
	return !g.required || g.approved
}
