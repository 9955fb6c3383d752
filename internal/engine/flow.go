package engine

// Stage is the guided-flow position: a four-step linear progression
// the user walks through. It is presentation state, but it lives here
// because forward movement couples to the connection and approval
// gates.
type Stage int

const (
	StageConnect Stage = iota
	StageAnalyze
	StageAllocate
	StageMonitor
)

// String returns the stage's display name.
func (s Stage) String() string {
	switch s {
	case StageConnect:
		return "Connect"
	case StageAnalyze:
		return "Analyze"
	case StageAllocate:
		return "Allocate"
	case StageMonitor:
		return "Monitor"
	default:
		return "Unknown"
	}
}

// Stages lists the flow in order.
var Stages = []Stage{StageConnect, StageAnalyze, StageAllocate, StageMonitor}
