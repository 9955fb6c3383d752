package audit

// Log is an append-only event sequence ordered most-recent-first.
// That ordering is the durable contract for both on-screen listings
// and export.
type Log struct {
	events []Event
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append prepends ev so the newest event is always first.
func (l *Log) Append(ev Event) {
	l.events = append([]Event{ev}, l.events...)
}

// Events returns a copy of the sequence, newest first. Callers may not
// mutate logged events through it.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports the number of logged events.
func (l *Log) Len() int {
	return len(l.events)
}

// Clear empties the sequence. Irreversible within the session.
func (l *Log) Clear() {
	l.events = nil
}
