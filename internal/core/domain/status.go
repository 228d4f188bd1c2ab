package domain

// Status is the lifecycle state of a campaign. It is a closed enumeration;
// any other value is rejected at the validation boundary.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// transitions is the lifecycle table. A campaign may be created in any
// state, may switch between active and paused, and may be completed from
// either. Completed is terminal.
var transitions = map[Status][]Status{
	StatusActive:    {StatusPaused, StatusCompleted},
	StatusPaused:    {StatusActive, StatusCompleted},
	StatusCompleted: {},
}

// CanTransition reports whether moving from s to next is allowed.
// Re-applying the current status is permitted and treated as a no-op write.
func (s Status) CanTransition(next Status) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}
