package sandbox

// State is the lifecycle position of a sandbox row.
type State int

const (
	StateProposed State = iota + 1
	StateConfirmed
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateProposed:
		return "proposed"
	case StateConfirmed:
		return "confirmed"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is allowed.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateDismissed
}
