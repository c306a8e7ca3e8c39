package models

import "time"

// SessionEventKind identifies a session lifecycle transition.
type SessionEventKind int

const (
	SessionSignedIn SessionEventKind = iota + 1
	SessionSignedOut
	// SessionExpired is raised when any API call answers 401.
	SessionExpired
)

func (k SessionEventKind) String() string {
	switch k {
	case SessionSignedIn:
		return "signed_in"
	case SessionSignedOut:
		return "signed_out"
	case SessionExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// SessionEvent is published on the session broker.
type SessionEvent struct {
	Kind SessionEventKind
	At   time.Time
	// Reason is a short diagnostic (request path for SessionExpired).
	Reason string
}
