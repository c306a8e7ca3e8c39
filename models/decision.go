package models

// Decision is the action taken on a pending record.
type Decision int

const (
	DecisionConfirm Decision = iota + 1
	DecisionDismiss
)

func (d Decision) String() string {
	switch d {
	case DecisionConfirm:
		return "confirm"
	case DecisionDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// ConfirmationRequest is the body of the Confirm and Dismiss endpoints.
type ConfirmationRequest struct {
	IsConfirmation bool `json:"isConfirmation"`
	IsActive       bool `json:"isActive"`
}

// Request returns the body the API expects for d.
func (d Decision) Request() ConfirmationRequest {
	if d == DecisionConfirm {
		return ConfirmationRequest{IsConfirmation: true, IsActive: true}
	}
	return ConfirmationRequest{IsConfirmation: false, IsActive: false}
}
