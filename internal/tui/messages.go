package tui

import (
	"sync/atomic"

	"github.com/MKhiriev/webcrm-console/models"
)

// Page names.
const (
	pageLogin               = "login"
	pageHome                = "home"
	pageSummary             = "summary"
	pagePendingReferences   = "pending-references"
	pagePendingDestinations = "pending-destinations"
	pageDifference          = "difference"
	pageCustomers           = "customers"
	pageCustomer            = "customer"
	pageDestinationForm     = "destination-form"
	pageReferenceForm       = "reference-form"
)

// NavigateTo switches the active page. When Payload is set it is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

var generations atomic.Uint64

// nextGeneration returns a process-unique token for a page visit.
func nextGeneration() uint64 {
	return generations.Add(1)
}

type sessionRestoredMsg struct {
	cred models.Credential
	err  error
}

type signedInMsg struct {
	cred models.Credential
}

type signedOutMsg struct{}

type sessionExpiredMsg struct {
	event models.SessionEvent
}

type summaryRefreshedMsg struct {
	summary models.ProcessSummary
	err     error
}

type clearStatusMsg struct {
	gen   uint64
	toast uint64
}
