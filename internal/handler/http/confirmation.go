package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/webcrm-console/models"
)

func (h *Handler) processSummary(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.Summary())
}

func (h *Handler) notConfirmedDestinations(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.PendingDestinations())
}

func (h *Handler) notConfirmedReferences(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.PendingReferences())
}

// decide handles the confirm and dismiss endpoints. The body must repeat the
// decision: {"isConfirmation":true,"isActive":true} to confirm, both false to
// dismiss.
func (h *Handler) decide(category models.Category, d models.Decision) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body models.ConfirmationRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			fail(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
			return
		}
		if body != d.Request() {
			fail(w, r, fmt.Errorf("%w: %s %+v", ErrDecisionMismatch, d, body))
			return
		}

		if err := h.store.Decide(category, idParam(r), d); err != nil {
			fail(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) difference(category models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diffs, err := h.store.Difference(category, idParam(r))
		if err != nil {
			fail(w, r, err)
			return
		}
		respond(w, r, diffs)
	}
}

// ── Customers ──

func (h *Handler) customersGrid(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.Customers())
}

func (h *Handler) fetchCustomer(w http.ResponseWriter, r *http.Request) {
	reply(w, r, h.store.Customer, idParam(r))
}

func (h *Handler) customerSummary(w http.ResponseWriter, r *http.Request) {
	reply(w, r, h.store.CustomerSummary, idParam(r))
}

// reply calls fn with in and writes its result or error.
func reply[In, Out any](w http.ResponseWriter, r *http.Request, fn func(In) (Out, error), in In) {
	out, err := fn(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, out)
}

// decodeBody decodes the JSON request body and answers 400 on failure.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		fail(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return v, false
	}
	return v, true
}
