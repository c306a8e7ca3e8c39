package http

import (
	"net/http"

	"github.com/MKhiriev/webcrm-console/models"
)

// ── Destinations ──

func (h *Handler) destinationTypes(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.DestinationTypes())
}

func (h *Handler) destinationsByCustomer(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.DestinationsByCustomer(idParam(r)))
}

func (h *Handler) destinationByID(w http.ResponseWriter, r *http.Request) {
	reply(w, r, h.store.Destination, idParam(r))
}

func (h *Handler) createDestination(w http.ResponseWriter, r *http.Request) {
	if d, ok := decodeBody[models.Destination](w, r); ok {
		reply(w, r, h.store.CreateDestination, d)
	}
}

func (h *Handler) updateDestination(w http.ResponseWriter, r *http.Request) {
	if d, ok := decodeBody[models.Destination](w, r); ok {
		reply(w, r, h.store.UpdateDestination, d)
	}
}

func (h *Handler) deleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteDestination(idParam(r)); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ── References ──

func (h *Handler) referencesByCustomer(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.store.ReferencesByCustomer(idParam(r)))
}

func (h *Handler) referenceByID(w http.ResponseWriter, r *http.Request) {
	reply(w, r, h.store.Reference, idParam(r))
}

func (h *Handler) createReference(w http.ResponseWriter, r *http.Request) {
	if ref, ok := decodeBody[models.Reference](w, r); ok {
		reply(w, r, h.store.CreateReference, ref)
	}
}

func (h *Handler) updateReference(w http.ResponseWriter, r *http.Request) {
	if ref, ok := decodeBody[models.Reference](w, r); ok {
		reply(w, r, h.store.UpdateReference, ref)
	}
}

func (h *Handler) deleteReference(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteReference(idParam(r)); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
