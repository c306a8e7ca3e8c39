package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/sandbox"
	"github.com/MKhiriev/webcrm-console/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidBody:          http.StatusBadRequest,
	ErrUnsupportedGrantType: http.StatusBadRequest,
	ErrDecisionMismatch:     http.StatusBadRequest,

	// the WebCRM token endpoint answers a failed password grant with 400
	sandbox.ErrWrongCredentials:    http.StatusBadRequest,
	sandbox.ErrInvalidRecord:       http.StatusBadRequest,
	sandbox.ErrNotFound:            http.StatusNotFound,
	sandbox.ErrUnsupportedCategory: http.StatusNotFound,
	sandbox.ErrNotProposed:         http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fail logs err and answers with the mapped status. Internal errors are not
// echoed to the caller.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		msg = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}

	utils.WriteError(w, msg, status)
}

func respond(w http.ResponseWriter, r *http.Request, v any) {
	if _, err := utils.WriteJSON(w, v, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
