// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/validators"
)

// userMessage turns err into the Italian text shown to the user. fallback is
// used for failures that have no more specific wording.
func userMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return app.MsgWrongCredentials
	case errors.Is(err, service.ErrMissingCredentials):
		return app.MsgMissingCredentials
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrNotSignedIn):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrRecordNotFound):
		return app.MsgNotFound
	case errors.Is(err, service.ErrConflict):
		return app.MsgConflict
	}

	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs.Error()
	}

	switch adapter.Classify(err) {
	case adapter.KindTransport:
		return app.MsgServerUnavailable
	case adapter.KindServer:
		return app.MsgServerError
	case adapter.KindAuthorization:
		return app.MsgSessionExpired
	}
	return fallback
}
