// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/utils"
)

// CheckHTTPMethod is registered both as the NotFound and the MethodNotAllowed
// handler of the router.
//
// Chi answers a known path requested with an unregistered method with 405.
// The sandbox answers 404 instead, with the same JSON error body as an
// unknown path, so that callers cannot probe which methods a path supports.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg("no route")

	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
