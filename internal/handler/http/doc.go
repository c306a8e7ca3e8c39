// Package http is the REST surface of the WebCRM sandbox.
//
// It mirrors the subset of the WebCRM API used by the console: the password
// grant on POST /token, the process summary, the confirmation workflow for
// destinations and contacts, and customer, destination and contact CRUD.
// Paths are matched case-insensitively because the real API is served by a
// case-insensitive router and clients mix casings freely.
package http
