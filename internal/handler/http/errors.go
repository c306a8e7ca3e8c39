// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrInvalidBody = errors.New("invalid request body")

	// ErrUnsupportedGrantType is returned by POST /token for any grant other
	// than "password".
	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	// ErrDecisionMismatch is returned when the confirm/dismiss body does not
	// agree with the endpoint it was posted to.
	ErrDecisionMismatch = errors.New("decision body does not match endpoint")
)
