// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the local input validation run before any
// entity is sent to the WebCRM API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: the list of field violations, with Italian messages
//     ready to be shown next to the form. It always matches [ErrValidation].
//
// A validation failure never reaches the gateway: services call Validate
// first and return the error unchanged.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
