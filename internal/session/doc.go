// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the signed-in credential and the session lifecycle
// events of the console.
//
// [Manager] is the only writer of the persisted credential. It is handed to
// the API adapter as a token source, so no component reads the credential
// store directly. [Broker] fans out [models.SessionEvent] values: the adapter
// publishes SessionExpired on any 401, the Manager reacts by clearing the
// credential and the TUI reacts by returning to the sign-in page.
package session
