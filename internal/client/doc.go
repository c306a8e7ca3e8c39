// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console runtime.
//
// It wires the local credential store, the session broker, the WebCRM
// gateway, the services, the summary worker and the terminal UI into a single
// process lifecycle.
package client
