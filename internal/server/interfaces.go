// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package server

// Server is the lifecycle contract of a transport server managed by this
// package. [RunServer] blocks until shutdown is requested; [Shutdown] stops
// the server gracefully and releases its resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
