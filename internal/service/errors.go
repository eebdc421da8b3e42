// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import "errors"

// Precondition errors returned by the orchestrator before any network
// activity. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnknownClinic is returned when the requested clinic ID is not in
	// the set of clinics the operator has access to.
	ErrUnknownClinic = errors.New("unknown clinic")

	// ErrNoEntities is returned when a sync run is requested with an empty
	// entity list.
	ErrNoEntities = errors.New("no entities requested")

	// ErrOffline is returned when the backend is unreachable at the start of
	// a run. Cached data stays available; no partial run is attempted.
	ErrOffline = errors.New("backend is offline")

	// ErrSyncInProgress is returned when a run is requested while another
	// run is still executing. The in-flight run is never interrupted.
	ErrSyncInProgress = errors.New("sync already in progress")
)
