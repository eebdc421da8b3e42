// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"context"
	"time"

	"github.com/medvision/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Clock returns the current time. Injected so staleness computations can be
// driven by a fake clock in tests.
type Clock func() time.Time

// IntervalPolicy resolves the sync interval configured for a clinic.
type IntervalPolicy interface {
	// IntervalFor returns the interval after which the clinic's cached data
	// is considered stale. Pure lookup, no I/O.
	IntervalFor(clinicID string) time.Duration
}

// SyncOrchestrator runs full clinic sync passes against the EMR backend.
type SyncOrchestrator interface {
	// PullClinicData pulls the given entities for one clinic sequentially,
	// caching each pulled set locally. Entity failures are captured in the
	// returned report and never abort the run.
	//
	// It returns ErrUnknownClinic, ErrNoEntities, ErrOffline or
	// ErrSyncInProgress synchronously before any entity is pulled, and
	// ctx.Err() when the run is cancelled mid-flight. onProgress, when
	// non-nil, is invoked once per entity as the run advances.
	PullClinicData(ctx context.Context, clinicID string, entities []string, onProgress func(models.SyncProgress)) (models.SyncReport, error)

	// SetClinics replaces the set of clinics the operator may sync.
	SetClinics(clinics []models.Clinic)

	// AttachTracker points the orchestrator at the status tracker of the
	// currently selected clinic. The tracker is updated after each
	// completed run whose clinic matches.
	AttachTracker(tracker *SyncStatusTracker)
}

// SyncJob is the background worker that keeps the selected clinic fresh.
type SyncJob interface {
	// Start launches the background sync goroutine for the given clinic. A
	// previously running job is stopped first. A tick triggers a run only
	// when the clinic's cached data is stale.
	Start(ctx context.Context, clinicID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
