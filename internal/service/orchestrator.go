// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/metrics"
	"github.com/medvision/clinic-sync/internal/store"
	"github.com/medvision/clinic-sync/internal/utils"
	"github.com/medvision/clinic-sync/models"
)

type syncOrchestrator struct {
	backend      adapter.BackendAdapter
	connectivity adapter.Connectivity
	records      store.RecordRepository
	syncStates   store.SyncStateRepository
	metrics      *metrics.SyncMetrics
	logger       *logger.Logger
	uuid         *utils.UUIDGenerator
	clock        Clock

	// runMu guards the single in-flight run; a second caller is rejected,
	// never queued.
	runMu sync.Mutex

	mu      sync.RWMutex
	clinics map[string]struct{}
	tracker *SyncStatusTracker
}

func NewSyncOrchestrator(
	backend adapter.BackendAdapter,
	connectivity adapter.Connectivity,
	storages *store.ClientStorages,
	syncMetrics *metrics.SyncMetrics,
	log *logger.Logger,
	clock Clock,
) SyncOrchestrator {
	if clock == nil {
		clock = time.Now
	}
	return &syncOrchestrator{
		backend:      backend,
		connectivity: connectivity,
		records:      storages.RecordRepository,
		syncStates:   storages.SyncStateRepository,
		metrics:      syncMetrics,
		logger:       log,
		uuid:         utils.NewUUIDGenerator(),
		clock:        clock,
		clinics:      make(map[string]struct{}),
	}
}

func (o *syncOrchestrator) SetClinics(clinics []models.Clinic) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.clinics = make(map[string]struct{}, len(clinics))
	for _, clinic := range clinics {
		o.clinics[clinic.ClinicID] = struct{}{}
	}
}

func (o *syncOrchestrator) AttachTracker(tracker *SyncStatusTracker) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tracker = tracker
}

func (o *syncOrchestrator) PullClinicData(ctx context.Context, clinicID string, entities []string, onProgress func(models.SyncProgress)) (models.SyncReport, error) {
	if !o.knownClinic(clinicID) {
		return models.SyncReport{}, ErrUnknownClinic
	}
	if len(entities) == 0 {
		return models.SyncReport{}, ErrNoEntities
	}

	if !o.runMu.TryLock() {
		return models.SyncReport{}, ErrSyncInProgress
	}
	defer o.runMu.Unlock()

	if !o.connectivity.Online(ctx) {
		return models.SyncReport{}, ErrOffline
	}

	runID := o.uuid.Generate()
	log := &logger.Logger{Logger: o.logger.With().
		Str("run_id", runID).
		Str("clinic_id", clinicID).
		Logger()}

	startedAt := o.clock()
	report := models.SyncReport{
		RunID:     runID,
		ClinicID:  clinicID,
		Entities:  make(map[string]models.EntityOutcome, len(entities)),
		StartedAt: startedAt,
	}

	results := make(map[string]models.EntityResult, len(entities))
	for _, entity := range entities {
		results[entity] = models.EntityNotStarted
	}

	log.Info().Int("entities", len(entities)).Msg("sync run started")

	total := len(entities)
	for i, entity := range entities {
		if err := ctx.Err(); err != nil {
			log.Warn().Str("entity", entity).Msg("sync run cancelled")
			return report, err
		}

		results[entity] = models.EntityLoading

		err := o.pullEntity(ctx, clinicID, entity)
		if err != nil {
			log.Err(err).Str("entity", entity).Msg("entity pull failed")
			report.Entities[entity] = models.EntityOutcome{Error: err.Error()}
			report.Failed++
			results[entity] = models.EntityError
		} else {
			report.Entities[entity] = models.EntityOutcome{Success: true}
			results[entity] = models.EntitySuccess
		}
		o.metrics.ObserveEntityPull(entity, err == nil)

		if onProgress != nil {
			onProgress(models.SyncProgress{
				RunID:   runID,
				Entity:  entity,
				Current: i + 1,
				Total:   total,
				Percent: percent(i+1, total),
				Results: copyResults(results),
			})
		}
	}

	// a cancellation that raced the last pull still counts as cancelled
	if err := ctx.Err(); err != nil {
		log.Warn().Msg("sync run cancelled")
		return report, err
	}

	report.FinishedAt = o.clock()
	report.Success = report.Failed == 0

	o.finishRun(ctx, clinicID, entities, &report, log)

	log.Info().
		Bool("success", report.Success).
		Int("failed", report.Failed).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync run finished")

	return report, nil
}

func (o *syncOrchestrator) pullEntity(ctx context.Context, clinicID, entity string) error {
	payload, err := o.backend.PullEntity(ctx, clinicID, entity)
	if err != nil {
		return err
	}

	return o.records.ReplaceEntityRecords(ctx, clinicID, entity, payload.Records)
}

// finishRun persists the run's bookkeeping and publishes the new status. A
// bookkeeping failure is logged but never fails the run: the pulled records
// are already cached.
func (o *syncOrchestrator) finishRun(ctx context.Context, clinicID string, entities []string, report *models.SyncReport, log *logger.Logger) {
	syncedAt := report.FinishedAt
	state := models.SyncState{
		ClinicID:       clinicID,
		LastSyncTime:   &syncedAt,
		EntitiesSynced: report.Succeeded(entities),
	}

	if err := o.syncStates.SaveSyncState(ctx, state); err != nil {
		log.Err(err).Msg("failed to persist sync state")
	}

	o.mu.RLock()
	tracker := o.tracker
	o.mu.RUnlock()

	if tracker != nil && tracker.ClinicID() == clinicID {
		tracker.SetSynced(syncedAt, state.EntitiesSynced)
		tracker.Notify()
	}

	o.metrics.ObserveRun(clinicID, report.Success, report.FinishedAt.Sub(report.StartedAt).Seconds())
	o.metrics.SetLastSyncTime(clinicID, float64(syncedAt.Unix()))
}

func (o *syncOrchestrator) knownClinic(clinicID string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	_, ok := o.clinics[clinicID]
	return ok
}

func percent(current, total int) int {
	if total <= 0 {
		return 0
	}

	p := int(math.Round(float64(current) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func copyResults(results map[string]models.EntityResult) map[string]models.EntityResult {
	out := make(map[string]models.EntityResult, len(results))
	for entity, result := range results {
		out[entity] = result
	}
	return out
}
