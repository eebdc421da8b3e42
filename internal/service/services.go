// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/metrics"
	"github.com/medvision/clinic-sync/internal/store"
	"github.com/medvision/clinic-sync/models"
)

// ClientServices wires the sync domain services together and owns the
// tracker of the currently selected clinic.
type ClientServices struct {
	Orchestrator   SyncOrchestrator
	IntervalPolicy IntervalPolicy
	SyncJob        SyncJob

	syncStates store.SyncStateRepository
	records    store.RecordRepository
	clock      Clock
	logger     *logger.Logger

	mu      sync.RWMutex
	tracker *SyncStatusTracker
}

func NewClientServices(
	storages *store.ClientStorages,
	backend adapter.BackendAdapter,
	connectivity adapter.Connectivity,
	syncMetrics *metrics.SyncMetrics,
	cfg config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	policy := NewIntervalPolicy(cfg.Clinics, cfg.Workers.SyncInterval)
	orchestrator := NewSyncOrchestrator(backend, connectivity, storages, syncMetrics, log, time.Now)

	entities := cfg.Workers.Entities
	if len(entities) == 0 {
		entities = models.DefaultEntityList()
	}

	services := &ClientServices{
		Orchestrator:   orchestrator,
		IntervalPolicy: policy,
		syncStates:     storages.SyncStateRepository,
		records:        storages.RecordRepository,
		clock:          time.Now,
		logger:         log,
	}
	services.SyncJob = NewSyncJob(orchestrator, services.Tracker, entities, log)

	return services
}

// Tracker returns the status tracker of the currently selected clinic, or
// nil when no clinic has been selected yet.
func (s *ClientServices) Tracker() *SyncStatusTracker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracker
}

// SelectClinic makes clinicID the active clinic. A fresh tracker supersedes
// the previous one and is primed from the persisted sync-state row so
// staleness survives restarts.
func (s *ClientServices) SelectClinic(ctx context.Context, clinicID string) (*SyncStatusTracker, error) {
	tracker := NewSyncStatusTracker(clinicID, s.IntervalPolicy, s.clock)

	state, err := s.syncStates.GetSyncState(ctx, clinicID)
	switch {
	case err == nil:
		if state.LastSyncTime != nil {
			tracker.SetSynced(*state.LastSyncTime, state.EntitiesSynced)
		}
	case errors.Is(err, store.ErrSyncStateNotFound):
		// never synced on this device
	default:
		return nil, fmt.Errorf("prime tracker for clinic %s: %w", clinicID, err)
	}

	s.mu.Lock()
	s.tracker = tracker
	s.mu.Unlock()

	s.Orchestrator.AttachTracker(tracker)

	s.logger.Info().
		Str("func", "ClientServices.SelectClinic").
		Str("clinic_id", clinicID).
		Bool("stale", tracker.Status().IsStale).
		Msg("clinic selected")

	return tracker, nil
}

// ForgetClinic drops every cached record of the given clinic. Sync state is
// kept so a later re-selection still knows the last sync time.
func (s *ClientServices) ForgetClinic(ctx context.Context, clinicID string) error {
	return s.records.PurgeClinic(ctx, clinicID)
}
