// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"context"
	"sync"
	"time"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
)

type syncJob struct {
	orchestrator SyncOrchestrator
	tracker      func() *SyncStatusTracker
	entities     []string
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs PullClinicData on a ticker. The
// tracker provider returns the tracker of the currently selected clinic so a
// restarted job observes the fresh one. The job is idle until Start is
// called.
func NewSyncJob(orchestrator SyncOrchestrator, tracker func() *SyncStatusTracker, entities []string, log *logger.Logger) SyncJob {
	return &syncJob{
		orchestrator: orchestrator,
		tracker:      tracker,
		entities:     append([]string(nil), entities...),
		logger:       log,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that checks staleness every interval and
// pulls when the cached data has gone stale. If interval is zero or negative
// it defaults to [config.DefaultSyncInterval]. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, clinicID string, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx, clinicID)
			}
		}
	}()
}

// tick runs one staleness check. Busy and offline rejections are expected
// while the operator syncs manually or the network is down; they are logged
// and the next tick tries again.
func (j *syncJob) tick(ctx context.Context, clinicID string) {
	tracker := j.tracker()
	if tracker == nil || tracker.ClinicID() != clinicID {
		return
	}
	if !tracker.Status().IsStale {
		return
	}

	_, err := j.orchestrator.PullClinicData(ctx, clinicID, j.entities, nil)
	if err != nil {
		j.logger.Warn().
			Err(err).
			Str("func", "syncJob.tick").
			Str("clinic_id", clinicID).
			Msg("periodic sync skipped")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
