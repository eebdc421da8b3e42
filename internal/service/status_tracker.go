// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"sync"
	"time"

	"github.com/medvision/clinic-sync/models"
)

type subscriber struct {
	id int64
	fn func(models.SyncStatus)
}

// SyncStatusTracker is the observable holder of one clinic's sync freshness.
// One tracker exists per selected clinic; switching clinics supersedes it
// with a fresh instance.
//
// Staleness is never stored: every Status call recomputes IsStale and
// NextSyncIn from the last sync time, the clinic's configured interval and
// the injected clock.
type SyncStatusTracker struct {
	clinicID string
	policy   IntervalPolicy
	clock    Clock

	mu             sync.RWMutex
	lastSyncTime   *time.Time
	entitiesSynced []string
	subscribers    []subscriber
	nextSubID      int64
}

func NewSyncStatusTracker(clinicID string, policy IntervalPolicy, clock Clock) *SyncStatusTracker {
	if clock == nil {
		clock = time.Now
	}
	return &SyncStatusTracker{
		clinicID: clinicID,
		policy:   policy,
		clock:    clock,
	}
}

func (t *SyncStatusTracker) ClinicID() string {
	return t.clinicID
}

// Status returns a point-in-time snapshot. A clinic that has never been
// synced is maximally stale with NextSyncIn of zero.
func (t *SyncStatusTracker) Status() models.SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status := models.SyncStatus{
		ClinicID:       t.clinicID,
		EntitiesSynced: append([]string(nil), t.entitiesSynced...),
	}

	if t.lastSyncTime == nil {
		status.IsStale = true
		return status
	}

	last := *t.lastSyncTime
	status.LastSyncTime = &last

	interval := t.policy.IntervalFor(t.clinicID)
	elapsed := t.clock().Sub(last)

	status.IsStale = elapsed > interval
	if remaining := interval - elapsed; remaining > 0 {
		status.NextSyncIn = remaining
	}

	return status
}

// SetSynced records a completed run. It does not notify subscribers; the
// orchestrator calls Notify once the run's bookkeeping is fully persisted.
func (t *SyncStatusTracker) SetSynced(at time.Time, entities []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastSyncTime = &at
	t.entitiesSynced = append([]string(nil), entities...)
}

// Subscribe registers fn for status change notifications and returns its
// unsubscribe function. Delivery is synchronous and in registration order.
func (t *SyncStatusTracker) Subscribe(fn func(models.SyncStatus)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextSubID++
	id := t.nextSubID
	t.subscribers = append(t.subscribers, subscriber{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		for i, sub := range t.subscribers {
			if sub.id == id {
				t.subscribers = append(t.subscribers[:i], t.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers the current status snapshot to every subscriber. The
// subscriber list is copied first so a callback may unsubscribe itself.
func (t *SyncStatusTracker) Notify() {
	t.mu.RLock()
	subs := append([]subscriber(nil), t.subscribers...)
	t.mu.RUnlock()

	status := t.Status()
	for _, sub := range subs {
		sub.fn(status)
	}
}
