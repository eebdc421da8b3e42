// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/models"
)

// fakeClock is a manually advanced clock for staleness tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(clinicID string) (*SyncStatusTracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	policy := NewIntervalPolicy(config.ClientClinics{}, 15*time.Minute)
	return NewSyncStatusTracker(clinicID, policy, clock.Now), clock
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestStatus_NeverSynced(t *testing.T) {
	tracker, _ := newTestTracker("clinic-a")

	status := tracker.Status()

	assert.Equal(t, "clinic-a", status.ClinicID)
	assert.Nil(t, status.LastSyncTime)
	assert.True(t, status.IsStale, "a never-synced clinic is maximally stale")
	assert.Equal(t, time.Duration(0), status.NextSyncIn)
	assert.Empty(t, status.EntitiesSynced)
}

func TestStatus_FreshAfterSync(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")

	tracker.SetSynced(clock.Now(), []string{models.EntityPatients})
	clock.Advance(10 * time.Minute)

	status := tracker.Status()

	require.NotNil(t, status.LastSyncTime)
	assert.False(t, status.IsStale, "10 minutes into a 15-minute interval is fresh")
	assert.Equal(t, 5*time.Minute, status.NextSyncIn)
}

func TestStatus_StaleAfterIntervalElapses(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")

	tracker.SetSynced(clock.Now(), nil)
	clock.Advance(20 * time.Minute)

	status := tracker.Status()

	assert.True(t, status.IsStale, "20 minutes past a 15-minute interval is stale")
	assert.Equal(t, time.Duration(0), status.NextSyncIn)
}

func TestStatus_StalenessRecomputedOnEveryRead(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")
	tracker.SetSynced(clock.Now(), nil)

	assert.False(t, tracker.Status().IsStale)

	clock.Advance(14 * time.Minute)
	assert.False(t, tracker.Status().IsStale)
	assert.Equal(t, time.Minute, tracker.Status().NextSyncIn)

	clock.Advance(time.Minute)
	assert.False(t, tracker.Status().IsStale, "exactly at the interval boundary the data is still fresh")
	assert.Equal(t, time.Duration(0), tracker.Status().NextSyncIn)

	clock.Advance(time.Second)
	assert.True(t, tracker.Status().IsStale, "one tick past the interval the data is stale")
}

func TestStatus_UsesPerClinicInterval(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	policy := NewIntervalPolicy(config.ClientClinics{
		SyncIntervals: map[string]time.Duration{"clinic-busy": 2 * time.Minute},
	}, 15*time.Minute)
	tracker := NewSyncStatusTracker("clinic-busy", policy, clock.Now)

	tracker.SetSynced(clock.Now(), nil)
	clock.Advance(3 * time.Minute)

	assert.True(t, tracker.Status().IsStale, "override interval of 2 minutes applies")
}

func TestSetSynced_CopiesEntitySlice(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")

	entities := []string{models.EntityPatients, models.EntityInvoices}
	tracker.SetSynced(clock.Now(), entities)
	entities[0] = "mutated"

	status := tracker.Status()
	assert.Equal(t, models.EntityPatients, status.EntitiesSynced[0])
}

// ── Subscribe / Notify ──────────────────────────────────────────────────────

func TestNotify_DeliversInRegistrationOrder(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")

	var order []string
	tracker.Subscribe(func(models.SyncStatus) { order = append(order, "first") })
	tracker.Subscribe(func(models.SyncStatus) { order = append(order, "second") })
	tracker.Subscribe(func(models.SyncStatus) { order = append(order, "third") })

	tracker.SetSynced(clock.Now(), nil)
	tracker.Notify()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestNotify_DeliversCurrentSnapshot(t *testing.T) {
	tracker, clock := newTestTracker("clinic-a")

	var got models.SyncStatus
	tracker.Subscribe(func(status models.SyncStatus) { got = status })

	syncedAt := clock.Now()
	tracker.SetSynced(syncedAt, []string{models.EntityPatients})
	tracker.Notify()

	require.NotNil(t, got.LastSyncTime)
	assert.True(t, got.LastSyncTime.Equal(syncedAt))
	assert.False(t, got.IsStale)
	assert.Equal(t, []string{models.EntityPatients}, got.EntitiesSynced)
}

func TestSubscribe_UnsubscribeStopsDelivery(t *testing.T) {
	tracker, _ := newTestTracker("clinic-a")

	var first, second int
	unsubscribe := tracker.Subscribe(func(models.SyncStatus) { first++ })
	tracker.Subscribe(func(models.SyncStatus) { second++ })

	tracker.Notify()
	unsubscribe()
	tracker.Notify()

	assert.Equal(t, 1, first, "unsubscribed callback must not fire again")
	assert.Equal(t, 2, second)
}

func TestSubscribe_UnsubscribeIsIdempotent(t *testing.T) {
	tracker, _ := newTestTracker("clinic-a")

	var calls int
	unsubscribe := tracker.Subscribe(func(models.SyncStatus) { calls++ })

	unsubscribe()
	assert.NotPanics(t, func() { unsubscribe() })

	tracker.Notify()
	assert.Equal(t, 0, calls)
}

func TestNotify_CallbackMayUnsubscribeItself(t *testing.T) {
	tracker, _ := newTestTracker("clinic-a")

	var calls int
	var unsubscribe func()
	unsubscribe = tracker.Subscribe(func(models.SyncStatus) {
		calls++
		unsubscribe()
	})

	tracker.Notify()
	tracker.Notify()

	assert.Equal(t, 1, calls)
}

func TestNotify_NoSubscribersIsNoop(t *testing.T) {
	tracker, _ := newTestTracker("clinic-a")

	assert.NotPanics(t, func() { tracker.Notify() })
}
