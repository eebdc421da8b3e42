// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package workers

import (
	"context"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

// stubSyncJob records the Start arguments so the worker adapter can be
// verified without a real periodic job.
type stubSyncJob struct {
	startedClinic   string
	startedInterval time.Duration
	stopped         bool
}

func (s *stubSyncJob) Start(_ context.Context, clinicID string, interval time.Duration) {
	s.startedClinic = clinicID
	s.startedInterval = interval
}

func (s *stubSyncJob) Stop() {
	s.stopped = true
}

func TestSyncJobWorker_Run_StartsJob(t *testing.T) {
	job := &stubSyncJob{}
	w := NewSyncJobWorker(context.Background(), job, "clinic-a", 10*time.Minute)

	w.Run()

	if job.startedClinic != "clinic-a" {
		t.Errorf("expected job started for clinic-a, got %q", job.startedClinic)
	}
	if job.startedInterval != 10*time.Minute {
		t.Errorf("expected interval 10m, got %v", job.startedInterval)
	}
}
