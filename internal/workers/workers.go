// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package workers

import (
	"context"
	"time"

	"github.com/medvision/clinic-sync/internal/server"
	"github.com/medvision/clinic-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order. Non-blocking workers should come first;
// a blocking worker placed last pins the process lifetime.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// syncJobWorker starts the periodic sync job for the selected clinic.
// Start spawns its own goroutine, so Run returns immediately.
type syncJobWorker struct {
	ctx      context.Context
	job      service.SyncJob
	clinicID string
	interval time.Duration
}

func NewSyncJobWorker(ctx context.Context, job service.SyncJob, clinicID string, interval time.Duration) Worker {
	return &syncJobWorker{
		ctx:      ctx,
		job:      job,
		clinicID: clinicID,
		interval: interval,
	}
}

func (w *syncJobWorker) Run() {
	w.job.Start(w.ctx, w.clinicID, w.interval)
}

// serverWorker runs the diagnostics HTTP server. Run blocks until the
// server shuts down.
type serverWorker struct {
	server server.Server
}

func NewServerWorker(srv server.Server) Worker {
	return &serverWorker{server: srv}
}

func (w *serverWorker) Run() {
	w.server.RunServer()
}
