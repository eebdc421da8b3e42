// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/server"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/workers"
	"github.com/medvision/clinic-sync/models"
)

// Environment variables consumed at startup. Credentials stay out of the
// structured config so they never end up in a config file on disk.
const (
	envLogin    = "CLINICSYNC_LOGIN"
	envPassword = "CLINICSYNC_PASSWORD"
	envClinicID = "CLINICSYNC_CLINIC_ID"
)

type App struct {
	services    *service.ClientServices
	backend     adapter.BackendAdapter
	diagnostics server.Server
	workersCfg  config.ClientWorkers

	logger *logger.Logger
}

// NewApp assembles the client runtime. The diagnostics server may be nil
// when the diagnostics surface is disabled.
func NewApp(services *service.ClientServices, backend adapter.BackendAdapter, diagnostics server.Server, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if backend == nil {
		return nil, errors.New("backend adapter is required")
	}

	return &App{
		services:    services,
		backend:     backend,
		diagnostics: diagnostics,
		workersCfg:  workersCfg,
		logger:      log,
	}, nil
}

// Run logs in, selects a clinic, performs an initial sync when the local
// cache is stale, and then blocks running the periodic sync job and the
// diagnostics server until the process is signalled to stop.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	creds := models.Credentials{
		Login:    os.Getenv(envLogin),
		Password: os.Getenv(envPassword),
	}
	if _, err := a.backend.Login(ctx, creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	clinics, err := a.backend.ListClinics(ctx)
	if err != nil {
		return fmt.Errorf("list clinics: %w", err)
	}
	if len(clinics) == 0 {
		return errors.New("no clinics available for this operator")
	}
	a.services.Orchestrator.SetClinics(clinics)

	clinicID := os.Getenv(envClinicID)
	if clinicID == "" {
		clinicID = clinics[0].ClinicID
	}

	tracker, err := a.services.SelectClinic(ctx, clinicID)
	if err != nil {
		return fmt.Errorf("select clinic: %w", err)
	}

	if tracker.Status().IsStale {
		a.initialSync(ctx, clinicID)
	}

	interval := a.services.IntervalPolicy.IntervalFor(clinicID)

	jobs := []workers.Worker{
		workers.NewSyncJobWorker(ctx, a.services.SyncJob, clinicID, interval),
	}
	if a.diagnostics != nil {
		jobs = append(jobs, workers.NewServerWorker(a.diagnostics))
	}
	defer a.services.SyncJob.Stop()

	workers.NewWorkers(jobs...).Run()

	// without a diagnostics server nothing above blocks, so wait for the
	// stop signal here
	if a.diagnostics == nil {
		<-ctx.Done()
	}

	a.logger.Info().Msg("client shut down gracefully")

	return nil
}

// initialSync brings a stale cache up to date before the periodic job takes
// over. A failed run is not fatal: the clinic may simply be offline, and
// stale cached data stays readable.
func (a *App) initialSync(ctx context.Context, clinicID string) {
	report, err := a.services.Orchestrator.PullClinicData(ctx, clinicID, a.entities(), nil)
	if err != nil {
		a.logger.Warn().Err(err).
			Str("func", "*App.initialSync").
			Str("clinic_id", clinicID).
			Msg("initial sync failed")
		return
	}

	a.logger.Info().
		Str("run_id", report.RunID).
		Bool("success", report.Success).
		Int("failed", report.Failed).
		Msg("initial sync finished")
}

func (a *App) entities() []string {
	if len(a.workersCfg.Entities) > 0 {
		return a.workersCfg.Entities
	}
	return models.DefaultEntityList()
}
