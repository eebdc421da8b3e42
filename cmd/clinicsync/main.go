// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/client"
	"github.com/medvision/clinic-sync/internal/config"
	handler "github.com/medvision/clinic-sync/internal/handler/http"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/metrics"
	"github.com/medvision/clinic-sync/internal/server"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewClientLogger("clinic-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	connectivity, err := adapter.NewDialConnectivity(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("create connectivity probe")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	registry := prometheus.NewRegistry()
	syncMetrics := metrics.NewSyncMetrics(registry)

	services := service.NewClientServices(localStorage, backendAdapter, connectivity, syncMetrics, *cfg, log)

	var diagnostics server.Server
	if cfg.Server.HTTPAddress != "" {
		handlers := handler.NewHandler(services, registry, log)
		diagnostics, err = server.NewServer(handlers.Init(), cfg.Server, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create diagnostics server")
		}
	}

	app, err := client.NewApp(services, backendAdapter, diagnostics, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
