// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used to verify entity payload integrity.
	HashKey string
	// Version is the client version string.
	Version string
}

// ClientBackend holds network settings used by the backend transport layer.
type ClientBackend struct {
	// BaseURL is the EMR backend root URL.
	BaseURL string
	// RequestTimeout is the bound applied to every outbound pull request.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite file path of the local cache.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds diagnostics HTTP server settings.
type ClientServer struct {
	// HTTPAddress is the listen address of the diagnostics server.
	// Empty disables the server.
	HTTPAddress string
	// RequestTimeout bounds inbound diagnostics requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains background sync job settings.
type ClientWorkers struct {
	// SyncInterval defines how often the automatic sync job runs.
	SyncInterval time.Duration
	// Entities is the ordered entity list pulled during each run.
	Entities []string
}

// ClientClinics contains per-clinic policy overrides.
type ClientClinics struct {
	// SyncIntervals maps clinic IDs to interval overrides.
	SyncIntervals map[string]time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Backend contains transport addresses and timeouts.
	Backend ClientBackend
	// Storage contains local cache settings.
	Storage ClientStorage
	// Server contains diagnostics server settings.
	Server ClientServer
	// Workers contains background job settings.
	Workers ClientWorkers
	// Clinics contains per-clinic overrides.
	Clinics ClientClinics
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies defaults (sync interval, request
// timeout), and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Backend: ClientBackend{
			BaseURL:        cfg.Backend.BaseURL,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			Entities:     cfg.Workers.Entities,
		},
		Clinics: ClientClinics{
			SyncIntervals: cfg.Clinics.SyncIntervals,
		},
	}

	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if clientCfg.Backend.RequestTimeout == 0 {
		clientCfg.Backend.RequestTimeout = 30 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
