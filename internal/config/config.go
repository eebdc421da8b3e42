// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package config

import (
	"time"
)

// DefaultSyncInterval is the baseline automatic sync interval applied when
// neither the worker configuration nor a per-clinic override specifies one.
const DefaultSyncInterval = 15 * time.Minute

// StructuredConfig is the top-level configuration container for the
// clinic-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the payload integrity
	// key and the client version string.
	App App `envPrefix:"APP_"`

	// Backend holds the EMR backend endpoint settings used by the
	// transport adapter.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local
	// diagnostics HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Clinics holds per-clinic policy overrides.
	Clinics Clinics `envPrefix:"CLINICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the shared HMAC-SHA256 key used to verify the integrity
	// of entity payloads pulled from the backend. Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Reported in the diagnostics endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds endpoint settings for the EMR backend REST API.
type Backend struct {
	// BaseURL is the root URL of the EMR backend
	// (e.g. "https://emr.example.com").
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound pull request (e.g. "30s").
	// A hung entity pull stalls the run for at most this long.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache backends.
type Storage struct {
	// DB holds the local SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local cache database.
type DB struct {
	// DSN is the SQLite file path of the local clinic data cache
	// (e.g. "/var/lib/clinicsync/cache.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the diagnostics HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the diagnostics server listens on,
	// in "host:port" format (e.g. "127.0.0.1:8095").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// diagnostics request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync job.
type Workers struct {
	// SyncInterval defines how often the automatic sync job runs for the
	// selected clinic. Zero falls back to [DefaultSyncInterval].
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Entities is the ordered list of entity names pulled during a sync
	// run. Empty falls back to the client's default entity list.
	// Env: WORKERS_ENTITIES (comma-separated)
	Entities []string `env:"ENTITIES" envSeparator:","`
}

// Clinics holds per-clinic policy overrides keyed by clinic ID.
type Clinics struct {
	// SyncIntervals overrides the automatic sync interval for individual
	// clinics. Clinics not present use the worker-level interval.
	// Env: CLINICS_SYNC_INTERVALS (e.g. "clinic-a:10m,clinic-b:1h")
	SyncIntervals map[string]time.Duration `env:"SYNC_INTERVALS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
