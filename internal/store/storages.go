// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"
	"fmt"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
)

// ClientStorages groups all local cache repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// RecordRepository is the SQLite-backed repository for cached entity
	// records pulled from the EMR backend.
	RecordRepository RecordRepository

	// SyncStateRepository persists per-clinic sync bookkeeping so staleness
	// survives application restarts.
	SyncStateRepository SyncStateRepository
}

// NewClientStorages initialises the local cache layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		RecordRepository:    NewRecordRepository(db, logger),
		SyncStateRepository: NewSyncStateRepository(db, logger),
	}, nil
}
