// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"

	"github.com/medvision/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the low-level repository for cached entity records.
type RecordRepository interface {
	ReplaceEntityRecords(ctx context.Context, clinicID, entity string, records []models.EntityRecord) error
	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EntityRecord, error)
	CountRecords(ctx context.Context, clinicID, entity string) (int64, error)
	PurgeClinic(ctx context.Context, clinicID string) error
}

// SyncStateRepository persists per-clinic sync bookkeeping rows.
type SyncStateRepository interface {
	GetSyncState(ctx context.Context, clinicID string) (models.SyncState, error)
	GetAllSyncStates(ctx context.Context) ([]models.SyncState, error)
	SaveSyncState(ctx context.Context, state models.SyncState) error
}
