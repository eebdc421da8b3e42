// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/models"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *syncStateRepository) GetSyncState(ctx context.Context, clinicID string) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, getSyncState, clinicID)

	state, err := scanSyncState(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncState{}, fmt.Errorf("%w: clinic_id=%s", ErrSyncStateNotFound, clinicID)
		}
		log.Err(err).
			Str("func", "syncStateRepository.GetSyncState").
			Str("clinic_id", clinicID).
			Msg("failed to scan sync state row")
		return models.SyncState{}, fmt.Errorf("failed to read sync state (clinic_id=%s): %w", clinicID, err)
	}

	return state, nil
}

func (s *syncStateRepository) GetAllSyncStates(ctx context.Context) ([]models.SyncState, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllSyncStates)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.GetAllSyncStates").
			Msg("failed to execute query for sync states")
		return nil, fmt.Errorf("failed to query sync states: %w", err)
	}
	defer rows.Close()

	var items []models.SyncState

	for rows.Next() {
		state, scanErr := scanSyncState(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "syncStateRepository.GetAllSyncStates").
				Msg("failed to scan sync state row")
			return nil, fmt.Errorf("failed to scan sync state row: %w", scanErr)
		}

		items = append(items, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "syncStateRepository.GetAllSyncStates").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating sync state rows: %w", rowsErr)
	}

	return items, nil
}

func (s *syncStateRepository) SaveSyncState(ctx context.Context, state models.SyncState) error {
	log := logger.FromContext(ctx)

	entities, err := json.Marshal(state.EntitiesSynced)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveSyncState").
			Str("clinic_id", state.ClinicID).
			Msg("failed to encode synced entity list")
		return fmt.Errorf("failed to encode synced entity list (clinic_id=%s): %w", state.ClinicID, err)
	}

	_, err = s.DB.ExecContext(ctx, saveSyncState,
		state.ClinicID,
		state.LastSyncTime,
		string(entities),
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveSyncState").
			Str("clinic_id", state.ClinicID).
			Msg("failed to execute upsert for sync state")
		return fmt.Errorf("failed to save sync state (clinic_id=%s): %w", state.ClinicID, err)
	}

	return nil
}

// scanSyncState maps one sync_state row. The entities_synced column stores a
// JSON array; a NULL column decodes as an empty list.
func scanSyncState(scan func(dest ...any) error) (models.SyncState, error) {
	var state models.SyncState
	var entities sql.NullString

	if err := scan(&state.ClinicID, &state.LastSyncTime, &entities); err != nil {
		return models.SyncState{}, err
	}

	if entities.Valid && entities.String != "" {
		if err := json.Unmarshal([]byte(entities.String), &state.EntitiesSynced); err != nil {
			return models.SyncState{}, fmt.Errorf("failed to decode synced entity list: %w", err)
		}
	}

	return state, nil
}
