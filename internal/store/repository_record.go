// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"
	"fmt"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceEntityRecords atomically swaps the cached rows of one clinic+entity
// pair with the freshly pulled set. Old rows are dropped inside the same
// transaction so a failed pull never leaves the cache half-replaced.
func (r *recordRepository) ReplaceEntityRecords(ctx context.Context, clinicID, entity string, records []models.EntityRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ReplaceEntityRecords").
			Str("clinic_id", clinicID).
			Str("entity", entity).
			Msg("failed to begin replace transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteEntityRecords, clinicID, entity); err != nil {
		log.Err(err).
			Str("func", "recordRepository.ReplaceEntityRecords").
			Str("clinic_id", clinicID).
			Str("entity", entity).
			Msg("failed to drop stale cached records")
		return fmt.Errorf("failed to drop stale %s records: %w", entity, err)
	}

	for _, record := range records {
		_, err = tx.ExecContext(ctx, saveEntityRecord,
			clinicID,
			entity,
			record.RecordID,
			[]byte(record.Payload),
			record.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "recordRepository.ReplaceEntityRecords").
				Str("clinic_id", clinicID).
				Str("entity", entity).
				Str("record_id", record.RecordID).
				Msg("failed to execute upsert for entity record")
			return fmt.Errorf("failed to save %s record (record_id=%s): %w", entity, record.RecordID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.ReplaceEntityRecords").
			Str("clinic_id", clinicID).
			Str("entity", entity).
			Msg("failed to commit replace transaction")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *recordRepository) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EntityRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("clinic_id", filter.ClinicID).
			Str("entity", filter.Entity).
			Msg("failed to build list query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Str("clinic_id", filter.ClinicID).
			Str("entity", filter.Entity).
			Msg("failed to execute query for cached records")
		return nil, fmt.Errorf("failed to query cached %s records: %w", filter.Entity, err)
	}
	defer rows.Close()

	var items []models.EntityRecord

	for rows.Next() {
		var item models.EntityRecord
		var payload []byte

		scanErr := rows.Scan(
			&item.RecordID,
			&payload,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recordRepository.ListRecords").
				Str("clinic_id", filter.ClinicID).
				Msg("failed to scan cached record row")
			return nil, fmt.Errorf("failed to scan cached record row: %w", scanErr)
		}

		item.Payload = payload
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recordRepository.ListRecords").
			Str("clinic_id", filter.ClinicID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached record rows: %w", rowsErr)
	}

	return items, nil
}

func (r *recordRepository) CountRecords(ctx context.Context, clinicID, entity string) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countEntityRecords, clinicID, entity)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "recordRepository.CountRecords").
			Str("clinic_id", clinicID).
			Str("entity", entity).
			Msg("failed to count cached records")
		return 0, fmt.Errorf("failed to count cached %s records: %w", entity, err)
	}

	return count, nil
}

func (r *recordRepository) PurgeClinic(ctx context.Context, clinicID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, purgeClinicRecords, clinicID)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.PurgeClinic").
			Str("clinic_id", clinicID).
			Msg("failed to purge cached clinic records")
		return fmt.Errorf("failed to purge cached records (clinic_id=%s): %w", clinicID, err)
	}

	return nil
}
