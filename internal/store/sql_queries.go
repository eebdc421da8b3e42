// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/medvision/clinic-sync/models"
)

const (
	saveEntityRecord = `
		INSERT INTO entity_records (
			clinic_id,
			entity,
			record_id,
			payload,
			updated_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (clinic_id, entity, record_id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at;`

	deleteEntityRecords = `
		DELETE FROM entity_records
		WHERE clinic_id = $1 AND entity = $2;`

	countEntityRecords = `
		SELECT COUNT(*)
		FROM entity_records
		WHERE clinic_id = $1 AND entity = $2;`

	purgeClinicRecords = `
		DELETE FROM entity_records
		WHERE clinic_id = $1;`

	getSyncState = `
		SELECT clinic_id, last_sync_time, entities_synced
		FROM sync_state
		WHERE clinic_id = $1;`

	getAllSyncStates = `
		SELECT clinic_id, last_sync_time, entities_synced
		FROM sync_state;`

	saveSyncState = `
		INSERT INTO sync_state (clinic_id, last_sync_time, entities_synced)
		VALUES ($1, $2, $3)
		ON CONFLICT (clinic_id) DO UPDATE SET
			last_sync_time  = excluded.last_sync_time,
			entities_synced = excluded.entities_synced;`
)

// buildListRecordsQuery dynamically builds the SELECT for cached records.
// ClinicID and entity are always filtered; record IDs, an updated-since lower
// bound and a row limit are added only when the filter provides them.
func buildListRecordsQuery(_ context.Context, filter models.RecordFilter) (string, []any, error) {
	builder := sq.
		Select("record_id", "payload", "updated_at").
		From("entity_records").
		Where(sq.Eq{"clinic_id": filter.ClinicID}).
		Where(sq.Eq{"entity": filter.Entity}).
		OrderBy("updated_at DESC", "record_id ASC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.RecordIDs) > 0 {
		builder = builder.Where(sq.Eq{"record_id": filter.RecordIDs})
	}
	if filter.UpdatedSince != nil {
		builder = builder.Where(sq.GtOrEq{"updated_at": *filter.UpdatedSince})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
