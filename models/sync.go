// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package models

import "time"

// EntityResult is the outcome state of one entity pull within the current
// sync run. It is transient UI-feedback data and is never persisted.
type EntityResult string

const (
	EntityNotStarted EntityResult = "not-started"
	EntityLoading    EntityResult = "loading"
	EntitySuccess    EntityResult = "success"
	EntityError      EntityResult = "error"
)

// SyncStatus is a point-in-time snapshot of the freshness of the locally
// cached data for the selected clinic.
//
// LastSyncTime is nil when the clinic has never been synced; in that case the
// data is considered maximally stale. IsStale and NextSyncIn are derived from
// LastSyncTime and the clinic's configured interval at read time and are
// never stored.
type SyncStatus struct {
	ClinicID       string        `json:"clinic_id"`
	LastSyncTime   *time.Time    `json:"last_sync_time,omitempty"`
	IsStale        bool          `json:"is_stale"`
	NextSyncIn     time.Duration `json:"next_sync_in"`
	EntitiesSynced []string      `json:"entities_synced,omitempty"`
}

// SyncProgress is the ephemeral progress record for one in-flight sync run.
// It is rebuilt once per entity as the run advances and discarded when the
// run ends.
type SyncProgress struct {
	RunID   string `json:"run_id"`
	Entity  string `json:"entity"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`

	// Results holds the per-entity outcome states accumulated so far,
	// keyed by entity name. Entities not yet reached are present with
	// [EntityNotStarted].
	Results map[string]EntityResult `json:"results,omitempty"`
}

// SyncRunRequest is the body of a manual sync trigger. Entities is optional;
// an empty list means every supported entity type.
type SyncRunRequest struct {
	ClinicID string   `json:"clinic_id"`
	Entities []string `json:"entities,omitempty"`
}

// SyncState is the persisted per-clinic sync bookkeeping row. It survives
// restarts so staleness can be computed without an initial forced sync.
type SyncState struct {
	ClinicID       string     `json:"clinic_id" db:"clinic_id"`
	LastSyncTime   *time.Time `json:"last_sync_time,omitempty" db:"last_sync_time"`
	EntitiesSynced []string   `json:"entities_synced,omitempty" db:"entities_synced"`
}
