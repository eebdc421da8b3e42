// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package models

import "time"

// EntityOutcome is the final result of pulling a single entity type.
type EntityOutcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SyncReport aggregates the per-entity outcomes of one completed sync run.
//
// Success is true only when every entity in the run succeeded; Failed counts
// the entities that errored. Entities contains exactly one key per entity
// name that was requested for the run.
type SyncReport struct {
	RunID      string                   `json:"run_id"`
	ClinicID   string                   `json:"clinic_id"`
	Success    bool                     `json:"success"`
	Failed     int                      `json:"failed"`
	Entities   map[string]EntityOutcome `json:"entities"`
	StartedAt  time.Time                `json:"started_at"`
	FinishedAt time.Time                `json:"finished_at"`
}

// Succeeded returns the names of entities that were pulled successfully, in
// the order given by entities. It is used to record EntitiesSynced after a
// run completes.
func (r SyncReport) Succeeded(entities []string) []string {
	out := make([]string, 0, len(entities))
	for _, name := range entities {
		if res, ok := r.Entities[name]; ok && res.Success {
			out = append(out, name)
		}
	}
	return out
}
