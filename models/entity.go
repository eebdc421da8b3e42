// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package models

import (
	"encoding/json"
	"time"
)

// Entity names pulled during a clinic sync run. The backend owns the wire
// format of each; the client treats record payloads as opaque JSON.
const (
	EntityPatients      = "patients"
	EntityAppointments  = "appointments"
	EntityConsultations = "consultations"
	EntityInvoices      = "invoices"
	EntitySpecimens     = "specimens"
	EntityInventory     = "inventory"
)

// DefaultEntityList is the ordered set of entities pulled when the
// configuration does not override it.
func DefaultEntityList() []string {
	return []string{
		EntityPatients,
		EntityAppointments,
		EntityConsultations,
		EntityInvoices,
		EntitySpecimens,
		EntityInventory,
	}
}

// EntityRecord is one cached row of clinical/business data as served by the
// backend. Payload is stored verbatim in the local cache.
type EntityRecord struct {
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RecordFilter narrows a local cache listing. ClinicID and Entity are
// mandatory; the remaining fields are optional and combined with AND.
type RecordFilter struct {
	ClinicID     string
	Entity       string
	RecordIDs    []string
	UpdatedSince *time.Time
	Limit        uint64
}

// EntityPayload is the response body of one entity pull.
//
// Hash, when present, is an HMAC-SHA256 over the serialized records computed
// by the backend with the shared integrity key; the adapter verifies it
// before the records are cached.
type EntityPayload struct {
	Entity  string         `json:"entity"`
	Records []EntityRecord `json:"records"`
	Length  int            `json:"length"`
	Hash    string         `json:"hash,omitempty"`
}
