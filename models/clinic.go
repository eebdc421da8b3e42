// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package models

// Clinic is one tenant/location scope of the EMR. Data sync is always
// performed against a single selected clinic.
type Clinic struct {
	ClinicID string `json:"clinic_id"`
	Name     string `json:"name"`
}

// Credentials carries the operator login used to authenticate against the
// EMR backend before any clinic data can be pulled.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
