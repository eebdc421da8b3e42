// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for sync runs. Version 7 UUIDs are
// preferred because they sort by creation time, which keeps run IDs in log
// output chronologically ordered.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new run identifier, falling back to a random v4 UUID
// when v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
