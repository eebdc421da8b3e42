// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"time"

	"github.com/medvision/clinic-sync/internal/config"
)

type intervalPolicy struct {
	defaultInterval time.Duration
	overrides       map[string]time.Duration
}

// NewIntervalPolicy builds the static staleness policy from configuration.
// Clinics absent from the overrides map use defaultInterval; a non-positive
// defaultInterval falls back to [config.DefaultSyncInterval].
func NewIntervalPolicy(clinics config.ClientClinics, defaultInterval time.Duration) IntervalPolicy {
	if defaultInterval <= 0 {
		defaultInterval = config.DefaultSyncInterval
	}

	overrides := make(map[string]time.Duration, len(clinics.SyncIntervals))
	for clinicID, interval := range clinics.SyncIntervals {
		if interval > 0 {
			overrides[clinicID] = interval
		}
	}

	return &intervalPolicy{
		defaultInterval: defaultInterval,
		overrides:       overrides,
	}
}

func (p *intervalPolicy) IntervalFor(clinicID string) time.Duration {
	if interval, ok := p.overrides[clinicID]; ok {
		return interval
	}
	return p.defaultInterval
}
