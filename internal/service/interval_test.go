// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medvision/clinic-sync/internal/config"
)

func TestIntervalPolicy_Default(t *testing.T) {
	policy := NewIntervalPolicy(config.ClientClinics{}, 0)

	assert.Equal(t, config.DefaultSyncInterval, policy.IntervalFor("clinic-a"))
	assert.Equal(t, 15*time.Minute, policy.IntervalFor("clinic-a"))
}

func TestIntervalPolicy_ConfiguredDefault(t *testing.T) {
	policy := NewIntervalPolicy(config.ClientClinics{}, 5*time.Minute)

	assert.Equal(t, 5*time.Minute, policy.IntervalFor("clinic-a"))
	assert.Equal(t, 5*time.Minute, policy.IntervalFor("clinic-b"))
}

func TestIntervalPolicy_PerClinicOverride(t *testing.T) {
	clinics := config.ClientClinics{
		SyncIntervals: map[string]time.Duration{
			"clinic-busy": 2 * time.Minute,
			"clinic-slow": time.Hour,
		},
	}
	policy := NewIntervalPolicy(clinics, 15*time.Minute)

	assert.Equal(t, 2*time.Minute, policy.IntervalFor("clinic-busy"))
	assert.Equal(t, time.Hour, policy.IntervalFor("clinic-slow"))
	assert.Equal(t, 15*time.Minute, policy.IntervalFor("clinic-other"))
}

func TestIntervalPolicy_NonPositiveOverrideIgnored(t *testing.T) {
	clinics := config.ClientClinics{
		SyncIntervals: map[string]time.Duration{
			"clinic-a": 0,
			"clinic-b": -time.Minute,
		},
	}
	policy := NewIntervalPolicy(clinics, 15*time.Minute)

	assert.Equal(t, 15*time.Minute, policy.IntervalFor("clinic-a"))
	assert.Equal(t, 15*time.Minute, policy.IntervalFor("clinic-b"))
}
