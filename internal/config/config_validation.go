// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Backend.BaseURL == "" || cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	for clinicID, interval := range cfg.Clinics.SyncIntervals {
		if clinicID == "" || interval <= 0 {
			return ErrInvalidClinicConfigs
		}
	}

	return nil
}
