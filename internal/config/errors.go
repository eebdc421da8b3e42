// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend transport settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidStorageConfigs indicates invalid local cache settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background sync job settings
	// (for example, non-positive sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidClinicConfigs indicates invalid per-clinic overrides
	// (for example, an empty clinic ID or non-positive interval).
	ErrInvalidClinicConfigs = errors.New("invalid clinic configuration")
)
