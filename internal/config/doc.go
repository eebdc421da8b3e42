// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package config provides configuration loading, merging, and validation
// facilities for the clinic-sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source providing a non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated view consumed by the
// client runtime.
package config
