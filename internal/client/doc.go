// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package client implements the headless client application runtime.
//
// It wires the backend session, client services, the background sync job,
// and the local diagnostics server into a single process lifecycle.
package client
