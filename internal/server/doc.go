// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package server wires and runs the local diagnostics HTTP server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
