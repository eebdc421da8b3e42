// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package http implements the local diagnostics HTTP surface.
//
// It exposes route wiring, request handlers, and middleware for the small
// REST API the client serves on localhost: the sync status snapshot, a
// manual sync trigger, cache purging, liveness, and Prometheus metrics.
// Cross-cutting concerns such as request tracing and access logging are
// handled here before requests are delegated to the service layer.
package http
