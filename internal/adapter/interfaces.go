// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package adapter provides transport-layer abstractions for communicating
// with the EMR backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrClinicNotFound] for 404, [ErrUnauthorized] for
// 401).
package adapter

import (
	"context"

	"github.com/medvision/clinic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the EMR
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after
	// a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Login authenticates the operator with the backend. On success it
	// stores the returned bearer token via SetToken and returns the token
	// with the operator ID parsed from its "sub" claim. Returns an error
	// if the request fails or the server responds with a non-2xx status.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ListClinics fetches the clinics the logged-in operator may select.
	// Used to validate a clinic ID before a sync run starts.
	ListClinics(ctx context.Context) ([]models.Clinic, error)

	// PullEntity issues one network pull for a single entity type of the
	// given clinic and returns the full record payload. When the backend
	// attaches an integrity hash and the adapter is configured with the
	// shared key, the payload is verified before being returned;
	// [ErrIntegrityMismatch] is returned on a digest mismatch.
	PullEntity(ctx context.Context, clinicID, entity string) (models.EntityPayload, error)
}

// Connectivity reports whether the backend is currently reachable. It is the
// host environment's online/offline signal, consulted before a sync run
// starts and not polled during it.
type Connectivity interface {
	// Online returns true when the backend endpoint is reachable.
	Online(ctx context.Context) bool
}
