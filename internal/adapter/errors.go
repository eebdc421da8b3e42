// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package adapter

import "errors"

// Sentinel errors mapped from backend HTTP responses. Callers match them
// with [errors.Is]; the wrapped message carries the response body.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("client unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrClinicNotFound     = errors.New("clinic not found")
	ErrEntityNotSupported = errors.New("entity not supported by backend")
	ErrBadGateway         = errors.New("backend unavailable")

	// ErrIntegrityMismatch is returned when the integrity digest attached
	// to a pulled payload does not match the locally computed HMAC.
	ErrIntegrityMismatch = errors.New("payload integrity mismatch")
)
