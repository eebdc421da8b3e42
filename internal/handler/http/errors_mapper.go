// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownClinic:  http.StatusNotFound,
	service.ErrNoEntities:     http.StatusBadRequest,
	service.ErrOffline:        http.StatusServiceUnavailable,
	service.ErrSyncInProgress: http.StatusConflict,

	adapter.ErrUnauthorized:       http.StatusBadGateway,
	adapter.ErrClinicNotFound:     http.StatusNotFound,
	adapter.ErrEntityNotSupported: http.StatusBadRequest,
	adapter.ErrIntegrityMismatch:  http.StatusBadGateway,

	store.ErrSyncStateNotFound:    http.StatusNotFound,
	store.ErrRecordsNotSaved:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,

	context.Canceled:         http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
