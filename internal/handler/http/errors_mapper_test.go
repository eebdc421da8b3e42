// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/medvision/clinic-sync/internal/adapter"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/store"
)

func Test_statusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown clinic", err: service.ErrUnknownClinic, want: http.StatusNotFound},
		{name: "wrapped sentinel", err: fmt.Errorf("run: %w", service.ErrOffline), want: http.StatusServiceUnavailable},
		{name: "integrity mismatch", err: adapter.ErrIntegrityMismatch, want: http.StatusBadGateway},
		{name: "sync state missing", err: store.ErrSyncStateNotFound, want: http.StatusNotFound},
		{name: "context cancelled", err: context.Canceled, want: http.StatusServiceUnavailable},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "unmapped error", err: errors.New("something else"), want: http.StatusInternalServerError},
		{name: "nil error", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromError(tt.err); got != tt.want {
				t.Errorf("statusFromError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
