// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/models"
)

func TestHandler_RunSync_InvalidJSON(t *testing.T) {
	f := newTestHandler(t)
	router := f.handler.Init()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/sync/run", strings.NewReader("{not json"))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RunSync_NoClinicSelectedAndNoClinicID(t *testing.T) {
	f := newTestHandler(t)
	router := f.handler.Init()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/sync/run", strings.NewReader(`{}`))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RunSync_DefaultsToSelectedClinicAndAllEntities(t *testing.T) {
	f := newTestHandler(t)
	f.selectClinic(t, "clinic-a")

	report := models.SyncReport{
		RunID:    "run-1",
		ClinicID: "clinic-a",
		Success:  true,
		Entities: map[string]models.EntityOutcome{
			"patients": {Success: true},
		},
		StartedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 3, 1, 10, 0, 3, 0, time.UTC),
	}
	f.orchestrator.EXPECT().
		PullClinicData(gomock.Any(), "clinic-a", models.DefaultEntityList(), gomock.Nil()).
		Return(report, nil)

	router := f.handler.Init()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/sync/run", strings.NewReader(`{}`))
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.SyncReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "clinic-a", got.ClinicID)
	assert.True(t, got.Success)
}

func TestHandler_RunSync_ExplicitClinicAndEntities(t *testing.T) {
	f := newTestHandler(t)

	f.orchestrator.EXPECT().
		PullClinicData(gomock.Any(), "clinic-b", []string{"patients", "invoices"}, gomock.Nil()).
		Return(models.SyncReport{RunID: "run-2", ClinicID: "clinic-b", Success: true}, nil)

	body, err := json.Marshal(models.SyncRunRequest{
		ClinicID: "clinic-b",
		Entities: []string{"patients", "invoices"},
	})
	require.NoError(t, err)

	router := f.handler.Init()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/sync/run", bytes.NewReader(body))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RunSync_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown clinic", err: service.ErrUnknownClinic, wantStatus: http.StatusNotFound},
		{name: "no entities", err: service.ErrNoEntities, wantStatus: http.StatusBadRequest},
		{name: "offline", err: service.ErrOffline, wantStatus: http.StatusServiceUnavailable},
		{name: "sync in progress", err: service.ErrSyncInProgress, wantStatus: http.StatusConflict},
		{name: "unexpected error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestHandler(t)

			f.orchestrator.EXPECT().
				PullClinicData(gomock.Any(), "clinic-a", models.DefaultEntityList(), gomock.Nil()).
				Return(models.SyncReport{}, tt.err)

			router := f.handler.Init()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/sync/run", strings.NewReader(`{"clinic_id":"clinic-a"}`))
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_PurgeClinicCache(t *testing.T) {
	f := newTestHandler(t)

	f.records.EXPECT().PurgeClinic(gomock.Any(), "clinic-b").Return(nil)

	router := f.handler.Init()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/cache/clinic-b", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_PurgeClinicCache_StoreError(t *testing.T) {
	f := newTestHandler(t)

	f.records.EXPECT().
		PurgeClinic(gomock.Any(), "clinic-b").
		Return(errors.New("disk gone"))

	router := f.handler.Init()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/cache/clinic-b", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
