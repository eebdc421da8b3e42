// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/mock"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/store"
	"github.com/medvision/clinic-sync/models"
)

type handlerFixture struct {
	handler  *Handler
	services *service.ClientServices

	orchestrator *mock.MockSyncOrchestrator
	records      *mock.MockRecordRepository
	syncStates   *mock.MockSyncStateRepository
}

// newTestHandler builds a Handler around real client services whose
// orchestrator and repositories are replaced with mocks.
func newTestHandler(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	records := mock.NewMockRecordRepository(ctrl)
	syncStates := mock.NewMockSyncStateRepository(ctrl)
	storages := &store.ClientStorages{
		RecordRepository:    records,
		SyncStateRepository: syncStates,
	}

	services := service.NewClientServices(
		storages,
		mock.NewMockBackendAdapter(ctrl),
		mock.NewMockConnectivity(ctrl),
		nil,
		config.ClientConfig{},
		logger.Nop(),
	)

	orchestrator := mock.NewMockSyncOrchestrator(ctrl)
	services.Orchestrator = orchestrator

	return &handlerFixture{
		handler:      NewHandler(services, prometheus.NewRegistry(), logger.Nop()),
		services:     services,
		orchestrator: orchestrator,
		records:      records,
		syncStates:   syncStates,
	}
}

// selectClinic makes clinicID the active clinic with no persisted sync state,
// so the resulting tracker reports never-synced.
func (f *handlerFixture) selectClinic(t *testing.T, clinicID string) {
	t.Helper()

	f.syncStates.EXPECT().
		GetSyncState(gomock.Any(), clinicID).
		Return(models.SyncState{}, store.ErrSyncStateNotFound)
	f.orchestrator.EXPECT().AttachTracker(gomock.Any())

	_, err := f.services.SelectClinic(context.Background(), clinicID)
	require.NoError(t, err)
}
