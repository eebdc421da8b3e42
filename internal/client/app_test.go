// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/medvision/clinic-sync/internal/config"
	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/mock"
	"github.com/medvision/clinic-sync/internal/service"
	"github.com/medvision/clinic-sync/internal/store"
	"github.com/medvision/clinic-sync/models"
)

type appFixture struct {
	backend    *mock.MockBackendAdapter
	syncStates *mock.MockSyncStateRepository
	services   *service.ClientServices
	app        *App
}

func newTestApp(t *testing.T) *appFixture {
	t.Helper()

	t.Setenv(envClinicID, "")

	ctrl := gomock.NewController(t)

	backend := mock.NewMockBackendAdapter(ctrl)
	syncStates := mock.NewMockSyncStateRepository(ctrl)
	storages := &store.ClientStorages{
		RecordRepository:    mock.NewMockRecordRepository(ctrl),
		SyncStateRepository: syncStates,
	}

	connectivity := mock.NewMockConnectivity(ctrl)
	connectivity.EXPECT().Online(gomock.Any()).Return(false).AnyTimes()

	services := service.NewClientServices(storages, backend, connectivity, nil, config.ClientConfig{}, logger.Nop())

	app, err := NewApp(services, backend, nil, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	return &appFixture{
		backend:    backend,
		syncStates: syncStates,
		services:   services,
		app:        app,
	}
}

func TestNewApp_RequiresServicesAndBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)

	_, err := NewApp(nil, backend, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_LoginFailureIsFatal(t *testing.T) {
	f := newTestApp(t)

	f.backend.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.New("401"))

	err := f.app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestApp_Run_ListClinicsFailureIsFatal(t *testing.T) {
	f := newTestApp(t)

	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, nil)
	f.backend.EXPECT().ListClinics(gomock.Any()).Return(nil, errors.New("boom"))

	err := f.app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list clinics")
}

func TestApp_Run_NoClinicsIsFatal(t *testing.T) {
	f := newTestApp(t)

	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, nil)
	f.backend.EXPECT().ListClinics(gomock.Any()).Return([]models.Clinic{}, nil)

	err := f.app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clinics available")
}

func TestApp_Run_SelectClinicStoreFailureIsFatal(t *testing.T) {
	f := newTestApp(t)

	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, nil)
	f.backend.EXPECT().
		ListClinics(gomock.Any()).
		Return([]models.Clinic{{ClinicID: "clinic-a", Name: "Main"}}, nil)
	f.syncStates.EXPECT().
		GetSyncState(gomock.Any(), "clinic-a").
		Return(models.SyncState{}, errors.New("disk gone"))

	err := f.app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "select clinic")
}

func TestApp_Entities_DefaultList(t *testing.T) {
	f := newTestApp(t)

	assert.Equal(t, models.DefaultEntityList(), f.app.entities())
}

func TestApp_Entities_ConfiguredListWins(t *testing.T) {
	f := newTestApp(t)
	f.app.workersCfg.Entities = []string{"patients"}

	assert.Equal(t, []string{"patients"}, f.app.entities())
}
