// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/service"
)

type Handler struct {
	services *service.ClientServices
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		gatherer: gatherer,
		logger:   logger,
	}
}
