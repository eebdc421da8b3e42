// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/sync/status", h.getSyncStatus)
		r.Post("/sync/run", h.runSync)
		r.Delete("/cache/{clinicID}", h.purgeClinicCache)
	})

	return router
}
