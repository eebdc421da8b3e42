// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/utils"
	"github.com/medvision/clinic-sync/models"
)

func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var syncRequest models.SyncRunRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.runSync").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	clinicID := syncRequest.ClinicID
	if clinicID == "" {
		tracker := h.services.Tracker()
		if tracker == nil {
			log.Error().Str("func", "*Handler.runSync").Msg("no clinic ID was given")
			http.Error(w, "no clinic ID was given", http.StatusBadRequest)
			return
		}
		clinicID = tracker.ClinicID()
	}

	entities := syncRequest.Entities
	if len(entities) == 0 {
		entities = models.DefaultEntityList()
	}

	report, err := h.services.Orchestrator.PullClinicData(ctx, clinicID, entities, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.runSync").Str("clinic_id", clinicID).Msg("sync run failed")
		http.Error(w, "sync run failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) purgeClinicCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clinicID := chi.URLParam(r, "clinicID")
	if clinicID == "" {
		log.Error().Str("func", "*Handler.purgeClinicCache").Msg("no clinic ID was given")
		http.Error(w, "no clinic ID was given", http.StatusBadRequest)
		return
	}

	if err := h.services.ForgetClinic(ctx, clinicID); err != nil {
		log.Err(err).Str("func", "*Handler.purgeClinicCache").Str("clinic_id", clinicID).Msg("error purging clinic cache")
		http.Error(w, "error purging clinic cache", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
