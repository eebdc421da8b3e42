// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package http

import (
	"net/http"

	"github.com/medvision/clinic-sync/internal/logger"
	"github.com/medvision/clinic-sync/internal/utils"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tracker := h.services.Tracker()
	if tracker == nil {
		log.Warn().Str("func", "*Handler.getSyncStatus").Msg("no clinic is selected")
		http.Error(w, "no clinic is selected", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, tracker.Status(), http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
