// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it to w with the given status code and
// a "Content-Type: application/json" header.
//
// If marshaling fails, the response becomes a 500 Internal Server Error and
// a wrapped error is returned; otherwise the return values are those of the
// underlying Write call.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
