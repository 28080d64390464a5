package main

import (
	"encoding/json"
	"log"
	"net/http"

	"leadscout/internal/store"
)

// resultsHandler returns the per-URL analysis records of one bulk job in the
// order they were processed.
func resultsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobID := r.URL.Query().Get("id")
	if jobID == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing 'id' parameter")
		return
	}

	results, err := store.ListAnalysesByJob(r.Context(), jobID)
	if err != nil {
		log.Printf("fetch results failed for %s: %v", jobID, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
