package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"leadscout/internal/analyzer"
	"leadscout/internal/fetch"
	"leadscout/internal/models"
	"leadscout/internal/store"
)

type analyzeRequest struct {
	URL string `json:"url"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// analyzeHandler runs the full fingerprint pipeline against one URL and
// returns the analysis record. The record (done or error) is also persisted
// so the sales team's history view sees every attempt.
func analyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSONError(w, http.StatusBadRequest, "URL is required")
		return
	}

	record, err := analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		status := http.StatusInternalServerError
		var fe *fetch.FetchError
		if errors.As(err, &fe) {
			// Target server answered but refused us; that's an upstream
			// problem, not ours.
			status = http.StatusBadGateway
		}

		errRecord := models.NewErrorRecord(fetch.Normalize(req.URL), err.Error())
		if saveErr := store.SaveAnalysis(r.Context(), store.DB, &errRecord, nil); saveErr != nil {
			log.Printf("failed to save error record for %s: %v", errRecord.URL, saveErr)
		}

		writeJSONError(w, status, err.Error())
		return
	}

	if err := store.SaveAnalysis(r.Context(), store.DB, &record, nil); err != nil {
		// The analysis itself succeeded; a store hiccup must not turn a
		// done record into an error response.
		log.Printf("failed to save analysis for %s: %v", record.URL, err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		log.Printf("❌ Error encoding /analyze response for %s: %v", record.URL, err)
	}
}
