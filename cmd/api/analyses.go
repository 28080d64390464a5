package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"leadscout/internal/store"
)

type notesUpdate struct {
	Notes *string `json:"notes"`
}

// analysesHandler serves the saved-analysis history: list, notes update,
// delete. Everything except notes is immutable once stored.
func analysesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		listAnalyses(w, r)
	case http.MethodPatch:
		patchAnalysis(w, r)
	case http.MethodDelete:
		deleteAnalysis(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func listAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	analyses, err := store.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("list analyses failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch analyses")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyses)
}

func patchAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing 'id' parameter")
		return
	}

	var update notesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil || update.Notes == nil {
		writeJSONError(w, http.StatusBadRequest, "Body must contain 'notes'")
		return
	}

	analysis, err := store.UpdateNotes(r.Context(), id, *update.Notes)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		log.Printf("notes update failed for %s: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to update notes")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

func deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing 'id' parameter")
		return
	}

	err := store.DeleteAnalysis(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		log.Printf("delete failed for %s: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
