package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"leadscout/internal/fetch"
	"leadscout/internal/queue"
	"leadscout/internal/store"
)

// UploadResponse is what we send back to the user
type UploadResponse struct {
	JobID     string `json:"job_id"`
	TotalRows int    `json:"total_rows"`
	Skipped   int    `json:"skipped"`
	Message   string `json:"message"`
}

// validTarget reports whether a CSV row looks like a real website: its host
// must resolve to a registrable domain (eTLD+1). Bare TLDs, IP-less garbage
// and empty cells are dropped before they waste a worker slot.
func validTarget(raw string) bool {
	u, err := url.Parse(fetch.Normalize(raw))
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	_, err = publicsuffix.EffectiveTLDPlusOne(host)
	return err == nil
}

func uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse Multipart Form (Max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONError(w, http.StatusBadRequest, "File too large or malformed")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing 'file' parameter in form data")
		return
	}
	defer file.Close()

	// URLs are expected in the first CSV column.
	reader := csv.NewReader(file)
	var urls []string
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid CSV format")
			return
		}
		if len(record) == 0 || record[0] == "" {
			continue
		}
		if !validTarget(record[0]) {
			skipped++
			continue
		}
		urls = append(urls, record[0])
	}

	if len(urls) == 0 {
		writeJSONError(w, http.StatusBadRequest, "CSV contains no usable URLs")
		return
	}

	jobID := uuid.New().String()
	ctx := r.Context()

	query := `INSERT INTO jobs (id, status, total_count, created_at) VALUES ($1, 'pending', $2, $3)`
	if _, err := store.DB.Exec(ctx, query, jobID, len(urls), time.Now()); err != nil {
		log.Printf("DB error creating job: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	enqueued := 0
	for _, target := range urls {
		if err := queue.Enqueue(ctx, queue.Task{JobID: jobID, URL: target}); err != nil {
			log.Printf("enqueue failed for %s: %v", target, err)
			continue
		}
		enqueued++
	}

	// A task that never made it onto the queue must not keep the job
	// pending forever.
	if enqueued != len(urls) {
		if _, err := store.DB.Exec(ctx, `UPDATE jobs SET total_count = $2 WHERE id = $1`, jobID, enqueued); err != nil {
			log.Printf("failed to adjust job total for %s: %v", jobID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	resp := UploadResponse{
		JobID:     jobID,
		TotalRows: enqueued,
		Skipped:   skipped,
		Message:   "Job created successfully. Processing started.",
	}
	json.NewEncoder(w).Encode(resp)
}
