package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"leadscout/internal/models"
)

var ErrNotFound = errors.New("analysis not found")

// Execer is satisfied by both *pgxpool.Pool and pgx.Tx, so an insert can
// join the worker's job-progress transaction.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SaveAnalysis inserts one completed (or failed) analysis record. The record
// gets an id and timestamps here if the caller didn't set them. jobID is nil
// for ad-hoc analyses and set for rows produced by a bulk job.
func SaveAnalysis(ctx context.Context, db Execer, a *models.SiteAnalysis, jobID *string) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	services, err := json.Marshal(a.Services)
	if err != nil {
		return fmt.Errorf("marshal services: %w", err)
	}
	builders, err := json.Marshal(a.WebBuilders)
	if err != nil {
		return fmt.Errorf("marshal web builders: %w", err)
	}
	allBuilders, err := json.Marshal(a.AllWebBuilders)
	if err != nil {
		return fmt.Errorf("marshal builder breakdown: %w", err)
	}
	opportunities, err := json.Marshal(a.Opportunities)
	if err != nil {
		return fmt.Errorf("marshal opportunities: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO site_analyses (
			id, job_id, url, title, description, og_image,
			has_og_tags, mobile_optimized, load_time_ms, page_size,
			services, web_builders, all_web_builders,
			sales_score, opportunities, notes, status, error_message,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`,
		a.ID, jobID, a.URL, a.Title, a.Description, a.OgImage,
		a.HasOgTags, a.MobileOptimized, a.LoadTimeMs, a.PageSize,
		services, builders, allBuilders,
		a.SalesScore, opportunities, a.Notes, string(a.Status), nullIfEmpty(a.ErrorMessage),
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

const analysisColumns = `
	id, url, title, description, og_image,
	has_og_tags, mobile_optimized, load_time_ms, page_size,
	services, web_builders, all_web_builders,
	sales_score, opportunities, notes, status, error_message,
	created_at, updated_at`

// ListAnalyses returns saved analyses, newest first.
func ListAnalyses(ctx context.Context, limit int) ([]models.SiteAnalysis, error) {
	rows, err := DB.Query(ctx, `
		SELECT `+analysisColumns+`
		FROM site_analyses
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// ListAnalysesByJob returns the rows of one bulk job in insertion order.
func ListAnalysesByJob(ctx context.Context, jobID string) ([]models.SiteAnalysis, error) {
	rows, err := DB.Query(ctx, `
		SELECT `+analysisColumns+`
		FROM site_analyses
		WHERE job_id = $1
		ORDER BY created_at ASC
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job analyses: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// UpdateNotes mutates the only mutable field of a stored record.
func UpdateNotes(ctx context.Context, id, notes string) (models.SiteAnalysis, error) {
	row := DB.QueryRow(ctx, `
		UPDATE site_analyses
		SET notes = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+analysisColumns+`
	`, id, notes)

	a, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.SiteAnalysis{}, ErrNotFound
	}
	return a, err
}

func DeleteAnalysis(ctx context.Context, id string) error {
	tag, err := DB.Exec(ctx, `DELETE FROM site_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (models.SiteAnalysis, error) {
	var (
		a             models.SiteAnalysis
		services      []byte
		builders      []byte
		allBuilders   []byte
		opportunities []byte
		errorMessage  *string
		status        string
	)
	err := row.Scan(
		&a.ID, &a.URL, &a.Title, &a.Description, &a.OgImage,
		&a.HasOgTags, &a.MobileOptimized, &a.LoadTimeMs, &a.PageSize,
		&services, &builders, &allBuilders,
		&a.SalesScore, &opportunities, &a.Notes, &status, &errorMessage,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}
	a.Status = models.AnalysisStatus(status)
	if errorMessage != nil {
		a.ErrorMessage = *errorMessage
	}
	if err := json.Unmarshal(services, &a.Services); err != nil {
		return a, fmt.Errorf("decode services: %w", err)
	}
	if err := json.Unmarshal(builders, &a.WebBuilders); err != nil {
		return a, fmt.Errorf("decode web builders: %w", err)
	}
	if err := json.Unmarshal(allBuilders, &a.AllWebBuilders); err != nil {
		return a, fmt.Errorf("decode builder breakdown: %w", err)
	}
	if err := json.Unmarshal(opportunities, &a.Opportunities); err != nil {
		return a, fmt.Errorf("decode opportunities: %w", err)
	}
	return a, nil
}

func scanAnalyses(rows pgx.Rows) ([]models.SiteAnalysis, error) {
	out := []models.SiteAnalysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			continue // Skip malformed rows
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
