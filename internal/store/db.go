package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

// Init connects to Postgres and runs migrations
func Init(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	DB, err = pgxpool.New(ctx, connString)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	// Verify connection
	if err := DB.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return runMigrations(ctx)
}

// runMigrations creates the necessary tables if they don't exist
func runMigrations(ctx context.Context) error {
	// Table: jobs (Tracks bulk URL batches)
	queryJobs := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		total_count INT DEFAULT 0,
		processed_count INT DEFAULT 0,
		created_at TIMESTAMP DEFAULT NOW(),
		completed_at TIMESTAMP
	);`

	// Table: site_analyses (One row per analyzed site. Detection lists are
	// stored as JSONB so the full record round-trips without extra tables;
	// only notes is mutated after insert.)
	queryAnalyses := `
	CREATE TABLE IF NOT EXISTS site_analyses (
		id TEXT PRIMARY KEY,
		job_id TEXT REFERENCES jobs(id),
		url TEXT NOT NULL,
		title TEXT,
		description TEXT,
		og_image TEXT,
		has_og_tags BOOLEAN DEFAULT FALSE,
		mobile_optimized BOOLEAN DEFAULT FALSE,
		load_time_ms BIGINT DEFAULT 0,
		page_size INT DEFAULT 0,
		services JSONB NOT NULL DEFAULT '[]'::jsonb,
		web_builders JSONB NOT NULL DEFAULT '[]'::jsonb,
		all_web_builders JSONB NOT NULL DEFAULT '[]'::jsonb,
		sales_score INT DEFAULT 0,
		opportunities JSONB NOT NULL DEFAULT '[]'::jsonb,
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		error_message TEXT,
		created_at TIMESTAMP DEFAULT NOW(),
		updated_at TIMESTAMP DEFAULT NOW()
	);`

	if _, err := DB.Exec(ctx, queryJobs); err != nil {
		return fmt.Errorf("migration failed (jobs): %w", err)
	}
	if _, err := DB.Exec(ctx, queryAnalyses); err != nil {
		return fmt.Errorf("migration failed (site_analyses): %w", err)
	}

	return nil
}
