package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"leadscout/internal/analyzer"
	"leadscout/internal/fetch"
	"leadscout/internal/models"
	"leadscout/internal/queue"
	"leadscout/internal/store"
)

// taskTimeout bounds one analysis; the fetch itself is capped at 15s, the
// rest is regex work that finishes in milliseconds.
const taskTimeout = 30 * time.Second

// Start launches the worker loop.
// It blocks forever, waiting for tasks.
func Start() {
	log.Println("Worker started. Waiting for analyze tasks...")
	ctx := context.Background()

	for {
		// Blocking pop: BLPOP returns [queue_name, value]
		result, err := queue.Client.BLPop(ctx, 0*time.Second, queue.QueueName).Result()
		if err != nil {
			log.Printf("redis error: %v", err)
			time.Sleep(1 * time.Second) // Backoff on error
			continue
		}

		rawJSON := result[1]
		var task queue.Task
		if err := json.Unmarshal([]byte(rawJSON), &task); err != nil {
			log.Printf("malformed task: %s", rawJSON)
			continue
		}

		record := processTask(ctx, task)

		if err := saveResult(ctx, task.JobID, record); err != nil {
			log.Printf("save failed for %s: %v", task.URL, err)
			continue
		}
		log.Printf("processed %s (score %d, status %s)", record.URL, record.SalesScore, record.Status)
	}
}

// processTask runs one analysis and always returns a terminal record: a
// failed fetch becomes an error record, never a lost task.
func processTask(ctx context.Context, task queue.Task) models.SiteAnalysis {
	taskCtx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	record, err := analyzer.Analyze(taskCtx, task.URL)
	if err != nil {
		return models.NewErrorRecord(fetch.Normalize(task.URL), err.Error())
	}
	return record
}

// saveResult persists the record and bumps the job counters in one
// transaction, completing the job once every row is in.
func saveResult(ctx context.Context, jobID string, record models.SiteAnalysis) error {
	tx, err := store.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := store.SaveAnalysis(ctx, tx, &record, &jobID); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE jobs
		SET processed_count = processed_count + 1,
		    status = CASE
		        WHEN processed_count + 1 >= total_count THEN 'completed'
		        ELSE status
		    END,
		    completed_at = CASE
		        WHEN processed_count + 1 >= total_count THEN NOW()
		        ELSE completed_at
		    END
		WHERE id = $1
	`, jobID)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
