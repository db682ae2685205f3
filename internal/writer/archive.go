package writer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/codeforces-data/internal/model"
)

// Run describes one crawl for the archive.
type Run struct {
	ID        uuid.UUID // Run identifier, generated per invocation
	Handle    string    // Whose submissions were fetched
	From      int       // Window start (1-based)
	Count     int       // Window size
	FetchedAt time.Time // When the fetch completed
}

// NewRun creates a Run with a fresh identifier.
func NewRun(handle string, from, count int) Run {
	return Run{
		ID:        uuid.New(),
		Handle:    handle,
		From:      from,
		Count:     count,
		FetchedAt: time.Now().UTC(),
	}
}

// Archive stores crawl runs and their filtered submissions in Postgres.
type Archive struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewArchive creates an archive backed by the given pool.
func NewArchive(db *pgxpool.Pool, logger *slog.Logger) *Archive {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archive{db: db, logger: logger}
}

// SaveRun inserts the run and its submissions in one transaction, so a
// run either appears complete in the archive or not at all.
func (a *Archive) SaveRun(ctx context.Context, run Run, subs []model.Submission) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO crawl_runs (run_id, handle, from_index, count, fetched_at, solved)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.Handle, run.From, run.Count, run.FetchedAt, len(subs),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	rows := make([][]any, len(subs))
	for i, s := range subs {
		rows[i] = submissionRow(run.ID, s)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"crawl_submissions"},
		[]string{"run_id", "submission_id", "contest_id", "problem_index", "problem_name", "rating", "tags", "language", "verdict", "submitted_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy submissions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	a.logger.Info("run archived",
		"run_id", run.ID,
		"handle", run.Handle,
		"solved", len(subs),
	)
	return nil
}

// submissionRow flattens a submission into archive column order.
func submissionRow(runID uuid.UUID, s model.Submission) []any {
	return []any{
		runID,
		s.ID,
		s.ContestID,
		s.Problem.Index,
		s.Problem.Name,
		s.Problem.Rating,
		s.Problem.Tags,
		s.Language,
		s.Verdict,
		time.Unix(s.CreationTime, 0).UTC(),
	}
}
