package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type RunStore struct {
	db *sqlx.DB
}

var (
	TriggerTypeManual    = "manual"
	TriggerTypeScheduled = "scheduled"
)

var (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusPartial = "partial"
)

func (rs *RunStore) InsertRun(ctx context.Context, run *PipelineRun) error {
	query := `INSERT INTO pipeline_runs (
		source_file,
		trigger_type,
		status,
		row_count
	) VALUES (
		:source_file,
		:trigger_type,
		:status,
		:row_count
	) RETURNING id, processed_at`

	rows, err := rs.db.NamedQueryContext(ctx, query, run)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.Scan(&run.ID, &run.ProcessedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (rs *RunStore) GetLatest(ctx context.Context, limit int) ([]PipelineRun, error) {
	query := `SELECT id, source_file, trigger_type, status, row_count, processed_at
		FROM pipeline_runs
		ORDER BY processed_at DESC
		LIMIT $1`

	runs := []PipelineRun{}
	if err := rs.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, err
	}

	return runs, nil
}

func (rs *RunStore) UpdateRunStatus(ctx context.Context, id int64, status string) error {
	res, err := rs.db.ExecContext(ctx, `UPDATE pipeline_runs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("pipeline run %d not found", id)
	}

	return nil
}
