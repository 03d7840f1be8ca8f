package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Storage struct {
	Sales interface {
		InsertSalesRecord(ctx context.Context, rec *SalesRecord) error
		InsertCategorySummary(ctx context.Context, summary *CategorySummary) error
	}

	Runs interface {
		InsertRun(ctx context.Context, run *PipelineRun) error
		GetLatest(ctx context.Context, limit int) ([]PipelineRun, error)
		UpdateRunStatus(ctx context.Context, id int64, status string) error
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Sales: &SalesStore{db: db},
		Runs:  &RunStore{db: db},
	}
}
