package pipeline

import (
	"context"
	"path/filepath"

	"github.com/kstyle2198/data-pipeline/internal/logger"
	"github.com/kstyle2198/data-pipeline/internal/store"
)

// Source describes one CSV drop to ingest.
type Source struct {
	Path     string
	Encoding string
	Trigger  string
}

type Result struct {
	Rows       int
	Skipped    int
	Categories int
}

// Run executes one extract-transform-load cycle for src and records the
// outcome in pipeline_runs.
func Run(ctx context.Context, src Source, storage *store.Storage, log *logger.Logger) (Result, error) {
	log.Info("Starting ingestion: file=%s encoding=%s trigger=%s", src.Path, src.Encoding, src.Trigger)

	df, err := OpenAndDecode(src.Path, src.Encoding)
	if err != nil {
		log.Error("Extraction failed: file=%s error=%v", src.Path, err)
		return Result{}, err
	}
	log.Debug("Extraction ready: rows=%d cols=%d", df.Nrow(), df.Ncol())

	records, summaries, skipped := Transform(df, log)
	log.Debug("Transformation done: records=%d categories=%d skipped=%d", len(records), len(summaries), skipped)

	for i := range records {
		if err := storage.Sales.InsertSalesRecord(ctx, &records[i]); err != nil {
			log.Error("Failed to insert sales record: row=%d error=%v", i, err)
			return Result{}, err
		}
	}
	for i := range summaries {
		if err := storage.Sales.InsertCategorySummary(ctx, &summaries[i]); err != nil {
			log.Error("Failed to insert category summary: category=%s error=%v", summaries[i].Category, err)
			return Result{}, err
		}
	}

	status := store.StatusSuccess
	if skipped > 0 {
		status = store.StatusPartial
	}

	run := &store.PipelineRun{
		SourceFile:  filepath.Base(src.Path),
		TriggerType: src.Trigger,
		Status:      status,
		RowCount:    len(records),
	}
	if err := storage.Runs.InsertRun(ctx, run); err != nil {
		log.Error("Failed to record pipeline run: error=%v", err)
		return Result{}, err
	}

	log.Info("Ingestion completed: runID=%d status=%s rows=%d categories=%d", run.ID, status, len(records), len(summaries))
	return Result{Rows: len(records), Skipped: skipped, Categories: len(summaries)}, nil
}
