package store

import (
	"time"
)

// SalesRecord represents the 'sales_records' table.
type SalesRecord struct {
	ID         int64     `db:"id"`
	SoldAt     time.Time `db:"sold_at"`
	Category   string    `db:"category"`
	Item       string    `db:"item"`
	Quantity   int       `db:"quantity"`
	UnitPrice  float64   `db:"unit_price"`
	Revenue    float64   `db:"revenue"`
	InsertedAt time.Time `db:"inserted_at"`
}

// CategorySummary represents the 'category_summaries' table, one row per
// category per ingestion.
type CategorySummary struct {
	ID            int64     `db:"id"`
	Category      string    `db:"category"`
	RecordCount   int       `db:"record_count"`
	TotalQuantity int       `db:"total_quantity"`
	TotalRevenue  float64   `db:"total_revenue"`
	InsertedAt    time.Time `db:"inserted_at"`
}

// PipelineRun represents the 'pipeline_runs' table.
type PipelineRun struct {
	ID          int64     `db:"id" json:"id"`
	SourceFile  string    `db:"source_file" json:"source_file"`
	TriggerType string    `db:"trigger_type" json:"trigger_type"`
	Status      string    `db:"status" json:"status"`
	RowCount    int       `db:"row_count" json:"row_count"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
}
