package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SalesStore struct {
	db *sqlx.DB
}

func (ss *SalesStore) InsertSalesRecord(ctx context.Context, rec *SalesRecord) error {
	query := `INSERT INTO sales_records (
		sold_at,
		category,
		item,
		quantity,
		unit_price,
		revenue
	) VALUES (
		:sold_at,
		:category,
		:item,
		:quantity,
		:unit_price,
		:revenue
	) RETURNING id, inserted_at`

	rows, err := ss.db.NamedQueryContext(ctx, query, rec)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.Scan(&rec.ID, &rec.InsertedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (ss *SalesStore) InsertCategorySummary(ctx context.Context, summary *CategorySummary) error {
	query := `INSERT INTO category_summaries (
		category,
		record_count,
		total_quantity,
		total_revenue
	) VALUES (
		:category,
		:record_count,
		:total_quantity,
		:total_revenue
	) RETURNING id, inserted_at`

	rows, err := ss.db.NamedQueryContext(ctx, query, summary)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		err = rows.Scan(&summary.ID, &summary.InsertedAt)
		if err != nil {
			return err
		}
	}

	return nil
}
