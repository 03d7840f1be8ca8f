package pipeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/kstyle2198/data-pipeline/internal/logger"
	"github.com/kstyle2198/data-pipeline/internal/store"
)

// Expected CSV columns: Date, Category, Item, Quantity, UnitPrice.

func dfRowToSalesRecord(df dataframe.DataFrame, rowIdx int) (store.SalesRecord, error) {
	soldAt, err := time.Parse("2006-01-02", getStr("Date", rowIdx, &df))
	if err != nil {
		return store.SalesRecord{}, fmt.Errorf("invalid Date: %v", err)
	}

	quantity := getInt("Quantity", rowIdx, &df)
	unitPrice := getFloat("UnitPrice", rowIdx, &df)

	return store.SalesRecord{
		SoldAt:    soldAt,
		Category:  getStr("Category", rowIdx, &df),
		Item:      getStr("Item", rowIdx, &df),
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Revenue:   float64(quantity) * unitPrice,
	}, nil
}

// Transform converts each row into a sales record and aggregates per-category
// summaries. Rows that fail conversion are skipped with a warning; the
// skipped count is reported so the run can be flagged partial.
func Transform(df dataframe.DataFrame, log *logger.Logger) ([]store.SalesRecord, []store.CategorySummary, int) {
	records := make([]store.SalesRecord, 0, df.Nrow())
	totals := map[string]*store.CategorySummary{}
	skipped := 0

	for i := 0; i < df.Nrow(); i++ {
		rec, err := dfRowToSalesRecord(df, i)
		if err != nil {
			log.Warning("Skipping row: row=%d reason=%v", i, err)
			skipped++
			continue
		}

		records = append(records, rec)

		summary, ok := totals[rec.Category]
		if !ok {
			summary = &store.CategorySummary{Category: rec.Category}
			totals[rec.Category] = summary
		}
		summary.RecordCount++
		summary.TotalQuantity += rec.Quantity
		summary.TotalRevenue += rec.Revenue
	}

	summaries := make([]store.CategorySummary, 0, len(totals))
	for _, summary := range totals {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})

	return records, summaries, skipped
}
