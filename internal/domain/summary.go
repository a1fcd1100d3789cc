package domain

// SummaryTotals aggregates the metrics of one query result. Cost is in
// currency units, converted from the summed micros.
type SummaryTotals struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
}

// Summarize reduces a set of campaign rows into summary totals. An empty
// input yields all-zero totals. The micros sum is converted to currency
// units in a single division to avoid per-row truncation.
func Summarize(rows []CampaignPerformance) SummaryTotals {
	var totals SummaryTotals
	var costMicros int64

	for _, row := range rows {
		totals.Impressions += row.Impressions
		totals.Clicks += row.Clicks
		costMicros += row.CostMicros
	}

	totals.Cost = float64(costMicros) / 1_000_000

	return totals
}
