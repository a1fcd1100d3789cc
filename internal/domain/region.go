package domain

// RegistryEntry is a selectable regional account: a human-readable label
// bound to the numeric customer ID it reports on.
type RegistryEntry struct {
	Label     string `json:"label"`
	AccountID string `json:"account_id"`
}

// RegionPerformance is the full payload for one dashboard interaction:
// the selected region, its aggregate totals and the per-campaign rows.
// HasData is false both when the account genuinely has no enabled
// campaigns and when the fetch failed; the two are indistinguishable at
// this level.
type RegionPerformance struct {
	Region    RegistryEntry         `json:"region"`
	QueryID   string                `json:"query_id"`
	HasData   bool                  `json:"has_data"`
	Totals    SummaryTotals         `json:"totals"`
	Campaigns []CampaignPerformance `json:"campaigns"`
}
