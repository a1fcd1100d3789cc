package domain

// SubAccount is a client account linked directly under the manager (MCC)
// account.
type SubAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CampaignPerformance holds the delivery metrics of a single enabled
// campaign. Cost is carried in micros, the API's native integer encoding
// for currency.
type CampaignPerformance struct {
	CampaignID   int64  `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Impressions  int64  `json:"impressions"`
	Clicks       int64  `json:"clicks"`
	CostMicros   int64  `json:"cost_micros"`
}

// Cost returns the campaign cost converted from micros to currency units.
func (c CampaignPerformance) Cost() float64 {
	return float64(c.CostMicros) / 1_000_000
}
