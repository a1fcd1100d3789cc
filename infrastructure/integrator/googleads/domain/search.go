package gadsdomain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SearchResponse is one page returned by googleAds:search. Rows are kept
// raw because their shape depends on the GAQL query that produced them.
type SearchResponse struct {
	Results       []json.RawMessage `json:"results"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// AccessibleCustomersResponse is returned by
// customers:listAccessibleCustomers.
type AccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

// CustomerClientRow is a GAQL result row for customer_client queries.
type CustomerClientRow struct {
	CustomerClient CustomerClient `json:"customerClient"`
}

// CustomerClient is a client account linked under a manager account.
// ClientCustomer is a resource name ("customers/<id>").
type CustomerClient struct {
	ClientCustomer  string `json:"clientCustomer"`
	DescriptiveName string `json:"descriptiveName"`
	Level           int32  `json:"level"`
}

// CustomerID strips the resource-name prefix from ClientCustomer.
func (c CustomerClient) CustomerID() string {
	return strings.TrimPrefix(c.ClientCustomer, "customers/")
}

// CampaignRow is a GAQL result row for campaign performance queries.
type CampaignRow struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
}

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Metrics holds the performance metrics of one result row. The API
// encodes int64 metrics as JSON strings and may omit a field entirely
// instead of sending zero, so every accessor coerces absent or
// unparsable values to zero.
type Metrics struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CostMicros  string `json:"costMicros"`
}

func (m Metrics) ImpressionsValue() int64 {
	return coerceMetric(m.Impressions)
}

func (m Metrics) ClicksValue() int64 {
	return coerceMetric(m.Clicks)
}

func (m Metrics) CostMicrosValue() int64 {
	return coerceMetric(m.CostMicros)
}

// CampaignID parses the string-encoded campaign ID, zero when absent.
func (r CampaignRow) CampaignID() int64 {
	return coerceMetric(r.Campaign.ID)
}

func coerceMetric(raw string) int64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}

	return value
}
