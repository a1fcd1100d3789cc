package gadsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadsdomain "github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/domain"
)

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// Search runs a GAQL query against one customer account and returns the
// raw result rows across all pages.
func (c *GoogleAdsClient) Search(customerID, query string) ([]json.RawMessage, error) {
	return c.search(customerID, query, true)
}

func (c *GoogleAdsClient) search(customerID, query string, retryOnRefresh bool) ([]json.RawMessage, error) {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return nil, errors.Wrap(err, "ensuring access token validity")
	}

	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	var results []json.RawMessage
	pageToken := ""

	for {
		payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, errors.Wrap(err, "encoding search request")
		}

		req, err := c.newRequest(http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			logrus.WithError(err).Error("googleads: failed to build search request")
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("googleads: search request failed")
			return nil, err
		}

		body, err := c.TokenManager.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			if errors.Is(err, ErrTokenRefreshed) && retryOnRefresh {
				return c.search(customerID, query, false)
			}
			return nil, err
		}

		var page gadsdomain.SearchResponse
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("googleads: failed to decode search response")
			return nil, err
		}

		results = append(results, page.Results...)

		if page.NextPageToken == "" {
			return results, nil
		}
		pageToken = page.NextPageToken
	}
}
