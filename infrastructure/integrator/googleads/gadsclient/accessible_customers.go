package gadsclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	gadsdomain "github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/domain"
)

// ListAccessibleCustomers returns the resource names of every account the
// credential can access. It is the cheapest call the API offers, which
// makes it the connectivity probe.
func (c *GoogleAdsClient) ListAccessibleCustomers() ([]string, error) {
	return c.listAccessibleCustomers(true)
}

func (c *GoogleAdsClient) listAccessibleCustomers(retryOnRefresh bool) ([]string, error) {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return nil, errors.Wrap(err, "ensuring access token validity")
	}

	url := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.GoogleAds.URL)

	req, err := c.newRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to build listAccessibleCustomers request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("googleads: listAccessibleCustomers request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(resp)
	if err != nil {
		if errors.Is(err, ErrTokenRefreshed) && retryOnRefresh {
			return c.listAccessibleCustomers(false)
		}
		return nil, err
	}

	var response gadsdomain.AccessibleCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("googleads: failed to decode listAccessibleCustomers response")
		return nil, err
	}

	return response.ResourceNames, nil
}
