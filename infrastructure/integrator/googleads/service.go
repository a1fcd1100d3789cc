package googleads

import (
	"encoding/json"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	gadsdomain "github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/domain"
	"github.com/justcarpets/mcc-reporting-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/justcarpets/mcc-reporting-api/internal/config"
	"github.com/justcarpets/mcc-reporting-api/internal/domain"
)

const subAccountsQuery = `
	SELECT customer_client.client_customer, customer_client.descriptive_name
	FROM customer_client
	WHERE customer_client.level = 1`

const campaignPerformanceQuery = `
	SELECT
		campaign.id,
		campaign.name,
		metrics.impressions,
		metrics.clicks,
		metrics.cost_micros
	FROM campaign
	WHERE campaign.status = 'ENABLED'`

// Integrator is the reporting façade over the Google Ads API. Its read
// operations share one contract: any failure is logged and degraded to an
// empty result, so callers cannot tell a failed read from an account with
// no data. Connection verification is observability only and never gates
// the reads.
type Integrator struct {
	cfg    *config.Config
	Client gadsclient.Client

	verified atomic.Bool
}

func New(cfg *config.Config, client gadsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// TestConnection probes the API by listing the accounts the credential
// can access. A non-empty result marks the connection verified.
func (s *Integrator) TestConnection() bool {
	names, err := s.Client.ListAccessibleCustomers()
	if err != nil {
		logrus.WithError(err).Warn("googleads: API connection test failed")
		return false
	}

	if len(names) == 0 {
		logrus.Warn("googleads: connected, but no accessible customers found")
		return false
	}

	s.verified.Store(true)
	logrus.WithField("accessible_customers", len(names)).
		Info("googleads: API connection successful")

	return true
}

// Verified reports whether the connection probe has ever succeeded.
func (s *Integrator) Verified() bool {
	return s.verified.Load()
}

// ListSubAccounts returns the client accounts directly under the given
// manager account. The result is empty, never nil, on any failure.
func (s *Integrator) ListSubAccounts(parentAccountID string) []domain.SubAccount {
	accounts := make([]domain.SubAccount, 0)

	rows, err := s.Client.Search(parentAccountID, subAccountsQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"parent_account_id": parentAccountID,
			"error":             err.Error(),
		}).Error("googleads: failed to list sub-accounts")
		return accounts
	}

	for _, raw := range rows {
		var row gadsdomain.CustomerClientRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("googleads: failed to decode customer_client row")
			return make([]domain.SubAccount, 0)
		}

		accounts = append(accounts, domain.SubAccount{
			ID:   row.CustomerClient.CustomerID(),
			Name: row.CustomerClient.DescriptiveName,
		})
	}

	return accounts
}

// GetCampaignPerformance returns the delivery metrics of the account's
// enabled campaigns. The result is empty, never nil, on any failure.
func (s *Integrator) GetCampaignPerformance(accountID string) []domain.CampaignPerformance {
	campaigns := make([]domain.CampaignPerformance, 0)

	rows, err := s.Client.Search(accountID, campaignPerformanceQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("googleads: failed to fetch campaign performance")
		return campaigns
	}

	for _, raw := range rows {
		var row gadsdomain.CampaignRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logrus.WithError(err).Error("googleads: failed to decode campaign row")
			return make([]domain.CampaignPerformance, 0)
		}

		campaigns = append(campaigns, domain.CampaignPerformance{
			CampaignID:   row.CampaignID(),
			CampaignName: row.Campaign.Name,
			Impressions:  row.Metrics.ImpressionsValue(),
			Clicks:       row.Metrics.ClicksValue(),
			CostMicros:   row.Metrics.CostMicrosValue(),
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
	}).Debug("googleads: campaign performance retrieved")

	return campaigns
}
