package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/justcarpets/mcc-reporting-api/internal/config"
	"github.com/justcarpets/mcc-reporting-api/internal/domain"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/registry"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting/mocks"
)

func newService(t *testing.T) (reporting.Reporter, *mocks.MockAdsReporter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reg, err := registry.New()
	require.NoError(t, err)

	ads := mocks.NewMockAdsReporter(ctrl)
	cfg := &config.Config{
		GoogleAds: config.GoogleAds{LoginCustomerID: "1234567890"},
	}

	return reporting.NewService(cfg, reg, ads), ads
}

func TestGetRegionPerformanceAggregatesRows(t *testing.T) {
	service, ads := newService(t)

	ads.EXPECT().GetCampaignPerformance("1946606314").
		Return([]domain.CampaignPerformance{
			{CampaignID: 1, CampaignName: "Brand DE", Impressions: 100, Clicks: 10, CostMicros: 5_000_000},
			{CampaignID: 2, CampaignName: "Shopping DE", Impressions: 50, Clicks: 5, CostMicros: 1_000_000},
		})

	result, err := service.GetRegionPerformance("DE")
	require.NoError(t, err)

	assert.Equal(t, "DE", result.Region.Label)
	assert.Equal(t, "1946606314", result.Region.AccountID)
	assert.True(t, result.HasData)
	assert.NotEmpty(t, result.QueryID)

	assert.Equal(t, int64(150), result.Totals.Impressions)
	assert.Equal(t, int64(15), result.Totals.Clicks)
	assert.InDelta(t, 6.00, result.Totals.Cost, 1e-6)
	assert.Len(t, result.Campaigns, 2)
}

func TestGetRegionPerformanceNoData(t *testing.T) {
	service, ads := newService(t)

	// Failed reads and genuinely empty accounts look identical here.
	ads.EXPECT().GetCampaignPerformance("5756290882").
		Return([]domain.CampaignPerformance{})

	result, err := service.GetRegionPerformance("NL")
	require.NoError(t, err)

	assert.False(t, result.HasData)
	assert.Equal(t, domain.SummaryTotals{Impressions: 0, Clicks: 0, Cost: 0.0}, result.Totals)
	assert.NotNil(t, result.Campaigns)
	assert.Empty(t, result.Campaigns)
}

func TestGetRegionPerformanceUnknownRegion(t *testing.T) {
	service, _ := newService(t)

	_, err := service.GetRegionPerformance("XX")
	assert.ErrorIs(t, err, registry.ErrUnknownRegion)
}

func TestListManagedAccountsUsesConfiguredMCC(t *testing.T) {
	service, ads := newService(t)

	ads.EXPECT().ListSubAccounts("1234567890").
		Return([]domain.SubAccount{{ID: "5756290882", Name: "Just Carpets NL"}})

	accounts := service.ListManagedAccounts()
	assert.Len(t, accounts, 1)
}

func TestConnectionVerified(t *testing.T) {
	service, ads := newService(t)

	ads.EXPECT().Verified().Return(true)
	assert.True(t, service.ConnectionVerified())
}
