package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/justcarpets/mcc-reporting-api/internal/api/handler"
	"github.com/justcarpets/mcc-reporting-api/internal/api/handler/router"
	"github.com/justcarpets/mcc-reporting-api/internal/domain"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/registry"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting/mocks"
)

func dashboardRouter(t *testing.T) (*mocks.MockReporter, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(handler.Dashboard(service)...))

	return service, rt
}

func TestRegionPerformanceWithData(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().GetRegionPerformance("DE").Return(&domain.RegionPerformance{
		Region:  domain.RegistryEntry{Label: "DE", AccountID: "1946606314"},
		QueryID: "q1x9Zx",
		HasData: true,
		Totals:  domain.SummaryTotals{Impressions: 150, Clicks: 15, Cost: 6.00},
		Campaigns: []domain.CampaignPerformance{
			{CampaignID: 1, CampaignName: "Brand DE", Impressions: 100, Clicks: 10, CostMicros: 5_000_000},
			{CampaignID: 2, CampaignName: "Shopping DE", Impressions: 50, Clicks: 5, CostMicros: 1_000_000},
		},
	}, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions/DE/performance", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.RegionPerformance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.HasData)
	assert.Equal(t, int64(150), body.Totals.Impressions)
	assert.Equal(t, int64(15), body.Totals.Clicks)
	assert.InDelta(t, 6.00, body.Totals.Cost, 1e-6)
	assert.Len(t, body.Campaigns, 2)
}

func TestRegionPerformanceNoDataIsNotAnError(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().GetRegionPerformance("NL").Return(&domain.RegionPerformance{
		Region:    domain.RegistryEntry{Label: "NL", AccountID: "5756290882"},
		HasData:   false,
		Campaigns: []domain.CampaignPerformance{},
	}, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions/NL/performance", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.RegionPerformance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.HasData)
	assert.Empty(t, body.Campaigns)
}

func TestRegionPerformanceUnknownRegion(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().GetRegionPerformance("XX").Return(nil, registry.ErrUnknownRegion)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/regions/XX/performance", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestRegionList(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().Regions().Return([]domain.RegistryEntry{
		{Label: "DE", AccountID: "1946606314"},
		{Label: "NL", AccountID: "5756290882"},
	})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var regions []domain.RegistryEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	assert.Len(t, regions, 2)
}

func TestConnectionStatus(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().ConnectionVerified().Return(true)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"connection_verified":true}`, rec.Body.String())
}

func TestManagedAccounts(t *testing.T) {
	service, rt := dashboardRouter(t)

	service.EXPECT().ListManagedAccounts().Return([]domain.SubAccount{
		{ID: "5756290882", Name: "Just Carpets NL"},
	})

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Just Carpets NL")
}
