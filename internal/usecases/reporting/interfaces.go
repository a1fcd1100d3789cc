package reporting

import (
	"github.com/justcarpets/mcc-reporting-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// AdsReporter is the reporting façade the use case consumes. Its read
// operations never fail: a failed read and an account without data are
// both an empty result.
type AdsReporter interface {
	// TestConnection probes the API; the outcome is observability only.
	TestConnection() bool

	// Verified reports whether the connection probe has ever succeeded.
	Verified() bool

	// ListSubAccounts returns the client accounts directly under a manager
	// account.
	ListSubAccounts(parentAccountID string) []domain.SubAccount

	// GetCampaignPerformance returns the enabled campaigns of an account
	// with their delivery metrics.
	GetCampaignPerformance(accountID string) []domain.CampaignPerformance
}

// Reporter serves the dashboard's data needs.
type Reporter interface {
	// Regions returns the selectable regional accounts.
	Regions() []domain.RegistryEntry

	// GetRegionPerformance runs one dashboard interaction: resolve the
	// region, fetch its campaign metrics and aggregate them. The only
	// error is an unknown region label.
	GetRegionPerformance(label string) (*domain.RegionPerformance, error)

	// ListManagedAccounts returns the accounts under the configured MCC.
	ListManagedAccounts() []domain.SubAccount

	// ConnectionVerified reports the façade's verification state.
	ConnectionVerified() bool
}
