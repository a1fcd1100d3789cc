package reporting

import (
	"github.com/justcarpets/mcc-reporting-api/internal/config"
	"github.com/justcarpets/mcc-reporting-api/internal/domain"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/registry"
	"github.com/justcarpets/mcc-reporting-api/pkg/log"
	"github.com/justcarpets/mcc-reporting-api/pkg/utils"
)

type Service struct {
	cfg      *config.Config
	registry *registry.Registry
	ads      AdsReporter
}

func NewService(cfg *config.Config, reg *registry.Registry, ads AdsReporter) Reporter {
	return &Service{
		cfg:      cfg,
		registry: reg,
		ads:      ads,
	}
}

func (s *Service) Regions() []domain.RegistryEntry {
	return s.registry.Entries()
}

func (s *Service) GetRegionPerformance(label string) (*domain.RegionPerformance, error) {
	entry, err := s.registry.Lookup(label)
	if err != nil {
		return nil, err
	}

	queryID, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Warn("reporting: failed to generate query ID")
	}

	logger := log.L.WithFields(log.Fields{
		"region":     entry.Label,
		"account_id": entry.AccountID,
		"query_id":   queryID,
	})
	logger.Info("reporting: fetching campaign performance")

	rows := s.ads.GetCampaignPerformance(entry.AccountID)
	totals := domain.Summarize(rows)

	if len(rows) == 0 {
		logger.Info("reporting: no campaign data found for account")
	} else {
		logger.WithField("campaigns", len(rows)).Info("reporting: campaign performance aggregated")
	}

	return &domain.RegionPerformance{
		Region:    entry,
		QueryID:   queryID,
		HasData:   len(rows) > 0,
		Totals:    totals,
		Campaigns: rows,
	}, nil
}

func (s *Service) ListManagedAccounts() []domain.SubAccount {
	return s.ads.ListSubAccounts(s.cfg.GoogleAds.LoginCustomerID)
}

func (s *Service) ConnectionVerified() bool {
	return s.ads.Verified()
}
