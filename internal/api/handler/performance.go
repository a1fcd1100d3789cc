package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/justcarpets/mcc-reporting-api/internal/usecases/registry"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
	"github.com/justcarpets/mcc-reporting-api/pkg/apiErrors"
	"github.com/justcarpets/mcc-reporting-api/pkg/log"
	"github.com/justcarpets/mcc-reporting-api/pkg/utils"
)

// RegionPerformance serves one dashboard interaction: aggregate totals
// and per-campaign rows for the selected region. An empty result is a
// normal 200 response with has_data=false, not an error.
func RegionPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		label := httprouter.ParamsFromContext(r.Context()).ByName("label")
		logger.WithField("region", label).Info("performance: fetching campaign performance for region")

		result, err := service.GetRegionPerformance(label)
		if err != nil {
			if errors.Is(err, registry.ErrUnknownRegion) {
				logger.WithField("region", label).Warn("performance: unknown region requested")
				apiErrors.WriteError(w, apiErrors.ErrUnknownRegion, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"region": label,
				"error":  err.Error(),
			}).Error("performance: failed to get region performance")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		if !result.HasData {
			logger.WithField("region", label).Info("performance: no campaign data found for region")
		}

		// Cost is displayed in currency units; two decimals at the edge.
		result.Totals.Cost = utils.RoundWithTwoDecimalPlace(result.Totals.Cost)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("performance: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
