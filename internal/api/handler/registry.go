package handler

import (
	"net/http"

	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
	"github.com/justcarpets/mcc-reporting-api/pkg/log"
)

// RegionList returns the selectable regional accounts, in the order the
// selection control should present them.
func RegionList(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		regions := service.Regions()
		logger.WithField("regions", len(regions)).Debug("registry: listing selectable regions")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(regions); err != nil {
			logger.WithError(err).Error("registry: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
