package handler

import (
	"net/http"

	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
	"github.com/justcarpets/mcc-reporting-api/pkg/log"
)

// ManagedAccounts lists the client accounts linked under the configured
// manager account. Failures upstream degrade to an empty list, so this
// always answers 200.
func ManagedAccounts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts := service.ListManagedAccounts()
		logger.WithField("accounts", len(accounts)).Info("accounts: listed accounts under MCC")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
