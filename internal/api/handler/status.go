package handler

import (
	"net/http"

	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
	"github.com/justcarpets/mcc-reporting-api/pkg/log"
)

type statusResponse struct {
	ConnectionVerified bool `json:"connection_verified"`
}

// ConnectionStatus exposes the façade's verification state. It is
// informational: an unverified connection does not block any read.
func ConnectionStatus(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response := statusResponse{
			ConnectionVerified: service.ConnectionVerified(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("status: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
