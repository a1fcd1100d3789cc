package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/justcarpets/mcc-reporting-api/internal/api/handler/router"
	"github.com/justcarpets/mcc-reporting-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard returns the routes backing the reporting dashboard.
func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/registry",
			Method:  http.MethodGet,
			Handler: RegionList(service),
		},
		{
			Path:    "/v1/regions/:label/performance",
			Method:  http.MethodGet,
			Handler: RegionPerformance(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ManagedAccounts(service),
		},
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: ConnectionStatus(service),
		},
	}
}
