package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
)

func Root() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(lister listing.SalesLister, resolver faceting.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales",
			Method:  http.MethodGet,
			Handler: ListSales(lister),
		},
		{
			Path:    "/api/sales/meta",
			Method:  http.MethodGet,
			Handler: GetSalesMeta(resolver),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func CronJobs(job FacetCacheJob) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/facet-cache/run",
			Method:  http.MethodPost,
			Handler: RunFacetCacheRefresh(job),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(job),
		},
	}
}
