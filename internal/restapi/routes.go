package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the full handler chain: router at the core, wrapped (inside
// out) by rate limiting, compression, request logging/metrics, and security
// headers.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/search/applicant", api.searchApplicantHandler)
	router.HandlerFunc(http.MethodGet, "/search/street", api.searchStreetHandler)
	router.HandlerFunc(http.MethodGet, "/search/nearest", api.searchNearestHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.Metrics)(handler)
	handler = securityHeaders(handler)

	return handler
}
