package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"mobilefood.datasf.org/internal/app"
	"mobilefood.datasf.org/internal/metrics"
	"mobilefood.datasf.org/internal/models"
	"mobilefood.datasf.org/internal/permits"
)

// fixtureRows mirrors the dataset the original service's tests were built
// around: one approved truck, one row with sentinel coordinates, one
// lower-cased approved cart, and one blank row.
func fixtureRows() []models.Row {
	return []models.Row{
		{
			"Applicant": "Tasty Truck",
			"Status":    "APPROVED",
			"Address":   "123 SANSOME ST",
			"Latitude":  37.7801,
			"Longitude": -122.401,
			"FoodItems": "Tacos",
		},
		{
			"Applicant": "Another Vendor",
			"Status":    "REQUESTED",
			"Address":   "500 Market St",
			"Latitude":  0.0,
			"Longitude": 0.0,
		},
		{
			"Applicant": "taste of sf",
			"Status":    "approved",
			"Address":   "200 San Bruno Ave",
			"Latitude":  37.765,
			"Longitude": -122.405,
		},
		{
			"Applicant": "",
			"Status":    "",
			"Address":   "",
			"Latitude":  nil,
			"Longitude": nil,
		},
	}
}

// createTestApi builds a RestAPI over fixture rows, with rate limiting
// disabled and metrics bound to a private registry.
func createTestApi(t *testing.T, rows []models.Row) *RestAPI {
	t.Helper()

	application := &app.Application{
		Config: app.Config{
			Env:       "test",
			RateLimit: -1,
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Permits: permits.NewManagerFromRows(rows),
		Metrics: metrics.NewMetrics(prometheus.NewRegistry()),
	}

	return NewRestAPI(application)
}

// serveApiAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response with its raw body.
func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	server := httptest.NewServer(api.Routes())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func decodeRows(t *testing.T, body []byte) []models.Row {
	t.Helper()

	var rows []models.Row
	require.NoError(t, json.Unmarshal(body, &rows))
	return rows
}

func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()

	var payload struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Detail
}

func decodeFieldErrors(t *testing.T, body []byte) map[string][]string {
	t.Helper()

	var payload struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.FieldErrors
}
