package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	DatasetRows    *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "permits_http_requests_total",
			Help: "Total number of HTTP requests served, by path and status.",
		}, []string{"path", "status"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "permits_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		DatasetRows: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "permits_dataset_rows",
			Help: "Number of permit rows loaded at startup, by view.",
		}, []string{"view"}),
	}
}
