package listing

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	fetchTotal   *prometheus.CounterVec
	fetchLatency *prometheus.HistogramVec
	rows         *prometheus.GaugeVec
	storeErrors  *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		fetchTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing",
			Name:      "fetch_total",
			Help:      "Total number of list page fetches by result (ok, error, stale).",
		}, []string{"page", "result"}),
		fetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "listing",
			Name:      "fetch_latency_seconds",
			Help:      "Latency distribution for list page fetches.",
			Buckets: []float64{
				0.005, 0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5, 10, 15,
			},
		}, []string{"page"}),
		rows: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "listing",
			Name:      "rows",
			Help:      "Number of rows returned by the last applied fetch.",
		}, []string{"page"}),
		storeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "listing",
			Name:      "store_errors_total",
			Help:      "Total number of filter state store failures.",
		}, []string{"page", "op"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

func countFetch(page, result string) {
	getMetrics().fetchTotal.WithLabelValues(page, result).Inc()
}

func observeFetch(page string, start time.Time) {
	getMetrics().fetchLatency.WithLabelValues(page).Observe(time.Since(start).Seconds())
}

func setRows(page string, n int) {
	getMetrics().rows.WithLabelValues(page).Set(float64(n))
}

func countStoreError(page, op string) {
	getMetrics().storeErrors.WithLabelValues(page, op).Inc()
}
