// internal/common/metrics/metrics.go
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProbeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "probe_requests_total",
			Help: "Total number of probe runs by outcome",
		},
		[]string{"outcome"},
	)

	ProbeRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "probe_request_duration_seconds",
			Help:    "Duration of the product-image POST in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	ProbePayloadBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "probe_payload_bytes",
			Help: "Size of the last encoded request payload in bytes",
		},
	)

	ProbeResponseStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "probe_response_status_total",
			Help: "HTTP status codes returned by the API endpoint",
		},
		[]string{"code"},
	)
)

// RecordStatus counts one response with the given HTTP status.
func RecordStatus(code int) {
	ProbeResponseStatus.WithLabelValues(strconv.Itoa(code)).Inc()
}

// WriteTextfile dumps the default registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
