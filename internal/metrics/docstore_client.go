package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	docstoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "docstore_client",
		Name:      "requests_total",
		Help:      "Count of document store HTTP requests.",
	}, []string{"operation", "status"})

	docstoreRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "methcert",
		Subsystem: "docstore_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of document store HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// DocstoreClient tracks metrics for document store HTTP calls.
type DocstoreClient struct{}

// NewDocstoreClient constructs a DocstoreClient metrics collector.
func NewDocstoreClient() *DocstoreClient {
	return &DocstoreClient{}
}

// Observe records one document store call.
func (m DocstoreClient) Observe(operation string, err error, started time.Time) {
	docstoreRequestsTotal.WithLabelValues(operation, status(err)).Inc()
	docstoreRequestDuration.WithLabelValues(operation, status(err)).
		Observe(time.Since(started).Seconds())
}
