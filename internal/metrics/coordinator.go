package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorSubmitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "coordinator",
		Name:      "submits_total",
		Help:      "Count of write path submissions, by operation.",
	}, []string{"network", "operation", "status"})

	coordinatorSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "methcert",
		Subsystem: "coordinator",
		Name:      "submit_duration_seconds",
		Help:      "Duration of write path submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "operation", "status"})
)

// Coordinator tracks metrics for the certificate write path.
type Coordinator struct {
	network string
}

// NewCoordinator constructs a Coordinator metrics collector.
func NewCoordinator(network string) *Coordinator {
	if network == "" {
		network = "unknown"
	}
	return &Coordinator{network: network}
}

// ObserveSubmitRequest records a certificate request submission.
func (m Coordinator) ObserveSubmitRequest(err error, started time.Time) {
	m.observe("request", err, started)
}

// ObserveSubmitConfirmation records a certificate confirmation submission.
func (m Coordinator) ObserveSubmitConfirmation(err error, started time.Time) {
	m.observe("confirmation", err, started)
}

func (m Coordinator) observe(operation string, err error, started time.Time) {
	coordinatorSubmitsTotal.WithLabelValues(m.network, operation, status(err)).Inc()
	coordinatorSubmitDuration.WithLabelValues(m.network, operation, status(err)).
		Observe(time.Since(started).Seconds())
}
