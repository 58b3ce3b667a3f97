package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendererJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "renderer",
		Name:      "jobs_total",
		Help:      "Count of certificate render jobs.",
	}, []string{"operation", "status"})

	rendererJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "methcert",
		Subsystem: "renderer",
		Name:      "job_duration_seconds",
		Help:      "Duration of certificate render jobs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Renderer tracks metrics for document rendering and storage.
type Renderer struct{}

// NewRenderer constructs a Renderer metrics collector.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Observe records one render or store job.
func (m Renderer) Observe(operation string, err error, started time.Time) {
	rendererJobsTotal.WithLabelValues(operation, status(err)).Inc()
	rendererJobDuration.WithLabelValues(operation, status(err)).
		Observe(time.Since(started).Seconds())
}
