package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "archive_repository",
		Name:      "queries_total",
		Help:      "Count of archive repository queries.",
	}, []string{"operation", "status"})

	archiveQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "methcert",
		Subsystem: "archive_repository",
		Name:      "query_duration_seconds",
		Help:      "Duration of archive repository queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ArchiveRepository tracks metrics for clickhouse archive access.
type ArchiveRepository struct{}

// NewArchiveRepository constructs an ArchiveRepository metrics collector.
func NewArchiveRepository() *ArchiveRepository {
	return &ArchiveRepository{}
}

// Observe records one archive repository query.
func (m ArchiveRepository) Observe(operation string, err error, started time.Time) {
	archiveQueriesTotal.WithLabelValues(operation, status(err)).Inc()
	archiveQueryDuration.WithLabelValues(operation, status(err)).
		Observe(time.Since(started).Seconds())
}
