// Package metrics provides prometheus collectors for the certificate services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	watcherEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "watcher",
		Name:      "events_total",
		Help:      "Count of ledger events handled, by kind.",
	}, []string{"network", "kind", "status"})

	watcherHydrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "methcert",
		Subsystem: "watcher",
		Name:      "hydrations_total",
		Help:      "Count of document store hydrations for requested events.",
	}, []string{"network", "status"})

	watcherHydrationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "methcert",
		Subsystem: "watcher",
		Name:      "hydration_duration_seconds",
		Help:      "Duration of document store hydrations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Watcher tracks metrics for the ledger event watcher.
type Watcher struct {
	network string
}

// NewWatcher constructs a Watcher metrics collector.
func NewWatcher(network string) *Watcher {
	if network == "" {
		network = "unknown"
	}
	return &Watcher{network: network}
}

// ObserveEvent records one handled ledger event.
func (m Watcher) ObserveEvent(kind string, err error) {
	watcherEventsTotal.WithLabelValues(m.network, kind, status(err)).Inc()
}

// ObserveHydration records a hydration attempt outcome and duration.
func (m Watcher) ObserveHydration(err error, started time.Time) {
	watcherHydrationsTotal.WithLabelValues(m.network, status(err)).Inc()
	watcherHydrationDuration.WithLabelValues(m.network, status(err)).
		Observe(time.Since(started).Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
