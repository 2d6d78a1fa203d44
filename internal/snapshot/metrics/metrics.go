package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the snapshot engine.
type Metrics struct {
	SnapshotBuilds    prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	FallbackSnapshots prometheus.Counter
	BuildDuration     prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		SnapshotBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentdeck_snapshot_builds_total",
			Help: "Total number of dashboard snapshot builds (cache misses that ran the producer)",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentdeck_snapshot_cache_hits_total",
			Help: "Total number of snapshot requests served from the cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentdeck_snapshot_cache_misses_total",
			Help: "Total number of snapshot requests that missed the cache",
		}),
		FallbackSnapshots: promauto.NewCounter(prometheus.CounterOpts{
			Name: "talentdeck_snapshot_fallbacks_total",
			Help: "Total number of snapshots built from network-wide data because no workspace-scoped applications existed",
		}),
		BuildDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "talentdeck_snapshot_build_duration_seconds",
			Help:    "Duration of dashboard snapshot builds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncrementBuilds() {
	m.SnapshotBuilds.Inc()
}

func (m *Metrics) IncrementCacheHit() {
	m.CacheHits.Inc()
}

func (m *Metrics) IncrementCacheMiss() {
	m.CacheMisses.Inc()
}

func (m *Metrics) IncrementFallback() {
	m.FallbackSnapshots.Inc()
}

func (m *Metrics) ObserveBuild(start time.Time) {
	m.BuildDuration.Observe(time.Since(start).Seconds())
}
