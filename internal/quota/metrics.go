package quota

import "github.com/prometheus/client_golang/prometheus"

var (
	scanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "quotactl",
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Duration of full quota scans in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	regionsScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quotactl",
			Subsystem: "scan",
			Name:      "regions_scanned_total",
			Help:      "Total regions whose usage query succeeded",
		},
	)

	regionsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "quotactl",
			Subsystem: "scan",
			Name:      "regions_skipped_total",
			Help:      "Total regions skipped after a failed usage query",
		},
	)

	candidateRegions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "quotactl",
			Subsystem: "scan",
			Name:      "candidate_regions",
			Help:      "Candidate regions in the most recent scan",
		},
	)
)

func init() {
	prometheus.MustRegister(scanDuration, regionsScanned, regionsSkipped, candidateRegions)
}
