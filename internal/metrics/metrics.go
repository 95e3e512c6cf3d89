package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Download metrics
var (
	DownloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batchfetch_downloads_total",
			Help: "Total number of URL list entries processed, by outcome.",
		},
		[]string{"status"},
	)

	DownloadedBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "batchfetch_downloaded_bytes_total",
			Help: "Total number of bytes written to disk.",
		},
	)

	DownloadDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batchfetch_download_duration_seconds",
			Help:    "Time spent on a single download attempt, successful or not.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)

	LastRunTimestampSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "batchfetch_last_run_timestamp_seconds",
			Help: "Unix time at which the last batch run finished.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		DownloadsTotal,
		DownloadedBytesTotal,
		DownloadDurationSeconds,
		LastRunTimestampSeconds,
	)
}
