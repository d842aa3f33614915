// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrainingFilesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_files_loaded_total",
			Help: "Total number of admission data files loaded",
		},
		[]string{"format"},
	)

	TrainingFilesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_files_failed_total",
			Help: "Total number of admission data files that failed to parse",
		},
		[]string{"format"},
	)

	TrainingRecordsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "training_records_ingested_total",
			Help: "Total number of admission records folded into the model",
		},
	)

	TrainingRecordsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "training_records_skipped_total",
			Help: "Total number of admission records rejected during ingestion",
		},
	)

	CollegeMappingsCreated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "training_college_mappings_created",
			Help: "Number of fuzzy college mappings in the last training run",
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommend_request_duration_seconds",
			Help: "Duration of recommendation request handling in seconds",
		},
	)

	RecommendCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_requests_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)
)
