package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Pipeline metrics
	pipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"series"},
	)

	pipelinePoints = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signal_pipeline_points",
			Help:    "Distribution of input series lengths",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		},
		[]string{"series"},
	)

	// Signal metrics
	lastSignalValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_pipeline_last_signal_value",
			Help: "Aggregated signal value of the latest point",
		},
		[]string{"series"},
	)

	crisisTaggedPoints = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_pipeline_crisis_tagged_points",
			Help: "Number of points tagged with a crisis event in the last run",
		},
		[]string{"series"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_pipeline_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(pipelineRunsTotal)
	prometheus.MustRegister(pipelinePoints)
	prometheus.MustRegister(lastSignalValue)
	prometheus.MustRegister(crisisTaggedPoints)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordPipelineRun records a completed pipeline run over a series
func RecordPipelineRun(series string, points int) {
	pipelineRunsTotal.WithLabelValues(series).Inc()
	pipelinePoints.WithLabelValues(series).Observe(float64(points))
}

// UpdateSignal updates the latest aggregated signal value metric
func UpdateSignal(series string, value float64) {
	lastSignalValue.WithLabelValues(series).Set(value)
}

// UpdateCrisisTagged updates the crisis-tagged point count metric
func UpdateCrisisTagged(series string, count int) {
	crisisTaggedPoints.WithLabelValues(series).Set(float64(count))
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
