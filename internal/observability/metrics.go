package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scoring service.
type Metrics struct {
	PredictionsTotal prometheus.Counter
	PredictionErrors *prometheus.CounterVec // label: category={malformed_input,unknown_category,missing_meteorology,model_inference}
	ScoresByBucket   *prometheus.CounterVec // label: bucket={Low,Medium,High,Extreme}
	ModelLatency     prometheus.Histogram

	// Feature pipeline metrics.
	IndicesEstimated prometheus.Counter
	IndicesSupplied  prometheus.Counter

	// Results sink metrics.
	ResultsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	SinkEnabled      prometheus.Gauge
}

// NewMetrics creates and registers all scoring metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PredictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "predictions_total",
			Help:      "Total successful scoring requests.",
		}),
		PredictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "prediction_errors_total",
			Help:      "Scoring failures by error category.",
		}, []string{"category"}),
		ScoresByBucket: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "scores_by_bucket_total",
			Help:      "Successful predictions by resulting risk bucket.",
		}, []string{"bucket"}),
		ModelLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fire_risk",
			Name:      "model_latency_seconds",
			Help:      "Duration of external model predict calls.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		IndicesEstimated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "indices_estimated_total",
			Help:      "Requests where FFMC/DMC/DC/ISI were derived from weather inputs.",
		}),
		IndicesSupplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "indices_supplied_total",
			Help:      "Requests where all four indices were supplied by the caller.",
		}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "results_published_total",
			Help:      "Scored results published to the results topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fire_risk",
			Name:      "publish_errors_total",
			Help:      "Failures publishing scored results.",
		}),
		SinkEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fire_risk",
			Name:      "results_sink_enabled",
			Help:      "1 when the Kafka results sink is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.PredictionsTotal,
		m.PredictionErrors,
		m.ScoresByBucket,
		m.ModelLatency,
		m.IndicesEstimated,
		m.IndicesSupplied,
		m.ResultsPublished,
		m.PublishErrors,
		m.SinkEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PredictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_risk", Name: "predictions_total"}),
		PredictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_risk", Name: "prediction_errors_total"}, []string{"category"}),
		ScoresByBucket:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "fire_risk", Name: "scores_by_bucket_total"}, []string{"bucket"}),
		ModelLatency:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fire_risk", Name: "model_latency_seconds"}),
		IndicesEstimated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_risk", Name: "indices_estimated_total"}),
		IndicesSupplied:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_risk", Name: "indices_supplied_total"}),
		ResultsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_risk", Name: "results_published_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fire_risk", Name: "publish_errors_total"}),
		SinkEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "fire_risk", Name: "results_sink_enabled"}),
	}
}
