package diagnostics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink counts events in prometheus collectors
type MetricsSink struct {
	requests   prometheus.Counter
	outcomes   *prometheus.CounterVec
	textLength prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetricsSink creates the collectors and registers them with registerer.
// A nil registerer leaves them unregistered.
func NewMetricsSink(registerer prometheus.Registerer) *MetricsSink {
	s := &MetricsSink{
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "insight_analysis_requests_total",
			Help: "Total number of analysis requests received",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "insight_analysis_outcomes_total",
			Help: "Analysis requests by outcome",
		}, []string{"outcome"}),
		textLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "insight_analysis_text_length_chars",
			Help:    "Length in characters of submitted texts",
			Buckets: []float64{10, 50, 100, 500, 1000, 2500, 5000, 10000},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "insight_analysis_duration_seconds",
			Help:    "Time spent analyzing a text",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	if registerer != nil {
		registerer.MustRegister(s.requests, s.outcomes, s.textLength, s.duration)
	}

	return s
}

func (s *MetricsSink) Record(_ context.Context, event Event) {
	switch event.Type {
	case EventReceived:
		s.requests.Inc()
		s.textLength.Observe(float64(event.TextLength))
	case EventCompleted:
		s.outcomes.WithLabelValues(event.Kind.String()).Inc()
		s.duration.Observe(event.Duration.Seconds())
	case EventRejected, EventFailed:
		s.outcomes.WithLabelValues(event.Kind.String()).Inc()
	}
}
