package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the assessment pipeline. Tracks
// decision counts by outcome and end-to-end assessment durations.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentDuration prometheus.Histogram
}

// New creates a Metrics instance with all assessment metrics registered
// on the default registry.
func New() *Metrics {
	return &Metrics{
		AssessmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_assessments_total",
			Help: "Total number of completed assessments by decision",
		}, []string{"decision"}),
		AssessmentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_assessment_duration_seconds",
			Help:    "Duration of the assess-application pipeline",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// RecordDecision counts one completed assessment.
func (m *Metrics) RecordDecision(decision string) {
	m.AssessmentsTotal.WithLabelValues(decision).Inc()
}

// ObserveAssessment records the pipeline duration. Call with
// time.Now() captured at the start of the operation.
func (m *Metrics) ObserveAssessment(start time.Time) {
	m.AssessmentDuration.Observe(time.Since(start).Seconds())
}
