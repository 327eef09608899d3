package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded by ContactMetrics.
const (
	OutcomeAccepted  = "accepted"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// ContactMetrics exposes counters for the contact form.
type ContactMetrics struct {
	submissions   *prometheus.CounterVec
	submitLatency *prometheus.HistogramVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ynot",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by channel and outcome",
		}, []string{"channel", "outcome"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ynot",
			Subsystem: "contact",
			Name:      "submit_duration_seconds",
			Help:      "Time spent handing a valid submission to the submitter",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.submitLatency)
	return m
}

func (m *ContactMetrics) ObserveSubmission(channel, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(channel, outcome).Inc()
}

func (m *ContactMetrics) ObserveSubmitLatency(mode string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(mode).Observe(seconds)
}
