package selftest

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts self-test samples and failures.
type Metrics struct {
	Samples  *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the self-test collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	labels := []string{"curve", "modulus", "check"}
	m := &Metrics{
		Samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eccore",
			Subsystem: "selftest",
			Name:      "samples_total",
			Help:      "Inputs checked by the self-test.",
		}, labels),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eccore",
			Subsystem: "selftest",
			Name:      "failures_total",
			Help:      "Inputs for which a self-test check failed.",
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "eccore",
			Subsystem: "selftest",
			Name:      "check_duration_seconds",
			Help:      "Wall time of one self-test check over all its samples.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, labels),
	}
	if reg != nil {
		reg.MustRegister(m.Samples, m.Failures, m.Duration)
	}
	return m
}
