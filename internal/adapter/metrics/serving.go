package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"adrotation/internal/core/port"
)

var _ port.ServeObserver = (*Serving)(nil)

// Serving records serve outcomes. Exhaustion by contention and the absence
// of eligible campaigns look the same to HTTP clients but are counted
// separately here.
type Serving struct {
	total    *prometheus.CounterVec
	attempts prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewServing registers the serving metrics with reg.
func NewServing(reg prometheus.Registerer) *Serving {
	s := &Serving{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adrotation",
				Name:      "serve_total",
				Help:      "Number of serve calls partitioned by outcome",
			},
			[]string{"outcome"},
		),
		attempts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "adrotation",
				Name:      "serve_attempts",
				Help:      "Consume attempts made by a single serve call",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
			},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "adrotation",
				Name:      "serve_duration_seconds",
				Help:      "Serve call latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(s.total, s.attempts, s.duration)
	for _, outcome := range []string{
		port.OutcomeServed,
		port.OutcomeNotFound,
		port.OutcomeExhausted,
		port.OutcomeTimeout,
		port.OutcomeStorageErr,
	} {
		s.total.WithLabelValues(outcome)
	}
	return s
}

// ObserveServe implements port.ServeObserver.
func (s *Serving) ObserveServe(outcome string, attempts int, elapsed time.Duration) {
	s.total.WithLabelValues(outcome).Inc()
	s.attempts.Observe(float64(attempts))
	s.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
