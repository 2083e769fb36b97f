// Package sniffmetrics instruments detection calls with Prometheus
// counters: attempts, successes broken down by extension, and unknowns.
// It has no dependency on detect beyond the sniff.Result shape, so it can
// wrap any caller of sniff.DetectFrom*.
package sniffmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sniffgo/sniff"
)

// Collector holds the counters one instrumented detector shares across
// calls. The zero value is not usable; construct with NewCollector.
type Collector struct {
	attempts  prometheus.Counter
	successes *prometheus.CounterVec
	unknowns  prometheus.Counter
}

// NewCollector builds a Collector and registers its metrics against reg.
// Pass prometheus.DefaultRegisterer for the global registry, or a fresh
// prometheus.NewRegistry() in tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sniff",
			Name:      "detect_attempts_total",
			Help:      "Total number of format detection attempts.",
		}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sniff",
			Name:      "detect_success_total",
			Help:      "Total number of successful format detections, by extension.",
		}, []string{"ext"}),
		unknowns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sniff",
			Name:      "detect_unknown_total",
			Help:      "Total number of detection attempts that matched no signature.",
		}),
	}
	reg.MustRegister(c.attempts, c.successes, c.unknowns)
	return c
}

// Observe records the outcome of one detection call.
func (c *Collector) Observe(res sniff.Result, ok bool) {
	c.attempts.Inc()
	if !ok {
		c.unknowns.Inc()
		return
	}
	c.successes.WithLabelValues(res.Ext).Inc()
}
