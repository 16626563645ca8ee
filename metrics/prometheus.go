package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers gateway counters and latency
// histograms with the default registry. Counters are labeled by event
// type and the notification kind involved; latency by operation and
// HTTP status.
func NewPrometheusRecorder() Recorder {
	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gcheckout",
			Name:      "events_total",
			Help:      "gateway command and notification event counters",
		},
		[]string{"type", "kind"},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gcheckout",
			Name:      "latency_seconds",
			Help:      "gateway operation latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	prometheus.MustRegister(counters, histogram)

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"type": name,
		"kind": labels["kind"],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation": name,
		"status":    labels["status"],
	}).Observe(d.Seconds())
}
