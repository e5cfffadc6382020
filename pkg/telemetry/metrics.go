package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mouryagna/ML-Project/pkg/pipeline"
)

const namespace = "ingest"

// MetricsSink records stage durations, row counts and failures in its own
// registry. Batch runs export it with WriteTextfile.
type MetricsSink struct {
	registry *prometheus.Registry

	duration    *prometheus.GaugeVec
	rows        *prometheus.GaugeVec
	failures    *prometheus.CounterVec
	lastSuccess prometheus.Gauge
}

func NewMetricsSink() *MetricsSink {
	m := &MetricsSink{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of the last run of each stage.",
		}, []string{"stage"}),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_rows",
			Help:      "Rows handled by the last run of each stage.",
		}, []string{"stage"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Stage failures.",
		}, []string{"stage"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success",
			Help:      "1 if the last stage event was a success, 0 otherwise.",
		}),
	}
	m.registry.MustRegister(m.duration, m.rows, m.failures, m.lastSuccess)
	return m
}

func (m *MetricsSink) Emit(e pipeline.Event) {
	switch e.Status {
	case pipeline.Succeeded:
		m.duration.WithLabelValues(e.Stage).Set(e.Duration.Seconds())
		if e.Rows >= 0 {
			m.rows.WithLabelValues(e.Stage).Set(float64(e.Rows))
		}
		m.lastSuccess.Set(1)
	case pipeline.Failed:
		m.duration.WithLabelValues(e.Stage).Set(e.Duration.Seconds())
		m.failures.WithLabelValues(e.Stage).Inc()
		m.lastSuccess.Set(0)
	}
}

// Registry exposes the collectors, mainly for tests.
func (m *MetricsSink) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the metrics in the text exposition format for a
// node exporter textfile collector.
func (m *MetricsSink) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
