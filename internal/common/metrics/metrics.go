// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics collects per-run counters on a private registry so that a
// one-shot run can dump them for the node_exporter textfile collector.
type RunMetrics struct {
	Registry *prometheus.Registry

	RecordsLoaded *prometheus.GaugeVec
	RunDuration   prometheus.Gauge
	RunSuccess    prometheus.Gauge
	LastRun       prometheus.Gauge
	RunFailures   *prometheus.CounterVec
}

func New() *RunMetrics {
	reg := prometheus.NewRegistry()

	m := &RunMetrics{
		Registry: reg,
		RecordsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hierarchy_records_loaded",
				Help: "Number of records loaded per administrative collection",
			},
			[]string{"collection"},
		),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hierarchy_run_duration_seconds",
			Help: "Wall time of the last consolidation run",
		}),
		RunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hierarchy_run_success",
			Help: "1 if the last consolidation run succeeded, 0 otherwise",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hierarchy_last_run_timestamp_seconds",
			Help: "Unix time the last consolidation run finished",
		}),
		RunFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hierarchy_run_failures_total",
				Help: "Failed consolidation runs by error code",
			},
			[]string{"error_code"},
		),
	}

	reg.MustRegister(m.RecordsLoaded, m.RunDuration, m.RunSuccess, m.LastRun, m.RunFailures)
	return m
}

func (m *RunMetrics) RecordLoaded(collection string, count int) {
	m.RecordsLoaded.WithLabelValues(collection).Set(float64(count))
}

// Finish records the outcome of a run. errorCode is empty on success.
func (m *RunMetrics) Finish(started time.Time, errorCode string) {
	m.RunDuration.Set(time.Since(started).Seconds())
	m.LastRun.SetToCurrentTime()
	if errorCode == "" {
		m.RunSuccess.Set(1)
		return
	}
	m.RunSuccess.Set(0)
	m.RunFailures.WithLabelValues(errorCode).Inc()
}

// WriteTextfile dumps the registry in the text exposition format.
// An empty path disables the dump.
func (m *RunMetrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
