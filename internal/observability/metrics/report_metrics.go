package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config carries the constant labels stamped on every metric.
type Config struct {
	ServiceName string
	Environment string
}

type ReportMetrics struct {
	buildDuration *prometheus.HistogramVec
	buildTotal    *prometheus.CounterVec
}

var (
	reportMetricsOnce sync.Once
	reportMetrics     *ReportMetrics
)

func Report() *ReportMetrics {
	return ReportWithConfig(Config{})
}

func ReportWithConfig(cfg Config) *ReportMetrics {
	reportMetricsOnce.Do(func() {
		reportMetrics = newReportMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return reportMetrics
}

func ResetReportMetricsForTest() {
	reportMetricsOnce = sync.Once{}
	reportMetrics = nil
}

func newReportMetrics(registerer prometheus.Registerer, cfg Config) *ReportMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "tradelog"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	buildDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "sales_report_build_duration_seconds",
			Help:        "Time spent building one sales snapshot, load included.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{"outcome"},
	)

	buildTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "sales_report_builds_total",
			Help:        "Sales snapshot builds by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"outcome"},
	)

	registerer.MustRegister(buildDuration, buildTotal)

	return &ReportMetrics{
		buildDuration: buildDuration,
		buildTotal:    buildTotal,
	}
}

// ObserveBuild records one snapshot build. Outcome is "ok" or "error".
func (m *ReportMetrics) ObserveBuild(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	m.buildTotal.WithLabelValues(outcome).Inc()
}
