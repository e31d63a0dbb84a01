package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/chainwatch7000-backend/internal/model"
)

var (
	monitorAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "append_total",
		Help:      "Count of block append attempts.",
	}, []string{"run", "status"})

	monitorAppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "append_duration_seconds",
		Help:      "Duration of appending one block to the chain.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"run", "status"})

	monitorEvaluateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "evaluate_duration_seconds",
		Help:      "Duration of running both detectors over one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"run"})

	monitorAnomalyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "statistical_anomaly_total",
		Help:      "Count of blocks flagged by the statistical detector.",
	}, []string{"run"})

	monitorRuleViolationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "rule_violation_total",
		Help:      "Count of policy rule violations, by rule.",
	}, []string{"run", "rule"})

	monitorChainValid = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainwatch7000",
		Subsystem: "monitor",
		Name:      "chain_valid",
		Help:      "Result of the last chain integrity scan (1 valid, 0 tampered).",
	}, []string{"run"})
)

// Monitor records pipeline metrics for one run.
type Monitor struct {
	run string
}

// NewMonitor builds a metrics recorder labeled with the run name.
func NewMonitor(run string) *Monitor {
	if run == "" {
		run = "default"
	}
	return &Monitor{run: run}
}

func (m Monitor) ObserveAppend(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	monitorAppendTotal.WithLabelValues(m.run, status).Inc()
	monitorAppendDuration.WithLabelValues(m.run, status).Observe(time.Since(started).Seconds())
}

func (m Monitor) ObserveEvaluate(det model.Detection, report model.RuleReport, started time.Time) {
	monitorEvaluateDuration.WithLabelValues(m.run).Observe(time.Since(started).Seconds())
	if det.IsAnomaly {
		monitorAnomalyTotal.WithLabelValues(m.run).Inc()
	}
	for _, v := range report.Violations {
		monitorRuleViolationTotal.WithLabelValues(m.run, v.Rule).Inc()
	}
}

func (m Monitor) ObserveChainValidity(valid bool) {
	value := 0.0
	if valid {
		value = 1.0
	}
	monitorChainValid.WithLabelValues(m.run).Set(value)
}
