package usecase

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/router"
)

// agentMetrics holds Prometheus metrics for agent runs.
type agentMetrics struct {
	runsTotal    *prometheus.CounterVec   // By intent
	emailsTotal  *prometheus.CounterVec   // By status (skipped/no_recipient/sent/failed)
	errorsTotal  *prometheus.CounterVec   // By step
	stepDuration *prometheus.HistogramVec // By step
}

// newAgentMetrics creates and registers agent metrics. A nil registerer disables metrics.
func newAgentMetrics(reg prometheus.Registerer) (*agentMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &agentMetrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Total number of routed prompts",
		}, []string{"intent"}),

		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "emails_total",
			Help:      "Outcome of the email step",
		}, []string{"status"}),

		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "errors_total",
			Help:      "Total number of failed pipeline steps",
		}, []string{"step"}),

		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Pipeline step duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"step"}),
	}

	var err error
	if m.runsTotal, err = register(reg, m.runsTotal); err != nil {
		return nil, err
	}
	if m.emailsTotal, err = register(reg, m.emailsTotal); err != nil {
		return nil, err
	}
	if m.errorsTotal, err = register(reg, m.errorsTotal); err != nil {
		return nil, err
	}
	if m.stepDuration, err = register(reg, m.stepDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the collector already registered under the same name if any.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *agentMetrics) observeStep(step string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.stepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errorsTotal.WithLabelValues(step).Inc()
	}
}

func (m *agentMetrics) recordRun(intent router.Intent) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(string(intent)).Inc()
}

func (m *agentMetrics) recordEmail(status agent.EmailStatus) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(string(status)).Inc()
}
