package observability

import (
	"context"
	"errors"

	"github.com/aretw0/transit/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records step outcomes as Prometheus series.
//
// State labels come from the machine's transition table, with two exceptions.
// A step that fails on an unhandled state is counted under UnknownStateLabel.
// The "to" label of steps_total is whatever the handler returned, so handlers
// returning unbounded names produce unbounded series.
type Metrics struct {
	Steps    *prometheus.CounterVec
	Errors   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates unregistered collectors under the given namespace
// (empty means "transit").
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "transit"
	}
	return &Metrics{
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Total number of completed transitions",
			},
			[]string{"from", "to"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "step_errors_total",
				Help:      "Total number of failed steps by kind",
			},
			[]string{"state", "kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "handler_duration_seconds",
				Help:      "Duration of transition handlers",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"state"},
		),
	}
}

// Register adds the collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Steps, m.Errors, m.Duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is Register that panics on failure.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.Steps, m.Errors, m.Duration)
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnd: func(_ context.Context, e *domain.StepEvent) {
			m.Steps.WithLabelValues(e.From, e.To).Inc()
			m.Duration.WithLabelValues(e.From).Observe(e.Duration.Seconds())
		},
		OnStepError: func(_ context.Context, e *domain.StepEvent) {
			kind := ErrorKind(e.Err)
			state := e.From
			if kind == KindUnknownState {
				state = UnknownStateLabel
			}
			m.Errors.WithLabelValues(state, kind).Inc()
			if kind == KindTransition {
				m.Duration.WithLabelValues(e.From).Observe(e.Duration.Seconds())
			}
		},
	}
}

// UnknownStateLabel replaces the state label of steps failing on an
// unhandled state.
const UnknownStateLabel = "unknown"

// Error kinds used as label values.
const (
	KindUnknownState = "unknown_state"
	KindTransition   = "transition"
	KindOther        = "other"
)

// ErrorKind classifies a step error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownState):
		return KindUnknownState
	case errors.Is(err, domain.ErrTransitionFailed):
		return KindTransition
	}
	return KindOther
}
