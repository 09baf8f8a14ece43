package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/transit"
	"github.com/aretw0/transit/pkg/domain"
	"github.com/aretw0/transit/pkg/dsl"
	"github.com/aretw0/transit/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(t *testing.T, state *string, hooks domain.LifecycleHooks) *transit.Machine[*string] {
	t.Helper()
	b := dsl.New().
		TransitionFunc("sleep", func() string { return "awake" }).
		TransitionFunc("awake", func() string { return "sleep" }).
		Transition("broken", func() (string, error) { return "", errors.New("nope") }).
		State("state", func() string { return *state }, func(v string) { *state = v })

	m, err := transit.New(state, transit.WithDeclarer(b), transit.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	return m
}

func TestMetrics_Hooks(t *testing.T) {
	metrics := observability.NewMetrics("")
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	state := "sleep"
	m := newMachine(t, &state, metrics.Hooks())
	ctx := context.Background()

	require.NoError(t, m.Step(ctx))
	require.NoError(t, m.Step(ctx))
	require.NoError(t, m.Step(ctx))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Steps.WithLabelValues("sleep", "awake")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Steps.WithLabelValues("awake", "sleep")))

	state = "limbo"
	require.Error(t, m.Step(ctx))
	state = "broken"
	require.Error(t, m.Step(ctx))

	state = "nowhere"
	require.Error(t, m.Step(ctx))

	// unhandled states share one series
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Errors.WithLabelValues(observability.UnknownStateLabel, observability.KindUnknownState)))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.Errors))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Errors.WithLabelValues("broken", observability.KindTransition)))

	// sleep, awake and broken each observed handler durations
	assert.Equal(t, 3, testutil.CollectAndCount(metrics.Duration))
}

func TestMetrics_RegisterTwiceFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, observability.NewMetrics("app").Register(reg))
	assert.Error(t, observability.NewMetrics("app").Register(reg))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, observability.KindUnknownState, observability.ErrorKind(&domain.UnknownStateError{State: "x"}))
	assert.Equal(t, observability.KindTransition, observability.ErrorKind(&domain.TransitionExecutionError{State: "x", Err: errors.New("e")}))
	assert.Equal(t, observability.KindOther, observability.ErrorKind(errors.New("e")))
}

func TestLogHooks_MergedWithMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	metrics := observability.NewMetrics("merged")

	state := "sleep"
	m := newMachine(t, &state, observability.LogHooks(logger).Merge(metrics.Hooks()))

	require.NoError(t, m.Step(context.Background()))
	assert.Contains(t, buf.String(), "from=sleep")
	assert.Contains(t, buf.String(), "to=awake")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Steps.WithLabelValues("sleep", "awake")))

	state = "limbo"
	require.Error(t, m.Step(context.Background()))
	assert.Contains(t, buf.String(), "step failed")
}
