package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/transit/internal/runtime"
	"github.com/aretw0/transit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sleeper is the two-state machine used across the engine tests.
type sleeper struct {
	state string
}

func (s *sleeper) declaration() domain.Declaration {
	return domain.Declaration{
		Transitions: []domain.TransitionDecl{
			{Method: "awake", Handler: func() (string, error) { return "sleep", nil }},
			{Method: "sleep", Handler: func() (string, error) { return "awake", nil }},
		},
		States: []domain.StateDecl{{
			Field:  "state",
			Getter: func() string { return s.state },
			Setter: func(v string) { s.state = v },
		}},
	}
}

func TestEngine_StepCycle(t *testing.T) {
	target := &sleeper{state: "sleep"}
	engine, err := runtime.NewEngine(target.declaration())
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, "sleep", engine.State())

	require.NoError(t, engine.Step(ctx))
	assert.Equal(t, "awake", target.state)

	require.NoError(t, engine.Step(ctx))
	assert.Equal(t, "sleep", target.state)
}

func TestEngine_UnknownStateLeavesStateUntouched(t *testing.T) {
	target := &sleeper{state: "dream"}
	engine, err := runtime.NewEngine(target.declaration())
	require.NoError(t, err)

	err = engine.Step(context.Background())
	require.Error(t, err)

	var unknown *domain.UnknownStateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "dream", unknown.State)
	assert.Equal(t, []string{"awake", "sleep"}, unknown.Known)
	assert.ErrorIs(t, err, domain.ErrUnknownState)
	assert.Equal(t, "dream", target.state)
}

func TestEngine_LookupIsCaseSensitive(t *testing.T) {
	target := &sleeper{state: "Sleep"}
	engine, err := runtime.NewEngine(target.declaration())
	require.NoError(t, err)

	err = engine.Step(context.Background())
	assert.True(t, domain.IsUnknownStateError(err))
	assert.Equal(t, "Sleep", target.state)
}

func TestEngine_NewStateIsNotValidated(t *testing.T) {
	state := "start"
	engine, err := runtime.NewEngine(domain.Declaration{
		Transitions: []domain.TransitionDecl{
			{Method: "start", Handler: func() (string, error) { return "nowhere", nil }},
		},
		States: []domain.StateDecl{{
			Field:  "state",
			Getter: func() string { return state },
			Setter: func(v string) { state = v },
		}},
	})
	require.NoError(t, err)

	require.NoError(t, engine.Step(context.Background()))
	assert.Equal(t, "nowhere", state)

	assert.True(t, domain.IsUnknownStateError(engine.Step(context.Background())))
}

func TestEngine_HandlerFailure(t *testing.T) {
	cause := errors.New("disk on fire")

	tests := []struct {
		name    string
		handler domain.Handler
		check   func(t *testing.T, err error)
	}{
		{
			name:    "returned error",
			handler: func() (string, error) { return "", cause },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, cause)
			},
		},
		{
			name:    "panic with error",
			handler: func() (string, error) { panic(cause) },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, cause)
				assert.Contains(t, err.Error(), "panicked")
			},
		},
		{
			name:    "panic with value",
			handler: func() (string, error) { panic("oops") },
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "oops")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := "work"
			engine, err := runtime.NewEngine(domain.Declaration{
				Transitions: []domain.TransitionDecl{{Method: "work", Handler: tt.handler}},
				States: []domain.StateDecl{{
					Field:  "state",
					Getter: func() string { return state },
					Setter: func(v string) { state = v },
				}},
			})
			require.NoError(t, err)

			err = engine.Step(context.Background())
			require.Error(t, err)

			var execErr *domain.TransitionExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, "work", execErr.State)
			assert.ErrorIs(t, err, domain.ErrTransitionFailed)
			assert.Equal(t, "work", state)
			tt.check(t, err)
		})
	}
}

func TestEngine_ResolvesTransitionsFirst(t *testing.T) {
	// With both pieces missing, the transitions failure is reported.
	_, err := runtime.NewEngine(domain.Declaration{})
	assert.ErrorIs(t, err, domain.ErrNoTransitions)
}
