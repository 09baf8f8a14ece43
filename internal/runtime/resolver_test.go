package runtime_test

import (
	"testing"

	"github.com/aretw0/transit/internal/runtime"
	"github.com/aretw0/transit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(next string) domain.Handler {
	return func() (string, error) { return next, nil }
}

func TestResolveTransitions_NormalizesNames(t *testing.T) {
	table, err := runtime.ResolveTransitions(domain.Declaration{
		Transitions: []domain.TransitionDecl{
			{Method: "Awake", Handler: constant("sleep")},
			{Method: "doze", State: "SLEEP", Handler: constant("awake")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"awake", "sleep"}, table.States())
	_, ok := table.Lookup("SLEEP")
	assert.False(t, ok, "lookup must not normalize")
	_, ok = table.Lookup("doze")
	assert.False(t, ok, "explicit state name replaces the method name")
}

func TestResolveTransitions_LastDeclarationWins(t *testing.T) {
	// Duplicates are not diagnosed: the later declaration silently replaces the earlier one.
	table, err := runtime.ResolveTransitions(domain.Declaration{
		Transitions: []domain.TransitionDecl{
			{Method: "run", Handler: constant("first")},
			{Method: "RUN", Handler: constant("second")},
		},
	})
	require.NoError(t, err)
	require.Len(t, table, 1)

	h, ok := table.Lookup("run")
	require.True(t, ok)
	next, err := h()
	require.NoError(t, err)
	assert.Equal(t, "second", next)
}

func TestResolveTransitions_Errors(t *testing.T) {
	tests := []struct {
		name string
		decl domain.Declaration
		kind error
		msg  string
	}{
		{
			name: "no transitions",
			decl: domain.Declaration{},
			kind: domain.ErrNoTransitions,
			msg:  "transitions",
		},
		{
			name: "unbound handler",
			decl: domain.Declaration{Transitions: []domain.TransitionDecl{{Method: "awake"}}},
			kind: domain.ErrHandlerNotFound,
			msg:  "handler",
		},
		{
			name: "nameless transition",
			decl: domain.Declaration{Transitions: []domain.TransitionDecl{{Handler: constant("x")}}},
			kind: domain.ErrHandlerNotFound,
			msg:  "transitions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runtime.ResolveTransitions(tt.decl)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestResolveStateAccessor(t *testing.T) {
	state := "sleep"
	get := func() string { return state }
	set := func(v string) { state = v }

	acc, err := runtime.ResolveStateAccessor(domain.Declaration{
		States: []domain.StateDecl{{Field: "state", Getter: get, Setter: set}},
	})
	require.NoError(t, err)

	assert.Equal(t, "sleep", acc.Get())
	acc.Set("awake")
	assert.Equal(t, "awake", state)
}

func TestResolveStateAccessor_FirstFieldWins(t *testing.T) {
	// Only the first declared field is used; the second one is ignored even
	// though it is the only well-formed declaration.
	_, err := runtime.ResolveStateAccessor(domain.Declaration{
		States: []domain.StateDecl{
			{Field: "phase"},
			{Field: "state", Getter: func() string { return "" }, Setter: func(string) {}},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessorNotFound)
	assert.Contains(t, err.Error(), "getPhase/setPhase")
}

type namedGetter func() string

type color string

func TestResolveStateAccessor_NamedTypes(t *testing.T) {
	state := "red"
	set := func(v string) { state = v }

	tests := []struct {
		name   string
		getter any
	}{
		{name: "named func type", getter: namedGetter(func() string { return state })},
		{name: "named result type", getter: func() color { return color(state) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state = "red"
			acc, err := runtime.ResolveStateAccessor(domain.Declaration{
				States: []domain.StateDecl{{Field: "color", Getter: tt.getter, Setter: set}},
			})
			require.NoError(t, err)
			assert.Equal(t, "red", acc.Get())
			acc.Set("green")
			assert.Equal(t, "green", acc.Get())
		})
	}
}

func TestResolveStateAccessor_Errors(t *testing.T) {
	var nilGetter func() string

	tests := []struct {
		name  string
		field domain.StateDecl
		none  bool
		kind  error
		msg   string
	}{
		{
			name: "no state field",
			none: true,
			kind: domain.ErrStateNotFound,
			msg:  "state",
		},
		{
			name:  "missing getter",
			field: domain.StateDecl{Field: "state", Setter: func(string) {}},
			kind:  domain.ErrAccessorNotFound,
			msg:   "getter/setter",
		},
		{
			name:  "missing setter",
			field: domain.StateDecl{Field: "state", Getter: func() string { return "" }},
			kind:  domain.ErrAccessorNotFound,
			msg:   "getter/setter",
		},
		{
			name:  "typed nil getter",
			field: domain.StateDecl{Field: "state", Getter: nilGetter, Setter: func(string) {}},
			kind:  domain.ErrAccessorNotFound,
			msg:   "getState/setState",
		},
		{
			name:  "typed nil named getter",
			field: domain.StateDecl{Field: "state", Getter: namedGetter(nil), Setter: func(string) {}},
			kind:  domain.ErrAccessorNotFound,
			msg:   "getState/setState",
		},
		{
			name:  "getter takes an argument",
			field: domain.StateDecl{Field: "state", Getter: func(int) string { return "" }, Setter: func(string) {}},
			kind:  domain.ErrAccessorType,
			msg:   "must return String",
		},
		{
			name:  "getter returns int",
			field: domain.StateDecl{Field: "state", Getter: func() int { return 0 }, Setter: func(string) {}},
			kind:  domain.ErrAccessorType,
			msg:   "must return String",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := domain.Declaration{}
			if !tt.none {
				decl.States = []domain.StateDecl{tt.field}
			}
			_, err := runtime.ResolveStateAccessor(decl)
			require.Error(t, err)
			assert.True(t, domain.IsConfigurationError(err))
			assert.ErrorIs(t, err, tt.kind)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
