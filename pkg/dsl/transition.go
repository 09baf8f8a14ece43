package dsl

import "github.com/aretw0/transit/pkg/domain"

// TransitionBuilder provides a fluent API for configuring one transition.
type TransitionBuilder struct {
	decl    domain.TransitionDecl
	builder *Builder
}

// As sets an explicit state name, used instead of the method name.
func (t *TransitionBuilder) As(state string) *TransitionBuilder {
	t.decl.State = state
	return t
}

// Transition starts the next transition on the parent builder.
func (t *TransitionBuilder) Transition(method string, fn domain.Handler) *TransitionBuilder {
	return t.builder.Transition(method, fn)
}

// TransitionFunc starts the next infallible transition on the parent builder.
func (t *TransitionBuilder) TransitionFunc(method string, fn func() string) *TransitionBuilder {
	return t.builder.TransitionFunc(method, fn)
}

// State declares the current-state field on the parent builder.
func (t *TransitionBuilder) State(field string, get any, set func(string)) *Builder {
	return t.builder.State(field, get, set)
}

// Builder returns the parent builder.
func (t *TransitionBuilder) Builder() *Builder {
	return t.builder
}
