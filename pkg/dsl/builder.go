package dsl

import (
	"github.com/aretw0/transit/pkg/domain"
)

// Builder collects the declaration of a target in discovery order.
// It implements ports.Declarer.
type Builder struct {
	transitions []*TransitionBuilder
	states      []domain.StateDecl
}

// New creates a new declaration builder.
func New() *Builder {
	return &Builder{}
}

// Transition marks a method as the handler of the state of the same name.
// Declaring the same normalized name twice keeps the last declaration.
func (b *Builder) Transition(method string, fn domain.Handler) *TransitionBuilder {
	tb := &TransitionBuilder{
		decl: domain.TransitionDecl{
			Method:  method,
			Handler: fn,
		},
		builder: b,
	}
	b.transitions = append(b.transitions, tb)
	return tb
}

// TransitionFunc is Transition for handlers that cannot fail.
func (b *Builder) TransitionFunc(method string, fn func() string) *TransitionBuilder {
	return b.Transition(method, Func(fn))
}

// State marks field as the current-state field, read by get and written by set.
// get is expected to be a func() string; other signatures are rejected when the
// machine is constructed. Only the first declared state field is used.
func (b *Builder) State(field string, get any, set func(string)) *Builder {
	b.states = append(b.states, domain.StateDecl{
		Field:  field,
		Getter: get,
		Setter: set,
	})
	return b
}

// Declaration returns the collected metadata.
func (b *Builder) Declaration() (domain.Declaration, error) {
	decl := domain.Declaration{
		Transitions: make([]domain.TransitionDecl, 0, len(b.transitions)),
		States:      append([]domain.StateDecl(nil), b.states...),
	}
	for _, tb := range b.transitions {
		decl.Transitions = append(decl.Transitions, tb.decl)
	}
	return decl, nil
}

// Func adapts an infallible function to a domain.Handler.
func Func(fn func() string) domain.Handler {
	if fn == nil {
		return nil
	}
	return func() (string, error) {
		return fn(), nil
	}
}
