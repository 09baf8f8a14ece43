package domain

import (
	"sort"
	"strings"
)

// Handler computes the next state name of a target.
// It is bound to the target by closure and takes no arguments.
type Handler func() (string, error)

// TransitionDecl marks an operation of the target as a transition handler.
type TransitionDecl struct {
	// Method is the name of the operation. It is used as the state name
	// when State is empty.
	Method string `json:"method" yaml:"method"`

	// State is the optional explicit state name handled by this operation.
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	Handler Handler `json:"-" yaml:"-"`
}

// StateName returns the normalized key this declaration is stored under.
func (d TransitionDecl) StateName() string {
	name := d.State
	if name == "" {
		name = d.Method
	}
	return NormalizeState(name)
}

// NormalizeState lower-cases a state name for use as a Table key.
// It is applied when the table is built, never when the live state is read.
func NormalizeState(name string) string {
	return strings.ToLower(name)
}

// Table maps normalized state names to their handlers.
// It is built once per machine and never mutated afterwards.
type Table map[string]Handler

// Lookup returns the handler registered under the exact given name.
func (t Table) Lookup(state string) (Handler, bool) {
	h, ok := t[state]
	return h, ok
}

// States returns the table keys in lexical order.
func (t Table) States() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
