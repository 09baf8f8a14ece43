/*
Package transit turns an arbitrary value into a finite-state machine.

The value (the "target") is not required to implement any interface. Instead,
metadata is attached to it: which operation handles which named state, and which
getter/setter pair holds the current state name. The metadata is resolved once,
when the Machine is built, and every call to Step then performs one transition:
read the current state, invoke its handler, store the returned name.

# Declaring a target

Metadata is declared with the dsl builder, loaded from a declaration file
(pkg/adapters/file) bound to a registry of named operations (pkg/registry), or
supplied by the target itself through ports.Declarer.

	type Sleeper struct{ state string }

	func (s *Sleeper) Declaration() (domain.Declaration, error) {
		return dsl.New().
			TransitionFunc("awake", func() string { return "sleep" }).
			TransitionFunc("sleep", func() string { return "awake" }).
			State("state", func() string { return s.state }, func(v string) { s.state = v }).
			Declaration()
	}

	m, err := transit.New(&Sleeper{state: "sleep"})
	if err != nil {
		log.Fatal(err)
	}
	_ = m.Step(ctx) // "sleep" -> "awake"

# Names

Handler names are lower-cased when the table is built. The current state read
from the target is looked up as-is, so a target storing "Sleep" has no handler
even though "sleep" is declared. When two handlers normalize to the same name
the later declaration wins, and only the first declared state field is used.

# Errors

Construction fails with *domain.ConfigurationError (see domain.ErrNoTransitions
and friends). Step fails with *domain.UnknownStateError or
*domain.TransitionExecutionError; the stored state is left untouched in both
cases. Nothing is retried.
*/
package transit
