/*
Package dsl provides a fluent builder for declaring how a target is driven as a state machine.

Instead of annotating fields and methods, the caller lists the transition
handlers of the target and the accessors of its current-state field. The
builder is then handed to transit.New.

Example usage:

	type Sleeper struct{ state string }

	func (s *Sleeper) Awake() string     { return "sleep" }
	func (s *Sleeper) Sleep() string     { return "awake" }
	func (s *Sleeper) GetState() string  { return s.state }
	func (s *Sleeper) SetState(v string) { s.state = v }

	s := &Sleeper{state: "sleep"}
	decl := dsl.New().
		TransitionFunc("awake", s.Awake).
		TransitionFunc("sleep", s.Sleep).
		State("state", s.GetState, s.SetState)

	m, err := transit.New(s, transit.WithDeclarer(decl))
*/
package dsl
