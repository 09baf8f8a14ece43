package ports

import "context"

// Stepper is the operational surface of a constructed machine.
// Implementations are not required to be safe for concurrent Step calls.
type Stepper interface {
	// Step performs a single transition.
	Step(ctx context.Context) error

	// State returns the current state name as stored by the target.
	State() string

	// States returns the normalized names of every handled state.
	States() []string
}
