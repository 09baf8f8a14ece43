package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStepStart EventType = "step_start"
	EventStepEnd   EventType = "step_end"
	EventStepError EventType = "step_error"
)

// StepEvent describes one invocation of Step.
// To is empty until the handler returned; Duration covers the handler only.
type StepEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	MachineID string        `json:"machine_id"`
	From      string        `json:"from"`
	To        string        `json:"to,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for machine observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnStepStart func(context.Context, *StepEvent)
	OnStepEnd   func(context.Context, *StepEvent)
	OnStepError func(context.Context, *StepEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStepStart: chain(h.OnStepStart, other.OnStepStart),
		OnStepEnd:   chain(h.OnStepEnd, other.OnStepEnd),
		OnStepError: chain(h.OnStepError, other.OnStepError),
	}
}

func chain(a, b func(context.Context, *StepEvent)) func(context.Context, *StepEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *StepEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
