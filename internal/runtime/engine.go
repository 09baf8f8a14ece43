package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/transit/internal/logging"
	"github.com/aretw0/transit/pkg/domain"
)

// Engine executes single-step transitions over one resolved declaration.
//
// Step is not safe for concurrent use: the read-invoke-write sequence is not
// atomic and callers sharing an Engine must serialize access themselves.
type Engine struct {
	id     string
	table  domain.Table
	state  domain.Accessor
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithID sets the identifier reported in logs and events.
func WithID(id string) EngineOption {
	return func(e *Engine) {
		e.id = id
	}
}

// NewEngine resolves decl and returns an engine bound to it.
// Transitions are resolved before the state accessor.
func NewEngine(decl domain.Declaration, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	table, err := ResolveTransitions(decl)
	if err != nil {
		return nil, err
	}
	accessor, err := ResolveStateAccessor(decl)
	if err != nil {
		return nil, err
	}

	e.table = table
	e.state = accessor
	e.logger = e.logger.With("machine", e.id)
	e.logger.Debug("machine resolved", "states", len(table))
	return e, nil
}

// Step performs one transition: it reads the current state, invokes the
// matching handler and stores the returned name as the new state.
//
// The state read from the target is used as-is for the lookup. Only table keys
// are normalized, so a stored "Sleep" does not match the "sleep" handler.
// The context is handed to hooks and the logger; handlers are not cancelled.
func (e *Engine) Step(ctx context.Context) error {
	from := e.state.Get()
	event := domain.StepEvent{
		Timestamp: time.Now(),
		Type:      domain.EventStepStart,
		MachineID: e.id,
		From:      from,
	}
	started := event
	e.emit(ctx, e.hooks.OnStepStart, &started)

	handler, ok := e.table.Lookup(from)
	if !ok {
		err := &domain.UnknownStateError{State: from, Known: e.table.States()}
		e.logger.WarnContext(ctx, "unknown state", "from", from)
		return e.fail(ctx, event, err)
	}

	start := time.Now()
	next, err := invoke(handler)
	event.Duration = time.Since(start)
	if err != nil {
		e.logger.ErrorContext(ctx, "transition failed", "from", from, "error", err)
		return e.fail(ctx, event, &domain.TransitionExecutionError{State: from, Err: err})
	}

	e.state.Set(next)

	end := event
	end.Type = domain.EventStepEnd
	end.To = next
	e.logger.DebugContext(ctx, "transition", "from", from, "to", next, "duration", end.Duration)
	e.emit(ctx, e.hooks.OnStepEnd, &end)
	return nil
}

// State returns the current state name as stored by the target.
func (e *Engine) State() string {
	return e.state.Get()
}

// States returns the normalized names of every handled state.
func (e *Engine) States() []string {
	return e.table.States()
}

// ID returns the engine identifier.
func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) fail(ctx context.Context, event domain.StepEvent, err error) error {
	failed := event
	failed.Type = domain.EventStepError
	failed.Err = err
	e.emit(ctx, e.hooks.OnStepError, &failed)
	return err
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.StepEvent), event *domain.StepEvent) {
	if hook != nil {
		hook(ctx, event)
	}
}

// invoke runs a handler, turning a panic into an error.
func invoke(h domain.Handler) (next string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("handler panicked: %w", rerr)
				return
			}
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h()
}
