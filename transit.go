package transit

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/aretw0/transit/internal/runtime"
	"github.com/aretw0/transit/pkg/domain"
	"github.com/aretw0/transit/pkg/ports"
	"github.com/google/uuid"
)

// Machine drives one target through its declared transitions.
// It wraps the internal runtime and keeps the target it was built around.
//
// A Machine is not safe for concurrent Step calls; callers sharing one must
// serialize access.
type Machine[T any] struct {
	target T
	engine *runtime.Engine
}

type config struct {
	declaration *domain.Declaration
	declarer    ports.Declarer
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	id          string
}

// Option defines a functional option for configuring a Machine.
type Option func(*config)

// WithDeclaration supplies the metadata of the target directly.
func WithDeclaration(decl domain.Declaration) Option {
	return func(c *config) {
		c.declaration = &decl
	}
}

// WithDeclarer supplies the metadata through a ports.Declarer, such as a
// dsl.Builder or a bound declaration file.
func WithDeclarer(d ports.Declarer) Option {
	return func(c *config) {
		c.declarer = d
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithID overrides the generated machine identifier.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// New resolves the metadata of target and returns a machine bound to it.
//
// The metadata comes from WithDeclaration, WithDeclarer, or the target itself
// when it implements ports.Declarer, in that order. Construction fails with a
// *domain.ConfigurationError when the metadata is missing or malformed, and
// with domain.ErrInvalidArgument when target is nil or not a pointer. The
// machine keeps the pointer, so Target always returns the instance it drives.
func New[T any](target T, opts ...Option) (*Machine[T], error) {
	if isNil(target) {
		return nil, fmt.Errorf("%w: target must not be nil", domain.ErrInvalidArgument)
	}
	if reflect.TypeOf(target).Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: target must be a pointer, got %T", domain.ErrInvalidArgument, target)
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	decl, err := cfg.resolveDeclaration(target)
	if err != nil {
		return nil, err
	}

	engine, err := runtime.NewEngine(decl,
		runtime.WithID(cfg.id),
		runtime.WithLogger(cfg.logger),
		runtime.WithLifecycleHooks(cfg.hooks),
	)
	if err != nil {
		return nil, err
	}

	return &Machine[T]{
		target: target,
		engine: engine,
	}, nil
}

// MustNew is like New but panics if the machine cannot be built.
func MustNew[T any](target T, opts ...Option) *Machine[T] {
	m, err := New(target, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

func (c *config) resolveDeclaration(target any) (domain.Declaration, error) {
	if c.declaration != nil {
		return *c.declaration, nil
	}

	declarer := c.declarer
	if declarer == nil {
		declarer, _ = target.(ports.Declarer)
	}
	if declarer == nil {
		return domain.Declaration{}, nil
	}

	decl, err := declarer.Declaration()
	if err != nil {
		return domain.Declaration{}, fmt.Errorf("failed to read declaration: %w", err)
	}
	return decl, nil
}

// Step performs a single transition on the target.
// It returns a *domain.UnknownStateError when the current state has no
// handler, and a *domain.TransitionExecutionError when the handler fails.
func (m *Machine[T]) Step(ctx context.Context) error {
	return m.engine.Step(ctx)
}

// Target returns the wrapped instance for external state inspection.
func (m *Machine[T]) Target() T {
	return m.target
}

// State returns the current state name as stored by the target.
func (m *Machine[T]) State() string {
	return m.engine.State()
}

// States returns the normalized names of every handled state.
func (m *Machine[T]) States() []string {
	return m.engine.States()
}

// ID returns the machine identifier used in logs and events.
func (m *Machine[T]) ID() string {
	return m.engine.ID()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
