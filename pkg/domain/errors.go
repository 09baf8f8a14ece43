package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a machine is constructed around a nil target.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrConfiguration matches every *ConfigurationError.
var ErrConfiguration = errors.New("configuration error")

// Kinds of configuration failure, reachable through errors.Is.
var (
	ErrNoTransitions    = errors.New("no transitions found")
	ErrHandlerNotFound  = errors.New("transition handler not found")
	ErrStateNotFound    = errors.New("state field not found")
	ErrAccessorNotFound = errors.New("accessor not found")
	ErrAccessorType     = errors.New("wrong accessor type")
)

// ErrUnknownState matches every *UnknownStateError.
var ErrUnknownState = errors.New("unknown state")

// ErrTransitionFailed matches every *TransitionExecutionError.
var ErrTransitionFailed = errors.New("transition failed")

// ConfigurationError reports missing or malformed metadata found while
// constructing a machine. The machine is never created when it is returned.
type ConfigurationError struct {
	Kind   error  // One of the ErrNoTransitions... sentinels
	Field  string // State field or method involved, if any
	Reason string // Human-readable reason
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s (%s)", e.Reason, e.Field)
}

func (e *ConfigurationError) Unwrap() error { return e.Kind }

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError builds a ConfigurationError of the given kind.
func NewConfigurationError(kind error, field, reason string) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Field: field, Reason: reason}
}

// UnknownStateError is returned by Step when the current state has no handler.
type UnknownStateError struct {
	State string
	Known []string
}

func (e *UnknownStateError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("no transition for state %q", e.State)
	}
	return fmt.Sprintf("no transition for state %q (known: %s)", e.State, strings.Join(e.Known, ", "))
}

func (e *UnknownStateError) Unwrap() error { return ErrUnknownState }

// TransitionExecutionError wraps a failure raised by a transition handler.
type TransitionExecutionError struct {
	State string
	Err   error
}

func (e *TransitionExecutionError) Error() string {
	return fmt.Sprintf("cannot perform transition %q: %v", e.State, e.Err)
}

func (e *TransitionExecutionError) Unwrap() []error {
	return []error{ErrTransitionFailed, e.Err}
}

// IsConfigurationError reports whether err contains a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IsUnknownStateError reports whether err contains an *UnknownStateError.
func IsUnknownStateError(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

// IsTransitionExecutionError reports whether err contains a *TransitionExecutionError.
func IsTransitionExecutionError(err error) bool {
	var e *TransitionExecutionError
	return errors.As(err, &e)
}
