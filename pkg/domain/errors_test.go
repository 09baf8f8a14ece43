package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/transit/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := domain.NewConfigurationError(domain.ErrAccessorNotFound, "getState/setState", "failed to find getter/setter for the state")

	assert.Equal(t, "configuration error: failed to find getter/setter for the state (getState/setState)", err.Error())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.ErrorIs(t, err, domain.ErrAccessorNotFound)
	assert.NotErrorIs(t, err, domain.ErrAccessorType)

	wrapped := fmt.Errorf("building machine: %w", err)
	assert.True(t, domain.IsConfigurationError(wrapped))
	assert.ErrorIs(t, wrapped, domain.ErrConfiguration)

	bare := domain.NewConfigurationError(domain.ErrNoTransitions, "", "failed to find transitions in declaration")
	assert.Equal(t, "configuration error: failed to find transitions in declaration", bare.Error())
}

func TestUnknownStateError(t *testing.T) {
	err := &domain.UnknownStateError{State: "limbo", Known: []string{"awake", "sleep"}}

	assert.Equal(t, `no transition for state "limbo" (known: awake, sleep)`, err.Error())
	assert.ErrorIs(t, err, domain.ErrUnknownState)
	assert.True(t, domain.IsUnknownStateError(err))
	assert.False(t, domain.IsConfigurationError(err))

	assert.Equal(t, `no transition for state ""`, (&domain.UnknownStateError{}).Error())
}

func TestTransitionExecutionError(t *testing.T) {
	cause := errors.New("boom")
	err := &domain.TransitionExecutionError{State: "work", Err: cause}

	assert.Equal(t, `cannot perform transition "work": boom`, err.Error())
	assert.ErrorIs(t, err, domain.ErrTransitionFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, domain.IsTransitionExecutionError(err))
	assert.False(t, domain.IsUnknownStateError(err))
}
