package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(threshold int, openTimeout time.Duration) (*Breaker, *time.Time) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: threshold, OpenTimeout: openTimeout, HalfOpenProbes: 1})
	now := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreakerOpensAndRecovers(t *testing.T) {
	b, now := newTestBreaker(2, 10*time.Second)

	var transitions []string
	b.OnStateChange(func(from, to State) { transitions = append(transitions, string(from)+">"+string(to)) })

	require.NoError(t, b.Allow())
	b.Failure()
	assert.Equal(t, StateClosed, b.State())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	*now = now.Add(11 * time.Second)
	require.NoError(t, b.Allow(), "half-open probe should pass")
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen, "only one probe in flight")

	b.Success()
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, []string{"closed>open", "open>half_open", "half_open>closed"}, transitions)
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Second)

	b.Failure()
	*now = now.Add(2 * time.Second)
	require.NoError(t, b.Allow())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerDoCountsOnlySelectedErrors(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute)
	permanent := errors.New("bad request")
	transient := errors.New("upstream 503")
	isTransient := func(err error) bool { return errors.Is(err, transient) }

	err := b.Do(context.Background(), func(context.Context) error { return permanent }, isTransient)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, StateClosed, b.State())

	err = b.Do(context.Background(), func(context.Context) error { return transient }, isTransient)
	assert.ErrorIs(t, err, transient)
	assert.Equal(t, StateOpen, b.State())

	called := false
	err = b.Do(context.Background(), func(context.Context) error { called = true; return nil }, isTransient)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestDisabledBreakerAlwaysAllows(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		b.Failure()
	}
	assert.NoError(t, b.Allow())
	assert.Equal(t, StateClosed, b.State())
}
