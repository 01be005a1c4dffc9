package resilience

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream failed")

func fail(context.Context) (int, error) { return 0, errUpstream }
func succeed(context.Context) (int, error) { return 1, nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewBreaker("test", 3, time.Minute)
	for range 3 {
		_, err := Guard(context.Background(), b, nil, fail)
		require.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, StateOpen, b.State())

	_, err := Guard(context.Background(), b, nil, succeed)
	assert.ErrorIs(t, err, ErrBreakerOpen)
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b := NewBreaker("test", 2, time.Minute)
	_, _ = Guard(context.Background(), b, nil, fail)
	_, _ = Guard(context.Background(), b, nil, succeed)
	_, _ = Guard(context.Background(), b, nil, fail)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_IgnoresUncountedErrors(t *testing.T) {
	b := NewBreaker("test", 1, time.Minute)
	never := func(error) bool { return false }
	_, err := Guard(context.Background(), b, never, fail)
	require.Error(t, err)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	now := time.Now()
	b := NewBreaker("test", 1, 10*time.Second)
	b.now = func() time.Time { return now }

	_, _ = Guard(context.Background(), b, nil, fail)
	assert.Equal(t, StateOpen, b.State())

	now = now.Add(11 * time.Second)
	assert.Equal(t, StateHalfOpen, b.State())

	val, err := Guard(context.Background(), b, nil, succeed)
	require.NoError(t, err)
	assert.Equal(t, 1, val)
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Now()
	b := NewBreaker("test", 1, 10*time.Second)
	b.now = func() time.Time { return now }

	_, _ = Guard(context.Background(), b, nil, fail)
	now = now.Add(11 * time.Second)
	_, err := Guard(context.Background(), b, nil, fail)
	require.ErrorIs(t, err, errUpstream)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_Defaults(t *testing.T) {
	b := NewBreaker("test", 0, 0)
	assert.Equal(t, 5, b.threshold)
	assert.Equal(t, 30*time.Second, b.resetTimeout)
}

func TestBreaker_ConcurrentAccess(t *testing.T) {
	b := NewBreaker("test", 1000, time.Minute)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = Guard(context.Background(), b, nil, fail)
			} else {
				_, _ = Guard(context.Background(), b, nil, succeed)
			}
		}()
	}
	wg.Wait()
	assert.NotEqual(t, StateHalfOpen, b.State())
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}
