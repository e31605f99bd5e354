package retry_test

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texttools/internal/resilience/retry"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}
}

func TestWithBackoff_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return &retry.HTTPError{StatusCode: 503, Message: "unavailable"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_ExhaustsAttempts(t *testing.T) {
	calls := 0
	upstreamErr := &retry.HTTPError{StatusCode: 500, Message: "boom"}
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return upstreamErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, upstreamErr)
	assert.Contains(t, err.Error(), "max retry attempts")
}

func TestWithBackoff_NonRetryableAbortsImmediately(t *testing.T) {
	calls := 0
	badRequest := &retry.HTTPError{StatusCode: 400, Message: "bad input"}
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return badRequest
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, badRequest)
}

func TestWithBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastConfig()
	cfg.InitialDelay = time.Second

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- retry.WithBackoff(ctx, cfg, func() error {
			calls++
			return &retry.HTTPError{StatusCode: 503, Message: "unavailable"}
		})
	}()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not abort on context cancellation")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"http 500", &retry.HTTPError{StatusCode: 500}, true},
		{"http 503", &retry.HTTPError{StatusCode: 503}, true},
		{"http 429", &retry.HTTPError{StatusCode: 429}, true},
		{"http 408", &retry.HTTPError{StatusCode: 408}, true},
		{"http 400", &retry.HTTPError{StatusCode: 400}, false},
		{"http 404", &retry.HTTPError{StatusCode: 404}, false},
		{"plain error", errors.New("nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retry.IsRetryable(tt.err))
		})
	}
}

func TestHTTPError_Message(t *testing.T) {
	err := &retry.HTTPError{StatusCode: 502, Message: "bad gateway"}
	assert.Equal(t, "HTTP 502: bad gateway", err.Error())
}
