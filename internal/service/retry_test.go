package service

import (
	"context"
	"testing"
	"time"

	"dispute-resolution-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_TransientRetriedUpToAttempts(t *testing.T) {
	p := newRetryPolicy(3, time.Millisecond, zerolog.Nop())

	calls := 0
	err := p.do(context.Background(), "op", func() error {
		calls++
		return apperror.ErrTransient("op")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.True(t, apperror.IsTransient(err))
}

func TestRetryPolicy_NonTransientAbortsImmediately(t *testing.T) {
	p := newRetryPolicy(5, time.Millisecond, zerolog.Nop())

	calls := 0
	err := p.do(context.Background(), "op", func() error {
		calls++
		return apperror.ErrDisputeNotFound()
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DSP_001", appErr.Code)
}

func TestRetryPolicy_SucceedsAfterRetry(t *testing.T) {
	p := newRetryPolicy(3, time.Millisecond, zerolog.Nop())

	calls := 0
	err := p.do(context.Background(), "op", func() error {
		calls++
		if calls < 2 {
			return apperror.ErrTransient("op")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryPolicy_CancelledContextStops(t *testing.T) {
	p := newRetryPolicy(10, 50*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := p.do(ctx, "op", func() error {
		calls++
		return apperror.ErrTransient("op")
	})
	require.Error(t, err)
	assert.LessOrEqual(t, calls, 1)
}
