package service

import (
	"context"
	"time"

	"dispute-resolution-engine/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// retryPolicy governs re-execution of fallible reads against the
// transaction directory and the ledger. Dispute mutations are never routed
// through it: retrying a version-checked write would race its own conflict
// detection.
type retryPolicy struct {
	attempts uint64
	base     time.Duration
	log      zerolog.Logger
}

func newRetryPolicy(attempts int, base time.Duration, log zerolog.Logger) retryPolicy {
	if attempts < 1 {
		attempts = 1
	}
	return retryPolicy{attempts: uint64(attempts), base: base, log: log}
}

// NewRetryPolicy builds the shared read-retry policy from configuration.
// attempts counts total calls, not re-tries.
func NewRetryPolicy(attempts int, base time.Duration, log zerolog.Logger) retryPolicy {
	return newRetryPolicy(attempts, base, log)
}

// do runs fn, retrying transient failures with exponential backoff. Any
// non-transient error aborts immediately.
func (p retryPolicy) do(ctx context.Context, op string, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.base
	bo.RandomizationFactor = 0

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !apperror.IsTransient(err) {
			return backoff.Permanent(err)
		}
		p.log.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Msg("transient failure, retrying")
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, p.attempts-1), ctx))
}
