package upstream

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/landbridge/michrazim/internal/metrics"
)

// RetryConfig defines retry behavior for upstream calls.
type RetryConfig struct {
	MaxRetries   int           // retries after the first attempt
	InitialDelay time.Duration // backoff before the first retry
	MaxDelay     time.Duration // backoff ceiling
}

// DefaultRetryConfig matches the upstream client's observed tolerances.
var DefaultRetryConfig = RetryConfig{
	MaxRetries:   3,
	InitialDelay: 1 * time.Second,
	MaxDelay:     30 * time.Second,
}

// Caller executes one upstream call. Implemented by closures over
// Transport methods.
type Caller func(ctx context.Context) (*RawResponse, error)

// Retrier wraps transport calls with rate limiting and exponential
// backoff. Transient failures (timeout, connection failure, 5xx) are
// retried; 4xx surfaces immediately. Every attempt, retries included,
// goes through the limiter.
type Retrier struct {
	limiter *Limiter
	config  RetryConfig
}

// NewRetrier creates a Retrier over the shared limiter.
func NewRetrier(limiter *Limiter, config RetryConfig) *Retrier {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = DefaultRetryConfig.InitialDelay
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = DefaultRetryConfig.MaxDelay
	}
	return &Retrier{limiter: limiter, config: config}
}

// Do runs the call until it succeeds, fails permanently, exhausts the
// retry budget, or ctx is cancelled. Attempts for one logical call are
// strictly sequential.
func (r *Retrier) Do(ctx context.Context, call Caller) (*RawResponse, error) {
	attempts := r.config.MaxRetries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := r.backoff(attempt)
			metrics.UpstreamRetries.Inc()
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := call(ctx)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var terr *TransportError
		if !errors.As(err, &terr) || !terr.Transient() {
			return nil, err
		}
		lastErr = err
	}

	return nil, &FinalError{Attempts: attempts, Cause: lastErr}
}

// backoff computes the sleep before the given attempt (attempt ≥ 2):
// initial * 2^(attempt-2), capped at MaxDelay.
func (r *Retrier) backoff(attempt int) time.Duration {
	d := float64(r.config.InitialDelay) * math.Pow(2, float64(attempt-2))
	if d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	return time.Duration(d)
}
