package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var resp *Response
	err := retry(ctx, r.config, func() error {
		var err error
		resp, err = r.inner.Generate(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// RetryEmbedder applies the same retry policy to embedding calls.
type RetryEmbedder struct {
	inner  Embedder
	config RetryConfig
}

// WithEmbeddingRetry wraps an Embedder with retry logic.
func WithEmbeddingRetry(e Embedder, cfg RetryConfig) Embedder {
	return &RetryEmbedder{inner: e, config: cfg}
}

func (r *RetryEmbedder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	var out [][]float32
	err := retry(ctx, r.config, func() error {
		var err error
		out, err = r.inner.Embed(ctx, inputs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RetryEmbedder) EmbeddingModelID() string {
	return r.inner.EmbeddingModelID()
}

// retry runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget is spent.
func retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	var lastErr error
	invalidRetried := false

	attempts := max(cfg.MaxAttempts, 1)
	for attempt := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return err
		}

		// Last attempt, no sleep.
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(cfg, attempt, err)):
		}
	}

	return lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrEmbeddingsUnsupported) {
		return false
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	// Invalid response gets one retry.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	// Rate limits, outages and network errors are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
