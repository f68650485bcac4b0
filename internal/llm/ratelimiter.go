package llm

import (
	"context"
	"sync"
	"time"
)

// RateLimitedProvider wraps a Provider with a token bucket limiter so a burst
// of chat traffic cannot exceed the endpoint's per-minute request allowance.
type RateLimitedProvider struct {
	provider Provider
	rpm      int

	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

// NewRateLimitedProvider allows at most rpm requests per minute through to
// the wrapped provider. Excess calls block until a token is available or the
// context is cancelled.
func NewRateLimitedProvider(provider Provider, rpm int) Provider {
	return &RateLimitedProvider{
		provider: provider,
		rpm:      rpm,
		tokens:   rpm,
		lastFill: time.Now(),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := r.acquire(ctx); err != nil {
		return nil, err
	}
	return r.provider.Complete(ctx, req)
}

func (r *RateLimitedProvider) acquire(ctx context.Context) error {
	for {
		r.mu.Lock()
		elapsed := time.Since(r.lastFill)
		if refill := int(elapsed.Seconds() * float64(r.rpm) / 60.0); refill > 0 {
			r.tokens = min(r.tokens+refill, r.rpm)
			r.lastFill = time.Now()
		}
		if r.tokens > 0 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
}
