package provider

import (
	"context"
	"sync"
	"time"

	"github.com/lexishift/lexishift"
)

// RateLimiter is a token-bucket limiter for backend API calls.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// RateLimitConfig configures the limiter.
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int // defaults to RequestsPerMinute
}

// NewRateLimiter creates a limiter with a full bucket.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}
	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}
	return &RateLimiter{
		tokens:     burst,
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// TryAcquire takes a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()
	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// refill adds tokens for elapsed time. Caller holds the lock.
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.lastRefill = now

	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available returns the current token count.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimited wraps a Translator with a rate limiter.
type RateLimited struct {
	backend Translator
	limiter *RateLimiter
}

// NewRateLimited creates a rate-limited wrapper around backend.
func NewRateLimited(backend Translator, cfg RateLimitConfig) *RateLimited {
	return &RateLimited{
		backend: backend,
		limiter: NewRateLimiter(cfg),
	}
}

// Translate implements Translator, waiting for a token first.
func (p *RateLimited) Translate(ctx context.Context, req Request) ([]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, &lexishift.ProviderError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}
	return p.backend.Translate(ctx, req)
}

// Limiter exposes the underlying limiter for inspection.
func (p *RateLimited) Limiter() *RateLimiter {
	return p.limiter
}

var _ Translator = (*RateLimited)(nil)
