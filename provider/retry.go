package provider

import (
	"context"
	"errors"
	"time"

	"github.com/lexishift/lexishift"
)

// RetryConfig holds retry behavior.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryConfig returns sensible defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes fn with exponential backoff on retryable errors.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether the error carries a retryable provider failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var providerErr *lexishift.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return false
}

// Retrying wraps a Translator with retry logic.
type Retrying struct {
	backend Translator
	config  RetryConfig
}

// NewRetrying creates a retrying wrapper around backend.
func NewRetrying(backend Translator, cfg RetryConfig) *Retrying {
	return &Retrying{backend: backend, config: cfg}
}

// Translate implements Translator with retries.
func (p *Retrying) Translate(ctx context.Context, req Request) ([]string, error) {
	return WithRetry(ctx, p.config, func() ([]string, error) {
		return p.backend.Translate(ctx, req)
	})
}

var _ Translator = (*Retrying)(nil)
