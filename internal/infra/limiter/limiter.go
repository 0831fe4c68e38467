package limiter

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter bounds outbound provider calls. A nil Limiter, or one built with
// zero limits, lets every call through.
type Limiter struct {
	semaphore   chan struct{}
	rateLimiter *rate.Limiter
}

func New(maxConcurrent int, ratePerSecond float64) *Limiter {
	l := &Limiter{}
	if maxConcurrent > 0 {
		l.semaphore = make(chan struct{}, maxConcurrent)
	}
	if ratePerSecond > 0 {
		burst := int(ratePerSecond)
		if burst < 1 {
			burst = 1
		}
		l.rateLimiter = rate.NewLimiter(rate.Limit(ratePerSecond), burst)
	}
	return l
}

func (l *Limiter) Enabled() bool {
	return l != nil && (l.semaphore != nil || l.rateLimiter != nil)
}

func (l *Limiter) Acquire(ctx context.Context) (release func(), err error) {
	if !l.Enabled() {
		return func() {}, nil
	}

	if l.rateLimiter != nil {
		if err := l.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if l.semaphore == nil {
		return func() {}, nil
	}

	select {
	case l.semaphore <- struct{}{}:
		return func() { <-l.semaphore }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
