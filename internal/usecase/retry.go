package usecase

import (
	"log"
	"math"
	"time"

	"moturial_payments/internal/config"
	"moturial_payments/internal/domain/paymenterr"
)

// RetryPolicy re-runs gateway calls that fail transiently. Attempt n (1-based)
// waits BaseDelay * Multiplier^(n-1) before attempt n+1. Permanent failures and
// non-gateway errors stop the loop immediately.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64

	sleep func(time.Duration)
}

func NewRetryPolicy(cfg config.RetryConfig) RetryPolicy {
	p := RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		Multiplier:  cfg.Multiplier,
		sleep:       time.Sleep,
	}
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if p.Multiplier < 1 {
		p.Multiplier = 1
	}
	return p
}

// Delay returns the wait after the given failed attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 || p.BaseDelay <= 0 {
		return 0
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(attempt-1)))
}

// Do runs fn until it succeeds, fails permanently or the attempts run out. The
// last error is returned untouched.
func (p RetryPolicy) Do(op string, fn func(attempt int) error) error {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if !paymenterr.IsTransient(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		wait := p.Delay(attempt)
		log.Printf("[payment][retry] transient failure op=%s attempt=%d/%d wait=%s err=%v", op, attempt, maxAttempts, wait, err)
		if wait > 0 {
			sleep(wait)
		}
	}
	log.Printf("[payment][retry] attempts exhausted op=%s attempts=%d err=%v", op, maxAttempts, err)
	return err
}
