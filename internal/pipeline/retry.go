package pipeline

import (
	"math"
	"math/rand/v2"
	"time"
)

// RetryPolicy bounds retries of transient backend failures.
// MaxAttempts counts the first call; 1 disables retries.
type RetryPolicy struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// Backoff computes the wait before the retry that follows attempt (0-based):
// exponential growth capped at MaxWait, with ±20% jitter.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	wait := float64(p.InitialWait) * math.Pow(multiplier, float64(attempt))
	if p.MaxWait > 0 && wait > float64(p.MaxWait) {
		wait = float64(p.MaxWait)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
