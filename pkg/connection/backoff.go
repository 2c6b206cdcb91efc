package connection

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Reconnect pacing defaults. A hearing aid that walked out of range usually
// comes back within seconds, a headset put into its case may not come back
// for minutes, so the delay grows quickly and then stays at MaxBackoff.
const (
	InitialBackoff    = 500 * time.Millisecond
	MaxBackoff        = 30 * time.Second
	BackoffMultiplier = 2.0

	// JitterFactor spreads the connects of set members that dropped together.
	JitterFactor = 0.25
)

// BackoffConfig paces the connect attempts for one peer. Zero values select
// the package defaults, except Jitter where zero disables jitter.
type BackoffConfig struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

func (c BackoffConfig) normalized() BackoffConfig {
	if c.Initial <= 0 {
		c.Initial = InitialBackoff
	}
	if c.Max <= 0 {
		c.Max = MaxBackoff
	}
	if c.Max < c.Initial {
		c.Max = c.Initial
	}
	if c.Multiplier <= 1 {
		c.Multiplier = BackoffMultiplier
	}
	if c.Jitter < 0 {
		c.Jitter = 0
	}
	return c
}

// Delay is the wait before connect attempt n (0 based), without jitter.
func (c BackoffConfig) Delay(n int) time.Duration {
	c = c.normalized()
	d := float64(c.Initial) * math.Pow(c.Multiplier, float64(n))
	if d >= float64(c.Max) || math.IsInf(d, 1) {
		return c.Max
	}
	return time.Duration(d)
}

// Backoff counts the attempts of one reconnect loop. Next and Reset belong
// to that loop; Attempts may be read from anywhere.
type Backoff struct {
	cfg      BackoffConfig
	attempts atomic.Int64
}

// NewBackoff creates the attempt counter for one peer.
func NewBackoff(cfg BackoffConfig) *Backoff {
	return &Backoff{cfg: cfg.normalized()}
}

// Next returns the wait before the next connect and counts the attempt.
func (b *Backoff) Next() time.Duration {
	d := b.cfg.Delay(int(b.attempts.Add(1) - 1))
	if b.cfg.Jitter > 0 {
		d += time.Duration(float64(d) * b.cfg.Jitter * rand.Float64())
	}
	return d
}

// Attempts returns how many delays were handed out since the last Reset.
func (b *Backoff) Attempts() int {
	return int(b.attempts.Load())
}

// Reset starts over from the initial delay.
func (b *Backoff) Reset() {
	b.attempts.Store(0)
}
