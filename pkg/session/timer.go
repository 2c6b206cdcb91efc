package session

import (
	"errors"
	"sync"
	"time"
)

// Suspend timer constants.
const (
	// DefaultSuspendTimeout is how long the stream is kept after both
	// directions were suspended.
	DefaultSuspendTimeout = 5 * time.Second

	// MinSuspendTimeout is the minimum configurable timeout.
	MinSuspendTimeout = 100 * time.Millisecond

	// MaxSuspendTimeout is the maximum configurable timeout.
	MaxSuspendTimeout = 60 * time.Second
)

// ErrInvalidDuration is returned for timeouts outside the allowed range.
var ErrInvalidDuration = errors.New("invalid suspend timeout")

// TimerState represents the suspend timer state.
type TimerState uint8

const (
	// TimerIdle means the timer is not armed.
	TimerIdle TimerState = iota

	// TimerArmed means the timer is counting down.
	TimerArmed

	// TimerExpired means the last countdown completed.
	TimerExpired
)

// String returns a human-readable state name.
func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "IDLE"
	case TimerArmed:
		return "ARMED"
	case TimerExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// SuspendTimer stops the stream of a group some time after both audio
// directions were suspended. There is at most one countdown at a time.
type SuspendTimer struct {
	mu sync.Mutex

	state    TimerState
	duration time.Duration
	timer    *time.Timer
	armedAt  time.Time
	groupID  int

	// gen invalidates countdowns that fire after Cancel or a re-Arm.
	gen uint64

	onExpire func(groupID int)
}

// NewSuspendTimer creates a timer. Zero selects DefaultSuspendTimeout.
func NewSuspendTimer(d time.Duration) (*SuspendTimer, error) {
	if d == 0 {
		d = DefaultSuspendTimeout
	}
	if d < MinSuspendTimeout || d > MaxSuspendTimeout {
		return nil, ErrInvalidDuration
	}
	return &SuspendTimer{duration: d}, nil
}

// Duration returns the configured timeout.
func (t *SuspendTimer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

// State returns the timer state.
func (t *SuspendTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsArmed reports whether a countdown is running.
func (t *SuspendTimer) IsArmed() bool {
	return t.State() == TimerArmed
}

// Arm starts the countdown for groupID, restarting the full duration if it
// is already running.
func (t *SuspendTimer) Arm(groupID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.state = TimerArmed
	t.groupID = groupID
	t.armedAt = time.Now()
	t.timer = time.AfterFunc(t.duration, func() {
		t.expire(gen)
	})
}

// Cancel stops the countdown. It reports whether the timer was armed.
func (t *SuspendTimer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerArmed {
		return false
	}
	t.timer.Stop()
	t.timer = nil
	t.gen++
	t.state = TimerIdle
	return true
}

// Remaining returns the time left, 0 if not armed.
func (t *SuspendTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerArmed {
		return 0
	}
	remaining := t.duration - time.Since(t.armedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OnExpire sets the callback invoked when a countdown completes. It runs on
// the timer goroutine without the timer lock held.
func (t *SuspendTimer) OnExpire(fn func(groupID int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onExpire = fn
}

func (t *SuspendTimer) expire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.state != TimerArmed {
		t.mu.Unlock()
		return
	}
	t.state = TimerExpired
	t.timer = nil
	fn := t.onExpire
	groupID := t.groupID
	t.mu.Unlock()

	if fn != nil {
		fn(groupID)
	}
}
