package connection

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// Reconnection errors.
var (
	ErrReconnectorClosed = errors.New("reconnector closed")
	ErrInvalidConfig     = errors.New("invalid reconnect configuration")
)

// DefaultAttemptTimeout is how long an accepted connect request may stay
// pending before it is issued again.
const DefaultAttemptTimeout = 10 * time.Second

// State is the reconnection state of one peer.
type State uint8

const (
	// StateIdle means no reconnection is running for the peer.
	StateIdle State = iota

	// StateWaiting means the loop sleeps until the next attempt.
	StateWaiting

	// StateConnecting means a connect request is pending at the link layer.
	StateConnecting

	// StateConnected means the link came back and the loop ended.
	StateConnected

	// StateClosed means the Reconnector has been closed.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateWaiting:
		return "WAITING"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// ConnectFunc issues one background connect request for addr. A nil error
// means the request was accepted; the link layer reports the outcome later.
type ConnectFunc func(ctx context.Context, addr model.Address) error

// Config configures a Reconnector.
type Config struct {
	// Connect issues the connect requests. Required.
	Connect ConnectFunc

	// Backoff parameters, zero values select the defaults.
	Backoff BackoffConfig

	// AttemptTimeout bounds a pending connect request.
	AttemptTimeout time.Duration

	// Logger for debug output. Nil disables logging.
	Logger *slog.Logger
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Connect == nil {
		return ErrInvalidConfig
	}
	if c.AttemptTimeout < 0 {
		return ErrInvalidConfig
	}
	return nil
}

type loop struct {
	cancel  context.CancelFunc
	backoff *Backoff
	state   State
	done    chan struct{}
	linked  chan struct{}
}

// Reconnector runs one background reconnect loop per peer address.
type Reconnector struct {
	mu sync.Mutex

	cfg    Config
	loops  map[model.Address]*loop
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	onAttempt     func(addr model.Address, attempt int, delay time.Duration)
	onStateChange func(addr model.Address, oldState, newState State)
}

// NewReconnector creates a Reconnector.
func NewReconnector(cfg Config) (*Reconnector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.AttemptTimeout == 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Reconnector{
		cfg:    cfg,
		loops:  make(map[model.Address]*loop),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// OnAttempt sets a callback invoked before every connect attempt.
func (r *Reconnector) OnAttempt(fn func(addr model.Address, attempt int, delay time.Duration)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onAttempt = fn
}

// OnStateChange sets a callback for per-peer state changes.
func (r *Reconnector) OnStateChange(fn func(addr model.Address, oldState, newState State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onStateChange = fn
}

// Start begins reconnecting addr. Starting a peer that already has a
// running loop is a no-op.
func (r *Reconnector) Start(addr model.Address) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrReconnectorClosed
	}
	if _, ok := r.loops[addr]; ok {
		r.mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(r.ctx)
	l := &loop{
		cancel:  cancel,
		backoff: NewBackoff(r.cfg.Backoff),
		state:   StateIdle,
		done:    make(chan struct{}),
		linked:  make(chan struct{}, 1),
	}
	r.loops[addr] = l
	r.wg.Add(1)
	r.mu.Unlock()

	r.debugLog("reconnect: start", "addr", addr)
	go r.run(ctx, addr, l)
	return nil
}

// Connected reports that the link to addr is up. It ends the loop for addr
// and returns whether one was running.
func (r *Reconnector) Connected(addr model.Address) bool {
	r.mu.Lock()
	l, ok := r.loops[addr]
	r.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case l.linked <- struct{}{}:
	default:
	}
	<-l.done
	return true
}

// Cancel stops reconnecting addr and returns whether a loop was running.
func (r *Reconnector) Cancel(addr model.Address) bool {
	r.mu.Lock()
	l, ok := r.loops[addr]
	r.mu.Unlock()
	if !ok {
		return false
	}
	l.cancel()
	<-l.done
	r.debugLog("reconnect: cancelled", "addr", addr)
	return true
}

// Active reports whether a loop runs for addr.
func (r *Reconnector) Active(addr model.Address) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loops[addr]
	return ok
}

// State returns the reconnection state of addr.
func (r *Reconnector) State(addr model.Address) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return StateClosed
	}
	if l, ok := r.loops[addr]; ok {
		return l.state
	}
	return StateIdle
}

// Attempts returns the number of attempts made for addr by the running loop.
func (r *Reconnector) Attempts(addr model.Address) int {
	r.mu.Lock()
	l, ok := r.loops[addr]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	return l.backoff.Attempts()
}

// Close stops every loop and waits for them to finish.
func (r *Reconnector) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}

func (r *Reconnector) run(ctx context.Context, addr model.Address, l *loop) {
	final := StateIdle
	defer func() {
		r.mu.Lock()
		delete(r.loops, addr)
		r.mu.Unlock()
		r.setState(addr, l, final)
		l.cancel()
		close(l.done)
		r.wg.Done()
	}()

	for {
		delay := l.backoff.Next()
		attempt := l.backoff.Attempts()
		r.setState(addr, l, StateWaiting)

		r.mu.Lock()
		onAttempt := r.onAttempt
		r.mu.Unlock()
		if onAttempt != nil {
			onAttempt(addr, attempt, delay)
		}

		select {
		case <-ctx.Done():
			return
		case <-l.linked:
			final = StateConnected
			return
		case <-time.After(delay):
		}

		r.setState(addr, l, StateConnecting)
		attemptCtx, cancel := context.WithTimeout(ctx, r.cfg.AttemptTimeout)
		err := r.cfg.Connect(attemptCtx, addr)
		if err != nil {
			cancel()
			r.debugLog("reconnect: connect request failed", "addr", addr, "attempt", attempt, "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			cancel()
			return
		case <-l.linked:
			cancel()
			final = StateConnected
			return
		case <-attemptCtx.Done():
			cancel()
			r.debugLog("reconnect: attempt timed out", "addr", addr, "attempt", attempt)
		}
	}
}

func (r *Reconnector) setState(addr model.Address, l *loop, s State) {
	r.mu.Lock()
	old := l.state
	l.state = s
	fn := r.onStateChange
	r.mu.Unlock()

	if fn != nil && old != s {
		fn(addr, old, s)
	}
}

func (r *Reconnector) debugLog(msg string, args ...any) {
	if r.cfg.Logger != nil {
		r.cfg.Logger.Debug(msg, args...)
	}
}
