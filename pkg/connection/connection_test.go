package connection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leaudio/leaudio-go/pkg/model"
)

var peer = model.MustParseAddress("00:11:22:33:44:55")

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name string
		cfg  BackoffConfig
		want []time.Duration
	}{
		{
			name: "defaults",
			want: []time.Duration{
				500 * time.Millisecond, time.Second, 2 * time.Second, 4 * time.Second,
				8 * time.Second, 16 * time.Second, 30 * time.Second, 30 * time.Second,
			},
		},
		{
			name: "custom",
			cfg:  BackoffConfig{Initial: 100 * time.Millisecond, Max: 500 * time.Millisecond, Multiplier: 2},
			want: []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, 500 * time.Millisecond},
		},
		{
			name: "multiplier below one falls back",
			cfg:  BackoffConfig{Initial: time.Second, Multiplier: 0.5},
			want: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name: "max below initial",
			cfg:  BackoffConfig{Initial: 2 * time.Second, Max: time.Second},
			want: []time.Duration{2 * time.Second, 2 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n, want := range tt.want {
				if got := tt.cfg.Delay(n); got != want {
					t.Errorf("Delay(%d) = %v, want %v", n, got, want)
				}
			}
		})
	}

	if got := (BackoffConfig{}).Delay(1 << 20); got != MaxBackoff {
		t.Errorf("Delay after many attempts = %v, want %v", got, MaxBackoff)
	}
}

func TestBackoffNextCountsAttempts(t *testing.T) {
	b := NewBackoff(BackoffConfig{Initial: 10 * time.Millisecond, Max: 40 * time.Millisecond})

	for i, want := range []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond} {
		if got := b.Next(); got != want {
			t.Errorf("Next() #%d = %v, want %v", i, got, want)
		}
	}
	if b.Attempts() != 3 {
		t.Errorf("Attempts() = %d, want 3", b.Attempts())
	}

	b.Reset()
	if b.Attempts() != 0 {
		t.Errorf("Attempts() after Reset = %d, want 0", b.Attempts())
	}
	if got := b.Next(); got != 10*time.Millisecond {
		t.Errorf("Next() after Reset = %v, want 10ms", got)
	}
}

func TestBackoffJitterStaysInRange(t *testing.T) {
	cfg := BackoffConfig{Jitter: JitterFactor}
	upper := time.Duration(float64(InitialBackoff) * (1 + JitterFactor))

	for i := 0; i < 20; i++ {
		b := NewBackoff(cfg)
		if d := b.Next(); d < InitialBackoff || d > upper {
			t.Errorf("sample %d: %v outside [%v, %v]", i, d, InitialBackoff, upper)
		}
	}

	if d := NewBackoff(BackoffConfig{Jitter: -1}).Next(); d != InitialBackoff {
		t.Errorf("negative jitter: Next() = %v, want %v", d, InitialBackoff)
	}
}

func fastConfig(connect ConnectFunc) Config {
	return Config{
		Connect:        connect,
		Backoff:        BackoffConfig{Initial: time.Millisecond, Max: 4 * time.Millisecond, Jitter: 0},
		AttemptTimeout: 5 * time.Millisecond,
	}
}

func TestNewReconnectorValidates(t *testing.T) {
	if _, err := NewReconnector(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewReconnector() error = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewReconnector(Config{Connect: func(context.Context, model.Address) error { return nil }, AttemptTimeout: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative timeout error = %v, want ErrInvalidConfig", err)
	}
}

func TestReconnectorRetriesUntilConnected(t *testing.T) {
	var calls atomic.Int32
	connected := make(chan struct{})

	r, err := NewReconnector(fastConfig(func(ctx context.Context, addr model.Address) error {
		if addr != peer {
			t.Errorf("addr = %v, want %v", addr, peer)
		}
		if calls.Add(1) == 3 {
			close(connected)
		}
		if calls.Load() < 3 {
			return errors.New("controller busy")
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("NewReconnector failed: %v", err)
	}
	defer r.Close()

	if err := r.Start(peer); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := r.Start(peer); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}

	select {
	case <-connected:
	case <-time.After(time.Second):
		t.Fatal("connect was not retried")
	}

	if !r.Connected(peer) {
		t.Error("Connected() = false, want true")
	}
	if r.Active(peer) {
		t.Error("loop should have ended")
	}
	if r.Connected(peer) {
		t.Error("second Connected() = true, want false")
	}
}

func TestReconnectorReissuesPendingRequest(t *testing.T) {
	var calls atomic.Int32
	r, err := NewReconnector(fastConfig(func(context.Context, model.Address) error {
		calls.Add(1)
		return nil
	}))
	if err != nil {
		t.Fatalf("NewReconnector failed: %v", err)
	}
	defer r.Close()

	_ = r.Start(peer)

	deadline := time.Now().Add(time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if calls.Load() < 3 {
		t.Errorf("calls = %d, want at least 3 after attempt timeouts", calls.Load())
	}
	if r.Attempts(peer) < 3 {
		t.Errorf("Attempts() = %d, want >= 3", r.Attempts(peer))
	}
}

func TestReconnectorCancel(t *testing.T) {
	r, err := NewReconnector(Config{
		Connect: func(context.Context, model.Address) error { return errors.New("nope") },
		Backoff: BackoffConfig{Initial: time.Hour},
	})
	if err != nil {
		t.Fatalf("NewReconnector failed: %v", err)
	}
	defer r.Close()

	_ = r.Start(peer)
	if !r.Active(peer) {
		t.Fatal("Active() = false after Start")
	}
	if !r.Cancel(peer) {
		t.Error("Cancel() = false, want true")
	}
	if r.Active(peer) {
		t.Error("Active() = true after Cancel")
	}
	if r.Cancel(peer) {
		t.Error("second Cancel() = true, want false")
	}
	if r.State(peer) != StateIdle {
		t.Errorf("State() = %v, want IDLE", r.State(peer))
	}
}

func TestReconnectorClose(t *testing.T) {
	other := model.MustParseAddress("00:11:22:33:44:66")
	r, err := NewReconnector(Config{
		Connect: func(context.Context, model.Address) error { return nil },
		Backoff: BackoffConfig{Initial: time.Hour},
	})
	if err != nil {
		t.Fatalf("NewReconnector failed: %v", err)
	}

	_ = r.Start(peer)
	_ = r.Start(other)
	r.Close()
	r.Close()

	if r.Active(peer) || r.Active(other) {
		t.Error("loops still active after Close")
	}
	if err := r.Start(peer); !errors.Is(err, ErrReconnectorClosed) {
		t.Errorf("Start() after Close = %v, want ErrReconnectorClosed", err)
	}
	if r.State(peer) != StateClosed {
		t.Errorf("State() = %v, want CLOSED", r.State(peer))
	}
}

func TestReconnectorCallbacks(t *testing.T) {
	var mu sync.Mutex
	var attempts []int
	var states []State

	attempted := make(chan struct{}, 16)
	r, err := NewReconnector(fastConfig(func(context.Context, model.Address) error {
		select {
		case attempted <- struct{}{}:
		default:
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("NewReconnector failed: %v", err)
	}
	defer r.Close()

	r.OnAttempt(func(_ model.Address, attempt int, _ time.Duration) {
		mu.Lock()
		attempts = append(attempts, attempt)
		mu.Unlock()
	})
	r.OnStateChange(func(_ model.Address, _, s State) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})

	_ = r.Start(peer)
	<-attempted
	r.Connected(peer)

	mu.Lock()
	defer mu.Unlock()
	if len(attempts) == 0 || attempts[0] != 1 {
		t.Errorf("attempts = %v, want to start at 1", attempts)
	}
	if len(states) < 3 || states[0] != StateWaiting || states[1] != StateConnecting || states[len(states)-1] != StateConnected {
		t.Errorf("states = %v", states)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "IDLE"},
		{StateWaiting, "WAITING"},
		{StateConnecting, "CONNECTING"},
		{StateConnected, "CONNECTED"},
		{StateClosed, "CLOSED"},
		{State(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
