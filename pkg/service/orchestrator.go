package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leaudio/leaudio-go/pkg/connection"
	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/metrics"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/pipeline"
	"github.com/leaudio/leaudio-go/pkg/registry"
	"github.com/leaudio/leaudio-go/pkg/session"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// Orchestrator drives one LE Audio client: device and group lifecycle, the
// audio session of the active group and the real-time pipeline.
type Orchestrator struct {
	cfg     Config
	logger  *slog.Logger
	trace   *log.Tracer
	metrics *metrics.Metrics

	stream    StreamProtocol
	iso       IsoChannels
	audio     AudioHAL
	link      LinkLayer
	sets      SetCoordinator
	codecs    pipeline.CodecFactory
	callbacks Callbacks

	registry    *registry.Registry
	aggregator  *streamconf.Aggregator
	tracker     *streamconf.Tracker
	machine     *session.Machine
	timer       *session.SuspendTimer
	sender      *pipeline.Sender
	receiver    *pipeline.Receiver
	reconnector *connection.Reconnector

	// Loop
	startMu sync.Mutex
	tasks   chan func()
	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
	loopWg  sync.WaitGroup

	// Owned by the loop.
	activeGroup int
	source      SourceSession
	sink        SinkSession
	setupStart  time.Time
	lastSetup   time.Duration
	pendingRead map[model.Address]bool

	// Read by the real-time paths.
	activeID atomic.Int64
	sinkMu   sync.RWMutex
}

// New creates an orchestrator. It does not process events until Start.
func New(cfg Config, c Collaborators) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if c.Callbacks == nil {
		c.Callbacks = NoopCallbacks{}
	}

	timer, err := session.NewSuspendTimer(cfg.SuspendTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	o := &Orchestrator{
		cfg:         cfg,
		logger:      cfg.Logger,
		trace:       log.NewTracer(cfg.Trace),
		metrics:     cfg.Metrics,
		stream:      c.Stream,
		iso:         c.Iso,
		audio:       c.Audio,
		link:        c.Link,
		sets:        c.Sets,
		codecs:      c.Codecs,
		callbacks:   c.Callbacks,
		registry:    registry.New(),
		tracker:     streamconf.NewTracker(c.Stream),
		machine:     session.NewMachine(),
		timer:       timer,
		tasks:       make(chan func(), cfg.QueueSize),
		activeGroup: model.GroupUnknown,
		pendingRead: make(map[model.Address]bool),
	}
	o.activeID.Store(model.GroupUnknown)
	o.aggregator = streamconf.NewAggregator(o.registry)
	o.registry.OnMembershipChanged(o.aggregator.Invalidate)
	o.registry.OnGroupRemoved(o.aggregator.Invalidate)

	o.sender = pipeline.NewSender(pipeline.SenderConfig{
		Send:    o.iso.SendData,
		Metrics: cfg.Metrics,
		Logger:  cfg.Logger,
	})
	o.receiver = pipeline.NewReceiver(pipeline.ReceiverConfig{
		Sink:    o.writeSink,
		Metrics: cfg.Metrics,
		Logger:  cfg.Logger,
	})

	o.machine.OnTransition(o.onTransition)
	o.timer.OnExpire(func(groupID int) {
		if err := o.Submit(suspendTimeout{groupID: groupID}); err != nil {
			o.warnLog("suspend timer expiry dropped", "group", groupID, "error", err)
		}
	})

	if cfg.Reconnect {
		o.reconnector, err = connection.NewReconnector(connection.Config{
			Connect: func(_ context.Context, addr model.Address) error {
				return o.link.Connect(addr, false)
			},
			Backoff:        cfg.Backoff,
			AttemptTimeout: cfg.ReconnectAttemptTimeout,
			Logger:         cfg.Logger,
		})
		if err != nil {
			return nil, err
		}
		o.reconnector.OnAttempt(func(addr model.Address, attempt int, delay time.Duration) {
			o.metrics.ReconnectAttempt()
			o.debugLog("reconnect attempt", "addr", addr, "attempt", attempt, "delay", delay)
		})
	}

	return o, nil
}

// Start begins processing events.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.startMu.Lock()
	defer o.startMu.Unlock()

	if o.running.Load() {
		return ErrAlreadyRunning
	}

	o.ctx, o.cancel = context.WithCancel(ctx)
	o.loopWg.Add(1)
	go o.loop(o.ctx, o.tasks)
	o.running.Store(true)

	o.debugLog("orchestrator started", "session", o.trace.SessionID())
	return nil
}

// Stop tears down the audio session and stops the loop. Pending tasks are
// discarded.
func (o *Orchestrator) Stop() {
	o.startMu.Lock()
	defer o.startMu.Unlock()

	if !o.running.Load() {
		return
	}
	// Cleanup runs on the loop so it does not race with queued handlers.
	_ = o.call(func() error {
		o.cleanup()
		return nil
	})

	o.running.Store(false)
	if o.cancel != nil {
		o.cancel()
	}
	o.loopWg.Wait()

	if o.reconnector != nil {
		o.reconnector.Close()
	}
	o.debugLog("orchestrator stopped")
}

// IsRunning reports whether the loop runs.
func (o *Orchestrator) IsRunning() bool {
	return o.running.Load()
}

// SessionID returns the id stamped on the trace of this run.
func (o *Orchestrator) SessionID() string {
	return o.trace.SessionID()
}

// Registry returns the device and group registry. Callers outside the loop
// must treat the returned devices and groups as read-only.
func (o *Orchestrator) Registry() *registry.Registry {
	return o.registry
}

// Inspect runs fn on the loop, so fn sees devices and groups in a consistent
// state. fn must not call back into the orchestrator.
func (o *Orchestrator) Inspect(fn func(r *registry.Registry)) error {
	return o.call(func() error {
		fn(o.registry)
		return nil
	})
}

// ActiveGroup returns the active group id, model.GroupUnknown if none.
func (o *Orchestrator) ActiveGroup() int {
	return int(o.activeID.Load())
}

// AudioStates returns the sender and receiver states.
func (o *Orchestrator) AudioStates() (sender, receiver session.AudioState) {
	return o.machine.States()
}

// Submit enqueues an event without blocking. It is the delivery path for
// collaborators.
func (o *Orchestrator) Submit(ev Event) error {
	return o.post(func() { o.Dispatch(ev) })
}

// Deliver enqueues an event and waits until it has been handled.
func (o *Orchestrator) Deliver(ev Event) error {
	return o.call(func() error {
		o.Dispatch(ev)
		return nil
	})
}

func (o *Orchestrator) post(task func()) error {
	if !o.running.Load() {
		return ErrNotRunning
	}
	select {
	case o.tasks <- task:
		return nil
	default:
		return ErrQueueFull
	}
}

// call runs fn on the loop and waits for its result.
func (o *Orchestrator) call(fn func() error) error {
	if !o.running.Load() {
		return ErrNotRunning
	}
	done := make(chan error, 1)
	task := func() { done <- fn() }

	select {
	case o.tasks <- task:
	case <-o.ctx.Done():
		return ErrNotRunning
	}
	select {
	case err := <-done:
		return err
	case <-o.ctx.Done():
		return ErrNotRunning
	}
}

func (o *Orchestrator) loop(ctx context.Context, tasks <-chan func()) {
	defer o.loopWg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-tasks:
			task()
		}
	}
}

func (o *Orchestrator) debugLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o *Orchestrator) warnLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}

func (o *Orchestrator) errorLog(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Error(msg, args...)
	}
}

func (o *Orchestrator) setActive(id int) {
	o.activeGroup = id
	o.activeID.Store(int64(id))
	o.metrics.SetActiveGroup(id)
}

func (o *Orchestrator) notifyAudioConf(g *model.Group) {
	o.callbacks.OnAudioConf(AudioConf{
		GroupID:         g.ID,
		Directions:      g.Directions(),
		SinkLocations:   g.SinkLocations,
		SourceLocations: g.SourceLocations,
		Contexts:        g.ActiveContexts,
	})
}

func (o *Orchestrator) updateConnectedCount() {
	n := 0
	for _, d := range o.registry.Devices() {
		if d.IsConnected() {
			n++
		}
	}
	o.metrics.SetConnectedDevices(n)
}

func traceDir(dir model.Direction) log.Direction {
	if dir == model.DirectionSink {
		return log.DirectionSink
	}
	return log.DirectionSource
}
