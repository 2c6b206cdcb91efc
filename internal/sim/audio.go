package sim

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/service"
)

// Request states of a simulated audio session.
const (
	RequestNone          = "NONE"
	RequestConfirmed     = "CONFIRMED"
	RequestCancelled     = "CANCELLED"
	RequestReconfiguring = "RECONFIGURING"
)

// AudioHAL hands out one source and one sink session.
type AudioHAL struct {
	source *Session
	sink   *Session
}

var _ service.AudioHAL = (*AudioHAL)(nil)

// NewAudioHAL creates the audio subsystem. logger may be nil.
func NewAudioHAL(logger *slog.Logger) *AudioHAL {
	return &AudioHAL{
		source: &Session{name: "source", logger: logger},
		sink:   &Session{name: "sink", logger: logger},
	}
}

// AcquireSource claims the source session.
func (h *AudioHAL) AcquireSource() (service.SourceSession, error) {
	if err := h.source.acquire(); err != nil {
		return nil, err
	}
	return h.source, nil
}

// AcquireSink claims the sink session.
func (h *AudioHAL) AcquireSink() (service.SinkSession, error) {
	if err := h.sink.acquire(); err != nil {
		return nil, err
	}
	return h.sink, nil
}

// Source returns the source session for inspection.
func (h *AudioHAL) Source() *Session { return h.source }

// Sink returns the sink session for inspection.
func (h *AudioHAL) Sink() *Session { return h.sink }

// Session records what the orchestrator asked of one audio session.
type Session struct {
	name   string
	logger *slog.Logger

	mu          sync.Mutex
	held        bool
	started     bool
	format      model.SessionConfig
	request     string
	remoteDelay uint16
	written     int
}

var _ service.SinkSession = (*Session)(nil)

// SessionState is a snapshot of a Session.
type SessionState struct {
	Held          bool
	Started       bool
	Format        model.SessionConfig
	Request       string
	RemoteDelayMs uint16
	BytesWritten  int
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held {
		return ErrSessionInUse
	}
	s.held = true
	s.request = RequestNone
	return nil
}

// State returns a snapshot.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Held:          s.held,
		Started:       s.started,
		Format:        s.format,
		Request:       s.request,
		RemoteDelayMs: s.remoteDelay,
		BytesWritten:  s.written,
	}
}

func (s *Session) Start(format model.SessionConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	s.format = format
	s.debugLog("started", "format", format)
	return nil
}

func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = false
	s.started = false
}

func (s *Session) ConfirmStreamingRequest() { s.setRequest(RequestConfirmed) }

func (s *Session) CancelStreamingRequest() { s.setRequest(RequestCancelled) }

func (s *Session) SuspendedForReconfiguration() { s.setRequest(RequestReconfiguring) }

func (s *Session) UpdateRemoteDelay(ms uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remoteDelay = ms
}

// Write accepts decoded PCM and counts it.
func (s *Session) Write(pcm []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written += len(pcm)
	return len(pcm), nil
}

func (s *Session) setRequest(r string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = r
	s.debugLog("streaming request", "state", r)
}

func (s *Session) debugLog(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, append([]any{"session", s.name}, args...)...)
	}
}

// AudioFeeder accepts PCM from the audio subsystem.
type AudioFeeder interface {
	HandleAudioData(pcm []byte) error
}

// PlayTone pushes a sine tone in format to f once per data interval until ctx
// is done. Rejected buffers are counted, not fatal.
func PlayTone(ctx context.Context, f AudioFeeder, format model.SessionConfig, hz float64) (sent, rejected int) {
	samples, err := model.FrameSamples(format.DataIntervalUs, format.SampleRateHz)
	if err != nil {
		return 0, 0
	}
	channels := int(format.Channels)
	buf := make([]byte, samples*channels*2)
	ticker := time.NewTicker(time.Duration(format.DataIntervalUs) * time.Microsecond)
	defer ticker.Stop()

	var phase float64
	step := 2 * math.Pi * hz / float64(format.SampleRateHz)
	for {
		select {
		case <-ctx.Done():
			return sent, rejected
		case <-ticker.C:
		}
		for i := range samples {
			v := uint16(int16(math.Sin(phase) * 0x3fff))
			phase += step
			for c := range channels {
				binary.LittleEndian.PutUint16(buf[(i*channels+c)*2:], v)
			}
		}
		if err := f.HandleAudioData(buf); err != nil {
			rejected++
			continue
		}
		sent++
	}
}
