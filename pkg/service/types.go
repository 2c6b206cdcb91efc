package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leaudio/leaudio-go/pkg/connection"
	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/metrics"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/session"
)

// Orchestrator errors.
var (
	ErrInvalidConfig            = errors.New("invalid configuration")
	ErrNotRunning               = errors.New("orchestrator not running")
	ErrAlreadyRunning           = errors.New("orchestrator already running")
	ErrQueueFull                = errors.New("event queue full")
	ErrUnknownGroup             = errors.New("unknown group")
	ErrUnknownDevice            = errors.New("unknown device")
	ErrGroupEmpty               = errors.New("group has no members")
	ErrGroupInTransition        = errors.New("group in transition")
	ErrNotConnected             = errors.New("no connected device")
	ErrInvalidState             = errors.New("invalid group state")
	ErrUnsupportedContext       = errors.New("unsupported context type")
	ErrStreamRejected           = errors.New("stream request rejected")
	ErrResourceUnavailable      = errors.New("audio resources unavailable")
	ErrUnsupportedConfiguration = errors.New("no supported configuration")
)

// Default values.
const (
	DefaultQueueSize = 256
)

// DefaultSourceFormat is the PCM the audio subsystem delivers for the sink
// direction (host to peer).
var DefaultSourceFormat = model.SessionConfig{
	Channels:       2,
	SampleRateHz:   48000,
	BitsPerSample:  16,
	DataIntervalUs: model.FrameInterval10000us,
}

// DefaultSinkFormat is the PCM the audio subsystem consumes for the source
// direction (peer to host).
var DefaultSinkFormat = model.SessionConfig{
	Channels:       1,
	SampleRateHz:   16000,
	BitsPerSample:  16,
	DataIntervalUs: model.FrameInterval10000us,
}

// Config configures an Orchestrator.
type Config struct {
	// SuspendTimeout is how long the stream is kept up after both audio
	// directions were suspended.
	SuspendTimeout time.Duration

	// QueueSize bounds the number of pending loop tasks.
	QueueSize int

	// SourceFormat is the PCM format of the audio subsystem for outbound
	// audio. The data interval follows the negotiated configuration.
	SourceFormat model.SessionConfig

	// SinkFormat is the PCM format of the audio subsystem for inbound audio.
	SinkFormat model.SessionConfig

	// Reconnect enables background reconnection after link loss.
	Reconnect bool

	// Backoff parameters for background reconnection.
	Backoff connection.BackoffConfig

	// ReconnectAttemptTimeout bounds a pending background connect before it
	// is issued again. Zero selects connection.DefaultAttemptTimeout.
	ReconnectAttemptTimeout time.Duration

	// Logger is the optional logger for debug output.
	// If nil, no logging is performed.
	Logger *slog.Logger

	// Trace receives the session event trace. If nil, no trace is written.
	Trace log.Logger

	// Metrics is the optional instrumentation.
	Metrics *metrics.Metrics
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		SuspendTimeout: session.DefaultSuspendTimeout,
		QueueSize:      DefaultQueueSize,
		SourceFormat:   DefaultSourceFormat,
		SinkFormat:     DefaultSinkFormat,
		Reconnect:      true,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SuspendTimeout < session.MinSuspendTimeout || c.SuspendTimeout > session.MaxSuspendTimeout {
		return fmt.Errorf("%w: suspend timeout %s outside [%s, %s]", ErrInvalidConfig,
			c.SuspendTimeout, session.MinSuspendTimeout, session.MaxSuspendTimeout)
	}
	if c.QueueSize <= 0 || c.ReconnectAttemptTimeout < 0 {
		return ErrInvalidConfig
	}
	for _, f := range []model.SessionConfig{c.SourceFormat, c.SinkFormat} {
		if f.Channels != 1 && f.Channels != 2 {
			return ErrInvalidConfig
		}
		if f.BitsPerSample != 16 || f.SampleRateHz == 0 {
			return ErrInvalidConfig
		}
	}
	return nil
}

// GroupStatus is reported through Callbacks.OnGroupStatus.
type GroupStatus uint8

const (
	// GroupStatusInactive means the group is no longer the active group.
	GroupStatusInactive GroupStatus = iota

	// GroupStatusActive means the group became (or still is) the active group.
	GroupStatusActive
)

// String returns the status name.
func (s GroupStatus) String() string {
	switch s {
	case GroupStatusInactive:
		return "INACTIVE"
	case GroupStatusActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// ConnectionState is reported through Callbacks.OnConnectionState.
type ConnectionState uint8

const (
	// ConnectionDisconnected means the device link is down or failed to come up.
	ConnectionDisconnected ConnectionState = iota

	// ConnectionConnected means the device is connected, encrypted and its
	// services are known.
	ConnectionConnected
)

// String returns the state name.
func (s ConnectionState) String() string {
	switch s {
	case ConnectionDisconnected:
		return "DISCONNECTED"
	case ConnectionConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// GroupNodeStatus is reported through Callbacks.OnGroupNodeStatus.
type GroupNodeStatus uint8

const (
	// GroupNodeAdded means a device joined a group.
	GroupNodeAdded GroupNodeStatus = iota

	// GroupNodeRemoved means a device left a group.
	GroupNodeRemoved
)

// String returns the status name.
func (s GroupNodeStatus) String() string {
	switch s {
	case GroupNodeAdded:
		return "ADDED"
	case GroupNodeRemoved:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// AudioConf is the group summary reported through Callbacks.OnAudioConf.
type AudioConf struct {
	GroupID int

	// Directions is a bitmask of 1<<model.Direction.
	Directions      uint8
	SinkLocations   model.AudioLocation
	SourceLocations model.AudioLocation
	Contexts        model.AudioContexts
}
