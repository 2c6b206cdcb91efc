// Package metrics exposes Prometheus instrumentation for the orchestrator
// and the audio pipeline. All observer methods are safe on a nil *Metrics so
// callers can run without instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons used with FrameDropped.
const (
	DropShortBuffer   = "short_buffer"
	DropOverrun       = "overrun"
	DropUnknownHandle = "unknown_handle"
	DropStale         = "stale"
	DropNotStarted    = "not_started"
	DropCodecError    = "codec_error"
	DropSendError     = "send_error"
)

// Metrics contains all Prometheus metrics of the orchestrator.
type Metrics struct {
	// Pipeline metrics
	FramesEncoded   prometheus.Counter
	FramesDecoded   prometheus.Counter
	FramesConcealed prometheus.Counter
	FramesDropped   *prometheus.CounterVec
	EncodeDuration  prometheus.Histogram
	DecodeDuration  prometheus.Histogram

	// Session metrics
	SessionTransitions   *prometheus.CounterVec
	StreamSetupLatency   prometheus.Histogram
	SuspendTimerExpiries prometheus.Counter
	ActiveGroup          prometheus.Gauge

	// Link metrics
	ReconnectAttempts prometheus.Counter
	ConnectedDevices  prometheus.Gauge
}

// NewMetrics creates all metrics and registers them with reg. A nil reg
// registers with the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		FramesEncoded: f.NewCounter(prometheus.CounterOpts{
			Name: "leaudio_frames_encoded_total",
			Help: "Total number of codec frames encoded for outbound channels",
		}),
		FramesDecoded: f.NewCounter(prometheus.CounterOpts{
			Name: "leaudio_frames_decoded_total",
			Help: "Total number of inbound codec frames decoded",
		}),
		FramesConcealed: f.NewCounter(prometheus.CounterOpts{
			Name: "leaudio_frames_concealed_total",
			Help: "Total number of inbound frames replaced by loss concealment",
		}),
		FramesDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leaudio_frames_dropped_total",
			Help: "Total number of frames dropped, by reason",
		}, []string{"reason"}),
		EncodeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaudio_encode_duration_seconds",
			Help:    "Time spent encoding one PCM interval",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10), // 100us to ~51ms
		}),
		DecodeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaudio_decode_duration_seconds",
			Help:    "Time spent decoding one inbound frame",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),

		SessionTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "leaudio_session_transitions_total",
			Help: "Audio session state changes, by direction and new state",
		}, []string{"direction", "state"}),
		StreamSetupLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaudio_stream_setup_seconds",
			Help:    "Time from stream start request to streaming status",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		}),
		SuspendTimerExpiries: f.NewCounter(prometheus.CounterOpts{
			Name: "leaudio_suspend_timer_expiries_total",
			Help: "Number of times the suspend timer stopped a stream",
		}),
		ActiveGroup: f.NewGauge(prometheus.GaugeOpts{
			Name: "leaudio_active_group",
			Help: "Id of the active group, -1 if none",
		}),

		ReconnectAttempts: f.NewCounter(prometheus.CounterOpts{
			Name: "leaudio_reconnect_attempts_total",
			Help: "Background reconnect attempts",
		}),
		ConnectedDevices: f.NewGauge(prometheus.GaugeOpts{
			Name: "leaudio_connected_devices",
			Help: "Number of devices with an open link",
		}),
	}
}

// FrameEncoded counts n encoded frames and the time it took.
func (m *Metrics) FrameEncoded(n int, d time.Duration) {
	if m == nil {
		return
	}
	m.FramesEncoded.Add(float64(n))
	m.EncodeDuration.Observe(d.Seconds())
}

// FrameDecoded counts a decoded frame. concealed marks a loss-concealment decode.
func (m *Metrics) FrameDecoded(concealed bool, d time.Duration) {
	if m == nil {
		return
	}
	m.FramesDecoded.Inc()
	if concealed {
		m.FramesConcealed.Inc()
	}
	m.DecodeDuration.Observe(d.Seconds())
}

// FrameDropped counts a dropped frame.
func (m *Metrics) FrameDropped(reason string) {
	if m == nil {
		return
	}
	m.FramesDropped.WithLabelValues(reason).Inc()
}

// SessionTransition counts a state change.
func (m *Metrics) SessionTransition(direction, state string) {
	if m == nil {
		return
	}
	m.SessionTransitions.WithLabelValues(direction, state).Inc()
}

// StreamSetup records a completed stream setup.
func (m *Metrics) StreamSetup(d time.Duration) {
	if m == nil {
		return
	}
	m.StreamSetupLatency.Observe(d.Seconds())
}

// SuspendTimerExpired counts a suspend timer expiry.
func (m *Metrics) SuspendTimerExpired() {
	if m == nil {
		return
	}
	m.SuspendTimerExpiries.Inc()
}

// SetActiveGroup records the active group id.
func (m *Metrics) SetActiveGroup(id int) {
	if m == nil {
		return
	}
	m.ActiveGroup.Set(float64(id))
}

// ReconnectAttempt counts a background reconnect attempt.
func (m *Metrics) ReconnectAttempt() {
	if m == nil {
		return
	}
	m.ReconnectAttempts.Inc()
}

// SetConnectedDevices records the number of open links.
func (m *Metrics) SetConnectedDevices(n int) {
	if m == nil {
		return
	}
	m.ConnectedDevices.Set(float64(n))
}
