package pipeline

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leaudio/leaudio-go/pkg/metrics"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// SinkFunc delivers PCM to the audio subsystem and returns the bytes written.
type SinkFunc func(pcm []byte) (int, error)

// ReceiverConfig configures a Receiver.
type ReceiverConfig struct {
	Sink    SinkFunc
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

type side uint8

const (
	sideLeft side = iota
	sideRight
)

func (s side) String() string {
	if s == sideLeft {
		return "left"
	}
	return "right"
}

// reassembly holds the first decoded side of an interval until the other
// side arrives.
type reassembly struct {
	valid     bool
	pcm       []int16
	timestamp uint32
	side      side

	flushed     bool
	lastFlushed uint32
}

// after reports whether a is later than b, tolerating wraparound.
func after(a, b uint32) bool {
	return int32(a-b) > 0
}

func (c *reassembly) clear() {
	*c = reassembly{}
}

func (c *reassembly) stale(ts uint32, s side) bool {
	if c.flushed && !after(ts, c.lastFlushed) {
		return true
	}
	if !c.valid {
		return false
	}
	if s == c.side {
		return !after(ts, c.timestamp)
	}
	return after(c.timestamp, ts)
}

// Receiver decodes inbound frames and delivers PCM to the audio sink.
type Receiver struct {
	mu sync.Mutex

	sink    SinkFunc
	metrics *metrics.Metrics
	logger  *slog.Logger

	started      bool
	sinkChannels int
	samples      int
	octets       int

	leftHandle, rightHandle uint16
	hasLeft, hasRight       bool
	left, right             Decoder

	cache reassembly
}

// NewReceiver creates a stopped receiver.
func NewReceiver(cfg ReceiverConfig) *Receiver {
	return &Receiver{
		sink:    cfg.Sink,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Start sets up decoders for conf. format is the PCM format expected by the
// audio subsystem. The reassembly cache is cleared.
func (r *Receiver) Start(conf *streamconf.StreamConfiguration, codecs CodecFactory, format model.SessionConfig) error {
	if conf == nil || len(conf.Streams) == 0 {
		return ErrInvalidStreamConfig
	}
	if (format.Channels != 1 && format.Channels != 2) || format.BitsPerSample != 16 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	samples, err := model.FrameSamples(format.DataIntervalUs, format.SampleRateHz)
	if err != nil {
		return err
	}

	leftHandle, hasLeft := conf.LeftHandle()
	rightHandle, hasRight := conf.RightHandle()
	if !hasLeft && !hasRight && len(conf.Streams) == 1 {
		// A single mono stream has no side; render it as left.
		leftHandle, hasLeft = conf.Streams[0].Handle, true
	}

	params := CodecParams{
		FrameDurationUs: conf.FrameDurationUs,
		SampleRateHz:    conf.SampleRateHz,
		PCMSampleRateHz: format.SampleRateHz,
		OctetsPerFrame:  conf.OctetsPerFrame,
	}
	left, err := codecs.NewDecoder(params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	right, err := codecs.NewDecoder(params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinkChannels = int(format.Channels)
	r.samples = samples
	r.octets = int(conf.OctetsPerFrame)
	r.leftHandle, r.hasLeft = leftHandle, hasLeft
	r.rightHandle, r.hasRight = rightHandle, hasRight
	r.left, r.right = left, right
	r.cache.clear()
	r.started = true
	return nil
}

// Stop releases the decoders and clears the reassembly cache.
func (r *Receiver) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = false
	r.left, r.right = nil, nil
	r.cache.clear()
}

// Started reports whether the receiver accepts frames.
func (r *Receiver) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// HandleFrame decodes one inbound frame captured at timestamp on the given
// channel. A frame whose size differs from the negotiated frame size is
// concealed.
func (r *Receiver) HandleFrame(handle uint16, timestamp uint32, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		r.metrics.FrameDropped(metrics.DropNotStarted)
		return ErrNotStarted
	}

	var (
		s   side
		dec Decoder
	)
	switch {
	case r.hasLeft && handle == r.leftHandle:
		s, dec = sideLeft, r.left
	case r.hasRight && handle == r.rightHandle:
		s, dec = sideRight, r.right
	default:
		r.metrics.FrameDropped(metrics.DropUnknownHandle)
		return fmt.Errorf("%w: 0x%04x", ErrUnknownChannel, handle)
	}

	stereo := r.hasLeft && r.hasRight
	if stereo && r.cache.stale(timestamp, s) {
		r.metrics.FrameDropped(metrics.DropStale)
		return fmt.Errorf("%w: %s channel at %d", ErrStaleFrame, s, timestamp)
	}

	concealed := len(data) != r.octets
	if concealed {
		data = nil
	}
	pcm := make([]int16, r.samples)
	begin := time.Now()
	if err := dec.Decode(data, pcm); err != nil {
		r.metrics.FrameDropped(metrics.DropCodecError)
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	r.metrics.FrameDecoded(concealed, time.Since(begin))

	if !stereo {
		return r.flushSide(s, pcm)
	}
	return r.reassemble(s, timestamp, pcm)
}

func (r *Receiver) reassemble(s side, ts uint32, pcm []int16) error {
	c := &r.cache

	if !c.valid {
		c.valid, c.pcm, c.timestamp, c.side = true, pcm, ts, s
		return nil
	}

	if c.side != s && c.timestamp == ts {
		left, right := c.pcm, pcm
		if s == sideLeft {
			left, right = pcm, c.pcm
		}
		c.valid, c.pcm = false, nil
		c.flushed, c.lastFlushed = true, ts
		return r.write(left, right)
	}

	// The other side skipped the cached interval, or the same side moved on.
	cached, cachedSide, cachedTS := c.pcm, c.side, c.timestamp
	c.pcm, c.timestamp, c.side = pcm, ts, s
	c.flushed, c.lastFlushed = true, cachedTS
	return r.flushSide(cachedSide, cached)
}

func (r *Receiver) flushSide(s side, pcm []int16) error {
	if s == sideLeft {
		return r.write(pcm, nil)
	}
	return r.write(nil, pcm)
}

func (r *Receiver) write(left, right []int16) error {
	out, err := MixToSink(left, right, r.sinkChannels)
	if err != nil {
		return err
	}
	if r.sink == nil {
		return nil
	}
	b := SamplesToBytes(out)
	n, err := r.sink(b)
	if err != nil {
		return fmt.Errorf("audio sink: %w", err)
	}
	if n != len(b) {
		logWarn(r.logger, "audio sink did not take all data", "written", n, "size", len(b))
	}
	return nil
}
