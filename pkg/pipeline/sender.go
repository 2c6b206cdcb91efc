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

// SendFunc transmits one SDU on an isochronous channel.
type SendFunc func(handle uint16, sdu []byte) error

// SenderConfig configures a Sender.
type SenderConfig struct {
	Send    SendFunc
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Sender encodes outbound PCM for one or two devices.
type Sender struct {
	mu sync.Mutex

	send    SendFunc
	metrics *metrics.Metrics
	logger  *slog.Logger

	started  bool
	conf     *streamconf.StreamConfiguration
	channels int
	samples  int
	interval time.Duration

	left, right Encoder
}

// NewSender creates a stopped sender.
func NewSender(cfg SenderConfig) *Sender {
	return &Sender{
		send:    cfg.Send,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Start sets up left and right encoders for conf. format is the PCM format
// delivered by the audio subsystem.
func (s *Sender) Start(conf *streamconf.StreamConfiguration, codecs CodecFactory, format model.SessionConfig) error {
	if conf == nil || conf.DeviceCount < 1 || conf.DeviceCount > 2 || len(conf.Streams) == 0 {
		return ErrInvalidStreamConfig
	}
	if conf.DeviceCount == 2 {
		_, hasLeft := conf.LeftHandle()
		_, hasRight := conf.RightHandle()
		if !hasLeft && !hasRight {
			return fmt.Errorf("%w: no left or right channel", ErrInvalidStreamConfig)
		}
	}
	if (format.Channels != 1 && format.Channels != 2) || format.BitsPerSample != 16 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	samples, err := model.FrameSamples(format.DataIntervalUs, format.SampleRateHz)
	if err != nil {
		return err
	}

	params := CodecParams{
		FrameDurationUs: conf.FrameDurationUs,
		SampleRateHz:    conf.SampleRateHz,
		PCMSampleRateHz: format.SampleRateHz,
		OctetsPerFrame:  conf.OctetsPerFrame,
	}
	left, err := codecs.NewEncoder(params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	right, err := codecs.NewEncoder(params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conf = conf
	s.channels = int(format.Channels)
	s.samples = samples
	s.interval = time.Duration(format.DataIntervalUs) * time.Microsecond
	s.left, s.right = left, right
	s.started = true
	return nil
}

// Stop releases the encoders.
func (s *Sender) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
	s.conf = nil
	s.left, s.right = nil, nil
}

// Started reports whether the sender accepts PCM.
func (s *Sender) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Process encodes one interval of interleaved PCM and sends it. Intervals
// arriving while the previous one is still being processed are dropped with
// ErrOverrun.
func (s *Sender) Process(pcm []byte) error {
	if !s.mu.TryLock() {
		s.metrics.FrameDropped(metrics.DropOverrun)
		return ErrOverrun
	}
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	need := 2 * s.channels * s.samples
	if len(pcm) < need {
		s.metrics.FrameDropped(metrics.DropShortBuffer)
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortBuffer, len(pcm), need)
	}
	in := BytesToSamples(pcm[:need])

	begin := time.Now()
	var (
		frames int
		err    error
	)
	if s.conf.DeviceCount == 2 {
		frames, err = s.sendToTwoDevices(in)
	} else {
		frames, err = s.sendToSingleDevice(in)
	}
	elapsed := time.Since(begin)
	if err != nil {
		return err
	}

	s.metrics.FrameEncoded(frames, elapsed)
	if elapsed > s.interval {
		logWarn(s.logger, "encode exceeded frame interval", "elapsed", elapsed, "interval", s.interval)
	}
	return nil
}

func (s *Sender) mono(in []int16) []int16 {
	if s.channels == 1 {
		return in
	}
	return Downmix(in)
}

func (s *Sender) sendToTwoDevices(in []int16) (int, error) {
	leftHandle, hasLeft := s.conf.LeftHandle()
	rightHandle, hasRight := s.conf.RightHandle()

	var l, r []int16
	if hasLeft && hasRight {
		l, r = Deinterleave(in, s.channels)
	} else {
		m := s.mono(in)
		l, r = m, m
	}

	frames := 0
	if hasLeft {
		if err := s.encodeAndSend(s.left, l, leftHandle); err != nil {
			return frames, err
		}
		frames++
	}
	if hasRight {
		if err := s.encodeAndSend(s.right, r, rightHandle); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}

func (s *Sender) sendToSingleDevice(in []int16) (int, error) {
	handle := s.conf.Streams[0].Handle
	octets := int(s.conf.OctetsPerFrame)

	if s.conf.ChannelCount <= 1 {
		return 1, s.encodeAndSend(s.left, s.mono(in), handle)
	}

	l, r := Deinterleave(in, s.channels)
	sdu := make([]byte, 2*octets)
	if err := s.encode(s.left, l, sdu[:octets]); err != nil {
		return 0, err
	}
	if err := s.encode(s.right, r, sdu[octets:]); err != nil {
		return 0, err
	}
	return 2, s.transmit(handle, sdu)
}

func (s *Sender) encodeAndSend(enc Encoder, pcm []int16, handle uint16) error {
	out := make([]byte, s.conf.OctetsPerFrame)
	if err := s.encode(enc, pcm, out); err != nil {
		return err
	}
	return s.transmit(handle, out)
}

func (s *Sender) encode(enc Encoder, pcm []int16, out []byte) error {
	if err := enc.Encode(pcm, out); err != nil {
		s.metrics.FrameDropped(metrics.DropCodecError)
		return fmt.Errorf("%w: %w", ErrCodec, err)
	}
	return nil
}

func (s *Sender) transmit(handle uint16, sdu []byte) error {
	if s.send == nil {
		return nil
	}
	if err := s.send(handle, sdu); err != nil {
		s.metrics.FrameDropped(metrics.DropSendError)
		return fmt.Errorf("send on channel 0x%04x: %w", handle, err)
	}
	return nil
}
