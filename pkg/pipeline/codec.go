package pipeline

import (
	"errors"
	"log/slog"
)

// Pipeline errors.
var (
	ErrNotStarted          = errors.New("pipeline not started")
	ErrShortBuffer         = errors.New("pcm buffer shorter than one interval")
	ErrOverrun             = errors.New("previous interval still being processed")
	ErrInvalidStreamConfig = errors.New("invalid stream configuration")
	ErrUnsupportedFormat   = errors.New("unsupported pcm format")
	ErrUnknownChannel      = errors.New("unknown channel handle")
	ErrStaleFrame          = errors.New("stale frame")
	ErrCodec               = errors.New("codec error")
)

// CodecParams configures one encoder or decoder instance.
type CodecParams struct {
	// FrameDurationUs is the codec frame interval.
	FrameDurationUs uint32

	// SampleRateHz is the over-the-air sampling rate.
	SampleRateHz uint32

	// PCMSampleRateHz is the rate of the PCM exchanged with the audio
	// subsystem. The codec resamples when it differs from SampleRateHz.
	PCMSampleRateHz uint32

	// OctetsPerFrame is the encoded size of one frame.
	OctetsPerFrame uint16
}

// Encoder encodes one frame of mono PCM into out, which has room for exactly
// one encoded frame.
type Encoder interface {
	Encode(pcm []int16, out []byte) error
}

// Decoder decodes one encoded frame into pcm. An empty frame requests loss
// concealment.
type Decoder interface {
	Decode(frame []byte, pcm []int16) error
}

// CodecFactory creates codec instances. The codec itself is an external
// component; this package only drives it.
type CodecFactory interface {
	NewEncoder(p CodecParams) (Encoder, error)
	NewDecoder(p CodecParams) (Decoder, error)
}

func logWarn(l *slog.Logger, msg string, args ...any) {
	if l != nil {
		l.Warn(msg, args...)
	}
}
