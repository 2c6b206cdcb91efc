package model

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInterval is returned for frame intervals other than 7.5 ms and 10 ms.
var ErrUnsupportedInterval = errors.New("unsupported frame interval")

// Supported codec frame intervals in microseconds.
const (
	FrameInterval7500us  = 7500
	FrameInterval10000us = 10000
)

// CodecConfig is the negotiated codec configuration of one endpoint.
type CodecConfig struct {
	// SampleRateHz is the over-the-air sampling frequency.
	SampleRateHz uint32

	// FrameDurationUs is the codec frame interval (7500 or 10000).
	FrameDurationUs uint32

	// OctetsPerFrame is the encoded size of one codec frame for one channel.
	OctetsPerFrame uint16

	// ChannelCount is the number of audio channels carried by the endpoint.
	ChannelCount uint8

	// Allocation is the audio location the endpoint renders or captures.
	Allocation AudioLocation

	// BlocksPerSDU is the number of codec frame blocks per SDU.
	BlocksPerSDU uint8
}

// SessionConfig describes one audio HAL session: the PCM format exchanged
// with the platform audio subsystem for one direction.
type SessionConfig struct {
	Channels       uint8
	SampleRateHz   uint32
	BitsPerSample  uint8
	DataIntervalUs uint32
}

// InvalidSessionConfig marks a direction that is unsupported for the current
// context.
var InvalidSessionConfig = SessionConfig{}

// IsInvalid reports whether c is the invalid-configuration sentinel.
func (c SessionConfig) IsInvalid() bool {
	return c == InvalidSessionConfig
}

// BytesPerFrame returns the PCM byte count of one interval for all channels.
func (c SessionConfig) BytesPerFrame() (int, error) {
	samples, err := FrameSamples(c.DataIntervalUs, c.SampleRateHz)
	if err != nil {
		return 0, err
	}
	return samples * int(c.Channels) * int(c.BitsPerSample/8), nil
}

// String returns a compact description.
func (c SessionConfig) String() string {
	if c.IsInvalid() {
		return "invalid"
	}
	return fmt.Sprintf("%dch %dHz %dbit %dus", c.Channels, c.SampleRateHz, c.BitsPerSample, c.DataIntervalUs)
}

// FrameSamples returns the number of PCM samples per channel in one codec
// frame of intervalUs at hz.
func FrameSamples(intervalUs, hz uint32) (int, error) {
	switch intervalUs {
	case FrameInterval10000us:
		if hz == 44100 {
			return 480, nil
		}
		return int(hz / 100), nil
	case FrameInterval7500us:
		if hz == 44100 {
			return 360, nil
		}
		return int(hz * 3 / 400), nil
	default:
		return 0, fmt.Errorf("%w: %dus", ErrUnsupportedInterval, intervalUs)
	}
}
