package streamconf

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/leaudio/leaudio-go/pkg/model"
)

var (
	// ErrNoActiveStream is returned when no endpoint of the direction is active.
	ErrNoActiveStream = errors.New("no active stream")

	// ErrConfigMismatch is the category of every *MismatchError.
	ErrConfigMismatch = errors.New("stream configuration mismatch")
)

// MismatchError reports two active endpoints with different codec parameters.
type MismatchError struct {
	Direction model.Direction
	Field     string
	Want      uint32
	Got       uint32
	Device    model.Address
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s %s: %s want %d, device %s has %d",
		ErrConfigMismatch, e.Direction, e.Field, e.Want, e.Device, e.Got)
}

func (e *MismatchError) Unwrap() error { return ErrConfigMismatch }

// ChannelMapping ties an isochronous channel to the audio location it carries.
type ChannelMapping struct {
	Handle   uint16
	Location model.AudioLocation
}

// StreamConfiguration is the aggregated geometry of one direction of a group.
type StreamConfiguration struct {
	Direction       model.Direction
	DeviceCount     int
	ChannelCount    int
	SampleRateHz    uint32
	FrameDurationUs uint32
	OctetsPerFrame  uint16
	BlocksPerSDU    uint8

	// Allocation is the union of all stream locations.
	Allocation model.AudioLocation

	// Streams in membership order.
	Streams []ChannelMapping
}

// LeftHandle returns the channel carrying a left location. When several
// channels match, the last one wins.
func (c *StreamConfiguration) LeftHandle() (uint16, bool) {
	return c.lastMatching(model.LocationAnyLeft)
}

// RightHandle returns the channel carrying a right location. When several
// channels match, the last one wins.
func (c *StreamConfiguration) RightHandle() (uint16, bool) {
	return c.lastMatching(model.LocationAnyRight)
}

func (c *StreamConfiguration) lastMatching(mask model.AudioLocation) (uint16, bool) {
	var (
		handle uint16
		found  bool
	)
	for _, s := range c.Streams {
		if s.Location&mask != 0 {
			handle, found = s.Handle, true
		}
	}
	return handle, found
}

// HasHandle reports whether the configuration carries the given channel.
func (c *StreamConfiguration) HasHandle(handle uint16) bool {
	for _, s := range c.Streams {
		if s.Handle == handle {
			return true
		}
	}
	return false
}

// FrameSamples returns the PCM samples per channel in one frame.
func (c *StreamConfiguration) FrameSamples() (int, error) {
	return model.FrameSamples(c.FrameDurationUs, c.SampleRateHz)
}

// Recompute scans the active endpoints of dir across members, in membership
// order, and builds the aggregated configuration.
func Recompute(members []*model.Device, dir model.Direction) (*StreamConfiguration, error) {
	var conf *StreamConfiguration

	for _, d := range members {
		eps := d.ActiveEndpoints(dir)
		if len(eps) == 0 {
			continue
		}

		for _, ep := range eps {
			c := ep.Codec
			if conf == nil {
				conf = &StreamConfiguration{
					Direction:       dir,
					SampleRateHz:    c.SampleRateHz,
					FrameDurationUs: c.FrameDurationUs,
					OctetsPerFrame:  c.OctetsPerFrame,
					BlocksPerSDU:    c.BlocksPerSDU,
				}
			} else if err := conf.check(d.Address, c); err != nil {
				return nil, err
			}

			conf.ChannelCount += channelsOf(c)
			conf.Allocation |= c.Allocation
			conf.Streams = append(conf.Streams, ChannelMapping{Handle: ep.ChannelHandle, Location: c.Allocation})
		}
		conf.DeviceCount++
	}

	if conf == nil {
		return nil, ErrNoActiveStream
	}
	return conf, nil
}

func (c *StreamConfiguration) check(addr model.Address, codec model.CodecConfig) error {
	mismatch := func(field string, want, got uint32) error {
		return &MismatchError{Direction: c.Direction, Field: field, Want: want, Got: got, Device: addr}
	}
	switch {
	case codec.SampleRateHz != c.SampleRateHz:
		return mismatch("sample_rate", c.SampleRateHz, codec.SampleRateHz)
	case codec.FrameDurationUs != c.FrameDurationUs:
		return mismatch("frame_duration", c.FrameDurationUs, codec.FrameDurationUs)
	case codec.OctetsPerFrame != c.OctetsPerFrame:
		return mismatch("octets_per_frame", uint32(c.OctetsPerFrame), uint32(codec.OctetsPerFrame))
	}
	return nil
}

func channelsOf(c model.CodecConfig) int {
	if c.ChannelCount > 0 {
		return int(c.ChannelCount)
	}
	if n := bits.OnesCount32(uint32(c.Allocation)); n > 0 {
		return n
	}
	// mono location
	return 1
}
