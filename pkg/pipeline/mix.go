package pipeline

import (
	"encoding/binary"
	"fmt"
)

// Downmix converts interleaved stereo to mono. Each sample is halved before
// the sum so the intermediate cannot overflow, and the sum is halved again.
func Downmix(stereo []int16) []int16 {
	mono := make([]int16, len(stereo)/2)
	for i := range mono {
		l := int32(stereo[2*i] >> 1)
		r := int32(stereo[2*i+1] >> 1)
		mono[i] = int16((l + r) >> 1)
	}
	return mono
}

// Deinterleave splits interleaved PCM into left and right. Mono input is
// returned as both sides.
func Deinterleave(pcm []int16, channels int) (left, right []int16) {
	if channels == 1 {
		return pcm, pcm
	}
	n := len(pcm) / 2
	left = make([]int16, n)
	right = make([]int16, n)
	for i := 0; i < n; i++ {
		left[i] = pcm[2*i]
		right[i] = pcm[2*i+1]
	}
	return left, right
}

// MixToSink adapts decoded channels to the sink's channel count. A nil side
// means the link delivered only the other one.
//
//	both sides, stereo sink: interleave L,R
//	both sides, mono sink:   (l+r)/2
//	one side, mono sink:     passthrough
//	one side, stereo sink:   present side in its slot, other slot silent
func MixToSink(left, right []int16, sinkChannels int) ([]int16, error) {
	if left == nil && right == nil {
		return nil, fmt.Errorf("%w: no channel to mix", ErrInvalidStreamConfig)
	}
	if sinkChannels != 1 && sinkChannels != 2 {
		return nil, fmt.Errorf("%w: %d sink channels", ErrUnsupportedFormat, sinkChannels)
	}

	stereoLink := left != nil && right != nil
	switch {
	case stereoLink && sinkChannels == 2:
		out := make([]int16, 2*len(left))
		for i := range left {
			out[2*i] = left[i]
			out[2*i+1] = right[i]
		}
		return out, nil

	case stereoLink:
		out := make([]int16, len(left))
		for i := range left {
			out[i] = int16((int32(left[i]) + int32(right[i])) / 2)
		}
		return out, nil

	case sinkChannels == 1:
		if left != nil {
			return left, nil
		}
		return right, nil

	default:
		n := len(left)
		if left == nil {
			n = len(right)
		}
		out := make([]int16, 2*n)
		for i := 0; i < n; i++ {
			if left != nil {
				out[2*i] = left[i]
			}
			if right != nil {
				out[2*i+1] = right[i]
			}
		}
		return out, nil
	}
}

// BytesToSamples decodes little-endian 16-bit PCM.
func BytesToSamples(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out
}

// SamplesToBytes encodes 16-bit PCM as little-endian bytes.
func SamplesToBytes(s []int16) []byte {
	out := make([]byte, 2*len(s))
	for i, v := range s {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}
