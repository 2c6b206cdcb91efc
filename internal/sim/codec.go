package sim

import (
	"encoding/binary"
	"fmt"

	"github.com/leaudio/leaudio-go/pkg/pipeline"
)

// Codec is a lossy stand-in for a real audio codec. A frame carries the PCM
// decimated to fit the encoded frame size as little-endian 16-bit samples.
type Codec struct{}

var _ pipeline.CodecFactory = Codec{}

// NewEncoder returns an encoder for p.
func (Codec) NewEncoder(p pipeline.CodecParams) (pipeline.Encoder, error) {
	if p.OctetsPerFrame < 2 {
		return nil, fmt.Errorf("octets per frame %d too small", p.OctetsPerFrame)
	}
	return &encoder{}, nil
}

// NewDecoder returns a decoder for p.
func (Codec) NewDecoder(p pipeline.CodecParams) (pipeline.Decoder, error) {
	if p.OctetsPerFrame < 2 {
		return nil, fmt.Errorf("octets per frame %d too small", p.OctetsPerFrame)
	}
	return &decoder{}, nil
}

type encoder struct{}

func (e *encoder) Encode(pcm []int16, out []byte) error {
	n := len(out) / 2
	if n == 0 {
		return fmt.Errorf("output buffer of %d bytes", len(out))
	}
	clear(out)
	if len(pcm) == 0 {
		return nil
	}
	for i := range n {
		src := i * len(pcm) / n
		if src >= len(pcm) {
			break
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(pcm[src]))
	}
	return nil
}

type decoder struct {
	last []int16
}

func (d *decoder) Decode(frame []byte, pcm []int16) error {
	// Concealment repeats the last good frame.
	if len(frame) == 0 {
		if len(d.last) != len(pcm) {
			clear(pcm)
			return nil
		}
		copy(pcm, d.last)
		return nil
	}

	n := len(frame) / 2
	if n == 0 {
		return fmt.Errorf("frame of %d bytes", len(frame))
	}
	for i := range pcm {
		src := i * n / len(pcm)
		pcm[i] = int16(binary.LittleEndian.Uint16(frame[2*src:]))
	}
	if cap(d.last) < len(pcm) {
		d.last = make([]int16, len(pcm))
	}
	d.last = d.last[:len(pcm)]
	copy(d.last, pcm)
	return nil
}
