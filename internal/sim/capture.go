package sim

import (
	"context"
	"time"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// ChannelFeeder accepts inbound frames from isochronous channels.
type ChannelFeeder interface {
	HandleChannelData(handle uint16, timestamp uint32, data []byte) error
}

// Capture sends one frame per source channel and frame interval to f until
// ctx is done, the way microphones of streaming peers would.
func (n *Network) Capture(ctx context.Context, f ChannelFeeder) (delivered, rejected int) {
	ticker := time.NewTicker(model.FrameInterval10000us * time.Microsecond)
	defer ticker.Stop()

	var ts uint32
	for {
		select {
		case <-ctx.Done():
			return delivered, rejected
		case <-ticker.C:
		}
		ts += model.FrameInterval10000us
		for _, ch := range n.sourceChannels() {
			frame := make([]byte, ch.octets)
			for i := range frame {
				frame[i] = byte(ts>>8) + byte(i)
			}
			if err := f.HandleChannelData(ch.handle, ts, frame); err != nil {
				rejected++
				continue
			}
			delivered++
		}
	}
}

type channel struct {
	handle uint16
	octets uint16
}

func (n *Network) sourceChannels() []channel {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []channel
	for _, p := range n.connectedPeersLocked() {
		for _, ep := range p.endpoints {
			if ep.Direction == model.DirectionSource && ep.IsActive() {
				out = append(out, channel{handle: ep.ChannelHandle, octets: ep.Codec.OctetsPerFrame})
			}
		}
	}
	return out
}
