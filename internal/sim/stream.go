package sim

import (
	"math/bits"
	"sort"

	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/service"
)

// Session formats offered to the audio subsystem.
var (
	SinkSessionConfig   = model.SessionConfig{Channels: 2, SampleRateHz: 48000, BitsPerSample: 16, DataIntervalUs: model.FrameInterval10000us}
	SourceSessionConfig = model.SessionConfig{Channels: 1, SampleRateHz: 16000, BitsPerSample: 16, DataIntervalUs: model.FrameInterval10000us}
)

// Codec configurations negotiated per endpoint.
var (
	sinkCodec   = model.CodecConfig{SampleRateHz: 48000, FrameDurationUs: model.FrameInterval10000us, OctetsPerFrame: 100, ChannelCount: 1, BlocksPerSDU: 1}
	sourceCodec = model.CodecConfig{SampleRateHz: 16000, FrameDurationUs: model.FrameInterval10000us, OctetsPerFrame: 40, ChannelCount: 1, BlocksPerSDU: 1}
)

// bidirectional lists the contexts that open the source direction.
var bidirectional = model.ContextsOf(model.ContextConversational, model.ContextVoiceAssistants)

const (
	remoteDelayMs      = 40
	transportLatencyUs = 20000
	reasonLocalHost    = 0x16
)

type streamGroup struct {
	state model.AseState
	ctx   model.ContextType
	cig   bool
}

var _ service.StreamProtocol = (*Network)(nil)

func (n *Network) groupLocked(id int) *streamGroup {
	g, ok := n.groups[id]
	if !ok {
		g = &streamGroup{}
		n.groups[id] = g
	}
	return g
}

// connectedPeersLocked returns every connected peer in address order.
func (n *Network) connectedPeersLocked() []*peer {
	var out []*peer
	for _, p := range n.peers {
		if p.connected() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].cfg.Address.String() < out[j].cfg.Address.String() })
	return out
}

// setMembersLocked returns the peers of a set in address order.
func (n *Network) setMembersLocked(groupID int, connectedOnly bool) []*peer {
	var out []*peer
	for _, p := range n.peers {
		if p.cfg.SetID != groupID {
			continue
		}
		if connectedOnly && !p.connected() {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].cfg.Address.String() < out[j].cfg.Address.String() })
	return out
}

// CodecConfiguration offers the sink direction whenever a member renders
// audio and the source direction for bidirectional contexts only.
func (n *Network) CodecConfiguration(groupID int, ctx model.ContextType, dir model.Direction) (model.SessionConfig, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, p := range n.setMembersLocked(groupID, false) {
		switch {
		case dir == model.DirectionSink && p.cfg.SinkLocations != 0:
			return SinkSessionConfig, true
		case dir == model.DirectionSource && p.cfg.SourceLocations != 0 && bidirectional.Has(ctx):
			return SourceSessionConfig, true
		}
	}
	return model.InvalidSessionConfig, false
}

// RemoteDelayMs returns a fixed presentation delay.
func (n *Network) RemoteDelayMs(int, model.Direction) uint16 {
	return remoteDelayMs
}

// StartStream configures and enables the endpoints of every connected member.
// A group already streaming only takes the new context as metadata.
func (n *Network) StartStream(groupID int, ctx model.ContextType) bool {
	n.mu.Lock()
	members := n.setMembersLocked(groupID, true)
	if len(members) == 0 {
		n.mu.Unlock()
		return false
	}
	g := n.groupLocked(groupID)
	if g.state == model.AseStateStreaming {
		g.ctx = ctx
		n.mu.Unlock()
		return true
	}

	evs := []service.Event{service.GroupStateChanged{GroupID: groupID, State: g.state, Target: model.AseStateStreaming}}
	for _, p := range members {
		n.buildEndpointsLocked(p, ctx)
	}
	if !g.cig {
		var handles []uint16
		for _, p := range members {
			for _, ep := range p.endpoints {
				handles = append(handles, ep.ChannelHandle)
			}
		}
		evs = append(evs, service.ChannelGroupCreated{GroupID: groupID, Handles: handles})
		g.cig = true
	}
	for _, p := range members {
		evs = append(evs, enableEvents(p)...)
	}
	g.state = model.AseStateStreaming
	g.ctx = ctx
	evs = append(evs,
		service.GroupStateChanged{GroupID: groupID, State: model.AseStateStreaming, Target: model.AseStateStreaming},
		service.StreamStatus{GroupID: groupID, Status: model.StatusStreaming},
	)
	n.mu.Unlock()

	n.debugLog("stream started", "group", groupID, "context", ctx, "members", len(members))
	n.emit(evs...)
	return true
}

// StopStream releases every endpoint and the channel group.
func (n *Network) StopStream(groupID int) {
	n.mu.Lock()
	g := n.groupLocked(groupID)
	if g.state == model.AseStateIdle && !g.cig {
		n.mu.Unlock()
		return
	}

	evs := []service.Event{
		service.GroupStateChanged{GroupID: groupID, State: g.state, Target: model.AseStateIdle},
		service.StreamStatus{GroupID: groupID, Status: model.StatusReleasing},
	}
	for _, p := range n.setMembersLocked(groupID, true) {
		evs = append(evs, n.disableLocked(p, model.AseStateIdle)...)
	}
	g.state = model.AseStateIdle
	if g.cig {
		g.cig = false
		evs = append(evs, service.ChannelGroupRemoved{GroupID: groupID})
	}
	evs = append(evs,
		service.GroupStateChanged{GroupID: groupID, State: model.AseStateIdle, Target: model.AseStateIdle},
		service.StreamStatus{GroupID: groupID, Status: model.StatusIdle},
	)
	n.mu.Unlock()

	n.debugLog("stream stopped", "group", groupID)
	n.emit(evs...)
}

// SuspendStream disables the endpoints but keeps their configuration.
func (n *Network) SuspendStream(groupID int) {
	n.mu.Lock()
	g := n.groupLocked(groupID)
	if g.state != model.AseStateStreaming {
		n.mu.Unlock()
		return
	}

	evs := []service.Event{
		service.GroupStateChanged{GroupID: groupID, State: g.state, Target: model.AseStateQoSConfigured},
		service.StreamStatus{GroupID: groupID, Status: model.StatusSuspending},
	}
	for _, p := range n.setMembersLocked(groupID, true) {
		evs = append(evs, n.disableLocked(p, model.AseStateQoSConfigured)...)
	}
	g.state = model.AseStateQoSConfigured
	evs = append(evs,
		service.GroupStateChanged{GroupID: groupID, State: g.state, Target: g.state},
		service.StreamStatus{GroupID: groupID, Status: model.StatusSuspended},
	)
	n.mu.Unlock()

	n.emit(evs...)
}

// ConfigureStream applies the configuration of ctx without enabling it.
func (n *Network) ConfigureStream(groupID int, ctx model.ContextType) bool {
	n.mu.Lock()
	if len(n.setMembersLocked(groupID, true)) == 0 {
		n.mu.Unlock()
		return false
	}
	g := n.groupLocked(groupID)
	g.ctx = ctx
	g.state = model.AseStateCodecConfigured
	n.mu.Unlock()

	n.emit(
		service.GroupStateChanged{GroupID: groupID, State: model.AseStateCodecConfigured, Target: model.AseStateCodecConfigured},
		service.StreamStatus{GroupID: groupID, Status: model.StatusConfiguredByUser},
	)
	return true
}

// AttachDeviceToStream brings a late member into a streaming group.
func (n *Network) AttachDeviceToStream(groupID int, addr model.Address) {
	n.mu.Lock()
	p, ok := n.peers[addr]
	g := n.groupLocked(groupID)
	if !ok || !p.connected() || g.state != model.AseStateStreaming {
		n.mu.Unlock()
		return
	}
	n.buildEndpointsLocked(p, g.ctx)
	evs := enableEvents(p)
	n.mu.Unlock()

	n.debugLog("device attached", "group", groupID, "addr", addr)
	n.emit(evs...)
}

// HandleLinkLost idles a group once its last member is gone.
func (n *Network) HandleLinkLost(groupID int, addr model.Address) {
	n.mu.Lock()
	g, ok := n.groups[groupID]
	if !ok || len(n.setMembersLocked(groupID, true)) > 0 || g.state == model.AseStateIdle {
		n.mu.Unlock()
		return
	}
	g.state = model.AseStateIdle
	g.cig = false
	n.mu.Unlock()

	n.debugLog("group lost its last member", "group", groupID, "addr", addr)
	n.emit(
		service.GroupStateChanged{GroupID: groupID, State: model.AseStateIdle, Target: model.AseStateIdle},
		service.StreamStatus{GroupID: groupID, Status: model.StatusIdle},
	)
}

func (n *Network) HandleChannelGroupCreated(groupID int, status uint8, handles []uint16) {
	n.debugLog("channel group created", "group", groupID, "status", status, "channels", len(handles))
}

func (n *Network) HandleChannelGroupRemoved(groupID int, status uint8) {
	n.debugLog("channel group removed", "group", groupID, "status", status)
}

func (n *Network) HandleChannelEstablished(groupID int, addr model.Address, ev service.ChannelEstablished) {
	n.debugLog("channel established", "group", groupID, "addr", addr, "handle", ev.Handle)
}

func (n *Network) HandleChannelDisconnected(groupID int, addr model.Address, ev service.ChannelDisconnected) {
	n.debugLog("channel disconnected", "group", groupID, "addr", addr, "handle", ev.Handle)
}

func (n *Network) HandleDataPath(int, model.Address, service.DataPathChanged) {}

func (n *Network) HandleLinkQuality(groupID int, addr model.Address, ev service.LinkQuality) {
	n.debugLog("link quality", "group", groupID, "addr", addr, "crc_errors", ev.CRCErrorPackets)
}

// buildEndpointsLocked creates one sink endpoint per sink location bit and,
// for bidirectional contexts, one source endpoint.
func (n *Network) buildEndpointsLocked(p *peer, ctx model.ContextType) {
	p.endpoints = p.endpoints[:0]
	id := uint8(1)

	locs := uint32(p.cfg.SinkLocations)
	for locs != 0 {
		bit := model.AudioLocation(1 << bits.TrailingZeros32(locs))
		locs &^= uint32(bit)
		codec := sinkCodec
		codec.Allocation = bit
		p.endpoints = append(p.endpoints, n.newEndpointLocked(id, model.DirectionSink, codec))
		id++
	}

	if p.cfg.SourceLocations != 0 && bidirectional.Has(ctx) {
		low := uint32(p.cfg.SourceLocations)
		codec := sourceCodec
		codec.Allocation = model.AudioLocation(low & -low)
		p.endpoints = append(p.endpoints, n.newEndpointLocked(id, model.DirectionSource, codec))
	}
}

func (n *Network) newEndpointLocked(id uint8, dir model.Direction, codec model.CodecConfig) model.Endpoint {
	h := n.nextHandle
	n.nextHandle++
	return model.Endpoint{
		ID:            id,
		Direction:     dir,
		Codec:         codec,
		State:         model.AseStateStreaming,
		ChannelHandle: h,
		DataPath:      model.DataPathEstablished,
	}
}

func enableEvents(p *peer) []service.Event {
	var evs []service.Event
	for _, ep := range p.endpoints {
		var est service.ChannelEstablished
		est.Handle = ep.ChannelHandle
		est.TransportLatencyUs[ep.Direction.Index()] = transportLatencyUs
		est.MaxPDU[ep.Direction.Index()] = ep.Codec.OctetsPerFrame
		evs = append(evs,
			service.EndpointChanged{Addr: p.cfg.Address, Endpoint: ep},
			est,
			service.DataPathChanged{Handle: ep.ChannelHandle, Setup: true},
		)
	}
	return evs
}

// disableLocked closes the channels of a peer and moves its endpoints to state.
func (n *Network) disableLocked(p *peer, state model.AseState) []service.Event {
	var evs []service.Event
	for i := range p.endpoints {
		ep := &p.endpoints[i]
		if ep.ChannelHandle != 0 {
			evs = append(evs, service.ChannelDisconnected{Handle: ep.ChannelHandle, Reason: reasonLocalHost})
		}
		ep.State = state
		ep.ChannelHandle = 0
		ep.DataPath = model.DataPathIdle
		evs = append(evs, service.EndpointChanged{Addr: p.cfg.Address, Endpoint: *ep})
	}
	return evs
}
