// Package sim provides in-memory stand-ins for the external components of an
// LE Audio client: peers reachable over a simulated link layer, a stream
// protocol that drives them to streaming, isochronous channels and a platform
// audio subsystem. Every outcome is reported asynchronously through a Poster,
// the way the real components do.
package sim

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/service"
)

// Simulation errors.
var (
	ErrUnknownPeer   = errors.New("unknown peer")
	ErrNotBound      = errors.New("network not bound to an orchestrator")
	ErrNotConnected  = errors.New("peer not connected")
	ErrSessionInUse  = errors.New("audio session in use")
	ErrUnknownHandle = errors.New("unknown channel handle")
)

// Poster delivers events without blocking. *service.Orchestrator satisfies it.
type Poster interface {
	Submit(ev service.Event) error
}

// PeerConfig describes one simulated peer.
type PeerConfig struct {
	Address model.Address

	// SetID is the coordinated set the peer belongs to, model.GroupUnknown
	// for a standalone device.
	SetID int

	SinkLocations   model.AudioLocation
	SourceLocations model.AudioLocation
	Contexts        model.AudioContexts
}

// Stats counts traffic seen by the network.
type Stats struct {
	SDUs  int
	Bytes int
}

type peer struct {
	cfg       PeerConfig
	reachable bool
	connID    uint16
	endpoints []model.Endpoint
}

func (p *peer) connected() bool {
	return p.connID != model.InvalidConnID
}

// Network is a set of simulated peers. It implements service.LinkLayer,
// service.SetCoordinator, service.StreamProtocol and service.IsoChannels.
type Network struct {
	mu     sync.Mutex
	logger *slog.Logger
	post   Poster

	peers      map[model.Address]*peer
	groups     map[int]*streamGroup
	nextConn   uint16
	nextHandle uint16
	nextSet    int
	traffic    map[uint16]Stats
}

var (
	_ service.LinkLayer      = (*Network)(nil)
	_ service.SetCoordinator = (*Network)(nil)
	_ service.IsoChannels    = (*Network)(nil)
)

// NewNetwork creates an empty network. logger may be nil.
func NewNetwork(logger *slog.Logger) *Network {
	return &Network{
		logger:     logger,
		peers:      make(map[model.Address]*peer),
		groups:     make(map[int]*streamGroup),
		nextConn:   0x0040,
		nextHandle: 0x0060,
		nextSet:    100,
		traffic:    make(map[uint16]Stats),
	}
}

// Bind sets the event destination. Events produced before Bind are dropped.
func (n *Network) Bind(p Poster) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.post = p
}

// AddPeer makes a peer reachable.
func (n *Network) AddPeer(cfg PeerConfig) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.peers[cfg.Address] = &peer{cfg: cfg, reachable: true, connID: model.InvalidConnID}
}

// Peers returns the configured peers sorted by address.
func (n *Network) Peers() []PeerConfig {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]PeerConfig, 0, len(n.peers))
	for _, p := range n.peers {
		out = append(out, p.cfg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address.String() < out[j].Address.String() })
	return out
}

// DropLink closes the link of a peer from the remote side and makes it
// unreachable until Restore.
func (n *Network) DropLink(addr model.Address) error {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok {
		n.mu.Unlock()
		return ErrUnknownPeer
	}
	p.reachable = false
	wasConnected := p.connected()
	evs := n.closeLinkLocked(p)
	n.mu.Unlock()

	if wasConnected {
		evs = append(evs, service.LinkDisconnected{Addr: addr})
	}
	n.emit(evs...)
	return nil
}

// Restore makes a dropped peer reachable again.
func (n *Network) Restore(addr model.Address) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	p, ok := n.peers[addr]
	if !ok {
		return ErrUnknownPeer
	}
	p.reachable = true
	return nil
}

// Traffic returns the SDU counters of one channel.
func (n *Network) Traffic(handle uint16) Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.traffic[handle]
}

// Link layer

// Connect opens a link. An unreachable peer fails a direct connect at once;
// a background connect stays pending silently.
func (n *Network) Connect(addr model.Address, direct bool) error {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok {
		n.mu.Unlock()
		return ErrUnknownPeer
	}
	if !p.reachable {
		n.mu.Unlock()
		if direct {
			n.emit(service.LinkConnected{Addr: addr, Err: ErrNotConnected})
		}
		return nil
	}
	if !p.connected() {
		p.connID = n.nextConn
		n.nextConn++
	}
	ev := service.LinkConnected{Addr: addr, ConnID: p.connID}
	n.mu.Unlock()

	n.debugLog("link up", "addr", addr, "conn", ev.ConnID)
	n.emit(ev)
	return nil
}

// CancelConnect is a no-op: connects complete immediately.
func (n *Network) CancelConnect(model.Address, bool) {}

// Disconnect closes a link from this side.
func (n *Network) Disconnect(addr model.Address, _ uint16, _ bool) {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok || !p.connected() {
		n.mu.Unlock()
		return
	}
	evs := n.closeLinkLocked(p)
	n.mu.Unlock()

	n.emit(append(evs, service.LinkDisconnected{Addr: addr, Local: true})...)
}

func (n *Network) closeLinkLocked(p *peer) []service.Event {
	var evs []service.Event
	for i := range p.endpoints {
		ep := &p.endpoints[i]
		if ep.ChannelHandle != 0 {
			evs = append(evs, service.ChannelDisconnected{Handle: ep.ChannelHandle, Reason: 0x08})
		}
	}
	p.connID = model.InvalidConnID
	p.endpoints = nil
	return evs
}

// RequestEncryption always succeeds on a connected peer.
func (n *Network) RequestEncryption(addr model.Address) error {
	if _, err := n.connectedPeer(addr); err != nil {
		return err
	}
	n.emit(service.LinkEncrypted{Addr: addr})
	return nil
}

// DiscoverServices reports the capabilities of a peer followed by the
// discovery result.
func (n *Network) DiscoverServices(addr model.Address) error {
	cfg, err := n.connectedPeer(addr)
	if err != nil {
		return err
	}
	n.emit(
		service.LocationsChanged{Addr: addr, Direction: model.DirectionSink, Locations: cfg.SinkLocations},
		service.LocationsChanged{Addr: addr, Direction: model.DirectionSource, Locations: cfg.SourceLocations},
		service.SupportedContextsChanged{Addr: addr, Contexts: cfg.Contexts},
		service.AvailableContextsChanged{Addr: addr, Contexts: cfg.Contexts},
		service.ServicesDiscovered{Addr: addr, SetMember: cfg.SetID != model.GroupUnknown},
	)
	return nil
}

// ReadEndpointStates reports the current endpoints of a peer.
func (n *Network) ReadEndpointStates(addr model.Address) {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok || !p.connected() {
		n.mu.Unlock()
		return
	}
	evs := make([]service.Event, 0, len(p.endpoints)+1)
	for _, ep := range p.endpoints {
		evs = append(evs, service.EndpointChanged{Addr: addr, Endpoint: ep})
	}
	n.mu.Unlock()

	n.emit(append(evs, service.EndpointsRead{Addr: addr})...)
}

func (n *Network) connectedPeer(addr model.Address) (PeerConfig, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	p, ok := n.peers[addr]
	if !ok {
		return PeerConfig{}, ErrUnknownPeer
	}
	if !p.connected() {
		return PeerConfig{}, ErrNotConnected
	}
	return p.cfg, nil
}

// Set coordination

// GroupID returns the coordinated set of a peer.
func (n *Network) GroupID(addr model.Address) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p, ok := n.peers[addr]; ok {
		return p.cfg.SetID
	}
	return model.GroupUnknown
}

// AddDevice moves a peer into a set. model.GroupUnknown allocates a new set.
func (n *Network) AddDevice(addr model.Address, groupID int) {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok {
		n.mu.Unlock()
		return
	}
	if groupID == model.GroupUnknown {
		groupID = n.nextSet
		n.nextSet++
		p.cfg.SetID = groupID
		n.mu.Unlock()
		n.emit(service.SetGroupAdded{Addr: addr, GroupID: groupID})
		return
	}
	p.cfg.SetID = groupID
	n.mu.Unlock()
	n.emit(service.SetMemberAdded{Addr: addr, GroupID: groupID})
}

// RemoveDevice takes a peer out of its set.
func (n *Network) RemoveDevice(addr model.Address, groupID int) {
	n.mu.Lock()
	p, ok := n.peers[addr]
	if !ok || p.cfg.SetID != groupID {
		n.mu.Unlock()
		return
	}
	p.cfg.SetID = model.GroupUnknown
	n.mu.Unlock()
	n.emit(service.SetMemberRemoved{Addr: addr, GroupID: groupID})
}

// Isochronous channels

// SendData counts an SDU sent on an established channel.
func (n *Network) SendData(handle uint16, sdu []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.handleInUseLocked(handle) {
		return ErrUnknownHandle
	}
	st := n.traffic[handle]
	st.SDUs++
	st.Bytes += len(sdu)
	n.traffic[handle] = st
	return nil
}

func (n *Network) handleInUseLocked(handle uint16) bool {
	for _, p := range n.peers {
		for _, ep := range p.endpoints {
			if ep.ChannelHandle == handle {
				return true
			}
		}
	}
	return false
}

func (n *Network) emit(evs ...service.Event) {
	n.mu.Lock()
	post := n.post
	n.mu.Unlock()
	if post == nil {
		n.debugLog("event dropped, network not bound")
		return
	}
	for _, ev := range evs {
		if err := post.Submit(ev); err != nil {
			n.warnLog("event dropped", "event", ev, "error", err)
		}
	}
}

func (n *Network) debugLog(msg string, args ...any) {
	if n.logger != nil {
		n.logger.Debug(msg, args...)
	}
}

func (n *Network) warnLog(msg string, args ...any) {
	if n.logger != nil {
		n.logger.Warn(msg, args...)
	}
}

// TotalTraffic sums the counters of every channel.
func (n *Network) TotalTraffic() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()
	var total Stats
	for _, st := range n.traffic {
		total.SDUs += st.SDUs
		total.Bytes += st.Bytes
	}
	return total
}
