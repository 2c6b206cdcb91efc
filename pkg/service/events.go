package service

import (
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// Event is an asynchronous notification delivered to the orchestrator with
// Submit or Deliver. Dispatch maps each type to exactly one handler.
type Event interface {
	eventName() string
}

// Link layer events.

// LinkConnected reports the outcome of a connect request.
type LinkConnected struct {
	Addr   model.Address
	ConnID uint16
	Err    error
}

// LinkEncrypted reports the outcome of RequestEncryption.
type LinkEncrypted struct {
	Addr model.Address
	Err  error
}

// ServicesDiscovered reports that service discovery completed.
type ServicesDiscovered struct {
	Addr model.Address
	Err  error

	// SetMember is set when the peer exposes a coordinated set member
	// service; its group is then reported by the set coordinator.
	SetMember bool
}

// EndpointsRead reports that the initial endpoint state read completed.
type EndpointsRead struct {
	Addr model.Address
}

// LinkDisconnected reports a closed link. Local is set when this side closed it.
type LinkDisconnected struct {
	Addr  model.Address
	Local bool
}

// Capability and endpoint notifications, parsed by the stream protocol.

// LocationsChanged carries new audio locations of one direction.
type LocationsChanged struct {
	Addr      model.Address
	Direction model.Direction
	Locations model.AudioLocation
}

// AvailableContextsChanged carries the contexts a peer can serve right now.
type AvailableContextsChanged struct {
	Addr     model.Address
	Contexts model.AudioContexts
}

// SupportedContextsChanged carries the contexts a peer can ever serve.
type SupportedContextsChanged struct {
	Addr     model.Address
	Contexts model.AudioContexts
}

// EndpointChanged mirrors an endpoint of a peer.
type EndpointChanged struct {
	Addr     model.Address
	Endpoint model.Endpoint
}

// Stream protocol events.

// GroupStateChanged mirrors the current and target state of a group.
type GroupStateChanged struct {
	GroupID int
	State   model.AseState
	Target  model.AseState
}

// StreamStatus is the stream protocol's status report for a group.
type StreamStatus struct {
	GroupID int
	Status  model.GroupStreamStatus
}

// StateTransitionTimeout reports that a group failed to reach its target state.
type StateTransitionTimeout struct {
	GroupID int
}

// Isochronous channel events.

// ChannelGroupCreated reports channel group creation.
type ChannelGroupCreated struct {
	GroupID int
	Status  uint8
	Handles []uint16
}

// ChannelGroupRemoved reports channel group removal.
type ChannelGroupRemoved struct {
	GroupID int
	Status  uint8
}

// ChannelEstablished reports an established channel.
type ChannelEstablished struct {
	Handle uint16
	Status uint8

	// Transport latency and maximum PDU per direction, indexed by
	// model.Direction.Index. A zero MaxPDU means the direction is unused.
	TransportLatencyUs [2]uint32
	MaxPDU             [2]uint16
}

// ChannelDisconnected reports a closed channel.
type ChannelDisconnected struct {
	Handle uint16
	Reason uint8
}

// DataPathChanged reports a data path setup or removal on a channel.
type DataPathChanged struct {
	Handle uint16
	Setup  bool
	Status uint8
}

// LinkQuality carries channel quality counters.
type LinkQuality struct {
	Handle              uint16
	TxUnackedPackets    uint32
	TxFlushedPackets    uint32
	TxLastSubevent      uint32
	RetransmittedPkts   uint32
	CRCErrorPackets     uint32
	RxUnreceivedPackets uint32
	DuplicatePackets    uint32
}

// Audio subsystem events.

// AudioResume is a resume request for one direction.
type AudioResume struct {
	Direction model.Direction
}

// AudioSuspend is a suspend request for one direction.
type AudioSuspend struct {
	Direction model.Direction
}

// AudioMetadata carries the tracks currently playing.
type AudioMetadata struct {
	Tracks []streamconf.Track
}

// Set coordination events.

// SetGroupAdded reports the set a device was found to belong to.
type SetGroupAdded struct {
	Addr    model.Address
	GroupID int
}

// SetMemberAdded reports a new member of a known set.
type SetMemberAdded struct {
	Addr    model.Address
	GroupID int
}

// SetMemberRemoved reports a device leaving a set.
type SetMemberRemoved struct {
	Addr    model.Address
	GroupID int
}

// suspendTimeout is posted by the suspend timer.
type suspendTimeout struct {
	groupID int
}

// channelFault is posted by the real-time paths on a protocol inconsistency.
type channelFault struct {
	groupID int
	err     error
}

func (LinkConnected) eventName() string            { return "link_connected" }
func (LinkEncrypted) eventName() string            { return "link_encrypted" }
func (ServicesDiscovered) eventName() string       { return "services_discovered" }
func (EndpointsRead) eventName() string            { return "endpoints_read" }
func (LinkDisconnected) eventName() string         { return "link_disconnected" }
func (LocationsChanged) eventName() string         { return "locations_changed" }
func (AvailableContextsChanged) eventName() string { return "available_contexts_changed" }
func (SupportedContextsChanged) eventName() string { return "supported_contexts_changed" }
func (EndpointChanged) eventName() string          { return "endpoint_changed" }
func (GroupStateChanged) eventName() string        { return "group_state_changed" }
func (StreamStatus) eventName() string             { return "stream_status" }
func (StateTransitionTimeout) eventName() string   { return "state_transition_timeout" }
func (ChannelGroupCreated) eventName() string      { return "channel_group_created" }
func (ChannelGroupRemoved) eventName() string      { return "channel_group_removed" }
func (ChannelEstablished) eventName() string       { return "channel_established" }
func (ChannelDisconnected) eventName() string      { return "channel_disconnected" }
func (DataPathChanged) eventName() string          { return "data_path_changed" }
func (LinkQuality) eventName() string              { return "link_quality" }
func (AudioResume) eventName() string              { return "audio_resume" }
func (AudioSuspend) eventName() string             { return "audio_suspend" }
func (AudioMetadata) eventName() string            { return "audio_metadata" }
func (SetGroupAdded) eventName() string            { return "set_group_added" }
func (SetMemberAdded) eventName() string           { return "set_member_added" }
func (SetMemberRemoved) eventName() string         { return "set_member_removed" }
func (suspendTimeout) eventName() string           { return "suspend_timeout" }
func (channelFault) eventName() string             { return "channel_fault" }
