package service

import (
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/pipeline"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// StreamProtocol is the external stream protocol: it negotiates endpoints,
// owns the group stream state and reports it back through Submit.
type StreamProtocol interface {
	StartStream(groupID int, ctx model.ContextType) bool
	StopStream(groupID int)
	SuspendStream(groupID int)
	ConfigureStream(groupID int, ctx model.ContextType) bool
	AttachDeviceToStream(groupID int, addr model.Address)

	// CodecConfiguration returns the PCM session configuration the group
	// would use for ctx in dir, false if the direction is unsupported.
	CodecConfiguration(groupID int, ctx model.ContextType, dir model.Direction) (model.SessionConfig, bool)

	// RemoteDelayMs is the presentation delay reported to the audio subsystem.
	RemoteDelayMs(groupID int, dir model.Direction) uint16

	// Inbound events forwarded by the orchestrator.
	HandleLinkLost(groupID int, addr model.Address)
	HandleChannelGroupCreated(groupID int, status uint8, handles []uint16)
	HandleChannelGroupRemoved(groupID int, status uint8)
	HandleChannelEstablished(groupID int, addr model.Address, ev ChannelEstablished)
	HandleChannelDisconnected(groupID int, addr model.Address, ev ChannelDisconnected)
	HandleDataPath(groupID int, addr model.Address, ev DataPathChanged)
	HandleLinkQuality(groupID int, addr model.Address, ev LinkQuality)
}

// Compile-time check: StreamProtocol serves the reconfiguration tracker.
var _ streamconf.CodecConfigProvider = StreamProtocol(nil)

// IsoChannels transmits encoded SDUs on isochronous channels.
type IsoChannels interface {
	SendData(handle uint16, sdu []byte) error
}

// AudioSession is one direction of the platform audio subsystem.
type AudioSession interface {
	Start(format model.SessionConfig) error
	Stop()
	Release()
	ConfirmStreamingRequest()
	CancelStreamingRequest()
	SuspendedForReconfiguration()
	UpdateRemoteDelay(ms uint16)
}

// SourceSession delivers PCM for the sink direction. The audio subsystem
// pushes buffers with Orchestrator.HandleAudioData.
type SourceSession interface {
	AudioSession
}

// SinkSession consumes PCM decoded from the source direction.
type SinkSession interface {
	AudioSession
	Write(pcm []byte) (int, error)
}

// AudioHAL hands out the two audio subsystem sessions. Each may be held by
// one client at a time.
type AudioHAL interface {
	AcquireSource() (SourceSession, error)
	AcquireSink() (SinkSession, error)
}

// LinkLayer opens and closes peer links. Outcomes are reported with the
// LinkConnected, LinkEncrypted, ServicesDiscovered, EndpointsRead and
// LinkDisconnected events.
type LinkLayer interface {
	// Connect requests a link. direct selects a user initiated connect
	// over a background one.
	Connect(addr model.Address, direct bool) error
	CancelConnect(addr model.Address, direct bool)
	Disconnect(addr model.Address, connID uint16, force bool)
	RequestEncryption(addr model.Address) error
	DiscoverServices(addr model.Address) error

	// ReadEndpointStates reads the initial endpoint states of a connected peer.
	ReadEndpointStates(addr model.Address)
}

// SetCoordinator resolves and edits coordinated set membership.
type SetCoordinator interface {
	// GroupID returns the set the device belongs to, model.GroupUnknown if none.
	GroupID(addr model.Address) int

	// AddDevice adds a device to a set. model.GroupUnknown asks the
	// coordinator to discover or allocate one; the result is reported with a
	// SetGroupAdded event.
	AddDevice(addr model.Address, groupID int)
	RemoveDevice(addr model.Address, groupID int)
}

// Callbacks receives the results of the orchestrator. Methods are invoked on
// the loop and must not block or call back into the orchestrator.
type Callbacks interface {
	OnConnectionState(state ConnectionState, addr model.Address)
	OnGroupStatus(groupID int, status GroupStatus)
	OnGroupNodeStatus(addr model.Address, groupID int, status GroupNodeStatus)
	OnAudioConf(conf AudioConf)
}

// Collaborators bundles the external components of an Orchestrator.
type Collaborators struct {
	Stream    StreamProtocol
	Iso       IsoChannels
	Audio     AudioHAL
	Link      LinkLayer
	Sets      SetCoordinator
	Codecs    pipeline.CodecFactory
	Callbacks Callbacks
}

func (c Collaborators) validate() error {
	if c.Stream == nil || c.Iso == nil || c.Audio == nil || c.Link == nil ||
		c.Sets == nil || c.Codecs == nil {
		return ErrInvalidConfig
	}
	return nil
}

// NoopCallbacks ignores all results.
type NoopCallbacks struct{}

func (NoopCallbacks) OnConnectionState(ConnectionState, model.Address)      {}
func (NoopCallbacks) OnGroupStatus(int, GroupStatus)                        {}
func (NoopCallbacks) OnGroupNodeStatus(model.Address, int, GroupNodeStatus) {}
func (NoopCallbacks) OnAudioConf(AudioConf)                                 {}

var _ Callbacks = NoopCallbacks{}
