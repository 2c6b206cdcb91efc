package log

import "time"

// NoGroup is the GroupID of events not tied to a group.
const NoGroup = -1

// Event is one entry of the session trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one orchestrator run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is the audio direction, if any.
	Direction Direction `cbor:"3,keyasint"`

	// Layer that produced the event.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// GroupID is the group concerned, NoGroup if none.
	GroupID int `cbor:"6,keyasint"`

	// Device is the peer address, if any.
	Device string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Request     *RequestEvent     `cbor:"10,keyasint,omitempty"`
	Status      *StatusEvent      `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction of the audio an event refers to.
type Direction uint8

const (
	// DirectionNone is used for events that concern both directions.
	DirectionNone Direction = 0
	// DirectionSink is host-to-peer audio.
	DirectionSink Direction = 1
	// DirectionSource is peer-to-host audio.
	DirectionSource Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "NONE"
	case DirectionSink:
		return "SINK"
	case DirectionSource:
		return "SOURCE"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which collaborator or component produced the event.
type Layer uint8

const (
	// LayerLink is the link layer (connect, disconnect, encryption).
	LayerLink Layer = 0
	// LayerStream is the stream protocol.
	LayerStream Layer = 1
	// LayerIso is the isochronous channel manager.
	LayerIso Layer = 2
	// LayerAudio is the platform audio subsystem.
	LayerAudio Layer = 3
	// LayerSession is the orchestrator itself.
	LayerSession Layer = 4
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerLink:
		return "LINK"
	case LayerStream:
		return "STREAM"
	case LayerIso:
		return "ISO"
	case LayerAudio:
		return "AUDIO"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRequest is a request issued to a collaborator.
	CategoryRequest Category = 0
	// CategoryStatus is a status reported by a collaborator.
	CategoryStatus Category = 1
	// CategoryState is a state change.
	CategoryState Category = 2
	// CategoryError is an error.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRequest:
		return "REQUEST"
	case CategoryStatus:
		return "STATUS"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RequestEvent captures a request to a collaborator and its immediate result.
type RequestEvent struct {
	// Operation such as "start_stream" or "cancel_streaming_request".
	Operation string `cbor:"1,keyasint"`

	// Context is the audio context of stream requests.
	Context string `cbor:"2,keyasint,omitempty"`

	// Accepted reports whether the collaborator took the request.
	Accepted bool `cbor:"3,keyasint"`
}

// StatusEvent captures a status reported by a collaborator.
type StatusEvent struct {
	// Status name, for example "STREAMING".
	Status string `cbor:"1,keyasint"`

	// Detail is optional extra information.
	Detail string `cbor:"2,keyasint,omitempty"`
}

// StateChangeEvent captures a lifecycle change.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change, for sessions the matched transition rule.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what changed state.
type StateEntity uint8

const (
	// StateEntityAudio is an audio session direction.
	StateEntityAudio StateEntity = 0
	// StateEntityGroup is the active group selection.
	StateEntityGroup StateEntity = 1
	// StateEntityLink is a device link.
	StateEntityLink StateEntity = 2
	// StateEntityTimer is the suspend timer.
	StateEntityTimer StateEntity = 3
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityAudio:
		return "AUDIO"
	case StateEntityGroup:
		return "GROUP"
	case StateEntityLink:
		return "LINK"
	case StateEntityTimer:
		return "TIMER"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
