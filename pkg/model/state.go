package model

// AseState is the link-layer state of a stream endpoint, mirrored from the
// stream protocol.
type AseState uint8

const (
	AseStateIdle AseState = iota
	AseStateCodecConfigured
	AseStateQoSConfigured
	AseStateEnabling
	AseStateStreaming
	AseStateDisabling
	AseStateReleasing
)

// String returns the state name.
func (s AseState) String() string {
	switch s {
	case AseStateIdle:
		return "IDLE"
	case AseStateCodecConfigured:
		return "CODEC_CONFIGURED"
	case AseStateQoSConfigured:
		return "QOS_CONFIGURED"
	case AseStateEnabling:
		return "ENABLING"
	case AseStateStreaming:
		return "STREAMING"
	case AseStateDisabling:
		return "DISABLING"
	case AseStateReleasing:
		return "RELEASING"
	default:
		return "UNKNOWN"
	}
}

// DataPathState is the state of an endpoint's isochronous data path.
type DataPathState uint8

const (
	DataPathIdle DataPathState = iota
	DataPathConfiguring
	DataPathEstablished
	DataPathRemoving
)

// String returns the state name.
func (s DataPathState) String() string {
	switch s {
	case DataPathIdle:
		return "IDLE"
	case DataPathConfiguring:
		return "CONFIGURING"
	case DataPathEstablished:
		return "ESTABLISHED"
	case DataPathRemoving:
		return "REMOVING"
	default:
		return "UNKNOWN"
	}
}

// GroupStreamStatus is reported by the stream protocol when a group reaches
// a new stream state.
type GroupStreamStatus uint8

const (
	StatusIdle GroupStreamStatus = iota
	StatusStreaming
	StatusReleasing
	StatusSuspending
	StatusSuspended
	StatusConfiguredAutonomous
	StatusConfiguredByUser
)

// String returns the status name.
func (s GroupStreamStatus) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusStreaming:
		return "STREAMING"
	case StatusReleasing:
		return "RELEASING"
	case StatusSuspending:
		return "SUSPENDING"
	case StatusSuspended:
		return "SUSPENDED"
	case StatusConfiguredAutonomous:
		return "CONFIGURED_AUTONOMOUS"
	case StatusConfiguredByUser:
		return "CONFIGURED_BY_USER"
	default:
		return "UNKNOWN"
	}
}
