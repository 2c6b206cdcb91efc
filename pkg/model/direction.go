package model

// Direction of an audio stream, named from the peer's point of view.
type Direction uint8

const (
	// DirectionSink is host-to-peer audio (the peer is a speaker).
	DirectionSink Direction = 0

	// DirectionSource is peer-to-host audio (the peer is a microphone).
	DirectionSource Direction = 1
)

// Directions lists both directions in processing order.
var Directions = [2]Direction{DirectionSink, DirectionSource}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionSink:
		return "SINK"
	case DirectionSource:
		return "SOURCE"
	default:
		return "UNKNOWN"
	}
}

// Other returns the opposite direction.
func (d Direction) Other() Direction {
	if d == DirectionSink {
		return DirectionSource
	}
	return DirectionSink
}

// Index returns 0 for sink and 1 for source, for use as an array index.
func (d Direction) Index() int {
	return int(d & 1)
}
