package model

import "errors"

// ErrEndpointNotFound is returned when a device has no endpoint with the given id.
var ErrEndpointNotFound = errors.New("endpoint not found")

// Endpoint is a negotiated stream terminus (ASE) on a peer device.
type Endpoint struct {
	// ID is the endpoint identifier, unique within the device.
	ID uint8

	// Direction is the stream direction.
	Direction Direction

	// Codec is the negotiated codec configuration.
	Codec CodecConfig

	// State is mirrored from the stream protocol.
	State AseState

	// ChannelHandle is the isochronous channel handle, 0 until established.
	ChannelHandle uint16

	// DataPath is the data path readiness.
	DataPath DataPathState
}

// IsActive reports whether the endpoint carries audio: it is streaming and
// its data path is established.
func (e *Endpoint) IsActive() bool {
	return e.State == AseStateStreaming && e.DataPath == DataPathEstablished
}
