package model

// InvalidConnID marks a device without an open link.
const InvalidConnID uint16 = 0xFFFF

// GroupUnknown marks a device that does not belong to any group.
const GroupUnknown = -1

// Device is a known peer. Devices are owned by the registry; other components
// refer to them by Address.
type Device struct {
	// Address is the stable identity of the peer.
	Address Address

	// ConnID is the link handle, InvalidConnID while disconnected.
	ConnID uint16

	// Encrypted is set once link encryption completes.
	Encrypted bool

	// ConnectingActively is set while a direct (user initiated) connect is pending.
	ConnectingActively bool

	// Removing is set when removal was requested while the link was open.
	Removing bool

	// FirstConnection is set until the first successful connection.
	FirstConnection bool

	// KnownServices is set once service discovery has completed at least once.
	KnownServices bool

	// GroupID is the group this device belongs to, GroupUnknown if none.
	GroupID int

	// SinkLocations and SourceLocations are the peer's audio locations.
	SinkLocations   AudioLocation
	SourceLocations AudioLocation

	// SupportedContexts are the contexts the peer can ever serve.
	SupportedContexts AudioContexts

	// AvailableContexts are the contexts the peer can serve right now.
	AvailableContexts AudioContexts

	// Endpoints in discovery order.
	Endpoints []*Endpoint
}

// NewDevice returns a disconnected, ungrouped device.
func NewDevice(addr Address) *Device {
	return &Device{
		Address:         addr,
		ConnID:          InvalidConnID,
		GroupID:         GroupUnknown,
		FirstConnection: true,
	}
}

// IsConnected reports whether the link is open.
func (d *Device) IsConnected() bool {
	return d.ConnID != InvalidConnID
}

// Endpoint returns the endpoint with the given id.
func (d *Device) Endpoint(id uint8) (*Endpoint, error) {
	for _, e := range d.Endpoints {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrEndpointNotFound
}

// ActiveEndpoints returns the active endpoints of one direction in order.
func (d *Device) ActiveEndpoints(dir Direction) []*Endpoint {
	var out []*Endpoint
	for _, e := range d.Endpoints {
		if e.Direction == dir && e.IsActive() {
			out = append(out, e)
		}
	}
	return out
}

// HasActiveEndpoints reports whether any endpoint of any direction is active.
func (d *Device) HasActiveEndpoints() bool {
	for _, e := range d.Endpoints {
		if e.IsActive() {
			return true
		}
	}
	return false
}

// Locations returns the audio locations for one direction.
func (d *Device) Locations(dir Direction) AudioLocation {
	if dir == DirectionSink {
		return d.SinkLocations
	}
	return d.SourceLocations
}
