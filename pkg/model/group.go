package model

// Group is a coordinated set of devices streaming together. Member devices
// are referenced by address; the registry owns their lifetime.
type Group struct {
	// ID is unique within the registry.
	ID int

	// Members in join order.
	Members []Address

	// State is the current stream state reported by the stream protocol.
	State AseState

	// TargetState is the state the stream protocol is driving toward.
	TargetState AseState

	// ActiveContexts is the union of member available contexts.
	ActiveContexts AudioContexts

	// CurrentContext is the context the group is configured for.
	CurrentContext ContextType

	// SinkLocations and SourceLocations are the union of member locations.
	SinkLocations   AudioLocation
	SourceLocations AudioLocation

	// PendingConfiguration is set when a reconfiguration waits for the
	// group to return to idle.
	PendingConfiguration bool

	// PendingAvailableContexts holds an available-context update deferred
	// while the group was busy. Nil when nothing is pending.
	PendingAvailableContexts *AudioContexts

	// CIGCreated is set while an isochronous channel group exists for the group.
	CIGCreated bool

	// TransportLatencyUs per direction, indexed by Direction.Index.
	TransportLatencyUs [2]uint32
}

// NewGroup returns an empty idle group.
func NewGroup(id int) *Group {
	return &Group{ID: id}
}

// IsEmpty reports whether the group has no members.
func (g *Group) IsEmpty() bool {
	return len(g.Members) == 0
}

// Contains reports whether addr is a member.
func (g *Group) Contains(addr Address) bool {
	for _, m := range g.Members {
		if m == addr {
			return true
		}
	}
	return false
}

// IsInTransition reports whether the stream protocol is moving the group
// between states.
func (g *Group) IsInTransition() bool {
	return g.State != g.TargetState
}

// IsStreaming reports whether the group has reached the streaming state.
func (g *Group) IsStreaming() bool {
	return g.State == AseStateStreaming
}

// Directions returns the set of directions the group has locations for, as
// a bitmask of 1<<Direction.
func (g *Group) Directions() uint8 {
	var d uint8
	if g.SinkLocations != 0 {
		d |= 1 << DirectionSink
	}
	if g.SourceLocations != 0 {
		d |= 1 << DirectionSource
	}
	return d
}
