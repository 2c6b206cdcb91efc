package service

// Dispatch routes one event to its handler. It must run on the loop; use
// Submit or Deliver from other goroutines.
func (o *Orchestrator) Dispatch(ev Event) {
	o.debugLog("dispatch", "event", ev.eventName())

	switch e := ev.(type) {
	// Link layer
	case LinkConnected:
		o.handleLinkConnected(e)
	case LinkEncrypted:
		o.handleLinkEncrypted(e)
	case ServicesDiscovered:
		o.handleServicesDiscovered(e)
	case EndpointsRead:
		o.handleEndpointsRead(e)
	case LinkDisconnected:
		o.handleLinkDisconnected(e)

	// Capabilities
	case LocationsChanged:
		o.handleLocationsChanged(e)
	case AvailableContextsChanged:
		o.handleAvailableContexts(e)
	case SupportedContextsChanged:
		o.handleSupportedContexts(e)
	case EndpointChanged:
		o.handleEndpointChanged(e)

	// Stream protocol
	case GroupStateChanged:
		o.handleGroupState(e)
	case StreamStatus:
		o.handleStreamStatus(e)
	case StateTransitionTimeout:
		o.handleStateTransitionTimeout(e)

	// Isochronous channels
	case ChannelGroupCreated:
		o.handleChannelGroupCreated(e)
	case ChannelGroupRemoved:
		o.handleChannelGroupRemoved(e)
	case ChannelEstablished:
		o.handleChannelEstablished(e)
	case ChannelDisconnected:
		o.handleChannelDisconnected(e)
	case DataPathChanged:
		o.handleDataPath(e)
	case LinkQuality:
		o.handleLinkQuality(e)

	// Audio subsystem
	case AudioResume:
		o.handleAudioResume(e)
	case AudioSuspend:
		o.handleAudioSuspend(e)
	case AudioMetadata:
		o.handleAudioMetadata(e)

	// Set coordination
	case SetGroupAdded:
		o.handleSetGroupAdded(e)
	case SetMemberAdded:
		o.handleSetMemberAdded(e)
	case SetMemberRemoved:
		o.handleSetMemberRemoved(e)

	// Internal
	case suspendTimeout:
		o.handleSuspendTimeout(e)
	case channelFault:
		o.handleChannelFault(e)

	default:
		o.warnLog("dispatch: unhandled event", "event", ev.eventName())
	}
}
