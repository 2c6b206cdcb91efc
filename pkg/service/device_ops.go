package service

import (
	"errors"

	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/registry"
)

// Connect opens a direct link to a device, registering it if unknown.
func (o *Orchestrator) Connect(addr model.Address) error {
	return o.call(func() error { return o.connect(addr) })
}

// Disconnect closes the link of a device, or cancels a pending connect.
func (o *Orchestrator) Disconnect(addr model.Address) error {
	return o.call(func() error { return o.disconnect(addr) })
}

// RemoveDevice forgets a device. A connected device is disconnected first
// and removed once the link is down.
func (o *Orchestrator) RemoveDevice(addr model.Address) error {
	return o.call(func() error { return o.removeDevice(addr) })
}

// AddFromStorage restores a bonded device. autoconnect starts a background
// connect.
func (o *Orchestrator) AddFromStorage(addr model.Address, autoconnect bool) error {
	return o.call(func() error { return o.addFromStorage(addr, autoconnect) })
}

func (o *Orchestrator) connect(addr model.Address) error {
	if _, ok := o.registry.FindByAddress(addr); !ok {
		if _, err := o.registry.AddDevice(addr); err != nil {
			return err
		}
	}
	_ = o.registry.UpdateDevice(addr, func(d *model.Device) {
		d.ConnectingActively = true
	})

	err := o.link.Connect(addr, true)
	o.trace.Request(log.LayerLink, log.DirectionNone, log.NoGroup, "connect", addr.String(), err == nil)
	if err != nil {
		_ = o.registry.UpdateDevice(addr, func(d *model.Device) {
			d.ConnectingActively = false
		})
		return err
	}
	return nil
}

func (o *Orchestrator) disconnect(addr model.Address) error {
	d, ok := o.registry.FindByAddress(addr)
	if !ok {
		return ErrUnknownDevice
	}

	if d.ConnectingActively {
		o.link.CancelConnect(addr, true)
		_ = o.registry.UpdateDevice(addr, func(d *model.Device) {
			d.ConnectingActively = false
		})
	}
	o.cancelBackgroundConnect(addr)

	if d.IsConnected() {
		o.disconnectDevice(d, false)
		return nil
	}

	// Stay reachable for the rest of a connected group.
	o.backgroundConnectIfGroupConnected(d)
	return nil
}

func (o *Orchestrator) removeDevice(addr model.Address) error {
	d, ok := o.registry.FindByAddress(addr)
	if !ok {
		return ErrUnknownDevice
	}

	if d.IsConnected() {
		_ = o.registry.UpdateDevice(addr, func(d *model.Device) {
			d.Removing = true
		})
		o.disconnectDevice(d, false)
		o.debugLog("removeDevice: waiting for link down", "addr", addr)
		return nil
	}

	o.cancelBackgroundConnect(addr)
	if d.GroupID != model.GroupUnknown {
		o.groupRemoveNode(d.GroupID, addr, true)
	}
	delete(o.pendingRead, addr)
	return o.registry.RemoveDevice(addr)
}

func (o *Orchestrator) addFromStorage(addr model.Address, autoconnect bool) error {
	if _, ok := o.registry.FindByAddress(addr); !ok {
		if _, err := o.registry.AddDevice(addr); err != nil {
			return err
		}
	}

	if id := o.sets.GroupID(addr); id != model.GroupUnknown {
		o.groupAddNode(id, addr)
	}

	if autoconnect {
		if err := o.link.Connect(addr, false); err != nil {
			o.warnLog("addFromStorage: background connect failed", "addr", addr, "error", err)
		}
	}
	return nil
}

// disconnectDevice closes an open link. force is used by the recovery path
// and leaves the link handle in place until the link layer reports the loss.
func (o *Orchestrator) disconnectDevice(d *model.Device, force bool) {
	if !d.IsConnected() {
		return
	}
	o.link.Disconnect(d.Address, d.ConnID, force)
	o.trace.Request(log.LayerLink, log.DirectionNone, d.GroupID, "disconnect", d.Address.String(), true)
	if force {
		return
	}
	_ = o.registry.SetConnID(d.Address, model.InvalidConnID)
	o.updateConnectedCount()
}

func (o *Orchestrator) backgroundConnectIfGroupConnected(d *model.Device) {
	if d.GroupID == model.GroupUnknown {
		return
	}
	if !o.registry.IsAnyDeviceConnected(d.GroupID) {
		o.debugLog("backgroundConnect: no connected member", "addr", d.Address, "group", d.GroupID)
		return
	}
	o.startBackgroundConnect(d.Address)
}

func (o *Orchestrator) startBackgroundConnect(addr model.Address) {
	if o.reconnector == nil {
		if err := o.link.Connect(addr, false); err != nil {
			o.warnLog("background connect failed", "addr", addr, "error", err)
		}
		return
	}
	if err := o.reconnector.Start(addr); err != nil {
		o.warnLog("background connect failed", "addr", addr, "error", err)
	}
}

func (o *Orchestrator) cancelBackgroundConnect(addr model.Address) {
	if o.reconnector == nil {
		o.link.CancelConnect(addr, false)
		return
	}
	if o.reconnector.Cancel(addr) {
		o.link.CancelConnect(addr, false)
	}
}

// Link events

func (o *Orchestrator) handleLinkConnected(e LinkConnected) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		o.debugLog("linkConnected: unknown device", "addr", e.Addr)
		return
	}

	if e.Err != nil {
		o.trace.Status(log.LayerLink, d.GroupID, e.Addr.String(), "connect_failed", e.Err.Error())
		// Background connects fail quietly; the reconnector retries.
		if !d.ConnectingActively {
			return
		}
		_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
			d.ConnectingActively = false
		})
		o.callbacks.OnConnectionState(ConnectionDisconnected, e.Addr)
		return
	}

	if o.reconnector != nil {
		o.reconnector.Connected(e.Addr)
	}
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.ConnectingActively = false
	})
	if err := o.registry.SetConnID(e.Addr, e.ConnID); err != nil {
		o.errorLog("linkConnected: set link handle", "addr", e.Addr, "error", err)
		return
	}
	o.updateConnectedCount()
	o.trace.State(log.StateEntityLink, log.DirectionNone, d.GroupID, e.Addr.String(), "DISCONNECTED", "CONNECTED", "link up")

	if err := o.link.RequestEncryption(e.Addr); err != nil {
		o.warnLog("linkConnected: encryption request failed", "addr", e.Addr, "error", err)
		o.disconnectDevice(d, false)
	}
}

func (o *Orchestrator) handleLinkEncrypted(e LinkEncrypted) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		return
	}

	if e.Err != nil {
		o.warnLog("encryption failed", "addr", e.Addr, "error", e.Err)
		o.trace.Error(log.LayerLink, d.GroupID, e.Err, "encryption")
		actively := d.ConnectingActively
		o.disconnectDevice(d, false)
		if actively {
			o.callbacks.OnConnectionState(ConnectionDisconnected, e.Addr)
		}
		return
	}

	if d.Encrypted {
		o.debugLog("encryption already complete", "addr", e.Addr)
		return
	}
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.Encrypted = true
	})

	if d.KnownServices {
		o.connectionReady(d)
		return
	}
	if err := o.link.DiscoverServices(e.Addr); err != nil {
		o.warnLog("service discovery request failed", "addr", e.Addr, "error", err)
		o.disconnectDevice(d, false)
	}
}

func (o *Orchestrator) handleServicesDiscovered(e ServicesDiscovered) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		return
	}
	if e.Err != nil {
		o.warnLog("service discovery failed", "addr", e.Addr, "error", e.Err)
		o.trace.Error(log.LayerLink, d.GroupID, e.Err, "service discovery")
		o.disconnectDevice(d, false)
		return
	}

	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.KnownServices = true
	})

	if d.GroupID != model.GroupUnknown {
		o.readEndpointStates(e.Addr)
		return
	}

	// Not grouped yet: endpoints are read once the device joins a group.
	o.pendingRead[e.Addr] = true
	if id := o.sets.GroupID(e.Addr); id != model.GroupUnknown {
		o.groupAddNode(id, e.Addr)
		return
	}
	if e.SetMember {
		o.debugLog("waiting for set coordination", "addr", e.Addr)
		return
	}
	o.sets.AddDevice(e.Addr, model.GroupUnknown)
}

func (o *Orchestrator) readEndpointStates(addr model.Address) {
	o.pendingRead[addr] = true
	o.link.ReadEndpointStates(addr)
}

func (o *Orchestrator) handleEndpointsRead(e EndpointsRead) {
	if !o.pendingRead[e.Addr] {
		return
	}
	delete(o.pendingRead, e.Addr)

	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok || !d.IsConnected() {
		return
	}
	o.connectionReady(d)
}

// connectionReady runs once a device is connected, encrypted and its
// endpoints are known.
func (o *Orchestrator) connectionReady(d *model.Device) {
	o.callbacks.OnConnectionState(ConnectionConnected, d.Address)

	if d.GroupID != model.GroupUnknown {
		if g, ok := o.registry.Group(d.GroupID); ok {
			o.updateContextsAndLocations(g)
		}
		o.attachToStreamingGroupIfNeeded(d)
	}

	if d.FirstConnection {
		_ = o.registry.UpdateDevice(d.Address, func(d *model.Device) {
			d.FirstConnection = false
		})
	}
}

// attachToStreamingGroupIfNeeded joins a late device to the stream of the
// active group. A device the current configuration has no room for forces a
// reconfiguration.
func (o *Orchestrator) attachToStreamingGroupIfNeeded(d *model.Device) {
	if d.GroupID != o.activeGroup {
		return
	}
	if o.machine.BothIdle() {
		o.debugLog("attach: audio idle", "addr", d.Address)
		return
	}

	configured := 0
	for _, dir := range model.Directions {
		conf, err := o.aggregator.Get(d.GroupID, dir)
		if err == nil && conf != nil && conf.DeviceCount > configured {
			configured = conf.DeviceCount
		}
	}

	if configured < len(o.registry.ConnectedMembers(d.GroupID)) {
		o.debugLog("attach: new device, reconfiguring", "addr", d.Address, "group", d.GroupID)
		_ = o.registry.UpdateGroup(d.GroupID, func(g *model.Group) {
			g.PendingConfiguration = true
		})
		o.stream.StopStream(d.GroupID)
		o.trace.Request(log.LayerStream, log.DirectionNone, d.GroupID, "stop_stream", "attach", true)
		return
	}

	o.stream.AttachDeviceToStream(d.GroupID, d.Address)
	o.trace.Request(log.LayerStream, log.DirectionNone, d.GroupID, "attach_device", d.Address.String(), true)
}

func (o *Orchestrator) handleLinkDisconnected(e LinkDisconnected) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		o.debugLog("linkDisconnected: unknown device", "addr", e.Addr)
		return
	}

	o.stream.HandleLinkLost(d.GroupID, e.Addr)
	o.callbacks.OnConnectionState(ConnectionDisconnected, e.Addr)
	o.trace.State(log.StateEntityLink, log.DirectionNone, d.GroupID, e.Addr.String(), "CONNECTED", "DISCONNECTED", disconnectReason(e.Local))

	_ = o.registry.SetConnID(e.Addr, model.InvalidConnID)
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.Encrypted = false
	})
	delete(o.pendingRead, e.Addr)
	o.updateConnectedCount()

	if d.Removing {
		if d.GroupID != model.GroupUnknown {
			o.groupRemoveNode(d.GroupID, e.Addr, true)
		}
		if err := o.registry.RemoveDevice(e.Addr); err != nil && !errors.Is(err, registry.ErrDeviceNotFound) {
			o.errorLog("linkDisconnected: remove device", "addr", e.Addr, "error", err)
		}
		return
	}

	if !e.Local {
		o.startBackgroundConnect(e.Addr)
	}
}

func disconnectReason(local bool) string {
	if local {
		return "local"
	}
	return "remote"
}

// Capability notifications

func (o *Orchestrator) handleLocationsChanged(e LocationsChanged) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		return
	}
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		if e.Direction == model.DirectionSink {
			d.SinkLocations = e.Locations
		} else {
			d.SourceLocations = e.Locations
		}
	})

	if d.GroupID == model.GroupUnknown {
		return
	}
	changed, err := o.registry.ReloadAudioLocations(d.GroupID)
	if err != nil || !changed {
		return
	}
	if g, ok := o.registry.Group(d.GroupID); ok {
		o.notifyAudioConf(g)
	}
}

func (o *Orchestrator) handleSupportedContexts(e SupportedContextsChanged) {
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.SupportedContexts = e.Contexts
	})
}

func (o *Orchestrator) handleAvailableContexts(e AvailableContextsChanged) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		return
	}
	_ = o.registry.UpdateDevice(e.Addr, func(d *model.Device) {
		d.AvailableContexts = e.Contexts
	})

	g, ok := o.registry.Group(d.GroupID)
	if !ok {
		return
	}

	// Changing the context set mid-stream would confuse the upper layer;
	// apply it once the group settles.
	if g.IsInTransition() || g.IsStreaming() {
		o.debugLog("available contexts deferred", "group", g.ID, "contexts", e.Contexts)
		_ = o.registry.UpdateGroup(g.ID, func(g *model.Group) {
			pending := e.Contexts
			g.PendingAvailableContexts = &pending
		})
		return
	}

	if _, changed, err := o.registry.UpdateActiveContexts(g.ID); err == nil && changed {
		o.notifyAudioConf(g)
	}
}

// handlePendingAvailableContexts applies a deferred available-context update.
func (o *Orchestrator) handlePendingAvailableContexts(g *model.Group) {
	if g.PendingAvailableContexts == nil {
		return
	}
	_ = o.registry.UpdateGroup(g.ID, func(g *model.Group) {
		g.PendingAvailableContexts = nil
	})
	if _, changed, err := o.registry.UpdateActiveContexts(g.ID); err == nil && changed {
		o.notifyAudioConf(g)
	}
}

func (o *Orchestrator) handleEndpointChanged(e EndpointChanged) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		return
	}
	if err := o.registry.UpdateEndpoint(e.Addr, e.Endpoint); err != nil {
		o.warnLog("endpoint update failed", "addr", e.Addr, "error", err)
		return
	}
	if d.GroupID != model.GroupUnknown {
		o.aggregator.Invalidate(d.GroupID)
	}
}

// updateContextsAndLocations refreshes the aggregated contexts and locations
// of a group and reports them when they changed.
func (o *Orchestrator) updateContextsAndLocations(g *model.Group) {
	_, ctxChanged, err := o.registry.UpdateActiveContexts(g.ID)
	if err != nil {
		return
	}
	locChanged, err := o.registry.ReloadAudioLocations(g.ID)
	if err != nil {
		return
	}
	if ctxChanged || locChanged {
		o.notifyAudioConf(g)
	}
}
