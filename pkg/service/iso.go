package service

import (
	"fmt"

	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/model"
)

func (o *Orchestrator) handleChannelGroupCreated(e ChannelGroupCreated) {
	if err := o.registry.SetCIGCreated(e.GroupID, e.Status == 0); err != nil {
		o.debugLog("channel group created: unknown group", "group", e.GroupID)
	}
	o.trace.Status(log.LayerIso, e.GroupID, "", "cig_created", statusDetail(e.Status))
	o.stream.HandleChannelGroupCreated(e.GroupID, e.Status, e.Handles)
}

func (o *Orchestrator) handleChannelGroupRemoved(e ChannelGroupRemoved) {
	o.trace.Status(log.LayerIso, e.GroupID, "", "cig_removed", statusDetail(e.Status))
	o.stream.HandleChannelGroupRemoved(e.GroupID, e.Status)

	if err := o.registry.SetCIGCreated(e.GroupID, false); err != nil {
		return
	}
	// An empty group waits for its channel group to go before it is deleted.
	if o.registry.RemoveGroupIfPossible(e.GroupID) {
		o.debugLog("group removed after channel group teardown", "group", e.GroupID)
	}
}

// channelOwner resolves the device and group of a channel handle.
func (o *Orchestrator) channelOwner(handle uint16) (*model.Device, bool) {
	d, ok := o.registry.FindByChannelHandle(handle)
	if !ok {
		o.errorLog("event for unknown channel", "handle", handle)
		return nil, false
	}
	if _, ok := o.registry.Group(d.GroupID); !ok {
		o.errorLog("channel owner has no group", "handle", handle, "addr", d.Address)
		return nil, false
	}
	return d, true
}

func (o *Orchestrator) handleChannelEstablished(e ChannelEstablished) {
	d, ok := o.channelOwner(e.Handle)
	if !ok {
		return
	}

	if e.Status == 0 {
		_ = o.registry.UpdateGroup(d.GroupID, func(g *model.Group) {
			for _, dir := range model.Directions {
				if e.MaxPDU[dir.Index()] > 0 {
					g.TransportLatencyUs[dir.Index()] = e.TransportLatencyUs[dir.Index()]
				}
			}
		})
	}
	o.trace.Status(log.LayerIso, d.GroupID, d.Address.String(), "cis_established", statusDetail(e.Status))
	o.stream.HandleChannelEstablished(d.GroupID, d.Address, e)
}

func (o *Orchestrator) handleChannelDisconnected(e ChannelDisconnected) {
	d, ok := o.channelOwner(e.Handle)
	if !ok {
		return
	}
	o.trace.Status(log.LayerIso, d.GroupID, d.Address.String(), "cis_disconnected", statusDetail(e.Reason))
	o.stream.HandleChannelDisconnected(d.GroupID, d.Address, e)
}

func (o *Orchestrator) handleDataPath(e DataPathChanged) {
	d, ok := o.channelOwner(e.Handle)
	if !ok {
		return
	}
	o.stream.HandleDataPath(d.GroupID, d.Address, e)
}

func (o *Orchestrator) handleLinkQuality(e LinkQuality) {
	d, ok := o.registry.FindByChannelHandle(e.Handle)
	if !ok {
		o.debugLog("link quality for unknown channel", "handle", e.Handle)
		return
	}
	o.stream.HandleLinkQuality(d.GroupID, d.Address, e)
}

func statusDetail(status uint8) string {
	if status == 0 {
		return "ok"
	}
	return fmt.Sprintf("status 0x%02x", status)
}
