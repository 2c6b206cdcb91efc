package service

import (
	"fmt"
	"time"

	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/session"
)

// GroupStream requests the group to stream ctx. A context the group does not
// support falls back to unspecified.
func (o *Orchestrator) GroupStream(groupID int, ctx model.ContextType) error {
	return o.call(func() error { return o.groupStream(groupID, ctx) })
}

// GroupSuspend suspends a streaming group.
func (o *Orchestrator) GroupSuspend(groupID int) error {
	return o.call(func() error { return o.groupSuspend(groupID) })
}

// GroupStop stops the stream of a group.
func (o *Orchestrator) GroupStop(groupID int) error {
	return o.call(func() error { return o.groupStop(groupID) })
}

// GroupDestroy removes every member device of a group.
func (o *Orchestrator) GroupDestroy(groupID int) error {
	return o.call(func() error { return o.groupDestroy(groupID) })
}

// GroupSetActive selects the group served by the audio subsystem.
// model.GroupUnknown deactivates the current group.
func (o *Orchestrator) GroupSetActive(groupID int) error {
	return o.call(func() error { return o.groupSetActive(groupID) })
}

// GroupAddNode asks the set coordinator to move a device into a group.
func (o *Orchestrator) GroupAddNode(groupID int, addr model.Address) error {
	return o.call(func() error {
		if _, ok := o.registry.FindByAddress(addr); !ok {
			return ErrUnknownDevice
		}
		old := o.sets.GroupID(addr)
		if old == groupID {
			return nil
		}
		if old != model.GroupUnknown {
			o.sets.RemoveDevice(addr, old)
		}
		o.sets.AddDevice(addr, groupID)
		return nil
	})
}

// GroupRemoveNode removes a device from its group.
func (o *Orchestrator) GroupRemoveNode(groupID int, addr model.Address) error {
	return o.call(func() error {
		d, ok := o.registry.FindByAddress(addr)
		if !ok {
			return ErrUnknownDevice
		}
		if _, ok := o.registry.Group(groupID); !ok || d.GroupID != groupID {
			return ErrUnknownGroup
		}
		o.groupRemoveNode(groupID, addr, true)
		return nil
	})
}

func (o *Orchestrator) groupStream(groupID int, ctx model.ContextType) error {
	if ctx >= model.ContextRFU {
		return fmt.Errorf("%w: %s", ErrUnsupportedContext, ctx)
	}
	g, ok := o.registry.Group(groupID)
	if !ok {
		return ErrUnknownGroup
	}
	if !g.ActiveContexts.Has(ctx) {
		o.debugLog("groupStream: context not active, using unspecified", "group", groupID, "context", ctx)
		ctx = model.ContextUnspecified
	}
	if !o.registry.IsAnyDeviceConnected(groupID) {
		return ErrNotConnected
	}
	if o.registry.IsAnyInTransition() {
		return ErrGroupInTransition
	}

	accepted := o.stream.StartStream(groupID, ctx)
	o.trace.Request(log.LayerStream, log.DirectionNone, groupID, "start_stream", ctx.String(), accepted)
	if !accepted {
		return ErrStreamRejected
	}
	o.setupStart = time.Now()
	return nil
}

func (o *Orchestrator) groupSuspend(groupID int) error {
	g, ok := o.registry.Group(groupID)
	if !ok {
		return ErrUnknownGroup
	}
	if !o.registry.IsAnyDeviceConnected(groupID) {
		return ErrNotConnected
	}
	if g.IsInTransition() {
		return ErrGroupInTransition
	}
	if g.State != model.AseStateStreaming {
		return fmt.Errorf("%w: %s", ErrInvalidState, g.State)
	}
	o.stream.SuspendStream(groupID)
	o.trace.Request(log.LayerStream, log.DirectionNone, groupID, "suspend_stream", "", true)
	return nil
}

func (o *Orchestrator) groupStop(groupID int) error {
	g, ok := o.registry.Group(groupID)
	if !ok {
		return ErrUnknownGroup
	}
	if g.IsEmpty() {
		return ErrGroupEmpty
	}
	if g.State == model.AseStateIdle {
		o.debugLog("groupStop: already idle", "group", groupID)
		return fmt.Errorf("%w: %s", ErrInvalidState, g.State)
	}
	o.stream.StopStream(groupID)
	o.trace.Request(log.LayerStream, log.DirectionNone, groupID, "stop_stream", "", true)
	return nil
}

func (o *Orchestrator) groupDestroy(groupID int) error {
	if _, ok := o.registry.Group(groupID); !ok {
		return ErrUnknownGroup
	}
	for _, d := range o.registry.Members(groupID) {
		if err := o.removeDevice(d.Address); err != nil {
			o.warnLog("groupDestroy: remove device", "addr", d.Address, "error", err)
		}
	}
	return nil
}

func (o *Orchestrator) groupSetActive(groupID int) error {
	old := o.activeGroup

	if groupID == model.GroupUnknown {
		if old == model.GroupUnknown {
			return nil
		}
		o.timer.Cancel()
		o.stopAudio()
		o.releaseAudioSessions()
		if err := o.groupStop(old); err != nil {
			o.debugLog("groupSetActive: stop old group", "group", old, "error", err)
		}
		o.setActive(model.GroupUnknown)
		o.trace.State(log.StateEntityGroup, log.DirectionNone, old, "", "ACTIVE", "INACTIVE", "deactivated")
		o.callbacks.OnGroupStatus(old, GroupStatusInactive)
		return nil
	}

	if _, ok := o.registry.Group(groupID); !ok {
		return ErrUnknownGroup
	}
	if groupID == old {
		o.callbacks.OnGroupStatus(groupID, GroupStatusActive)
		return nil
	}

	if err := o.acquireAudioSessions(); err != nil {
		o.trace.Error(log.LayerAudio, groupID, err, "activate")
		return err
	}

	prev := *o.tracker
	o.tracker.ContextRequiresReconfiguration(groupID, model.ContextMedia)
	if o.tracker.BothInvalid() {
		*o.tracker = prev
		o.warnLog("groupSetActive: no supported configuration", "group", groupID)
		return ErrUnsupportedConfiguration
	}

	if old == model.GroupUnknown {
		if err := o.startAudioSessions(); err != nil {
			o.releaseAudioSessions()
			o.trace.Error(log.LayerAudio, groupID, err, "start sessions")
			return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
		}
	} else {
		// The old group's session goes idle before its stream is stopped.
		o.cancelStreamingRequest()
		o.stopAudio()
		o.timer.Cancel()
		if err := o.groupStop(old); err != nil {
			o.debugLog("groupSetActive: stop old group", "group", old, "error", err)
		}
	}

	o.setActive(groupID)
	o.trace.State(log.StateEntityGroup, log.DirectionNone, groupID, "", "INACTIVE", "ACTIVE", "activated")
	o.callbacks.OnGroupStatus(groupID, GroupStatusActive)
	return nil
}

// groupAddNode joins a device to a group through the registry's single
// membership path, creating the group if needed.
func (o *Orchestrator) groupAddNode(groupID int, addr model.Address) {
	d, ok := o.registry.FindByAddress(addr)
	if !ok {
		var err error
		if d, err = o.registry.AddDevice(addr); err != nil {
			o.errorLog("groupAddNode: add device", "addr", addr, "error", err)
			return
		}
	}

	if groupID == model.GroupUnknown {
		groupID = o.sets.GroupID(addr)
		if groupID == model.GroupUnknown {
			o.sets.AddDevice(addr, model.GroupUnknown)
			return
		}
	}
	if _, ok := o.registry.Group(groupID); !ok {
		if _, err := o.registry.AddGroup(groupID); err != nil {
			o.errorLog("groupAddNode: add group", "group", groupID, "error", err)
			return
		}
	}
	if d.GroupID == groupID {
		return
	}

	oldGroup := d.GroupID
	if err := o.registry.AssignDeviceToGroup(addr, groupID); err != nil {
		o.errorLog("groupAddNode: assign", "addr", addr, "group", groupID, "error", err)
		return
	}
	o.callbacks.OnGroupNodeStatus(addr, groupID, GroupNodeAdded)

	if d.IsConnected() {
		o.readEndpointStates(addr)
	}

	// The old group may have been deleted by the move.
	if g, ok := o.registry.Group(oldGroup); ok {
		o.updateContextsAndLocations(g)
	}
	if g, ok := o.registry.Group(groupID); ok {
		o.updateContextsAndLocations(g)
	}
}

// groupRemoveNode detaches a device from its group. updateSets also removes
// it from the coordinated set.
func (o *Orchestrator) groupRemoveNode(groupID int, addr model.Address, updateSets bool) {
	if err := o.registry.AssignDeviceToGroup(addr, model.GroupUnknown); err != nil {
		o.errorLog("groupRemoveNode: detach", "addr", addr, "error", err)
		return
	}
	if updateSets && o.sets.GroupID(addr) == groupID {
		o.sets.RemoveDevice(addr, groupID)
	}
	o.callbacks.OnGroupNodeStatus(addr, groupID, GroupNodeRemoved)

	g, ok := o.registry.Group(groupID)
	if !ok {
		return
	}
	if g.IsEmpty() {
		o.registry.RemoveGroupIfPossible(groupID)
		return
	}
	o.updateContextsAndLocations(g)
}

// Set coordination events

func (o *Orchestrator) handleSetGroupAdded(e SetGroupAdded) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok {
		o.debugLog("setGroupAdded: unknown device", "addr", e.Addr)
		return
	}
	if d.GroupID != model.GroupUnknown {
		return
	}
	o.groupAddNode(e.GroupID, e.Addr)
}

func (o *Orchestrator) handleSetMemberAdded(e SetMemberAdded) {
	if _, ok := o.registry.Group(e.GroupID); !ok {
		o.debugLog("setMemberAdded: unknown group", "group", e.GroupID)
		return
	}
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok || d.GroupID != model.GroupUnknown {
		return
	}
	o.groupAddNode(e.GroupID, e.Addr)
}

func (o *Orchestrator) handleSetMemberRemoved(e SetMemberRemoved) {
	d, ok := o.registry.FindByAddress(e.Addr)
	if !ok || e.GroupID == model.GroupUnknown {
		return
	}
	if _, ok := o.registry.Group(e.GroupID); !ok || d.GroupID != e.GroupID {
		return
	}
	o.groupRemoveNode(e.GroupID, e.Addr, false)
}

// Stream protocol events

func (o *Orchestrator) handleGroupState(e GroupStateChanged) {
	err := o.registry.UpdateGroup(e.GroupID, func(g *model.Group) {
		g.State = e.State
		g.TargetState = e.Target
	})
	if err != nil {
		o.debugLog("groupState: unknown group", "group", e.GroupID)
	}
}

// handleStateTransitionTimeout is the worst-case recovery: every connected
// member is dropped at the link layer.
func (o *Orchestrator) handleStateTransitionTimeout(e StateTransitionTimeout) {
	g, ok := o.registry.Group(e.GroupID)
	if !ok {
		return
	}
	o.warnLog("state transition timeout", "group", g.ID, "state", g.State, "target", g.TargetState)
	o.trace.Error(log.LayerStream, g.ID, fmt.Errorf("state transition timeout: %s -> %s", g.State, g.TargetState), "recovery")

	_ = o.registry.UpdateGroup(g.ID, func(g *model.Group) {
		g.TargetState = model.AseStateIdle
	})
	o.cancelStreamingRequest()

	for _, d := range o.registry.ConnectedMembers(g.ID) {
		o.disconnectDevice(d, true)
	}
}

func (o *Orchestrator) handleSuspendTimeout(e suspendTimeout) {
	o.metrics.SuspendTimerExpired()
	o.trace.State(log.StateEntityTimer, log.DirectionNone, e.groupID, "", session.TimerArmed.String(), session.TimerExpired.String(), "suspend timeout")
	// A resume queued ahead of the expiry already restarted a direction.
	sender, receiver := o.machine.States()
	if sender == session.StateStarted || receiver == session.StateStarted {
		o.debugLog("suspend timeout: audio resumed, keeping stream", "group", e.groupID)
		return
	}
	if e.groupID != o.activeGroup {
		o.debugLog("suspend timeout: group no longer active", "group", e.groupID)
		return
	}
	if err := o.groupStop(e.groupID); err != nil {
		o.debugLog("suspend timeout: stop", "group", e.groupID, "error", err)
	}
}
