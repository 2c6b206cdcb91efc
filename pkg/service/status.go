package service

import (
	"time"

	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/session"
)

// handleStreamStatus drives the audio session from the stream protocol's
// status reports.
func (o *Orchestrator) handleStreamStatus(e StreamStatus) {
	o.trace.Status(log.LayerStream, e.GroupID, "", e.Status.String(), "")
	g, _ := o.registry.Group(e.GroupID)

	switch e.Status {
	case model.StatusStreaming:
		if e.GroupID != o.activeGroup {
			o.errorLog("streaming status for inactive group", "group", e.GroupID, "active", o.activeGroup)
			return
		}
		o.fireBoth(session.EventGroupStreaming)
		o.recordSetupEnd()

	case model.StatusSuspended:
		o.setupStart = time.Time{}
		o.fireBoth(session.EventSuspended)

	case model.StatusConfiguredByUser:
		// Reconfiguration done; the audio subsystem resumes on its own.
		if g != nil && g.PendingConfiguration {
			o.clearPendingConfiguration(g.ID)
		}
		o.cancelStreamingRequest()
		if g != nil {
			o.handlePendingAvailableContexts(g)
		}

	case model.StatusConfiguredAutonomous:
		o.setupStart = time.Time{}
		if g != nil && g.PendingConfiguration {
			o.fireBoth(session.EventReconfigurationPending)
			if !o.stream.ConfigureStream(g.ID, o.tracker.CurrentContext()) {
				o.clearPendingConfiguration(g.ID)
			}
			return
		}
		o.cancelStreamingRequest()
		if g != nil {
			o.handlePendingAvailableContexts(g)
		}

	case model.StatusIdle:
		o.setupStart = time.Time{}
		if g != nil && g.PendingConfiguration {
			o.fireBoth(session.EventReconfigurationPending)
			ok := o.stream.ConfigureStream(g.ID, o.tracker.CurrentContext())
			o.trace.Request(log.LayerStream, log.DirectionNone, g.ID, "configure_stream", o.tracker.CurrentContext().String(), ok)
			if ok {
				return
			}
			o.clearPendingConfiguration(g.ID)
		}
		o.cancelStreamingRequest()
		if g != nil {
			o.handlePendingAvailableContexts(g)
		}

	case model.StatusReleasing, model.StatusSuspending:
		o.fireBoth(session.EventGroupReleasing)

	default:
		o.warnLog("unknown stream status", "group", e.GroupID, "status", e.Status)
	}
}

func (o *Orchestrator) clearPendingConfiguration(groupID int) {
	_ = o.registry.UpdateGroup(groupID, func(g *model.Group) {
		g.PendingConfiguration = false
	})
}
