package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/leaudio/leaudio-go/pkg/log"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/pipeline"
	"github.com/leaudio/leaudio-go/pkg/session"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

// HandleAudioData encodes one interval of PCM from the audio subsystem. It
// bypasses the loop; buffers arriving before the sender started are dropped.
func (o *Orchestrator) HandleAudioData(pcm []byte) error {
	if o.ActiveGroup() == model.GroupUnknown {
		return ErrUnknownGroup
	}
	if o.machine.State(model.DirectionSink) != session.StateStarted {
		return pipeline.ErrNotStarted
	}
	return o.sender.Process(pcm)
}

// HandleChannelData decodes one inbound frame. It bypasses the loop: frames
// of different channels may arrive concurrently.
func (o *Orchestrator) HandleChannelData(handle uint16, timestamp uint32, data []byte) error {
	if o.machine.State(model.DirectionSource) != session.StateStarted {
		return pipeline.ErrNotStarted
	}
	err := o.receiver.HandleFrame(handle, timestamp, data)
	if errors.Is(err, pipeline.ErrUnknownChannel) {
		if ferr := o.Submit(channelFault{groupID: o.ActiveGroup(), err: err}); ferr != nil {
			o.warnLog("channel fault dropped", "error", ferr)
		}
	}
	return err
}

func (o *Orchestrator) writeSink(pcm []byte) (int, error) {
	sink := o.currentSink()
	if sink == nil {
		return 0, pipeline.ErrNotStarted
	}
	return sink.Write(pcm)
}

// currentSink is read by the decode path. The session is only replaced on
// the loop while the receiver is stopped.
func (o *Orchestrator) currentSink() SinkSession {
	o.sinkMu.RLock()
	defer o.sinkMu.RUnlock()
	return o.sink
}

func (o *Orchestrator) setSink(s SinkSession) {
	o.sinkMu.Lock()
	defer o.sinkMu.Unlock()
	o.sink = s
}

// Audio subsystem sessions

func (o *Orchestrator) acquireAudioSessions() error {
	if o.source != nil && o.currentSink() != nil {
		return nil
	}

	source, err := o.audio.AcquireSource()
	if err != nil {
		return fmt.Errorf("%w: source: %w", ErrResourceUnavailable, err)
	}
	sink, err := o.audio.AcquireSink()
	if err != nil {
		source.Release()
		return fmt.Errorf("%w: sink: %w", ErrResourceUnavailable, err)
	}
	o.source = source
	o.setSink(sink)
	return nil
}

func (o *Orchestrator) startAudioSessions() error {
	interval := o.tracker.Config(model.DirectionSink).DataIntervalUs

	srcFormat := o.cfg.SourceFormat
	sinkFormat := o.cfg.SinkFormat
	if interval != 0 {
		srcFormat.DataIntervalUs = interval
		sinkFormat.DataIntervalUs = interval
	}

	if err := o.source.Start(srcFormat); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := o.currentSink().Start(sinkFormat); err != nil {
		o.source.Stop()
		return fmt.Errorf("sink: %w", err)
	}
	o.debugLog("audio sessions started", "source", srcFormat, "sink", sinkFormat)
	return nil
}

func (o *Orchestrator) releaseAudioSessions() {
	if o.source != nil {
		o.source.Stop()
		o.source.Release()
		o.source = nil
	}
	if sink := o.currentSink(); sink != nil {
		sink.Stop()
		sink.Release()
		o.setSink(nil)
	}
}

func (o *Orchestrator) audioSession(dir model.Direction) AudioSession {
	if dir == model.DirectionSink {
		if o.source == nil {
			return nil
		}
		return o.source
	}
	if sink := o.currentSink(); sink != nil {
		return sink
	}
	return nil
}

// stopAudio forces both directions idle and releases the codecs.
func (o *Orchestrator) stopAudio() {
	o.sender.Stop()
	o.receiver.Stop()
	o.machine.Reset()
	o.trace.State(log.StateEntityAudio, log.DirectionNone, o.activeGroup, "", "", session.StateIdle.String(), "stop audio")
}

func (o *Orchestrator) cleanup() {
	o.timer.Cancel()
	if o.activeGroup != model.GroupUnknown {
		if err := o.groupStop(o.activeGroup); err != nil {
			o.debugLog("cleanup: stop active group", "group", o.activeGroup, "error", err)
		}
	}
	o.stopAudio()
	o.releaseAudioSessions()
	o.setActive(model.GroupUnknown)
}

// Audio subsystem requests

func (o *Orchestrator) handleAudioResume(e AudioResume) {
	if o.activeGroup == model.GroupUnknown {
		o.errorLog("audio resume without active group", "direction", e.Direction)
		if s := o.audioSession(e.Direction); s != nil {
			s.CancelStreamingRequest()
		}
		return
	}
	o.fire(e.Direction, session.EventResume)
}

func (o *Orchestrator) handleAudioSuspend(e AudioSuspend) {
	o.fire(e.Direction, session.EventSuspend)
}

func (o *Orchestrator) handleAudioMetadata(e AudioMetadata) {
	current := o.tracker.CurrentContext()
	ctx, ok := streamconf.ContextFromMetadata(current, e.Tracks)
	if !ok {
		o.debugLog("metadata: no usable track")
		return
	}

	g, ok := o.registry.Group(o.activeGroup)
	if !ok {
		o.debugLog("metadata: no active group")
		return
	}
	if ctx == current {
		return
	}
	o.debugLog("metadata: context change", "group", g.ID, "from", current, "to", ctx)
	o.tracker.SetCurrentContext(ctx)

	if o.stopStreamIfNeeded(g, ctx) {
		return
	}

	// Refresh the stream metadata of a group already heading to streaming.
	if g.TargetState == model.AseStateStreaming {
		if err := o.groupStream(g.ID, ctx); err != nil {
			o.debugLog("metadata: stream update", "group", g.ID, "error", err)
		}
	}
}

// stopStreamIfNeeded stops a streaming group whose configuration must change
// for ctx. The new configuration is applied once the group is idle.
func (o *Orchestrator) stopStreamIfNeeded(g *model.Group, ctx model.ContextType) bool {
	if !o.tracker.ContextRequiresReconfiguration(g.ID, ctx) {
		return false
	}
	if g.State != model.AseStateStreaming {
		return false
	}

	o.debugLog("reconfiguration needed", "group", g.ID, "context", ctx)
	o.timer.Cancel()
	_ = o.registry.UpdateGroup(g.ID, func(g *model.Group) {
		g.PendingConfiguration = true
	})
	o.stream.StopStream(g.ID)
	o.trace.Request(log.LayerStream, log.DirectionNone, g.ID, "stop_stream", "reconfigure "+ctx.String(), true)
	return true
}

// Session executor

func (o *Orchestrator) guards(dir model.Direction) session.Guards {
	var gd session.Guards
	if _, ok := o.stream.CodecConfiguration(o.activeGroup, o.tracker.CurrentContext(), dir); ok {
		gd.ResumeExpected = true
	}
	if g, ok := o.registry.Group(o.activeGroup); ok {
		gd.GroupStreaming = g.IsStreaming()
		gd.PendingConfiguration = g.PendingConfiguration
	}
	return gd
}

// fire applies an event to one direction and executes the resulting
// commands in order.
func (o *Orchestrator) fire(dir model.Direction, ev session.Event) session.Transition {
	tr := o.machine.Fire(dir, ev, o.guards(dir))
	if !tr.Matched() {
		o.debugLog("session: event ignored", "direction", dir, "event", ev, "state", tr.From, "other", tr.Other)
		return tr
	}
	for _, cmd := range tr.Commands {
		o.execute(dir, cmd, tr)
	}
	return tr
}

func (o *Orchestrator) fireBoth(ev session.Event) {
	for _, dir := range model.Directions {
		o.fire(dir, ev)
	}
}

func (o *Orchestrator) execute(dir model.Direction, cmd session.Command, tr session.Transition) {
	switch cmd {
	case session.CmdRequestStream:
		o.requestStream(dir)

	case session.CmdStartPipeline:
		if err := o.startPipeline(dir); err != nil {
			o.warnLog("pipeline start failed", "direction", dir, "error", err)
			o.trace.Error(log.LayerAudio, o.activeGroup, err, "start "+dir.String())
			o.fire(dir, session.EventStreamRejected)
			return
		}
		o.fire(dir, session.EventPipelineStarted)

	case session.CmdConfirm:
		if s := o.audioSession(dir); s != nil {
			s.ConfirmStreamingRequest()
		}

	case session.CmdCancel:
		if s := o.audioSession(dir); s != nil {
			s.CancelStreamingRequest()
		}

	case session.CmdArmSuspendTimer:
		if o.activeGroup == model.GroupUnknown {
			o.warnLog("suspend without active group", "direction", dir)
			return
		}
		o.timer.Arm(o.activeGroup)
		o.trace.State(log.StateEntityTimer, log.DirectionNone, o.activeGroup, "", session.TimerIdle.String(), session.TimerArmed.String(), tr.Rule)

	case session.CmdCancelSuspendTimer:
		if o.timer.Cancel() {
			o.trace.State(log.StateEntityTimer, log.DirectionNone, o.activeGroup, "", session.TimerArmed.String(), session.TimerIdle.String(), tr.Rule)
		}

	case session.CmdStopPipeline:
		o.stopPipeline(dir)

	case session.CmdNotifyReconfiguration:
		if s := o.audioSession(dir); s != nil {
			s.SuspendedForReconfiguration()
		}

	case session.CmdWarn:
		o.warnLog("session: unexpected request", "direction", dir, "event", tr.Event, "state", tr.From, "other", tr.Other)
	}
}

// requestStream asks the stream protocol to start the active group unless it
// is already heading to streaming.
func (o *Orchestrator) requestStream(dir model.Direction) {
	g, ok := o.registry.Group(o.activeGroup)
	if !ok {
		o.fire(dir, session.EventStreamRejected)
		return
	}
	if g.TargetState == model.AseStateStreaming {
		if g.IsStreaming() {
			o.fire(dir, session.EventGroupStreaming)
		}
		return
	}
	if err := o.groupStream(g.ID, o.tracker.CurrentContext()); err != nil {
		o.debugLog("resume: stream request failed", "group", g.ID, "error", err)
		o.fire(dir, session.EventStreamRejected)
	}
}

func (o *Orchestrator) startPipeline(dir model.Direction) error {
	g, ok := o.registry.Group(o.activeGroup)
	if !ok {
		return ErrUnknownGroup
	}
	conf, err := o.aggregator.Update(g.ID, dir)
	if err != nil {
		var mismatch *streamconf.MismatchError
		if errors.As(err, &mismatch) {
			o.protocolInconsistency(g.ID, err)
		}
		return err
	}
	if conf == nil {
		return fmt.Errorf("%w: no active endpoints", pipeline.ErrInvalidStreamConfig)
	}

	format := o.cfg.SourceFormat
	if dir == model.DirectionSource {
		format = o.cfg.SinkFormat
	}
	if c := o.tracker.Config(dir); !c.IsInvalid() {
		format.DataIntervalUs = c.DataIntervalUs
	}

	if dir == model.DirectionSink {
		err = o.sender.Start(conf, o.codecs, format)
	} else {
		err = o.receiver.Start(conf, o.codecs, format)
	}
	if err != nil {
		return err
	}

	if s := o.audioSession(dir); s != nil {
		s.UpdateRemoteDelay(o.stream.RemoteDelayMs(g.ID, dir))
	}
	return nil
}

func (o *Orchestrator) stopPipeline(dir model.Direction) {
	if dir == model.DirectionSink {
		o.sender.Stop()
		return
	}
	o.receiver.Stop()
}

// cancelStreamingRequest drops pending and running requests of both
// directions.
func (o *Orchestrator) cancelStreamingRequest() {
	o.fireBoth(session.EventCancelRequest)
}

// protocolInconsistency stops the group stream after a defect in the
// negotiated state.
func (o *Orchestrator) protocolInconsistency(groupID int, err error) {
	o.errorLog("protocol inconsistency, stopping group", "group", groupID, "error", err)
	o.trace.Error(log.LayerStream, groupID, err, "inconsistency")
	if serr := o.groupStop(groupID); serr != nil {
		o.debugLog("inconsistency: stop", "group", groupID, "error", serr)
	}
}

func (o *Orchestrator) handleChannelFault(e channelFault) {
	if e.groupID == model.GroupUnknown {
		return
	}
	o.protocolInconsistency(e.groupID, e.err)
}

func (o *Orchestrator) onTransition(tr session.Transition) {
	o.metrics.SessionTransition(tr.Direction.String(), tr.To.String())
	if !tr.Changed() {
		return
	}
	o.trace.State(log.StateEntityAudio, traceDir(tr.Direction), o.activeGroup, "", tr.From.String(), tr.To.String(), tr.Rule)
}

func (o *Orchestrator) recordSetupEnd() {
	if o.setupStart.IsZero() {
		return
	}
	o.lastSetup = time.Since(o.setupStart)
	o.metrics.StreamSetup(o.lastSetup)
	o.setupStart = time.Time{}
}
