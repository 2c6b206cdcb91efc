package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// Dump writes a diagnostics report: the active group, the current context,
// the last stream setup latency, the audio sessions, every group and the
// ungrouped devices.
func (o *Orchestrator) Dump(w io.Writer) error {
	var b strings.Builder
	if err := o.call(func() error {
		o.dump(&b)
		return nil
	}); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (o *Orchestrator) dump(b *strings.Builder) {
	sender, receiver := o.machine.States()

	fmt.Fprintf(b, "LE Audio client (session %s)\n", o.trace.SessionID())
	fmt.Fprintf(b, "  active group: %d\n", o.activeGroup)
	fmt.Fprintf(b, "  current context: 0x%04x %s\n", uint16(o.tracker.CurrentContext()), o.tracker.CurrentContext())
	fmt.Fprintf(b, "  stream setup time: %d ms\n", o.lastSetup.Milliseconds())
	fmt.Fprintf(b, "  suspend timer: %s (%s left)\n", o.timer.State(), o.timer.Remaining())
	fmt.Fprintf(b, "  source session: %s, pcm %s, sender %s\n",
		o.tracker.Config(model.DirectionSink), o.cfg.SourceFormat, sender)
	fmt.Fprintf(b, "  sink session: %s, pcm %s, receiver %s\n",
		o.tracker.Config(model.DirectionSource), o.cfg.SinkFormat, receiver)

	for _, g := range o.registry.Groups() {
		fmt.Fprintf(b, "  group %d: state %s target %s\n", g.ID, g.State, g.TargetState)
		fmt.Fprintf(b, "    contexts %s, sink locations 0x%08x, source locations 0x%08x\n",
			g.ActiveContexts, uint32(g.SinkLocations), uint32(g.SourceLocations))
		fmt.Fprintf(b, "    pending configuration %t, channel group %t, latency sink %d us source %d us\n",
			g.PendingConfiguration, g.CIGCreated,
			g.TransportLatencyUs[model.DirectionSink.Index()], g.TransportLatencyUs[model.DirectionSource.Index()])
		for _, d := range o.registry.Members(g.ID) {
			dumpDevice(b, d, "    ")
		}
	}

	ungrouped := o.registry.UngroupedDevices()
	if len(ungrouped) > 0 {
		fmt.Fprintf(b, "  ungrouped devices:\n")
		for _, d := range ungrouped {
			dumpDevice(b, d, "    ")
		}
	}
}

func dumpDevice(b *strings.Builder, d *model.Device, indent string) {
	conn := "disconnected"
	if d.IsConnected() {
		conn = fmt.Sprintf("conn 0x%04x", d.ConnID)
	}
	fmt.Fprintf(b, "%s%s: %s, encrypted %t, available %s\n", indent, d.Address, conn, d.Encrypted, d.AvailableContexts)
	for _, e := range d.Endpoints {
		fmt.Fprintf(b, "%s  ase %d %s: %s, channel 0x%04x, data path %s, %d Hz %d us %d octets\n",
			indent, e.ID, e.Direction, e.State, e.ChannelHandle, e.DataPath,
			e.Codec.SampleRateHz, e.Codec.FrameDurationUs, e.Codec.OctetsPerFrame)
	}
}
