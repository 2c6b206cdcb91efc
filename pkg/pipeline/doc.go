// Package pipeline is the real-time audio path between the platform audio
// subsystem and the isochronous channels.
//
// The Sender encodes one interval of interleaved 16-bit PCM into one codec
// frame per outbound channel. When only one side of a two-device group is
// present, or a single device takes one channel, the PCM is downmixed to
// mono first.
//
// The Receiver decodes inbound frames, one per channel, and reassembles left
// and right into a single buffer for the audio sink using the capture
// timestamps. A frame of the wrong size is decoded as a lost packet so the
// codec conceals it. Frames older than what was already delivered are
// dropped with ErrStaleFrame.
//
// Both types are driven from the isochronous data goroutines and carry their
// own locks; the orchestrator only starts and stops them.
package pipeline
