// Package session implements the audio session state machine that gates the
// real-time pipeline.
//
// A single Machine tracks two coupled directions: the sender (host audio to
// the peers, model.DirectionSink) and the receiver (peer audio to the host,
// model.DirectionSource). Requests from the audio subsystem and status
// reports from the stream protocol are fed in as events. The machine looks
// the event up in an explicit transition table keyed by direction state, the
// other direction's state and a few guards, moves to the next state and
// returns the ordered commands the caller must execute.
//
// State progression per direction:
//
//	IDLE -> READY_TO_START -> STARTED -> READY_TO_RELEASE -> RELEASING -> IDLE
//
// The SuspendTimer delays stopping the stream once both directions have been
// suspended, so quick suspend/resume sequences do not renegotiate the link.
package session
