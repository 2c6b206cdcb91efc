// Package log records a machine-readable trace of an audio session.
//
// It is separate from operational logging (slog). The trace captures every
// request sent to the collaborators, every status they report, each state
// change of the audio session and the errors seen along the way, so a run can
// be replayed and inspected after the fact.
//
// # Basic Usage
//
//	// console while developing
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// binary file for later inspection
//	cfg.Trace, _ = log.NewFileLogger("/var/log/leaudio/session.ltrace")
//
//	// both
//	cfg.Trace = log.NewMultiLogger(a, b)
//
// # File Format
//
// Trace files are a stream of CBOR encoded Events with integer map keys.
// Reader iterates a file, optionally through a Filter.
package log
