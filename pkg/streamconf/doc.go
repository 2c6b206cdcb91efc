// Package streamconf derives the unified per-direction stream configuration
// of a group from its active endpoints, decides whether a new audio context
// needs a stream reconfiguration, and maps audio metadata to a context.
//
// All active endpoints of one direction must agree on sample rate, frame
// duration and octets per frame. A disagreement is a negotiation defect and
// is reported as a *MismatchError, never resolved by picking one value.
package streamconf
