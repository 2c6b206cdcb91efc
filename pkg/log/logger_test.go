package log

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{}) // must not panic
}

func TestMemoryLogger(t *testing.T) {
	m := &MemoryLogger{}
	m.Log(Event{Category: CategoryRequest})
	m.Log(Event{Category: CategoryState})
	m.Log(Event{Category: CategoryState})

	state := CategoryState
	if got := len(m.Events(Filter{Category: &state})); got != 2 {
		t.Errorf("state events = %d, want 2", got)
	}
	if got := len(m.Events(Filter{})); got != 3 {
		t.Errorf("all events = %d, want 3", got)
	}

	m.Reset()
	if got := len(m.Events(Filter{})); got != 0 {
		t.Errorf("after Reset = %d, want 0", got)
	}
}

func TestMultiLogger(t *testing.T) {
	a, b := &MemoryLogger{}, &MemoryLogger{}
	m := NewMultiLogger(a, nil, b)
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	m.Log(Event{Layer: LayerAudio})

	for i, l := range []*MemoryLogger{a, b} {
		if got := len(l.Events(Filter{})); got != 1 {
			t.Errorf("logger %d got %d events, want 1", i, got)
		}
	}
}

func TestTracerStampsEvents(t *testing.T) {
	mem := &MemoryLogger{}
	tr := NewTracer(mem)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	if _, err := uuid.Parse(tr.SessionID()); err != nil {
		t.Fatalf("SessionID() = %q is not a UUID: %v", tr.SessionID(), err)
	}

	tr.Request(LayerStream, DirectionSink, 1, "start_stream", "MEDIA", true)
	tr.Status(LayerLink, NoGroup, "dev", "CONNECTED", "")
	tr.State(StateEntityAudio, DirectionSource, 1, "", "IDLE", "READY_TO_START", "resume-first")
	tr.Error(LayerIso, 1, errors.New("boom"), "setup data path")
	tr.Error(LayerIso, 1, nil, "ignored")

	events := mem.Events(Filter{})
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	for i, e := range events {
		if e.SessionID != tr.SessionID() {
			t.Errorf("event %d SessionID = %q", i, e.SessionID)
		}
		if !e.Timestamp.Equal(fixed) {
			t.Errorf("event %d Timestamp = %v, want %v", i, e.Timestamp, fixed)
		}
	}
	if events[2].StateChange.Reason != "resume-first" {
		t.Errorf("Reason = %q", events[2].StateChange.Reason)
	}
	if events[3].Error.Message != "boom" {
		t.Errorf("Message = %q", events[3].Error.Message)
	}
}

func TestNilTracer(t *testing.T) {
	var tr *Tracer
	tr.Request(LayerStream, DirectionNone, 0, "x", "", false)
	if tr.SessionID() != "" {
		t.Error("nil tracer should have empty session id")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionSink.String(), "SINK"},
		{DirectionSource.String(), "SOURCE"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerIso.String(), "ISO"},
		{Layer(9).String(), "UNKNOWN"},
		{CategoryError.String(), "ERROR"},
		{StateEntityTimer.String(), "TIMER"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
