package log

import (
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 5, 4, 3, 2, 1, 123456789, time.UTC)
	tests := []struct {
		name  string
		event Event
	}{
		{"request", Event{Timestamp: ts, Layer: LayerStream, Category: CategoryRequest, GroupID: 2,
			Request: &RequestEvent{Operation: "start_stream", Context: "CONVERSATIONAL", Accepted: true}}},
		{"state", Event{Timestamp: ts, Direction: DirectionSource, Category: CategoryState, GroupID: 2,
			StateChange: &StateChangeEvent{Entity: StateEntityAudio, OldState: "IDLE", NewState: "STARTED"}}},
		{"error", Event{Timestamp: ts, Category: CategoryError, GroupID: NoGroup,
			Error: &ErrorEventData{Layer: LayerAudio, Message: "no session"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}
			got, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}
			if !got.Timestamp.Equal(ts) {
				t.Errorf("Timestamp = %v, want %v (nanoseconds must survive)", got.Timestamp, ts)
			}
			if got.GroupID != tt.event.GroupID || got.Direction != tt.event.Direction {
				t.Errorf("got %+v, want %+v", got, tt.event)
			}
			if (got.Request == nil) != (tt.event.Request == nil) ||
				(got.StateChange == nil) != (tt.event.StateChange == nil) ||
				(got.Error == nil) != (tt.event.Error == nil) {
				t.Errorf("payload mismatch: got %+v", got)
			}
		})
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}
