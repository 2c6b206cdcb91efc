package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSlogAdapter(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  map[string]any
	}{
		{
			name: "request",
			event: Event{SessionID: "s", Direction: DirectionSink, Layer: LayerStream, Category: CategoryRequest, GroupID: 4,
				Request: &RequestEvent{Operation: "start_stream", Context: "MEDIA", Accepted: true}},
			want: map[string]any{"session": "s", "direction": "SINK", "layer": "STREAM", "op": "start_stream", "context": "MEDIA", "accepted": true, "group": float64(4)},
		},
		{
			name: "state",
			event: Event{Category: CategoryState, GroupID: NoGroup,
				StateChange: &StateChangeEvent{Entity: StateEntityTimer, OldState: "IDLE", NewState: "ARMED", Reason: "suspend-last"}},
			want: map[string]any{"entity": "TIMER", "new_state": "ARMED", "reason": "suspend-last"},
		},
		{
			name: "error",
			event: Event{Category: CategoryError, GroupID: NoGroup, Device: "dev",
				Error: &ErrorEventData{Layer: LayerIso, Message: "failed", Context: "remove data path"}},
			want: map[string]any{"device": "dev", "error_layer": "ISO", "error_msg": "failed", "error_context": "remove data path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
			adapter.Log(tt.event)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log output: %v", err)
			}
			if entry["msg"] != "trace" {
				t.Errorf("msg = %v, want trace", entry["msg"])
			}
			for k, v := range tt.want {
				if entry[k] != v {
					t.Errorf("%s = %v, want %v", k, entry[k], v)
				}
			}
			if tt.event.GroupID == NoGroup {
				if _, ok := entry["group"]; ok {
					t.Error("group attribute should be omitted")
				}
			}
		})
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	adapter.Log(Event{Category: CategoryStatus, Status: &StatusEvent{Status: "x"}})
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
