package commands

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/pkg/log"
)

var base = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func createTestTrace(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.ltrace")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

// sessionEvents is a short stream setup of group 1 followed by a timer expiry.
func sessionEvents() []log.Event {
	return []log.Event{
		{Timestamp: base, SessionID: "5f0c1e2a-aaaa", Layer: log.LayerLink, Category: log.CategoryStatus,
			GroupID: log.NoGroup, Device: "C0:FF:EE:00:00:01", Status: &log.StatusEvent{Status: "CONNECTED"}},
		{Timestamp: base.Add(10 * time.Millisecond), SessionID: "5f0c1e2a-aaaa", Layer: log.LayerStream, Category: log.CategoryRequest,
			GroupID: 1, Request: &log.RequestEvent{Operation: "start_stream", Context: "MEDIA", Accepted: true}},
		{Timestamp: base.Add(40 * time.Millisecond), SessionID: "5f0c1e2a-aaaa", Layer: log.LayerStream, Category: log.CategoryStatus,
			GroupID: 1, Status: &log.StatusEvent{Status: "STREAMING"}},
		{Timestamp: base.Add(41 * time.Millisecond), SessionID: "5f0c1e2a-aaaa", Direction: log.DirectionSink, Layer: log.LayerSession,
			Category: log.CategoryState, GroupID: 1,
			StateChange: &log.StateChangeEvent{Entity: log.StateEntityAudio, OldState: "READY_TO_START", NewState: "STARTED", Reason: "pipeline-started"}},
		{Timestamp: base.Add(5 * time.Second), SessionID: "5f0c1e2a-aaaa", Layer: log.LayerSession, Category: log.CategoryState,
			GroupID: 1, StateChange: &log.StateChangeEvent{Entity: log.StateEntityTimer, OldState: "ARMED", NewState: "EXPIRED"}},
		{Timestamp: base.Add(6 * time.Second), SessionID: "5f0c1e2a-aaaa", Layer: log.LayerIso, Category: log.CategoryError,
			GroupID: 2, Error: &log.ErrorEventData{Layer: log.LayerIso, Message: "unknown channel", Context: "handle 0x0061"}},
		{Timestamp: base.Add(7 * time.Second), SessionID: "5f0c1e2a-aaaa", Layer: log.LayerStream, Category: log.CategoryRequest,
			GroupID: 2, Request: &log.RequestEvent{Operation: "start_stream", Context: "GAME", Accepted: false}},
	}
}

func TestViewFormatsPayloads(t *testing.T) {
	path := createTestTrace(t, sessionEvents())

	var buf bytes.Buffer
	require.NoError(t, RunView(path, NoFilter, &buf))
	out := buf.String()

	for _, want := range []string{
		"2026-03-02T09:30:00.000000Z [5f0c1e2a] LINK    STATUS  C0:FF:EE:00:00:01",
		"  CONNECTED",
		"  start_stream(MEDIA) accepted",
		"group=1 SINK",
		"  AUDIO READY_TO_START -> STARTED (pipeline-started)",
		"  TIMER ARMED -> EXPIRED",
		"  ISO: unknown channel [handle 0x0061]",
		"  start_stream(GAME) rejected",
	} {
		assert.Contains(t, out, want)
	}
}

func TestViewFilters(t *testing.T) {
	path := createTestTrace(t, sessionEvents())

	group1 := NoFilter
	group1.Group = 1
	device := NoFilter
	device.Device = "c0:ff:ee:00:00:01"
	requests := NoFilter
	requests.Category = "request"
	sink := NoFilter
	sink.Direction = "sink"
	stream := NoFilter
	stream.Layer = "STREAM"
	window := NoFilter
	window.TimeStart = base.Add(time.Second).Format(time.RFC3339)

	tests := []struct {
		name  string
		opts  FilterOptions
		lines int
	}{
		{"all", NoFilter, 7},
		{"group", group1, 4},
		{"device", device, 1},
		{"category", requests, 2},
		{"direction", sink, 1},
		{"layer", stream, 3},
		{"time", window, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RunView(path, tt.opts, &buf))
			assert.Equal(t, tt.lines, strings.Count(buf.String(), "[5f0c1e2a]"))
		})
	}
}

func TestFilterOptionsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		mod  func(o *FilterOptions)
	}{
		{"layer", func(o *FilterOptions) { o.Layer = "wire" }},
		{"direction", func(o *FilterOptions) { o.Direction = "in" }},
		{"category", func(o *FilterOptions) { o.Category = "message" }},
		{"time-start", func(o *FilterOptions) { o.TimeStart = "yesterday" }},
		{"time-end", func(o *FilterOptions) { o.TimeEnd = "2026-13-01" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NoFilter
			tt.mod(&opts)
			_, err := opts.Build()
			assert.Error(t, err)
		})
	}
}

func TestStatsPerGroup(t *testing.T) {
	path := createTestTrace(t, sessionEvents())

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, NoFilter, &buf))
	out := buf.String()

	assert.Contains(t, out, "Total Events: 7")
	assert.Contains(t, out, "Sessions:     1")
	assert.Contains(t, out, "STREAM:      3")
	assert.Contains(t, out, "Groups: 2")
	assert.Contains(t, out, "[1] 4 events, 1 stream starts, 1 streaming, 1 timer expiries")
	assert.Contains(t, out, "[2] 2 events, 0 stream starts, 0 streaming, 0 timer expiries, 1 errors")
	assert.Contains(t, out, "Rejected requests: 1")
	assert.Contains(t, out, "Errors: 1")
}

func TestStatsEmptyTrace(t *testing.T) {
	path := createTestTrace(t, nil)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, NoFilter, &buf))
	assert.Contains(t, buf.String(), "Total Events: 0")
	assert.NotContains(t, buf.String(), "Time Range")
}

func TestExportCSV(t *testing.T) {
	path := createTestTrace(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "session.csv")

	require.NoError(t, RunExport(path, "csv", out, NoFilter))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 8)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"2026-03-02T09:30:00.010000Z", "5f0c1e2a-aaaa", "STREAM", "REQUEST", "NONE", "1", "",
		"start_stream", "MEDIA accepted"}, rows[2])
	assert.Equal(t, "", rows[1][5], "events without a group leave the column empty")
}

func TestExportJSONL(t *testing.T) {
	path := createTestTrace(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "session.jsonl")

	group2 := NoFilter
	group2.Group = 2
	require.NoError(t, RunExport(path, "jsonl", out, group2))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Message":"unknown channel"`)
	assert.Contains(t, lines[1], `"Operation":"start_stream"`)
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTrace(t, sessionEvents())
	assert.Error(t, RunExport(path, "xml", "", NoFilter))
}

func TestFilterWritesSubset(t *testing.T) {
	path := createTestTrace(t, sessionEvents())
	out := filepath.Join(t.TempDir(), "errors.ltrace")

	errs := NoFilter
	errs.Category = "error"
	n, err := RunFilter(path, out, errs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reader, err := log.NewReader(out)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "unknown channel", events[0].Error.Message)
	assert.True(t, events[0].Timestamp.Equal(base.Add(6*time.Second)))
}

func TestFilterRequiresOutput(t *testing.T) {
	path := createTestTrace(t, sessionEvents())
	_, err := RunFilter(path, "", NoFilter)
	assert.Error(t, err)
}
