package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ltrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("trace file was not created")
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ltrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Log(Event{
		SessionID: "s-1",
		Direction: DirectionSink,
		Layer:     LayerStream,
		Category:  CategoryRequest,
		GroupID:   3,
		Request:   &RequestEvent{Operation: "start_stream", Context: "MEDIA", Accepted: true},
	})
	logger.Log(Event{
		SessionID: "s-1",
		Layer:     LayerLink,
		Category:  CategoryStatus,
		GroupID:   NoGroup,
		Device:    "AA:BB:CC:DD:EE:FF",
		Status:    &StatusEvent{Status: "CONNECTED"},
	})
	if written, failed := logger.Stats(); written != 2 || failed != 0 {
		t.Errorf("Stats() = %d, %d, want 2, 0", written, failed)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	events, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp was not stamped")
	}
	if events[0].Request == nil || events[0].Request.Operation != "start_stream" {
		t.Errorf("Request = %+v, want start_stream", events[0].Request)
	}
	if events[1].Device != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("Device = %q", events[1].Device)
	}
	if events[1].GroupID != NoGroup {
		t.Errorf("GroupID = %d, want %d", events[1].GroupID, NoGroup)
	}
}

func TestFileLoggerIgnoresLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ltrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}

	logger.Log(Event{Layer: LayerSession})

	if written, _ := logger.Stats(); written != 0 {
		t.Errorf("written = %d, want 0", written)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ltrace")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				logger.Log(Event{Timestamp: time.Now(), GroupID: w, Layer: LayerIso})
			}
		}(w)
	}
	wg.Wait()
	logger.Close()

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	count := 0
	for {
		_, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != workers*perWorker {
		t.Errorf("read %d events, want %d", count, workers*perWorker)
	}
}
