package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/leaudio/leaudio-go/pkg/log"
)

// RunExport exports the matching events to jsonl or csv. An empty output
// writes to stdout.
func RunExport(path, format, output string, opts FilterOptions) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := openReader(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

var csvHeader = []string{"timestamp", "session_id", "layer", "category", "direction", "group", "device", "name", "detail"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		name, detail := eventSummary(event)
		group := ""
		if event.GroupID != log.NoGroup {
			group = strconv.Itoa(event.GroupID)
		}
		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.SessionID,
			event.Layer.String(),
			event.Category.String(),
			event.Direction.String(),
			group,
			event.Device,
			name,
			detail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}

// eventSummary returns a name and a detail column for the payload.
func eventSummary(event log.Event) (name, detail string) {
	switch {
	case event.Request != nil:
		detail = "rejected"
		if event.Request.Accepted {
			detail = "accepted"
		}
		if event.Request.Context != "" {
			detail = event.Request.Context + " " + detail
		}
		return event.Request.Operation, detail
	case event.Status != nil:
		return event.Status.Status, event.Status.Detail
	case event.StateChange != nil:
		sc := event.StateChange
		return sc.Entity.String(), fmt.Sprintf("%s->%s %s", sc.OldState, sc.NewState, sc.Reason)
	case event.Error != nil:
		return "error", event.Error.Message
	}
	return "unknown", ""
}
