package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/leaudio/leaudio-go/pkg/log"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// RunView prints the matching events in human-readable form.
func RunView(path string, opts FilterOptions, w io.Writer) error {
	reader, err := openReader(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one event: a header line and its details.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeFormat)
	fmt.Fprintf(w, "%s [%s] %-7s %-7s", ts, shortSession(event.SessionID), event.Layer, event.Category)
	if event.GroupID != log.NoGroup {
		fmt.Fprintf(w, " group=%d", event.GroupID)
	}
	if event.Direction != log.DirectionNone {
		fmt.Fprintf(w, " %s", event.Direction)
	}
	if event.Device != "" {
		fmt.Fprintf(w, " %s", event.Device)
	}
	fmt.Fprintln(w)

	switch {
	case event.Request != nil:
		r := event.Request
		result := "accepted"
		if !r.Accepted {
			result = "rejected"
		}
		if r.Context != "" {
			fmt.Fprintf(w, "  %s(%s) %s\n", r.Operation, r.Context, result)
		} else {
			fmt.Fprintf(w, "  %s %s\n", r.Operation, result)
		}
	case event.Status != nil:
		if event.Status.Detail != "" {
			fmt.Fprintf(w, "  %s: %s\n", event.Status.Status, event.Status.Detail)
		} else {
			fmt.Fprintf(w, "  %s\n", event.Status.Status)
		}
	case event.StateChange != nil:
		sc := event.StateChange
		if sc.OldState != "" {
			fmt.Fprintf(w, "  %s %s -> %s", sc.Entity, sc.OldState, sc.NewState)
		} else {
			fmt.Fprintf(w, "  %s -> %s", sc.Entity, sc.NewState)
		}
		if sc.Reason != "" {
			fmt.Fprintf(w, " (%s)", sc.Reason)
		}
		fmt.Fprintln(w)
	case event.Error != nil:
		fmt.Fprintf(w, "  %s: %s", event.Error.Layer, event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, " [%s]", event.Error.Context)
		}
		fmt.Fprintln(w)
	}
}
