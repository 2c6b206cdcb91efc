package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/leaudio/leaudio-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]int
	Groups            map[int]*GroupStats
	Rejected          int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// GroupStats holds statistics for a single group.
type GroupStats struct {
	Events        int
	StreamStarts  int
	Streaming     int
	TimerExpiries int
	Errors        int
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, opts FilterOptions, w io.Writer) error {
	reader, err := openReader(path, opts)
	if err != nil {
		return err
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func newStats() *Stats {
	return &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]int),
		Groups:            make(map[int]*GroupStats),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++
	s.Sessions[event.SessionID]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Request != nil && !event.Request.Accepted {
		s.Rejected++
	}
	if event.Error != nil {
		s.Errors++
	}

	if event.GroupID == log.NoGroup {
		return
	}
	g, ok := s.Groups[event.GroupID]
	if !ok {
		g = &GroupStats{}
		s.Groups[event.GroupID] = g
	}
	g.Events++
	switch {
	case event.Request != nil && event.Request.Operation == "start_stream" && event.Request.Accepted:
		g.StreamStarts++
	case event.Status != nil && event.Status.Status == "STREAMING" && event.Layer == log.LayerStream:
		g.Streaming++
	case event.StateChange != nil && event.StateChange.Entity == log.StateEntityTimer && event.StateChange.NewState == "EXPIRED":
		g.TimerExpiries++
	case event.Error != nil:
		g.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== LE Audio Session Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, l := range layers {
		if n := stats.EventsByLayer[l]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", l.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range categories {
		if n := stats.EventsByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", c.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, d := range directions {
		if n := stats.EventsByDirection[d]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", d.String()+":", n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Groups: %d\n", len(stats.Groups))
	ids := make([]int, 0, len(stats.Groups))
	for id := range stats.Groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		g := stats.Groups[id]
		fmt.Fprintf(w, "  [%d] %d events, %d stream starts, %d streaming, %d timer expiries",
			id, g.Events, g.StreamStarts, g.Streaming, g.TimerExpiries)
		if g.Errors > 0 {
			fmt.Fprintf(w, ", %d errors", g.Errors)
		}
		fmt.Fprintln(w)
	}

	if stats.Rejected > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rejected requests: %d\n", stats.Rejected)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
