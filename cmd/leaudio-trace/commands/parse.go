// Package commands implements the leaudio-trace CLI commands.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/leaudio/leaudio-go/pkg/log"
)

// FilterOptions are the textual filter flags shared by the commands.
type FilterOptions struct {
	SessionID string
	Device    string
	Group     int // log.NoGroup matches every group
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
}

// NoFilter matches every event.
var NoFilter = FilterOptions{Group: log.NoGroup}

// Build converts the options to a reader filter.
func (o FilterOptions) Build() (log.Filter, error) {
	f := log.Filter{
		SessionID: o.SessionID,
		Device:    strings.ToUpper(o.Device),
	}
	if o.Group != log.NoGroup {
		g := o.Group
		f.GroupID = &g
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		f.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		f.TimeEnd = &t
	}

	if o.Layer != "" {
		l, err := parseLayer(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		f.Layer = &l
	}
	if o.Direction != "" {
		d, err := parseDirection(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		f.Direction = &d
	}
	if o.Category != "" {
		c, err := parseCategory(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		f.Category = &c
	}
	return f, nil
}

var layers = []log.Layer{log.LayerLink, log.LayerStream, log.LayerIso, log.LayerAudio, log.LayerSession}

var categories = []log.Category{log.CategoryRequest, log.CategoryStatus, log.CategoryState, log.CategoryError}

var directions = []log.Direction{log.DirectionNone, log.DirectionSink, log.DirectionSource}

// parseLayer parses a layer name (case-insensitive).
func parseLayer(s string) (log.Layer, error) {
	for _, l := range layers {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("invalid layer: %s (must be link, stream, iso, audio or session)", s)
}

// parseDirection parses a direction name (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	for _, d := range directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid direction: %s (must be none, sink or source)", s)
}

// parseCategory parses a category name (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	for _, c := range categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s (must be request, status, state or error)", s)
}

func openReader(path string, opts FilterOptions) (*log.Reader, error) {
	filter, err := opts.Build()
	if err != nil {
		return nil, err
	}
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	return reader, nil
}

// shortSession returns the first 8 characters of a session id.
func shortSession(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
