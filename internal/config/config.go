// Package config loads the simulator configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/leaudio/leaudio-go/internal/sim"
	"github.com/leaudio/leaudio-go/pkg/connection"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/service"
	"github.com/leaudio/leaudio-go/pkg/session"
)

// ErrInvalidConfig is returned when the configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Suspend timeout bounds accepted from the file.
const (
	MinSuspendTimeout = 100 * time.Millisecond
	MaxSuspendTimeout = 60 * time.Second
)

// Config is the simulator configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// MetricsAddress serves /metrics when set, e.g. ":9090".
	MetricsAddress string `yaml:"metrics_address"`

	// TraceFile receives the CBOR session trace when set.
	TraceFile string `yaml:"trace_file"`

	Orchestrator Orchestrator `yaml:"orchestrator"`
	Peers        []Peer       `yaml:"peers"`
}

// Orchestrator holds the orchestrator settings.
type Orchestrator struct {
	SuspendTimeout   time.Duration `yaml:"suspend_timeout"`
	QueueSize        int           `yaml:"queue_size"`
	Reconnect        bool          `yaml:"reconnect"`
	ReconnectInitial time.Duration `yaml:"reconnect_initial"`
	ReconnectMax     time.Duration `yaml:"reconnect_max"`
}

// Peer describes one simulated device.
type Peer struct {
	Address string `yaml:"address"`

	// Set is the coordinated set id; 0 means a standalone device.
	Set int `yaml:"set"`

	// Locations are audio location bitmasks.
	SinkLocations   uint32 `yaml:"sink_locations"`
	SourceLocations uint32 `yaml:"source_locations"`

	// Contexts are context names such as "media" or "conversational".
	Contexts []string `yaml:"contexts"`
}

// Default returns the configuration used when no file is given: a pair of
// earbuds in one set, the left one with a microphone.
func Default() Config {
	return Config{
		LogLevel: "info",
		Orchestrator: Orchestrator{
			SuspendTimeout:   session.DefaultSuspendTimeout,
			QueueSize:        service.DefaultQueueSize,
			Reconnect:        true,
			ReconnectInitial: connection.InitialBackoff,
			ReconnectMax:     connection.MaxBackoff,
		},
		Peers: []Peer{
			{Address: "c0:ff:ee:00:00:01", Set: 1, SinkLocations: uint32(model.LocationFrontLeft),
				SourceLocations: uint32(model.LocationFrontLeft), Contexts: []string{"media", "conversational", "game"}},
			{Address: "c0:ff:ee:00:00:02", Set: 1, SinkLocations: uint32(model.LocationFrontRight),
				Contexts: []string{"media", "conversational", "game"}},
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; a peers list replaces the default peers.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	o := c.Orchestrator
	if o.SuspendTimeout < MinSuspendTimeout || o.SuspendTimeout > MaxSuspendTimeout {
		return fmt.Errorf("%w: suspend_timeout %s out of range", ErrInvalidConfig, o.SuspendTimeout)
	}
	if o.QueueSize <= 0 {
		return fmt.Errorf("%w: queue_size %d", ErrInvalidConfig, o.QueueSize)
	}
	if o.ReconnectInitial < 0 || o.ReconnectMax < 0 {
		return fmt.Errorf("%w: negative reconnect backoff", ErrInvalidConfig)
	}

	seen := make(map[model.Address]bool)
	for i, p := range c.Peers {
		addr, err := model.ParseAddress(p.Address)
		if err != nil {
			return fmt.Errorf("%w: peer %d: %w", ErrInvalidConfig, i, err)
		}
		if seen[addr] {
			return fmt.Errorf("%w: duplicate peer %s", ErrInvalidConfig, addr)
		}
		seen[addr] = true
		if p.Set < 0 {
			return fmt.Errorf("%w: peer %s: negative set", ErrInvalidConfig, addr)
		}
		if p.SinkLocations == 0 && p.SourceLocations == 0 {
			return fmt.Errorf("%w: peer %s has no audio location", ErrInvalidConfig, addr)
		}
		if _, err := parseContexts(p.Contexts); err != nil {
			return fmt.Errorf("%w: peer %s: %w", ErrInvalidConfig, addr, err)
		}
	}
	return nil
}

// ServiceConfig applies the file settings to the orchestrator defaults.
func (c Config) ServiceConfig() service.Config {
	cfg := service.DefaultConfig()
	cfg.SuspendTimeout = c.Orchestrator.SuspendTimeout
	cfg.QueueSize = c.Orchestrator.QueueSize
	cfg.Reconnect = c.Orchestrator.Reconnect
	cfg.Backoff = connection.BackoffConfig{
		Initial:    c.Orchestrator.ReconnectInitial,
		Max:        c.Orchestrator.ReconnectMax,
		Multiplier: connection.BackoffMultiplier,
		Jitter:     connection.JitterFactor,
	}
	return cfg
}

// PeerConfigs converts the peers for the simulated network. It expects a
// validated configuration.
func (c Config) PeerConfigs() ([]sim.PeerConfig, error) {
	out := make([]sim.PeerConfig, 0, len(c.Peers))
	for _, p := range c.Peers {
		addr, err := model.ParseAddress(p.Address)
		if err != nil {
			return nil, err
		}
		contexts, err := parseContexts(p.Contexts)
		if err != nil {
			return nil, err
		}
		set := model.GroupUnknown
		if p.Set > 0 {
			set = p.Set
		}
		out = append(out, sim.PeerConfig{
			Address:         addr,
			SetID:           set,
			SinkLocations:   model.AudioLocation(p.SinkLocations),
			SourceLocations: model.AudioLocation(p.SourceLocations),
			Contexts:        contexts,
		})
	}
	return out, nil
}

func parseContexts(names []string) (model.AudioContexts, error) {
	if len(names) == 0 {
		return model.ContextsOf(model.ContextUnspecified, model.ContextMedia), nil
	}
	var set model.AudioContexts
	for _, n := range names {
		ctx, ok := model.ParseContextType(n)
		if !ok {
			return 0, fmt.Errorf("unknown context %q", n)
		}
		set = set.Add(ctx)
	}
	return set, nil
}
