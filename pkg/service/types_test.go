package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/session"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{name: "default", modify: func(*Config) {}, valid: true},
		{name: "zero suspend timeout", modify: func(c *Config) { c.SuspendTimeout = 0 }},
		{name: "suspend timeout below minimum", modify: func(c *Config) { c.SuspendTimeout = 50 * time.Millisecond }},
		{name: "suspend timeout above maximum", modify: func(c *Config) { c.SuspendTimeout = 2 * time.Minute }},
		{name: "minimum suspend timeout", modify: func(c *Config) { c.SuspendTimeout = session.MinSuspendTimeout }, valid: true},
		{name: "zero queue", modify: func(c *Config) { c.QueueSize = 0 }},
		{name: "negative attempt timeout", modify: func(c *Config) { c.ReconnectAttemptTimeout = -time.Second }},
		{name: "three channels", modify: func(c *Config) { c.SourceFormat.Channels = 3 }},
		{name: "24 bit", modify: func(c *Config) { c.SinkFormat.BitsPerSample = 24 }},
		{name: "no sample rate", modify: func(c *Config) { c.SinkFormat.SampleRateHz = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "ACTIVE", GroupStatusActive.String())
	assert.Equal(t, "INACTIVE", GroupStatusInactive.String())
	assert.Equal(t, "CONNECTED", ConnectionConnected.String())
	assert.Equal(t, "DISCONNECTED", ConnectionDisconnected.String())
	assert.Equal(t, "ADDED", GroupNodeAdded.String())
	assert.Equal(t, "REMOVED", GroupNodeRemoved.String())
	assert.Equal(t, "UNKNOWN", GroupStatus(9).String())
}

func TestEventNamesAreUnique(t *testing.T) {
	events := []Event{
		LinkConnected{}, LinkEncrypted{}, ServicesDiscovered{}, EndpointsRead{}, LinkDisconnected{},
		LocationsChanged{}, AvailableContextsChanged{}, SupportedContextsChanged{}, EndpointChanged{},
		GroupStateChanged{}, StreamStatus{}, StateTransitionTimeout{},
		ChannelGroupCreated{}, ChannelGroupRemoved{}, ChannelEstablished{}, ChannelDisconnected{},
		DataPathChanged{}, LinkQuality{},
		AudioResume{}, AudioSuspend{}, AudioMetadata{},
		SetGroupAdded{}, SetMemberAdded{}, SetMemberRemoved{},
		suspendTimeout{}, channelFault{},
	}

	seen := make(map[string]bool)
	for _, ev := range events {
		name := ev.eventName()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate event name %q", name)
		seen[name] = true
	}
}

func TestAudioConfDirections(t *testing.T) {
	g := model.NewGroup(3)
	g.SinkLocations = model.LocationFrontLeft
	conf := AudioConf{GroupID: g.ID, Directions: g.Directions()}
	assert.Equal(t, uint8(1<<model.DirectionSink), conf.Directions)
}
