package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/pkg/connection"
	"github.com/leaudio/leaudio-go/pkg/model"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	peers, err := cfg.PeerConfigs()
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.Equal(t, peers[0].SetID, peers[1].SetID)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "sim.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.MetricsAddress)
	assert.Equal(t, 2*time.Second, cfg.Orchestrator.SuspendTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Orchestrator.ReconnectInitial)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, connection.MaxBackoff, cfg.Orchestrator.ReconnectMax)
	assert.True(t, cfg.Orchestrator.Reconnect)

	peers, err := cfg.PeerConfigs()
	require.NoError(t, err)
	require.Len(t, peers, 3)
	assert.Equal(t, 7, peers[0].SetID)
	assert.Equal(t, model.LocationFrontLeft, peers[0].SourceLocations)
	assert.True(t, peers[1].Contexts.Has(model.ContextConversational))
	assert.Equal(t, model.GroupUnknown, peers[2].SetID)
	assert.True(t, peers[2].Contexts.Has(model.ContextMedia))

	svc := cfg.ServiceConfig()
	assert.Equal(t, 2*time.Second, svc.SuspendTimeout)
	assert.NoError(t, svc.Validate())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "timeout too short", yaml: "orchestrator:\n  suspend_timeout: 10ms\n"},
		{name: "timeout too long", yaml: "orchestrator:\n  suspend_timeout: 2m\n"},
		{name: "bad address", yaml: "peers:\n  - address: nope\n    sink_locations: 1\n"},
		{name: "duplicate peer", yaml: "peers:\n  - address: \"01:02:03:04:05:06\"\n    sink_locations: 1\n  - address: \"01:02:03:04:05:06\"\n    sink_locations: 2\n"},
		{name: "no location", yaml: "peers:\n  - address: \"01:02:03:04:05:06\"\n"},
		{name: "unknown context", yaml: "peers:\n  - address: \"01:02:03:04:05:06\"\n    sink_locations: 1\n    contexts: [karaoke]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("peers: [\n"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
