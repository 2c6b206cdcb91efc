package interactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/internal/sim"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		arg     string
		want    model.Direction
		wantErr bool
	}{
		{"sink", model.DirectionSink, false},
		{"SPEAKER", model.DirectionSink, false},
		{"source", model.DirectionSource, false},
		{"mic", model.DirectionSource, false},
		{"sideways", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseDirection([]string{tt.arg})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseDirection(nil)
	assert.Error(t, err)
}

func TestTrackNamesSelectContexts(t *testing.T) {
	tests := []struct {
		name string
		want model.ContextType
	}{
		{"music", model.ContextMedia},
		{"call", model.ContextConversational},
		{"game", model.ContextGame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := trackNames[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.want, streamconf.ContextForTrack(model.ContextMedia, tr))
		})
	}
}

func TestResolvePeer(t *testing.T) {
	net := sim.NewNetwork(nil)
	addr := model.MustParseAddress("c0:ff:ee:00:00:01")
	net.AddPeer(sim.PeerConfig{Address: addr, SinkLocations: model.LocationFrontLeft})
	s := &Shell{deps: Deps{Network: net}, lastGroup: model.GroupUnknown}

	got, err := s.resolvePeer("0")
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	got, err = s.resolvePeer("C0:FF:EE:00:00:01")
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	_, err = s.resolvePeer("3")
	assert.Error(t, err)
	_, err = s.resolvePeer("nope")
	assert.Error(t, err)
}

func TestParseGroupFallsBackToLastActive(t *testing.T) {
	s := &Shell{lastGroup: model.GroupUnknown}

	_, err := s.parseGroup(nil)
	assert.Error(t, err)

	s.lastGroup = 4
	id, err := s.parseGroup(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	id, err = s.parseGroup([]string{"7"})
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = s.parseGroup([]string{"x"})
	assert.Error(t, err)
}
