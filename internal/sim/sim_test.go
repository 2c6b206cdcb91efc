package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/internal/sim"
	"github.com/leaudio/leaudio-go/pkg/connection"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/pipeline"
	"github.com/leaudio/leaudio-go/pkg/registry"
	"github.com/leaudio/leaudio-go/pkg/service"
	"github.com/leaudio/leaudio-go/pkg/session"
	"github.com/leaudio/leaudio-go/pkg/streamconf"
)

const (
	setID   = 1
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var (
	leftAddr  = model.MustParseAddress("00:11:22:33:44:01")
	rightAddr = model.MustParseAddress("00:11:22:33:44:02")
)

type harness struct {
	net  *sim.Network
	hal  *sim.AudioHAL
	orch *service.Orchestrator
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	net := sim.NewNetwork(nil)
	contexts := model.ContextsOf(model.ContextMedia, model.ContextConversational)
	net.AddPeer(sim.PeerConfig{Address: leftAddr, SetID: setID,
		SinkLocations: model.LocationFrontLeft, SourceLocations: model.LocationFrontLeft, Contexts: contexts})
	net.AddPeer(sim.PeerConfig{Address: rightAddr, SetID: setID,
		SinkLocations: model.LocationFrontRight, Contexts: contexts})
	hal := sim.NewAudioHAL(nil)

	cfg := service.DefaultConfig()
	cfg.SuspendTimeout = 100 * time.Millisecond
	cfg.Backoff = connection.BackoffConfig{Initial: 5 * time.Millisecond, Max: 20 * time.Millisecond, Multiplier: 2}
	cfg.ReconnectAttemptTimeout = 20 * time.Millisecond

	orch, err := service.New(cfg, service.Collaborators{
		Stream: net,
		Iso:    net,
		Audio:  hal,
		Link:   net,
		Sets:   net,
		Codecs: sim.Codec{},
	})
	require.NoError(t, err)
	net.Bind(orch)

	require.NoError(t, orch.Start(context.Background()))
	t.Cleanup(orch.Stop)

	return &harness{net: net, hal: hal, orch: orch}
}

func (h *harness) connectedMembers(t *testing.T) int {
	t.Helper()
	n := 0
	require.NoError(t, h.orch.Inspect(func(r *registry.Registry) {
		n = len(r.ConnectedMembers(setID))
	}))
	return n
}

func (h *harness) connectBoth(t *testing.T) {
	t.Helper()
	require.NoError(t, h.orch.Connect(leftAddr))
	require.NoError(t, h.orch.Connect(rightAddr))
	require.Eventually(t, func() bool { return h.connectedMembers(t) == 2 }, waitFor, tick)
}

func (h *harness) senderState() session.AudioState {
	s, _ := h.orch.AudioStates()
	return s
}

func TestSimulatedConnectFormsGroup(t *testing.T) {
	h := newHarness(t)
	h.connectBoth(t)

	require.NoError(t, h.orch.Inspect(func(r *registry.Registry) {
		g, ok := r.Group(setID)
		require.True(t, ok)
		assert.Equal(t, []model.Address{leftAddr, rightAddr}, g.Members)
		assert.True(t, g.ActiveContexts.Has(model.ContextMedia))
		assert.Equal(t, model.LocationFrontLeft|model.LocationFrontRight, g.SinkLocations)
		assert.Equal(t, model.LocationFrontLeft, g.SourceLocations)
	}))
}

func TestSimulatedMediaStream(t *testing.T) {
	h := newHarness(t)
	h.connectBoth(t)

	require.NoError(t, h.orch.GroupSetActive(setID))
	assert.Equal(t, setID, h.orch.ActiveGroup())
	assert.True(t, h.hal.Source().State().Started)

	require.NoError(t, h.orch.Submit(service.AudioResume{Direction: model.DirectionSink}))
	require.Eventually(t, func() bool { return h.senderState() == session.StateStarted }, waitFor, tick)
	assert.Equal(t, sim.RequestConfirmed, h.hal.Source().State().Request)
	assert.Equal(t, uint16(40), h.hal.Source().State().RemoteDelayMs)

	// One 10 ms stereo interval at 48 kHz.
	pcm := make([]byte, 480*2*2)
	require.NoError(t, h.orch.HandleAudioData(pcm))

	st := h.net.TotalTraffic()
	assert.Equal(t, 2, st.SDUs)
	assert.Equal(t, 200, st.Bytes)
}

func TestSimulatedSuspendTimerStopsStream(t *testing.T) {
	h := newHarness(t)
	h.connectBoth(t)
	require.NoError(t, h.orch.GroupSetActive(setID))

	require.NoError(t, h.orch.Submit(service.AudioResume{Direction: model.DirectionSink}))
	require.Eventually(t, func() bool { return h.senderState() == session.StateStarted }, waitFor, tick)

	require.NoError(t, h.orch.Deliver(service.AudioSuspend{Direction: model.DirectionSink}))
	assert.Equal(t, session.StateReadyToRelease, h.senderState())

	// Expiry stops the group; the stream protocol reports idle.
	require.Eventually(t, func() bool {
		state := model.AseStateStreaming
		_ = h.orch.Inspect(func(r *registry.Registry) {
			if g, ok := r.Group(setID); ok {
				state = g.State
			}
		})
		return state == model.AseStateIdle
	}, waitFor, tick)
	require.Eventually(t, func() bool { return h.senderState() == session.StateIdle }, waitFor, tick)

	assert.ErrorIs(t, h.orch.HandleAudioData(make([]byte, 480*2*2)), pipeline.ErrNotStarted)
}

func TestSimulatedConversationalCapture(t *testing.T) {
	h := newHarness(t)
	h.connectBoth(t)
	require.NoError(t, h.orch.GroupSetActive(setID))

	// A call track selects the conversational context, which opens the
	// microphone direction.
	require.NoError(t, h.orch.Deliver(service.AudioMetadata{
		Tracks: []streamconf.Track{{Content: streamconf.ContentSpeech, Usage: streamconf.UsageVoiceCommunication}},
	}))
	require.NoError(t, h.orch.Submit(service.AudioResume{Direction: model.DirectionSource}))

	require.Eventually(t, func() bool {
		_, r := h.orch.AudioStates()
		return r == session.StateStarted
	}, waitFor, tick)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	delivered, _ := h.net.Capture(ctx, h.orch)
	assert.Positive(t, delivered)
	assert.Positive(t, h.hal.Sink().State().BytesWritten)
}

func TestSimulatedLinkLossReconnects(t *testing.T) {
	h := newHarness(t)
	h.connectBoth(t)

	require.NoError(t, h.net.DropLink(rightAddr))
	require.Eventually(t, func() bool { return h.connectedMembers(t) == 1 }, waitFor, tick)

	require.NoError(t, h.net.Restore(rightAddr))
	require.Eventually(t, func() bool { return h.connectedMembers(t) == 2 }, waitFor, tick)
}

func TestSimulatedAcquireTwiceFails(t *testing.T) {
	hal := sim.NewAudioHAL(nil)

	_, err := hal.AcquireSource()
	require.NoError(t, err)
	_, err = hal.AcquireSource()
	assert.ErrorIs(t, err, sim.ErrSessionInUse)

	hal.Source().Release()
	_, err = hal.AcquireSource()
	assert.NoError(t, err)
}
