package service_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/internal/sim"
	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/registry"
	"github.com/leaudio/leaudio-go/pkg/service"
	"github.com/leaudio/leaudio-go/pkg/service/mocks"
	"github.com/leaudio/leaudio-go/pkg/session"
)

const (
	groupID   = 1
	waitFor   = time.Second
	pollEvery = 2 * time.Millisecond

	// One 10 ms stereo interval at 48 kHz.
	stereoInterval = 480 * 2 * 2
)

var (
	leftAddr  = model.MustParseAddress("aa:bb:cc:00:00:01")
	rightAddr = model.MustParseAddress("aa:bb:cc:00:00:02")
	otherAddr = model.MustParseAddress("aa:bb:cc:00:00:03")

	leftHandle   uint16 = 0x0060
	rightHandle  uint16 = 0x0061
	sourceHandle uint16 = 0x0070
)

// offerFunc decides which directions the stream protocol supports for a context.
type offerFunc func(ctx model.ContextType, dir model.Direction) bool

// offerDefault supports the sink always and the source for calls only.
func offerDefault(ctx model.ContextType, dir model.Direction) bool {
	return dir == model.DirectionSink || ctx == model.ContextConversational
}

func offerAll(model.ContextType, model.Direction) bool { return true }

func offerNone(model.ContextType, model.Direction) bool { return false }

type fixture struct {
	orch   *service.Orchestrator
	stream *mocks.MockStreamProtocol
	iso    *mocks.MockIsoChannels
	hal    *mocks.MockAudioHAL
	source *mocks.MockSourceSession
	sink   *mocks.MockSinkSession
	link   *mocks.MockLinkLayer
	sets   *mocks.MockSetCoordinator
	cb     *mocks.MockCallbacks

	stops atomic.Int32
}

type fixtureOption struct {
	offer  offerFunc
	config func(*service.Config)
}

func newFixture(t *testing.T, opt fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		stream: mocks.NewMockStreamProtocol(t),
		iso:    mocks.NewMockIsoChannels(t),
		hal:    mocks.NewMockAudioHAL(t),
		source: mocks.NewMockSourceSession(t),
		sink:   mocks.NewMockSinkSession(t),
		link:   mocks.NewMockLinkLayer(t),
		sets:   mocks.NewMockSetCoordinator(t),
		cb:     mocks.NewMockCallbacks(t),
	}
	offer := opt.offer
	if offer == nil {
		offer = offerDefault
	}

	f.stream.EXPECT().CodecConfiguration(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ int, ctx model.ContextType, dir model.Direction) (model.SessionConfig, bool) {
			if !offer(ctx, dir) {
				return model.InvalidSessionConfig, false
			}
			if dir == model.DirectionSink {
				return sim.SinkSessionConfig, true
			}
			return sim.SourceSessionConfig, true
		}).Maybe()
	f.stream.EXPECT().StopStream(mock.Anything).Run(func(int) { f.stops.Add(1) }).Maybe()
	f.stream.EXPECT().RemoteDelayMs(mock.Anything, mock.Anything).Return(uint16(40)).Maybe()
	f.stream.EXPECT().HandleLinkLost(mock.Anything, mock.Anything).Maybe()
	f.stream.EXPECT().AttachDeviceToStream(mock.Anything, mock.Anything).Maybe()

	f.cb.EXPECT().OnConnectionState(mock.Anything, mock.Anything).Maybe()
	f.cb.EXPECT().OnGroupStatus(mock.Anything, mock.Anything).Maybe()
	f.cb.EXPECT().OnGroupNodeStatus(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.cb.EXPECT().OnAudioConf(mock.Anything).Maybe()

	for _, s := range []*mock.Mock{&f.source.Mock, &f.sink.Mock} {
		s.On("Stop").Maybe()
		s.On("Release").Maybe()
		s.On("ConfirmStreamingRequest").Maybe()
		s.On("CancelStreamingRequest").Maybe()
		s.On("SuspendedForReconfiguration").Maybe()
		s.On("UpdateRemoteDelay", mock.Anything).Maybe()
	}
	f.sink.EXPECT().Write(mock.Anything).RunAndReturn(func(pcm []byte) (int, error) { return len(pcm), nil }).Maybe()
	f.iso.EXPECT().SendData(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.link.EXPECT().Disconnect(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.link.EXPECT().ReadEndpointStates(mock.Anything).Maybe()

	cfg := service.DefaultConfig()
	cfg.Reconnect = false
	cfg.SuspendTimeout = session.MinSuspendTimeout
	if opt.config != nil {
		opt.config(&cfg)
	}

	orch, err := service.New(cfg, service.Collaborators{
		Stream:    f.stream,
		Iso:       f.iso,
		Audio:     f.hal,
		Link:      f.link,
		Sets:      f.sets,
		Codecs:    sim.Codec{},
		Callbacks: f.cb,
	})
	require.NoError(t, err)
	require.NoError(t, orch.Start(context.Background()))
	t.Cleanup(orch.Stop)

	f.orch = orch
	return f
}

// seedGroup registers connected, encrypted members: the first renders the
// left channel and captures, the second renders the right channel.
func (f *fixture) seedGroup(t *testing.T, addrs ...model.Address) {
	t.Helper()
	locations := []model.AudioLocation{model.LocationFrontLeft, model.LocationFrontRight}

	require.NoError(t, f.orch.Inspect(func(r *registry.Registry) {
		_, err := r.AddGroup(groupID)
		assert.NoError(t, err)
		for i, addr := range addrs {
			_, err := r.AddDevice(addr)
			assert.NoError(t, err)
			assert.NoError(t, r.UpdateDevice(addr, func(d *model.Device) {
				d.Encrypted = true
				d.KnownServices = true
				d.FirstConnection = false
				d.AvailableContexts = model.ContextsOf(model.ContextMedia, model.ContextConversational)
				d.SinkLocations = locations[i%2]
				if i == 0 {
					d.SourceLocations = model.LocationFrontLeft
				}
			}))
			assert.NoError(t, r.AssignDeviceToGroup(addr, groupID))
			assert.NoError(t, r.SetConnID(addr, uint16(0x40+i)))
		}
		_, _, err = r.UpdateActiveContexts(groupID)
		assert.NoError(t, err)
		_, err = r.ReloadAudioLocations(groupID)
		assert.NoError(t, err)
	}))
}

// seedSingleGroup registers a second group with one connected stereo member.
func (f *fixture) seedSingleGroup(t *testing.T, id int, addr model.Address, connID uint16) {
	t.Helper()
	require.NoError(t, f.orch.Inspect(func(r *registry.Registry) {
		_, err := r.AddGroup(id)
		assert.NoError(t, err)
		_, err = r.AddDevice(addr)
		assert.NoError(t, err)
		assert.NoError(t, r.UpdateDevice(addr, func(d *model.Device) {
			d.Encrypted = true
			d.KnownServices = true
			d.AvailableContexts = model.ContextsOf(model.ContextMedia)
			d.SinkLocations = model.LocationFrontLeft | model.LocationFrontRight
		}))
		assert.NoError(t, r.AssignDeviceToGroup(addr, id))
		assert.NoError(t, r.SetConnID(addr, connID))
		_, _, err = r.UpdateActiveContexts(id)
		assert.NoError(t, err)
		_, err = r.ReloadAudioLocations(id)
		assert.NoError(t, err)
	}))
}

// sessionLines keeps the Dump lines describing the current context and the
// audio session configurations.
func sessionLines(dump string) []string {
	var lines []string
	for _, l := range strings.Split(dump, "\n") {
		if strings.Contains(l, "current context:") || strings.Contains(l, " session: ") {
			lines = append(lines, l)
		}
	}
	return lines
}

func countCalls(m *mock.Mock, method string) int {
	n := 0
	for _, c := range m.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// activate makes the group active with working audio sessions.
func (f *fixture) activate(t *testing.T) {
	t.Helper()
	f.hal.EXPECT().AcquireSource().Return(f.source, nil).Once()
	f.hal.EXPECT().AcquireSink().Return(f.sink, nil).Once()
	f.source.EXPECT().Start(mock.Anything).Return(nil).Once()
	f.sink.EXPECT().Start(mock.Anything).Return(nil).Once()
	require.NoError(t, f.orch.GroupSetActive(groupID))
	require.Equal(t, groupID, f.orch.ActiveGroup())
}

// streamUp reports the group streaming with active sink endpoints on both
// members and, if withSource, a source endpoint on the left one.
func (f *fixture) streamUp(t *testing.T, withSource bool) {
	t.Helper()
	sinkCodec := func(loc model.AudioLocation) model.CodecConfig {
		return model.CodecConfig{SampleRateHz: 48000, FrameDurationUs: 10000, OctetsPerFrame: 100, ChannelCount: 1, Allocation: loc, BlocksPerSDU: 1}
	}
	active := func(id uint8, dir model.Direction, codec model.CodecConfig, handle uint16) model.Endpoint {
		return model.Endpoint{ID: id, Direction: dir, Codec: codec, State: model.AseStateStreaming,
			ChannelHandle: handle, DataPath: model.DataPathEstablished}
	}

	events := []service.Event{
		service.GroupStateChanged{GroupID: groupID, State: model.AseStateStreaming, Target: model.AseStateStreaming},
		service.EndpointChanged{Addr: leftAddr, Endpoint: active(1, model.DirectionSink, sinkCodec(model.LocationFrontLeft), leftHandle)},
		service.EndpointChanged{Addr: rightAddr, Endpoint: active(1, model.DirectionSink, sinkCodec(model.LocationFrontRight), rightHandle)},
	}
	if withSource {
		codec := model.CodecConfig{SampleRateHz: 16000, FrameDurationUs: 10000, OctetsPerFrame: 40, ChannelCount: 1,
			Allocation: model.LocationFrontLeft, BlocksPerSDU: 1}
		events = append(events, service.EndpointChanged{Addr: leftAddr, Endpoint: active(2, model.DirectionSource, codec, sourceHandle)})
	}
	events = append(events, service.StreamStatus{GroupID: groupID, Status: model.StatusStreaming})

	for _, ev := range events {
		require.NoError(t, f.orch.Deliver(ev))
	}
}

// startSender resumes the sink direction and brings the group to streaming.
func (f *fixture) startSender(t *testing.T, withSource bool) {
	t.Helper()
	f.stream.EXPECT().StartStream(groupID, model.ContextMedia).Return(true).Once()

	require.NoError(t, f.orch.Deliver(service.AudioResume{Direction: model.DirectionSink}))
	assert.Equal(t, session.StateReadyToStart, f.senderState())

	f.streamUp(t, withSource)
	require.Equal(t, session.StateStarted, f.senderState())
}

func (f *fixture) senderState() session.AudioState {
	s, _ := f.orch.AudioStates()
	return s
}

func (f *fixture) receiverState() session.AudioState {
	_, r := f.orch.AudioStates()
	return r
}

func (f *fixture) group(t *testing.T) model.Group {
	t.Helper()
	var g model.Group
	require.NoError(t, f.orch.Inspect(func(r *registry.Registry) {
		if p, ok := r.Group(groupID); ok {
			g = *p
		}
	}))
	return g
}
