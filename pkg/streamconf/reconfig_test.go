package streamconf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaudio/leaudio-go/pkg/model"
)

type providerKey struct {
	ctx model.ContextType
	dir model.Direction
}

type fakeProvider map[providerKey]model.SessionConfig

func (f fakeProvider) CodecConfiguration(_ int, ctx model.ContextType, dir model.Direction) (model.SessionConfig, bool) {
	c, ok := f[providerKey{ctx, dir}]
	return c, ok
}

var (
	media48k  = model.SessionConfig{Channels: 2, SampleRateHz: 48000, BitsPerSample: 16, DataIntervalUs: 10000}
	voice16k  = model.SessionConfig{Channels: 1, SampleRateHz: 16000, BitsPerSample: 16, DataIntervalUs: 7500}
	voiceSink = model.SessionConfig{Channels: 2, SampleRateHz: 16000, BitsPerSample: 16, DataIntervalUs: 7500}
)

func TestContextRequiresReconfiguration(t *testing.T) {
	p := fakeProvider{
		{model.ContextMedia, model.DirectionSink}:            media48k,
		{model.ContextConversational, model.DirectionSink}:   voiceSink,
		{model.ContextConversational, model.DirectionSource}: voice16k,
		{model.ContextGame, model.DirectionSink}:             media48k,
	}
	tr := NewTracker(p)
	assert.True(t, tr.BothInvalid())
	assert.Equal(t, model.ContextMedia, tr.CurrentContext())

	t.Run("FirstEvaluation", func(t *testing.T) {
		assert.True(t, tr.ContextRequiresReconfiguration(1, model.ContextMedia))
		assert.Equal(t, media48k, tr.Config(model.DirectionSink))
		assert.True(t, tr.Config(model.DirectionSource).IsInvalid())
	})

	t.Run("SameConfiguration", func(t *testing.T) {
		assert.False(t, tr.ContextRequiresReconfiguration(1, model.ContextGame))
		assert.Equal(t, model.ContextGame, tr.CurrentContext())
	})

	t.Run("SourceBecomesSupported", func(t *testing.T) {
		assert.True(t, tr.ContextRequiresReconfiguration(1, model.ContextConversational))
		assert.Equal(t, voice16k, tr.Config(model.DirectionSource))
	})

	t.Run("SourceBecomesUnsupported", func(t *testing.T) {
		assert.True(t, tr.ContextRequiresReconfiguration(1, model.ContextMedia))
		assert.Equal(t, model.InvalidSessionConfig, tr.Config(model.DirectionSource))
	})

	t.Run("Unsupported", func(t *testing.T) {
		assert.True(t, tr.ContextRequiresReconfiguration(1, model.ContextAlerts))
		assert.True(t, tr.BothInvalid())
		assert.False(t, tr.ContextRequiresReconfiguration(1, model.ContextAlerts))
	})
}
