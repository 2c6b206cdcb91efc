package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.FrameEncoded(2, time.Millisecond)
	m.FrameDecoded(true, time.Millisecond)
	m.FrameDropped(DropStale)
	m.SessionTransition("SINK", "STARTED")
	m.StreamSetup(time.Second)
	m.SuspendTimerExpired()
	m.SetActiveGroup(1)
	m.ReconnectAttempt()
	m.SetConnectedDevices(2)
}

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.FrameEncoded(2, time.Millisecond)
	m.FrameDecoded(false, time.Millisecond)
	m.FrameDecoded(true, time.Millisecond)
	m.FrameDropped(DropStale)
	m.FrameDropped(DropStale)
	m.SetActiveGroup(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesEncoded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesDecoded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FramesConcealed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FramesDropped.WithLabelValues(DropStale)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.ActiveGroup))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
