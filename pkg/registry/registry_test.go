package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaudio/leaudio-go/pkg/model"
	"github.com/leaudio/leaudio-go/pkg/registry"
)

var (
	addrA = model.MustParseAddress("00:11:22:33:44:01")
	addrB = model.MustParseAddress("00:11:22:33:44:02")
	addrC = model.MustParseAddress("00:11:22:33:44:03")
)

func TestAddRemoveDevice(t *testing.T) {
	r := registry.New()

	d, err := r.AddDevice(addrA)
	require.NoError(t, err)
	assert.Equal(t, model.GroupUnknown, d.GroupID)
	assert.False(t, d.IsConnected())

	_, err = r.AddDevice(addrA)
	assert.ErrorIs(t, err, registry.ErrDeviceExists)

	got, ok := r.FindByAddress(addrA)
	require.True(t, ok)
	assert.Same(t, d, got)

	require.NoError(t, r.RemoveDevice(addrA))
	_, ok = r.FindByAddress(addrA)
	assert.False(t, ok)
	assert.ErrorIs(t, r.RemoveDevice(addrA), registry.ErrDeviceNotFound)
}

func TestRemoveDeviceRefusesOpenLink(t *testing.T) {
	r := registry.New()
	_, err := r.AddDevice(addrA)
	require.NoError(t, err)
	require.NoError(t, r.SetConnID(addrA, 0x40))

	assert.ErrorIs(t, r.RemoveDevice(addrA), registry.ErrDeviceConnected)

	require.NoError(t, r.SetConnID(addrA, model.InvalidConnID))
	assert.NoError(t, r.RemoveDevice(addrA))
}

func TestLookupIndexes(t *testing.T) {
	r := registry.New()
	_, err := r.AddDevice(addrA)
	require.NoError(t, err)

	t.Run("ConnID", func(t *testing.T) {
		require.NoError(t, r.SetConnID(addrA, 7))
		d, ok := r.FindByConnID(7)
		require.True(t, ok)
		assert.Equal(t, addrA, d.Address)

		require.NoError(t, r.SetConnID(addrA, model.InvalidConnID))
		_, ok = r.FindByConnID(7)
		assert.False(t, ok)
	})

	t.Run("ChannelHandle", func(t *testing.T) {
		ep := model.Endpoint{ID: 1, Direction: model.DirectionSink, ChannelHandle: 0x60}
		require.NoError(t, r.UpdateEndpoint(addrA, ep))

		d, ok := r.FindByChannelHandle(0x60)
		require.True(t, ok)
		assert.Equal(t, addrA, d.Address)

		ep.ChannelHandle = 0x61
		require.NoError(t, r.UpdateEndpoint(addrA, ep))
		_, ok = r.FindByChannelHandle(0x60)
		assert.False(t, ok)
		_, ok = r.FindByChannelHandle(0x61)
		assert.True(t, ok)
		assert.Len(t, d.Endpoints, 1)
	})

	t.Run("UnknownDevice", func(t *testing.T) {
		assert.ErrorIs(t, r.SetConnID(addrC, 1), registry.ErrDeviceNotFound)
		assert.ErrorIs(t, r.UpdateEndpoint(addrC, model.Endpoint{}), registry.ErrDeviceNotFound)
	})
}

func TestAddGroup(t *testing.T) {
	r := registry.New()
	_, err := r.AddGroup(1)
	require.NoError(t, err)

	_, err = r.AddGroup(1)
	assert.ErrorIs(t, err, registry.ErrGroupExists)

	_, err = r.AddGroup(model.GroupUnknown)
	assert.Error(t, err)
}

func TestAssignDeviceToGroup(t *testing.T) {
	t.Run("MovesBetweenGroups", func(t *testing.T) {
		r := registry.New()
		_, _ = r.AddDevice(addrA)
		_, _ = r.AddDevice(addrB)
		_, _ = r.AddGroup(1)
		_, _ = r.AddGroup(2)

		require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
		require.NoError(t, r.AssignDeviceToGroup(addrB, 1))
		require.NoError(t, r.AssignDeviceToGroup(addrA, 2))

		g1, ok := r.Group(1)
		require.True(t, ok)
		assert.Equal(t, []model.Address{addrB}, g1.Members)

		g2, ok := r.Group(2)
		require.True(t, ok)
		assert.Equal(t, []model.Address{addrA}, g2.Members)

		d, _ := r.FindByAddress(addrA)
		assert.Equal(t, 2, d.GroupID)
	})

	t.Run("UnknownGroup", func(t *testing.T) {
		r := registry.New()
		_, _ = r.AddDevice(addrA)
		assert.ErrorIs(t, r.AssignDeviceToGroup(addrA, 9), registry.ErrGroupNotFound)
		assert.ErrorIs(t, r.AssignDeviceToGroup(addrB, model.GroupUnknown), registry.ErrDeviceNotFound)
	})

	t.Run("EmptyGroupDeleted", func(t *testing.T) {
		r := registry.New()
		_, _ = r.AddDevice(addrA)
		_, _ = r.AddGroup(1)
		require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
		require.NoError(t, r.AssignDeviceToGroup(addrA, model.GroupUnknown))

		_, ok := r.Group(1)
		assert.False(t, ok)
		assert.Len(t, r.UngroupedDevices(), 1)
	})

	t.Run("EmptyGroupWithChannelGroupKept", func(t *testing.T) {
		r := registry.New()
		_, _ = r.AddDevice(addrA)
		_, _ = r.AddGroup(1)
		require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
		require.NoError(t, r.SetCIGCreated(1, true))
		require.NoError(t, r.AssignDeviceToGroup(addrA, model.GroupUnknown))

		g, ok := r.Group(1)
		require.True(t, ok)
		assert.True(t, g.IsEmpty())
		assert.False(t, r.RemoveGroupIfPossible(1))

		require.NoError(t, r.SetCIGCreated(1, false))
		assert.True(t, r.RemoveGroupIfPossible(1))
		_, ok = r.Group(1)
		assert.False(t, ok)
	})

	t.Run("SameGroupIsNoop", func(t *testing.T) {
		r := registry.New()
		_, _ = r.AddDevice(addrA)
		_, _ = r.AddGroup(1)
		var calls int
		r.OnMembershipChanged(func(int) { calls++ })

		require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
		require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
		assert.Equal(t, 1, calls)
	})
}

// Adding a device to a group and removing it again restores the previous
// device and group sets, except that an emptied group without a channel
// group is deleted.
func TestAddThenRemoveRestoresSets(t *testing.T) {
	tests := []struct {
		name       string
		others     []model.Address
		cig        bool
		wantGroups []int
	}{
		{name: "group keeps other members", others: []model.Address{addrB}, wantGroups: []int{1}},
		{name: "emptied group deleted", wantGroups: nil},
		{name: "emptied group with channel group kept", cig: true, wantGroups: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New()
			_, _ = r.AddGroup(1)
			for _, a := range tt.others {
				_, _ = r.AddDevice(a)
				require.NoError(t, r.AssignDeviceToGroup(a, 1))
			}
			if tt.cig {
				require.NoError(t, r.SetCIGCreated(1, true))
			}
			beforeDevices := len(r.Devices())

			_, err := r.AddDevice(addrA)
			require.NoError(t, err)
			require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
			require.NoError(t, r.RemoveDevice(addrA))

			assert.Equal(t, beforeDevices, len(r.Devices()))

			var ids []int
			for _, g := range r.Groups() {
				ids = append(ids, g.ID)
				assert.False(t, g.Contains(addrA))
			}
			assert.Equal(t, tt.wantGroups, ids)
		})
	}
}

func TestMembershipCallbacks(t *testing.T) {
	r := registry.New()
	_, _ = r.AddDevice(addrA)
	_, _ = r.AddGroup(1)

	var changed, removed []int
	r.OnMembershipChanged(func(id int) {
		// callbacks run without the lock held
		_ = r.Members(id)
		changed = append(changed, id)
	})
	r.OnGroupRemoved(func(id int) { removed = append(removed, id) })

	require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
	require.NoError(t, r.RemoveDevice(addrA))

	assert.Equal(t, []int{1, 1}, changed)
	assert.Equal(t, []int{1}, removed)
}

func TestMembersAndConnected(t *testing.T) {
	r := registry.New()
	_, _ = r.AddGroup(3)
	for _, a := range []model.Address{addrC, addrA, addrB} {
		_, _ = r.AddDevice(a)
		require.NoError(t, r.AssignDeviceToGroup(a, 3))
	}
	require.NoError(t, r.SetConnID(addrA, 1))

	members := r.Members(3)
	require.Len(t, members, 3)
	assert.Equal(t, addrC, members[0].Address)
	assert.Equal(t, addrB, members[2].Address)

	connected := r.ConnectedMembers(3)
	require.Len(t, connected, 1)
	assert.Equal(t, addrA, connected[0].Address)
	assert.True(t, r.IsAnyDeviceConnected(3))
	assert.Nil(t, r.Members(99))
}

func TestIsAnyInTransition(t *testing.T) {
	r := registry.New()
	g, _ := r.AddGroup(1)
	assert.False(t, r.IsAnyInTransition())

	g.TargetState = model.AseStateStreaming
	assert.True(t, r.IsAnyInTransition())

	g.State = model.AseStateStreaming
	assert.False(t, r.IsAnyInTransition())
}

func TestUpdateActiveContexts(t *testing.T) {
	r := registry.New()
	_, _ = r.AddGroup(1)
	a, _ := r.AddDevice(addrA)
	b, _ := r.AddDevice(addrB)
	a.AvailableContexts = model.ContextsOf(model.ContextMedia)
	b.AvailableContexts = model.ContextsOf(model.ContextConversational)
	require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
	require.NoError(t, r.AssignDeviceToGroup(addrB, 1))

	got, changed, err := r.UpdateActiveContexts(1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.ContextsOf(model.ContextMedia, model.ContextConversational), got)

	_, changed, err = r.UpdateActiveContexts(1)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = r.UpdateActiveContexts(5)
	assert.ErrorIs(t, err, registry.ErrGroupNotFound)
}

func TestReloadAudioLocations(t *testing.T) {
	r := registry.New()
	_, _ = r.AddGroup(1)
	a, _ := r.AddDevice(addrA)
	b, _ := r.AddDevice(addrB)
	a.SinkLocations = model.LocationFrontLeft
	b.SinkLocations = model.LocationFrontRight
	b.SourceLocations = model.LocationFrontRight
	require.NoError(t, r.AssignDeviceToGroup(addrA, 1))
	require.NoError(t, r.AssignDeviceToGroup(addrB, 1))
	require.NoError(t, r.SetConnID(addrA, 1))

	changed, err := r.ReloadAudioLocations(1)
	require.NoError(t, err)
	assert.True(t, changed)

	g, _ := r.Group(1)
	assert.Equal(t, model.LocationFrontLeft, g.SinkLocations)
	assert.Equal(t, model.AudioLocation(0), g.SourceLocations)

	require.NoError(t, r.SetConnID(addrB, 2))
	changed, err = r.ReloadAudioLocations(1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.LocationFrontLeft|model.LocationFrontRight, g.SinkLocations)
	assert.Equal(t, uint8(3), g.Directions())
}

func TestUpdateDeviceAndGroup(t *testing.T) {
	r := registry.New()
	_, _ = r.AddDevice(addrA)
	_, _ = r.AddGroup(1)

	require.NoError(t, r.UpdateDevice(addrA, func(d *model.Device) {
		d.Encrypted = true
	}))
	d, _ := r.FindByAddress(addrA)
	assert.True(t, d.Encrypted)

	require.NoError(t, r.UpdateGroup(1, func(g *model.Group) {
		g.PendingConfiguration = true
	}))
	g, _ := r.Group(1)
	assert.True(t, g.PendingConfiguration)

	assert.ErrorIs(t, r.UpdateDevice(addrB, func(*model.Device) {}), registry.ErrDeviceNotFound)
	assert.ErrorIs(t, r.UpdateGroup(9, func(*model.Group) {}), registry.ErrGroupNotFound)
}
