package registry

import (
	"errors"
	"slices"
	"sync"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// Registry errors.
var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDeviceExists    = errors.New("device already exists")
	ErrDeviceConnected = errors.New("device link still open")
	ErrGroupNotFound   = errors.New("group not found")
	ErrGroupExists     = errors.New("group already exists")
)

// Registry holds devices and groups.
type Registry struct {
	mu sync.RWMutex

	devices map[model.Address]*model.Device
	order   []model.Address
	groups  map[int]*model.Group

	// secondary indexes
	byConn    map[uint16]model.Address
	byChannel map[uint16]model.Address

	onMembershipChanged func(groupID int)
	onGroupRemoved      func(groupID int)
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		devices:   make(map[model.Address]*model.Device),
		groups:    make(map[int]*model.Group),
		byConn:    make(map[uint16]model.Address),
		byChannel: make(map[uint16]model.Address),
	}
}

// AddDevice registers a new disconnected, ungrouped device.
func (r *Registry) AddDevice(addr model.Address) (*model.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[addr]; exists {
		return nil, ErrDeviceExists
	}

	d := model.NewDevice(addr)
	r.devices[addr] = d
	r.order = append(r.order, addr)
	return d, nil
}

// RemoveDevice deletes a device. The link must be closed first.
// If the device is still in a group it is detached through the regular
// membership path.
func (r *Registry) RemoveDevice(addr model.Address) error {
	r.mu.Lock()

	d, exists := r.devices[addr]
	if !exists {
		r.mu.Unlock()
		return ErrDeviceNotFound
	}
	if d.IsConnected() {
		r.mu.Unlock()
		return ErrDeviceConnected
	}

	notify := r.detachLocked(d)

	for _, e := range d.Endpoints {
		if e.ChannelHandle != 0 {
			delete(r.byChannel, e.ChannelHandle)
		}
	}
	delete(r.devices, addr)
	r.order = slices.DeleteFunc(r.order, func(a model.Address) bool { return a == addr })
	r.mu.Unlock()

	notify.fire(r)
	return nil
}

// FindByAddress returns the device with the given address.
func (r *Registry) FindByAddress(addr model.Address) (*model.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[addr]
	return d, ok
}

// FindByConnID returns the device owning the given link handle.
func (r *Registry) FindByConnID(connID uint16) (*model.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.byConn[connID]
	if !ok {
		return nil, false
	}
	return r.devices[addr], true
}

// FindByChannelHandle returns the device owning the given isochronous channel.
func (r *Registry) FindByChannelHandle(handle uint16) (*model.Device, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.byChannel[handle]
	if !ok {
		return nil, false
	}
	return r.devices[addr], true
}

// SetConnID records the link handle of a device. Pass model.InvalidConnID
// when the link closes.
func (r *Registry) SetConnID(addr model.Address, connID uint16) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[addr]
	if !ok {
		return ErrDeviceNotFound
	}
	if d.ConnID != model.InvalidConnID {
		delete(r.byConn, d.ConnID)
	}
	d.ConnID = connID
	if connID != model.InvalidConnID {
		r.byConn[connID] = addr
	}
	return nil
}

// UpdateEndpoint inserts or replaces an endpoint of a device, keeping the
// channel handle index current.
func (r *Registry) UpdateEndpoint(addr model.Address, ep model.Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[addr]
	if !ok {
		return ErrDeviceNotFound
	}

	existing, err := d.Endpoint(ep.ID)
	if err != nil {
		e := ep
		d.Endpoints = append(d.Endpoints, &e)
	} else {
		if existing.ChannelHandle != 0 && existing.ChannelHandle != ep.ChannelHandle {
			delete(r.byChannel, existing.ChannelHandle)
		}
		*existing = ep
	}
	if ep.ChannelHandle != 0 {
		r.byChannel[ep.ChannelHandle] = addr
	}
	return nil
}

// Devices returns all devices in registration order.
func (r *Registry) Devices() []*model.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Device, 0, len(r.order))
	for _, a := range r.order {
		out = append(out, r.devices[a])
	}
	return out
}

// UngroupedDevices returns devices that are not in any group.
func (r *Registry) UngroupedDevices() []*model.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Device
	for _, a := range r.order {
		if d := r.devices[a]; d.GroupID == model.GroupUnknown {
			out = append(out, d)
		}
	}
	return out
}

// DeviceCount returns the number of devices.
func (r *Registry) DeviceCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// OnMembershipChanged sets a callback invoked after the member set of a group
// changes. It is invoked outside the registry lock.
func (r *Registry) OnMembershipChanged(fn func(groupID int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMembershipChanged = fn
}

// OnGroupRemoved sets a callback invoked after a group is deleted.
func (r *Registry) OnGroupRemoved(fn func(groupID int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onGroupRemoved = fn
}

// UpdateDevice runs fn with the device locked for writing. fn must not call
// back into the registry and must not change the address, link handle,
// group or endpoints, which have their own mutating paths.
func (r *Registry) UpdateDevice(addr model.Address, fn func(d *model.Device)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[addr]
	if !ok {
		return ErrDeviceNotFound
	}
	fn(d)
	return nil
}
