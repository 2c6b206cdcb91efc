package registry

import (
	"slices"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// notifications collects callback work to run once the lock is released.
type notifications struct {
	changed []int
	removed []int
}

func (n *notifications) fire(r *Registry) {
	r.mu.RLock()
	onChanged := r.onMembershipChanged
	onRemoved := r.onGroupRemoved
	r.mu.RUnlock()

	if onChanged != nil {
		for _, id := range n.changed {
			onChanged(id)
		}
	}
	if onRemoved != nil {
		for _, id := range n.removed {
			onRemoved(id)
		}
	}
}

// AddGroup creates an empty group.
func (r *Registry) AddGroup(id int) (*model.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == model.GroupUnknown {
		return nil, ErrGroupNotFound
	}
	if _, exists := r.groups[id]; exists {
		return nil, ErrGroupExists
	}
	g := model.NewGroup(id)
	r.groups[id] = g
	return g, nil
}

// Group returns the group with the given id.
func (r *Registry) Group(id int) (*model.Group, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.groups[id]
	return g, ok
}

// Groups returns all groups ordered by id.
func (r *Registry) Groups() []*model.Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b *model.Group) int { return a.ID - b.ID })
	return out
}

// GroupCount returns the number of groups.
func (r *Registry) GroupCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}

// AssignDeviceToGroup is the only path that changes group membership. The
// device is detached from its current group (which is deleted if it becomes
// empty and has no channel group) and appended to the new one. Passing
// model.GroupUnknown only detaches.
func (r *Registry) AssignDeviceToGroup(addr model.Address, groupID int) error {
	r.mu.Lock()

	d, ok := r.devices[addr]
	if !ok {
		r.mu.Unlock()
		return ErrDeviceNotFound
	}

	var target *model.Group
	if groupID != model.GroupUnknown {
		target, ok = r.groups[groupID]
		if !ok {
			r.mu.Unlock()
			return ErrGroupNotFound
		}
	}

	if d.GroupID == groupID {
		r.mu.Unlock()
		return nil
	}

	notify := r.detachLocked(d)
	if target != nil {
		target.Members = append(target.Members, addr)
		d.GroupID = groupID
		notify.changed = append(notify.changed, groupID)
	}
	r.mu.Unlock()

	notify.fire(r)
	return nil
}

// detachLocked removes d from its group. Caller holds the write lock.
func (r *Registry) detachLocked(d *model.Device) notifications {
	var n notifications
	if d.GroupID == model.GroupUnknown {
		return n
	}

	oldID := d.GroupID
	d.GroupID = model.GroupUnknown

	old, ok := r.groups[oldID]
	if !ok {
		return n
	}
	old.Members = slices.DeleteFunc(old.Members, func(a model.Address) bool { return a == d.Address })
	n.changed = append(n.changed, oldID)

	if r.removeIfPossibleLocked(old) {
		n.removed = append(n.removed, oldID)
	}
	return n
}

func (r *Registry) removeIfPossibleLocked(g *model.Group) bool {
	if !g.IsEmpty() || g.CIGCreated {
		return false
	}
	delete(r.groups, g.ID)
	return true
}

// RemoveGroupIfPossible deletes the group if it is empty and has no channel
// group. It reports whether the group was deleted.
func (r *Registry) RemoveGroupIfPossible(id int) bool {
	r.mu.Lock()
	g, ok := r.groups[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	removed := r.removeIfPossibleLocked(g)
	r.mu.Unlock()

	if removed {
		(&notifications{removed: []int{id}}).fire(r)
	}
	return removed
}

// SetCIGCreated records whether an isochronous channel group exists for the group.
func (r *Registry) SetCIGCreated(id int, created bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	g.CIGCreated = created
	return nil
}

// Members returns the devices of a group in join order.
func (r *Registry) Members(id int) []*model.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.groups[id]
	if !ok {
		return nil
	}
	out := make([]*model.Device, 0, len(g.Members))
	for _, a := range g.Members {
		if d, ok := r.devices[a]; ok {
			out = append(out, d)
		}
	}
	return out
}

// ConnectedMembers returns the members of a group whose link is open.
func (r *Registry) ConnectedMembers(id int) []*model.Device {
	members := r.Members(id)
	out := members[:0]
	for _, d := range members {
		if d.IsConnected() {
			out = append(out, d)
		}
	}
	return out
}

// IsAnyDeviceConnected reports whether at least one member link is open.
func (r *Registry) IsAnyDeviceConnected(id int) bool {
	return len(r.ConnectedMembers(id)) > 0
}

// IsAnyInTransition reports whether any group is moving between stream states.
func (r *Registry) IsAnyInTransition() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if g.IsInTransition() {
			return true
		}
	}
	return false
}

// UpdateGroup runs fn with the group locked for writing. fn must not call
// back into the registry or edit the member list.
func (r *Registry) UpdateGroup(id int, fn func(g *model.Group)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	fn(g)
	return nil
}
