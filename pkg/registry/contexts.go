package registry

import "github.com/leaudio/leaudio-go/pkg/model"

// UpdateActiveContexts recomputes the group's active contexts as the union of
// its members' available contexts. It returns the new value and whether it
// changed.
func (r *Registry) UpdateActiveContexts(id int) (model.AudioContexts, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[id]
	if !ok {
		return 0, false, ErrGroupNotFound
	}

	var union model.AudioContexts
	for _, a := range g.Members {
		if d, ok := r.devices[a]; ok {
			union |= d.AvailableContexts
		}
	}

	changed := union != g.ActiveContexts
	g.ActiveContexts = union
	return union, changed, nil
}

// ReloadAudioLocations recomputes the group's per-direction audio locations
// from its connected members and reports whether either changed.
func (r *Registry) ReloadAudioLocations(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[id]
	if !ok {
		return false, ErrGroupNotFound
	}

	var sink, source model.AudioLocation
	for _, a := range g.Members {
		d, ok := r.devices[a]
		if !ok || !d.IsConnected() {
			continue
		}
		sink |= d.SinkLocations
		source |= d.SourceLocations
	}

	changed := sink != g.SinkLocations || source != g.SourceLocations
	g.SinkLocations = sink
	g.SourceLocations = source
	return changed, nil
}
