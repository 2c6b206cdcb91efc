package streamconf

import (
	"sync"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// MemberSource resolves the members of a group in join order.
type MemberSource interface {
	Members(groupID int) []*model.Device
}

type cacheKey struct {
	group int
	dir   model.Direction
}

// Aggregator caches the last computed configuration per group and direction.
type Aggregator struct {
	mu      sync.Mutex
	members MemberSource
	cache   map[cacheKey]*StreamConfiguration
}

// NewAggregator creates an aggregator reading members from src.
func NewAggregator(src MemberSource) *Aggregator {
	return &Aggregator{
		members: src,
		cache:   make(map[cacheKey]*StreamConfiguration),
	}
}

// Update recomputes and caches the configuration of one direction. On error
// the cached value is dropped.
func (a *Aggregator) Update(groupID int, dir model.Direction) (*StreamConfiguration, error) {
	conf, err := Recompute(a.members.Members(groupID), dir)

	a.mu.Lock()
	defer a.mu.Unlock()
	key := cacheKey{groupID, dir}
	if err != nil {
		delete(a.cache, key)
		return nil, err
	}
	a.cache[key] = conf
	return conf, nil
}

// Get returns the cached configuration, computing it if needed.
func (a *Aggregator) Get(groupID int, dir model.Direction) (*StreamConfiguration, error) {
	a.mu.Lock()
	conf, ok := a.cache[cacheKey{groupID, dir}]
	a.mu.Unlock()
	if ok {
		return conf, nil
	}
	return a.Update(groupID, dir)
}

// Invalidate drops both directions of a group. It matches the registry's
// membership-changed callback signature.
func (a *Aggregator) Invalidate(groupID int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, dir := range model.Directions {
		delete(a.cache, cacheKey{groupID, dir})
	}
}
