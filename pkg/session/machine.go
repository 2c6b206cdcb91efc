package session

import (
	"sync"

	"github.com/leaudio/leaudio-go/pkg/model"
)

// Transition is the outcome of firing an event.
type Transition struct {
	Direction model.Direction
	Event     Event
	From      AudioState
	To        AudioState
	Other     AudioState
	Commands  []Command

	// Rule is the name of the matched rule, empty if none matched.
	Rule string
}

// Changed reports whether the state of the direction changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Matched reports whether a rule handled the event.
func (t Transition) Matched() bool {
	return t.Rule != ""
}

// Machine holds the sender and receiver states. State reads are safe from
// any goroutine; Fire is expected to be called from one sequencing context.
type Machine struct {
	mu     sync.RWMutex
	states [2]AudioState

	onTransition func(Transition)
}

// NewMachine returns a machine with both directions idle.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the state of one direction.
func (m *Machine) State(dir model.Direction) AudioState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[dir.Index()]
}

// States returns the sender and receiver states.
func (m *Machine) States() (sender, receiver AudioState) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[model.DirectionSink.Index()], m.states[model.DirectionSource.Index()]
}

// BothIdle reports whether neither direction is active.
func (m *Machine) BothIdle() bool {
	s, r := m.States()
	return s == StateIdle && r == StateIdle
}

// Fire applies ev to dir and returns the transition. When no rule matches
// the state is unchanged and the transition has no commands.
func (m *Machine) Fire(dir model.Direction, ev Event, g Guards) Transition {
	m.mu.Lock()

	self := m.states[dir.Index()]
	other := m.states[dir.Other().Index()]
	tr := Transition{Direction: dir, Event: ev, From: self, To: self, Other: other}

	if rule, ok := Lookup(ev, self, other, g); ok {
		tr.To = rule.next(self, other)
		tr.Commands = rule.Commands
		tr.Rule = rule.Name
		m.states[dir.Index()] = tr.To
	}
	fn := m.onTransition
	m.mu.Unlock()

	if fn != nil && tr.Matched() {
		fn(tr)
	}
	return tr
}

// Reset forces both directions to idle.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = [2]AudioState{}
}

// OnTransition sets a callback invoked after every matched event.
func (m *Machine) OnTransition(fn func(Transition)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTransition = fn
}
