package session

import (
	"slices"
	"testing"

	"github.com/leaudio/leaudio-go/pkg/model"
)

const (
	sink   = model.DirectionSink
	source = model.DirectionSource
)

var allStates = []AudioState{StateIdle, StateReadyToStart, StateStarted, StateReadyToRelease, StateReleasing}

// machineIn returns a machine with the given sender and receiver states.
func machineIn(sender, receiver AudioState) *Machine {
	m := NewMachine()
	m.states = [2]AudioState{sender, receiver}
	return m
}

func TestFire(t *testing.T) {
	expected := Guards{ResumeExpected: true}
	streamingG := Guards{ResumeExpected: true, GroupStreaming: true}
	reconfG := Guards{ResumeExpected: true, PendingConfiguration: true}

	tests := []struct {
		name   string
		self   AudioState
		other  AudioState
		event  Event
		guards Guards
		want   AudioState
		cmds   []Command
	}{
		// Resume
		{"resume not expected", StateIdle, StateIdle, EventResume, Guards{}, StateIdle, []Command{CmdCancel}},
		{"resume started confirms", StateStarted, StateIdle, EventResume, expected, StateStarted, []Command{CmdConfirm}},
		{"resume both idle requests stream", StateIdle, StateIdle, EventResume, expected, StateReadyToStart, []Command{CmdRequestStream}},
		{"resume joins streaming group", StateIdle, StateStarted, EventResume, streamingG, StateReadyToStart, []Command{CmdStartPipeline}},
		{"resume joins pending start", StateIdle, StateReadyToStart, EventResume, expected, StateReadyToStart, nil},
		{"resume inherits during reconfiguration", StateIdle, StateReadyToRelease, EventResume, reconfG, StateReadyToRelease, nil},
		{"resume inherits releasing", StateIdle, StateReleasing, EventResume, reconfG, StateReleasing, nil},
		{"resume rejected while other leaves", StateIdle, StateReleasing, EventResume, expected, StateIdle, []Command{CmdCancel}},
		{"resume while starting warns", StateReadyToStart, StateIdle, EventResume, expected, StateReadyToStart, []Command{CmdWarn}},
		{"resume restores suspended stream", StateReadyToRelease, StateIdle, EventResume, expected, StateStarted, []Command{CmdCancelSuspendTimer, CmdConfirm}},
		{"resume restores with other started", StateReadyToRelease, StateStarted, EventResume, expected, StateStarted, []Command{CmdCancelSuspendTimer, CmdConfirm}},
		{"resume restore blocked by releasing", StateReadyToRelease, StateReleasing, EventResume, expected, StateReadyToRelease, []Command{CmdCancel}},
		{"resume while releasing", StateReleasing, StateIdle, EventResume, expected, StateReleasing, []Command{CmdCancel}},

		// Suspend
		{"suspend last arms timer", StateStarted, StateIdle, EventSuspend, Guards{}, StateReadyToRelease, []Command{CmdArmSuspendTimer}},
		{"suspend second arms timer", StateStarted, StateReadyToRelease, EventSuspend, Guards{}, StateReadyToRelease, []Command{CmdArmSuspendTimer}},
		{"suspend with other running", StateStarted, StateStarted, EventSuspend, Guards{}, StateReadyToRelease, nil},
		{"suspend pending start", StateReadyToStart, StateStarted, EventSuspend, Guards{}, StateReadyToRelease, nil},
		{"suspend repeated", StateReadyToRelease, StateIdle, EventSuspend, Guards{}, StateReadyToRelease, []Command{CmdArmSuspendTimer}},
		{"suspend idle with other suspended", StateIdle, StateReadyToRelease, EventSuspend, Guards{}, StateIdle, []Command{CmdArmSuspendTimer}},
		{"suspend idle", StateIdle, StateStarted, EventSuspend, Guards{}, StateIdle, nil},
		{"suspend releasing", StateReleasing, StateIdle, EventSuspend, Guards{}, StateReleasing, nil},

		// Feedback
		{"stream rejected", StateReadyToStart, StateIdle, EventStreamRejected, Guards{}, StateIdle, []Command{CmdCancel}},
		{"group streaming starts pipeline", StateReadyToStart, StateIdle, EventGroupStreaming, Guards{}, StateReadyToStart, []Command{CmdStartPipeline}},
		{"group streaming ignored when idle", StateIdle, StateIdle, EventGroupStreaming, Guards{}, StateIdle, nil},
		{"pipeline started", StateReadyToStart, StateIdle, EventPipelineStarted, Guards{}, StateStarted, []Command{CmdConfirm}},
		{"group releasing", StateStarted, StateIdle, EventGroupReleasing, Guards{}, StateReleasing, nil},
		{"cancel request", StateReadyToRelease, StateIdle, EventCancelRequest, Guards{}, StateIdle, []Command{CmdCancel}},
		{"suspended", StateReleasing, StateIdle, EventSuspended, Guards{}, StateIdle, []Command{CmdStopPipeline}},
		{"reconfiguration notifies", StateStarted, StateIdle, EventReconfigurationPending, Guards{}, StateStarted, []Command{CmdNotifyReconfiguration}},
		{"reconfiguration skips idle", StateIdle, StateStarted, EventReconfigurationPending, Guards{}, StateIdle, nil},
	}

	for _, tt := range tests {
		for _, dir := range model.Directions {
			t.Run(tt.name+"/"+dir.String(), func(t *testing.T) {
				m := NewMachine()
				m.states[dir.Index()] = tt.self
				m.states[dir.Other().Index()] = tt.other

				tr := m.Fire(dir, tt.event, tt.guards)
				if tr.To != tt.want {
					t.Errorf("Fire() To = %v, want %v (rule %q)", tr.To, tt.want, tr.Rule)
				}
				if m.State(dir) != tt.want {
					t.Errorf("State() = %v, want %v", m.State(dir), tt.want)
				}
				if m.State(dir.Other()) != tt.other {
					t.Errorf("other State() = %v, want unchanged %v", m.State(dir.Other()), tt.other)
				}
				if !slices.Equal(tr.Commands, tt.cmds) {
					t.Errorf("Fire() Commands = %v, want %v", tr.Commands, tt.cmds)
				}
			})
		}
	}
}

// Resume and suspend must be handled in every state combination.
func TestTableCoversRequests(t *testing.T) {
	guards := []Guards{
		{},
		{ResumeExpected: true},
		{ResumeExpected: true, GroupStreaming: true},
		{ResumeExpected: true, PendingConfiguration: true},
	}
	for _, ev := range []Event{EventResume, EventSuspend} {
		for _, self := range allStates {
			for _, other := range allStates {
				for _, g := range guards {
					if _, ok := Lookup(ev, self, other, g); !ok {
						t.Errorf("no rule for %v self=%v other=%v guards=%+v", ev, self, other, g)
					}
				}
			}
		}
	}
}

func TestTableRuleNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Table {
		if r.Name == "" || seen[r.Name] {
			t.Errorf("rule name %q empty or duplicated", r.Name)
		}
		seen[r.Name] = true
	}
}

func TestSuspendBothDirectionsScenario(t *testing.T) {
	m := machineIn(StateStarted, StateStarted)

	var arms int
	count := func(tr Transition) {
		for _, c := range tr.Commands {
			if c == CmdArmSuspendTimer {
				arms++
			}
		}
	}

	count(m.Fire(sink, EventSuspend, Guards{}))
	if arms != 0 {
		t.Fatalf("timer armed while receiver still started")
	}
	count(m.Fire(source, EventSuspend, Guards{}))
	if arms != 1 {
		t.Errorf("arm commands = %d, want 1", arms)
	}

	tr := m.Fire(sink, EventResume, Guards{ResumeExpected: true})
	if tr.To != StateStarted || !slices.Contains(tr.Commands, CmdCancelSuspendTimer) {
		t.Errorf("resume after suspend = %v %v, want STARTED with timer cancel", tr.To, tr.Commands)
	}
}

func TestOnTransition(t *testing.T) {
	m := NewMachine()
	var got []Transition
	m.OnTransition(func(tr Transition) { got = append(got, tr) })

	m.Fire(sink, EventResume, Guards{ResumeExpected: true})
	m.Fire(sink, EventPipelineStarted, Guards{})
	// no rule
	m.Fire(sink, EventPipelineStarted, Guards{})

	if len(got) != 2 {
		t.Fatalf("transitions = %d, want 2", len(got))
	}
	if got[1].From != StateReadyToStart || got[1].To != StateStarted || !got[1].Changed() {
		t.Errorf("transition = %+v, want READY_TO_START -> STARTED", got[1])
	}

	m.Reset()
	if !m.BothIdle() {
		t.Error("BothIdle() after Reset = false, want true")
	}
}

func TestStateStrings(t *testing.T) {
	for _, s := range allStates {
		if s.String() == "UNKNOWN" {
			t.Errorf("%d has no name", s)
		}
	}
	if AudioState(42).String() != "UNKNOWN" {
		t.Error("unexpected name for invalid state")
	}
	if !AnyState.Has(StateReleasing) || States(StateIdle).Has(StateStarted) {
		t.Error("StateSet membership wrong")
	}
}
