package session

// Guards carries the facts rules may depend on besides the two states.
type Guards struct {
	// ResumeExpected is set when the current context has a configuration
	// for the direction being resumed.
	ResumeExpected bool

	// GroupStreaming is set when the active group has reached streaming.
	GroupStreaming bool

	// PendingConfiguration is set while the group waits for idle to be
	// reconfigured.
	PendingConfiguration bool
}

// Target selects how a rule computes the next state.
type Target uint8

const (
	// TargetState moves to Rule.Next.
	TargetState Target = iota

	// TargetStay keeps the current state.
	TargetStay

	// TargetInheritOther copies the other direction's state.
	TargetInheritOther
)

// Rule is one row of the transition table. The table is shared by both
// directions; Self is the state of the direction the event is for and Other
// the state of the opposite direction.
type Rule struct {
	Name     string
	Event    Event
	Self     StateSet
	Other    StateSet
	Guard    func(Guards) bool
	Target   Target
	Next     AudioState
	Commands []Command
}

func (r *Rule) matches(ev Event, self, other AudioState, g Guards) bool {
	if r.Event != ev || !r.Self.Has(self) || !r.Other.Has(other) {
		return false
	}
	return r.Guard == nil || r.Guard(g)
}

func (r *Rule) next(self, other AudioState) AudioState {
	switch r.Target {
	case TargetStay:
		return self
	case TargetInheritOther:
		return other
	default:
		return r.Next
	}
}

func notExpected(g Guards) bool { return !g.ResumeExpected }

func streaming(g Guards) bool { return g.GroupStreaming }

func reconfiguring(g Guards) bool { return g.PendingConfiguration }

var (
	active  = States(StateReadyToStart, StateStarted)
	quiet   = States(StateIdle, StateReadyToRelease)
	leaving = States(StateReadyToRelease, StateReleasing)
	busy    = AnyState &^ States(StateIdle)
)

// Table is the transition table. The first matching rule wins.
var Table = []Rule{
	// Resume
	{Name: "resume-unexpected", Event: EventResume, Self: AnyState, Other: AnyState, Guard: notExpected,
		Target: TargetStay, Commands: []Command{CmdCancel}},
	{Name: "resume-started", Event: EventResume, Self: States(StateStarted), Other: AnyState,
		Target: TargetStay, Commands: []Command{CmdConfirm}},
	{Name: "resume-first", Event: EventResume, Self: States(StateIdle), Other: States(StateIdle),
		Next: StateReadyToStart, Commands: []Command{CmdRequestStream}},
	{Name: "resume-join-streaming", Event: EventResume, Self: States(StateIdle), Other: active, Guard: streaming,
		Next: StateReadyToStart, Commands: []Command{CmdStartPipeline}},
	{Name: "resume-join", Event: EventResume, Self: States(StateIdle), Other: active,
		Next: StateReadyToStart},
	{Name: "resume-inherit", Event: EventResume, Self: States(StateIdle), Other: leaving, Guard: reconfiguring,
		Target: TargetInheritOther},
	{Name: "resume-other-leaving", Event: EventResume, Self: States(StateIdle), Other: leaving,
		Target: TargetStay, Commands: []Command{CmdCancel}},
	{Name: "resume-pending", Event: EventResume, Self: States(StateReadyToStart), Other: AnyState,
		Target: TargetStay, Commands: []Command{CmdWarn}},
	{Name: "resume-restore", Event: EventResume, Self: States(StateReadyToRelease), Other: States(StateStarted, StateIdle, StateReadyToRelease),
		Next: StateStarted, Commands: []Command{CmdCancelSuspendTimer, CmdConfirm}},
	{Name: "resume-restore-releasing", Event: EventResume, Self: States(StateReadyToRelease), Other: States(StateReleasing, StateReadyToStart),
		Target: TargetStay, Commands: []Command{CmdCancel}},
	{Name: "resume-releasing", Event: EventResume, Self: States(StateReleasing), Other: AnyState,
		Target: TargetStay, Commands: []Command{CmdCancel}},

	// Suspend
	{Name: "suspend-last", Event: EventSuspend, Self: active, Other: quiet,
		Next: StateReadyToRelease, Commands: []Command{CmdArmSuspendTimer}},
	{Name: "suspend", Event: EventSuspend, Self: active, Other: AnyState,
		Next: StateReadyToRelease},
	{Name: "suspend-again-last", Event: EventSuspend, Self: States(StateReadyToRelease), Other: quiet,
		Target: TargetStay, Commands: []Command{CmdArmSuspendTimer}},
	{Name: "suspend-again", Event: EventSuspend, Self: States(StateReadyToRelease), Other: AnyState,
		Target: TargetStay},
	{Name: "suspend-idle-last", Event: EventSuspend, Self: States(StateIdle), Other: States(StateReadyToRelease),
		Target: TargetStay, Commands: []Command{CmdArmSuspendTimer}},
	{Name: "suspend-idle", Event: EventSuspend, Self: States(StateIdle, StateReleasing), Other: AnyState,
		Target: TargetStay},

	// Stream protocol feedback
	{Name: "stream-rejected", Event: EventStreamRejected, Self: States(StateReadyToStart), Other: AnyState,
		Next: StateIdle, Commands: []Command{CmdCancel}},
	{Name: "group-streaming", Event: EventGroupStreaming, Self: States(StateReadyToStart), Other: AnyState,
		Target: TargetStay, Commands: []Command{CmdStartPipeline}},
	{Name: "pipeline-started", Event: EventPipelineStarted, Self: States(StateReadyToStart), Other: AnyState,
		Next: StateStarted, Commands: []Command{CmdConfirm}},
	{Name: "group-releasing", Event: EventGroupReleasing, Self: busy, Other: AnyState,
		Next: StateReleasing},
	{Name: "cancel", Event: EventCancelRequest, Self: busy, Other: AnyState,
		Next: StateIdle, Commands: []Command{CmdCancel}},
	{Name: "suspended", Event: EventSuspended, Self: AnyState, Other: AnyState,
		Next: StateIdle, Commands: []Command{CmdStopPipeline}},
	{Name: "reconfiguration", Event: EventReconfigurationPending, Self: busy, Other: AnyState,
		Target: TargetStay, Commands: []Command{CmdNotifyReconfiguration}},
}

// Lookup returns the first rule matching the inputs.
func Lookup(ev Event, self, other AudioState, g Guards) (*Rule, bool) {
	for i := range Table {
		if Table[i].matches(ev, self, other, g) {
			return &Table[i], true
		}
	}
	return nil, false
}
