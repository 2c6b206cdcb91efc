package session

// AudioState is the state of one audio direction.
type AudioState uint8

const (
	// StateIdle means no audio flows and no start was requested.
	StateIdle AudioState = iota

	// StateReadyToStart means a start is in progress, waiting for the
	// stream to reach the streaming state.
	StateReadyToStart

	// StateStarted means the pipeline is running for this direction.
	StateStarted

	// StateReadyToRelease means the audio subsystem suspended the direction
	// while the stream is kept up.
	StateReadyToRelease

	// StateReleasing means the stream is being torn down.
	StateReleasing

	numStates
)

// String returns a human-readable state name.
func (s AudioState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateReadyToStart:
		return "READY_TO_START"
	case StateStarted:
		return "STARTED"
	case StateReadyToRelease:
		return "READY_TO_RELEASE"
	case StateReleasing:
		return "RELEASING"
	default:
		return "UNKNOWN"
	}
}

// StateSet is a set of audio states.
type StateSet uint8

// AnyState matches every state.
const AnyState StateSet = 1<<numStates - 1

// States builds a set.
func States(states ...AudioState) StateSet {
	var s StateSet
	for _, st := range states {
		s |= 1 << st
	}
	return s
}

// Has reports whether st is in the set.
func (s StateSet) Has(st AudioState) bool {
	return s&(1<<st) != 0
}

// Event is an input to the machine.
type Event uint8

const (
	// EventResume is an audio subsystem resume request.
	EventResume Event = iota

	// EventSuspend is an audio subsystem suspend request.
	EventSuspend

	// EventStreamRejected means a stream start request failed.
	EventStreamRejected

	// EventPipelineStarted means the codec pipeline for the direction runs.
	EventPipelineStarted

	// EventGroupStreaming is the stream protocol's streaming status.
	EventGroupStreaming

	// EventGroupReleasing is the stream protocol's releasing or suspending status.
	EventGroupReleasing

	// EventCancelRequest cancels any pending or running request.
	EventCancelRequest

	// EventSuspended is the stream protocol's suspended status.
	EventSuspended

	// EventReconfigurationPending announces a stop for reconfiguration.
	EventReconfigurationPending
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventResume:
		return "RESUME"
	case EventSuspend:
		return "SUSPEND"
	case EventStreamRejected:
		return "STREAM_REJECTED"
	case EventPipelineStarted:
		return "PIPELINE_STARTED"
	case EventGroupStreaming:
		return "GROUP_STREAMING"
	case EventGroupReleasing:
		return "GROUP_RELEASING"
	case EventCancelRequest:
		return "CANCEL_REQUEST"
	case EventSuspended:
		return "SUSPENDED"
	case EventReconfigurationPending:
		return "RECONFIGURATION_PENDING"
	default:
		return "UNKNOWN"
	}
}

// Command is a side effect the caller executes after a transition, in order.
type Command uint8

const (
	// CmdRequestStream asks the stream protocol to start the group stream
	// for the current context, unless it is already heading there.
	CmdRequestStream Command = iota

	// CmdStartPipeline sets up codecs for the direction and starts audio.
	CmdStartPipeline

	// CmdConfirm confirms the audio subsystem's request.
	CmdConfirm

	// CmdCancel cancels the audio subsystem's request.
	CmdCancel

	// CmdArmSuspendTimer (re)arms the suspend timer.
	CmdArmSuspendTimer

	// CmdCancelSuspendTimer disarms the suspend timer.
	CmdCancelSuspendTimer

	// CmdStopPipeline releases codecs and clears reassembly state.
	CmdStopPipeline

	// CmdNotifyReconfiguration tells the audio subsystem the direction is
	// suspended for reconfiguration.
	CmdNotifyReconfiguration

	// CmdWarn reports a request in an unexpected state.
	CmdWarn
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdRequestStream:
		return "REQUEST_STREAM"
	case CmdStartPipeline:
		return "START_PIPELINE"
	case CmdConfirm:
		return "CONFIRM"
	case CmdCancel:
		return "CANCEL"
	case CmdArmSuspendTimer:
		return "ARM_SUSPEND_TIMER"
	case CmdCancelSuspendTimer:
		return "CANCEL_SUSPEND_TIMER"
	case CmdStopPipeline:
		return "STOP_PIPELINE"
	case CmdNotifyReconfiguration:
		return "NOTIFY_RECONFIGURATION"
	case CmdWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}
