package log

import (
	"time"

	"github.com/google/uuid"
)

// Tracer stamps events with a session id and the current time before
// handing them to a Logger. A nil Tracer or one without a Logger is a no-op.
type Tracer struct {
	logger    Logger
	sessionID string
	now       func() time.Time
}

// NewTracer returns a Tracer with a fresh session id.
func NewTracer(logger Logger) *Tracer {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Tracer{
		logger:    logger,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID returns the id stamped on every event.
func (t *Tracer) SessionID() string {
	if t == nil {
		return ""
	}
	return t.sessionID
}

// Log stamps and forwards the event.
func (t *Tracer) Log(e Event) {
	if t == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = t.now()
	}
	e.SessionID = t.sessionID
	t.logger.Log(e)
}

// Request records a request to a collaborator.
func (t *Tracer) Request(layer Layer, dir Direction, group int, op, ctx string, accepted bool) {
	t.Log(Event{
		Direction: dir,
		Layer:     layer,
		Category:  CategoryRequest,
		GroupID:   group,
		Request:   &RequestEvent{Operation: op, Context: ctx, Accepted: accepted},
	})
}

// Status records a status reported by a collaborator.
func (t *Tracer) Status(layer Layer, group int, device, status, detail string) {
	t.Log(Event{
		Layer:    layer,
		Category: CategoryStatus,
		GroupID:  group,
		Device:   device,
		Status:   &StatusEvent{Status: status, Detail: detail},
	})
}

// State records a state change.
func (t *Tracer) State(entity StateEntity, dir Direction, group int, device, from, to, reason string) {
	t.Log(Event{
		Direction: dir,
		Layer:     LayerSession,
		Category:  CategoryState,
		GroupID:   group,
		Device:    device,
		StateChange: &StateChangeEvent{
			Entity:   entity,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// Error records an error.
func (t *Tracer) Error(layer Layer, group int, err error, context string) {
	if err == nil {
		return
	}
	t.Log(Event{
		Layer:    layer,
		Category: CategoryError,
		GroupID:  group,
		Error:    &ErrorEventData{Layer: layer, Message: err.Error(), Context: context},
	})
}

var _ Logger = (*Tracer)(nil)
