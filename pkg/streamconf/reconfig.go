package streamconf

import "github.com/leaudio/leaudio-go/pkg/model"

// CodecConfigProvider reports the audio session configuration a group would
// use for a context, or false if the direction is unsupported.
type CodecConfigProvider interface {
	CodecConfiguration(groupID int, ctx model.ContextType, dir model.Direction) (model.SessionConfig, bool)
}

// Tracker holds the session configuration currently in use per direction and
// the current context. It is not safe for concurrent use.
type Tracker struct {
	provider CodecConfigProvider
	configs  [2]model.SessionConfig
	current  model.ContextType
}

// NewTracker creates a tracker with both directions invalid and the media
// context selected.
func NewTracker(p CodecConfigProvider) *Tracker {
	return &Tracker{provider: p, current: model.ContextMedia}
}

// ContextRequiresReconfiguration computes the configuration group would use
// for ctx and compares it with the current one for both directions. Changed
// directions are updated; a direction that became unsupported is reset to
// model.InvalidSessionConfig. ctx becomes the current context.
func (t *Tracker) ContextRequiresReconfiguration(groupID int, ctx model.ContextType) bool {
	reconfigure := false

	for _, dir := range model.Directions {
		i := dir.Index()
		conf, ok := t.provider.CodecConfiguration(groupID, ctx, dir)
		if !ok {
			conf = model.InvalidSessionConfig
		}
		if conf != t.configs[i] {
			t.configs[i] = conf
			reconfigure = true
		}
	}

	t.current = ctx
	return reconfigure
}

// Config returns the session configuration of one direction.
func (t *Tracker) Config(dir model.Direction) model.SessionConfig {
	return t.configs[dir.Index()]
}

// BothInvalid reports whether neither direction is supported.
func (t *Tracker) BothInvalid() bool {
	return t.configs[0].IsInvalid() && t.configs[1].IsInvalid()
}

// CurrentContext returns the context last evaluated or set.
func (t *Tracker) CurrentContext() model.ContextType {
	return t.current
}

// SetCurrentContext records ctx without evaluating configurations.
func (t *Tracker) SetCurrentContext(ctx model.ContextType) {
	t.current = ctx
}

// Reset invalidates both directions.
func (t *Tracker) Reset() {
	t.configs = [2]model.SessionConfig{}
}
