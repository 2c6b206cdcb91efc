package model

import (
	"fmt"
	"strings"
)

// ContextType classifies the audio being streamed. Each value is a single bit
// so that contexts can be combined into an AudioContexts mask.
type ContextType uint16

const (
	ContextUnspecified     ContextType = 0x0001
	ContextConversational  ContextType = 0x0002
	ContextMedia           ContextType = 0x0004
	ContextGame            ContextType = 0x0008
	ContextInstructional   ContextType = 0x0010
	ContextVoiceAssistants ContextType = 0x0020
	ContextLive            ContextType = 0x0040
	ContextSoundEffects    ContextType = 0x0080
	ContextNotifications   ContextType = 0x0100
	ContextRingtone        ContextType = 0x0200
	ContextAlerts          ContextType = 0x0400
	ContextEmergencyAlarm  ContextType = 0x0800

	// ContextRFU is the first reserved value. Any context >= ContextRFU is invalid.
	ContextRFU ContextType = 0x1000
)

var contextNames = []struct {
	ctx  ContextType
	name string
}{
	{ContextUnspecified, "UNSPECIFIED"},
	{ContextConversational, "CONVERSATIONAL"},
	{ContextMedia, "MEDIA"},
	{ContextGame, "GAME"},
	{ContextInstructional, "INSTRUCTIONAL"},
	{ContextVoiceAssistants, "VOICEASSISTANTS"},
	{ContextLive, "LIVE"},
	{ContextSoundEffects, "SOUNDEFFECTS"},
	{ContextNotifications, "NOTIFICATIONS"},
	{ContextRingtone, "RINGTONE"},
	{ContextAlerts, "ALERTS"},
	{ContextEmergencyAlarm, "EMERGENCYALARM"},
}

// String returns the context name.
func (c ContextType) String() string {
	for _, n := range contextNames {
		if n.ctx == c {
			return n.name
		}
	}
	return fmt.Sprintf("CONTEXT(0x%04x)", uint16(c))
}

// Valid reports whether c is a single known context bit.
func (c ContextType) Valid() bool {
	return c != 0 && c < ContextRFU && c&(c-1) == 0
}

// ParseContextType parses a context name such as "MEDIA" (case-insensitive).
func ParseContextType(s string) (ContextType, bool) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, n := range contextNames {
		if n.name == up {
			return n.ctx, true
		}
	}
	return 0, false
}

// AudioContexts is a set of context types.
type AudioContexts uint16

// ContextsOf builds a set from individual context types.
func ContextsOf(types ...ContextType) AudioContexts {
	var c AudioContexts
	for _, t := range types {
		c |= AudioContexts(t)
	}
	return c
}

// Has reports whether the set contains t.
func (c AudioContexts) Has(t ContextType) bool {
	return c&AudioContexts(t) != 0
}

// Add returns the set with t added.
func (c AudioContexts) Add(t ContextType) AudioContexts {
	return c | AudioContexts(t)
}

// Remove returns the set with t removed.
func (c AudioContexts) Remove(t ContextType) AudioContexts {
	return c &^ AudioContexts(t)
}

// IsEmpty reports whether no context is set.
func (c AudioContexts) IsEmpty() bool {
	return c == 0
}

// Types returns the contained context types in ascending bit order.
func (c AudioContexts) Types() []ContextType {
	var out []ContextType
	for _, n := range contextNames {
		if c.Has(n.ctx) {
			out = append(out, n.ctx)
		}
	}
	return out
}

// String returns a "|" separated list of context names.
func (c AudioContexts) String() string {
	if c == 0 {
		return "NONE"
	}
	types := c.Types()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	if rest := c &^ AudioContexts(ContextRFU-1); rest != 0 {
		names = append(names, fmt.Sprintf("0x%04x", uint16(rest)))
	}
	return strings.Join(names, "|")
}
