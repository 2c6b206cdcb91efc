package streamconf

import "github.com/leaudio/leaudio-go/pkg/model"

// ContentType is the audio content type reported with track metadata.
type ContentType uint8

const (
	ContentUnknown ContentType = iota
	ContentSpeech
	ContentMusic
	ContentMovie
	ContentSonification
)

// Usage is the audio usage reported with track metadata.
type Usage uint16

const (
	UsageUnknown                      Usage = 0
	UsageMedia                        Usage = 1
	UsageVoiceCommunication           Usage = 2
	UsageVoiceCommunicationSignalling Usage = 3
	UsageAlarm                        Usage = 4
	UsageNotification                 Usage = 5
	UsageNotificationRingtone         Usage = 6
	UsageAssistanceAccessibility      Usage = 11
	UsageAssistanceNavigation         Usage = 12
	UsageAssistanceSonification       Usage = 13
	UsageGame                         Usage = 14
	UsageAssistant                    Usage = 16
	UsageEmergency                    Usage = 1000
)

// Track is one entry of an audio metadata update.
type Track struct {
	Content ContentType
	Usage   Usage
}

// ContextForTrack maps one track to a context. While the current context is
// conversational, speech-like content and call-related usages keep it.
func ContextForTrack(current model.ContextType, tr Track) model.ContextType {
	if current == model.ContextConversational {
		switch tr.Content {
		case ContentSonification, ContentSpeech:
			return model.ContextConversational
		}
		switch tr.Usage {
		case UsageNotificationRingtone, UsageNotification, UsageAlarm,
			UsageEmergency, UsageVoiceCommunication:
			return model.ContextConversational
		}
	}

	switch tr.Content {
	case ContentSpeech:
		return model.ContextConversational
	case ContentMusic, ContentMovie, ContentSonification:
		return model.ContextMedia
	}

	switch tr.Usage {
	case UsageVoiceCommunication:
		return model.ContextConversational
	case UsageGame:
		return model.ContextGame
	case UsageNotification:
		return model.ContextNotifications
	case UsageNotificationRingtone:
		return model.ContextRingtone
	case UsageAlarm:
		return model.ContextAlerts
	case UsageEmergency:
		return model.ContextEmergencyAlarm
	}
	return model.ContextMedia
}

// ChooseContext picks conversational over media over the first listed.
// It returns false for an empty list.
func ChooseContext(contexts []model.ContextType) (model.ContextType, bool) {
	if len(contexts) == 0 {
		return 0, false
	}
	for _, want := range []model.ContextType{model.ContextConversational, model.ContextMedia} {
		for _, c := range contexts {
			if c == want {
				return c, true
			}
		}
	}
	return contexts[0], true
}

// ContextFromMetadata maps every track to a context and chooses one. Tracks
// with both content and usage unknown are skipped; false means no track was
// usable.
func ContextFromMetadata(current model.ContextType, tracks []Track) (model.ContextType, bool) {
	contexts := make([]model.ContextType, 0, len(tracks))
	for _, tr := range tracks {
		if tr.Content == ContentUnknown && tr.Usage == UsageUnknown {
			continue
		}
		contexts = append(contexts, ContextForTrack(current, tr))
	}
	return ChooseContext(contexts)
}
