package streamconf

import (
	"testing"

	"github.com/leaudio/leaudio-go/pkg/model"
)

func TestContextForTrack(t *testing.T) {
	tests := []struct {
		name    string
		current model.ContextType
		track   Track
		want    model.ContextType
	}{
		{"speech", model.ContextMedia, Track{Content: ContentSpeech}, model.ContextConversational},
		{"music", model.ContextMedia, Track{Content: ContentMusic}, model.ContextMedia},
		{"movie", model.ContextMedia, Track{Content: ContentMovie}, model.ContextMedia},
		{"sonification", model.ContextMedia, Track{Content: ContentSonification}, model.ContextMedia},
		{"voice usage", model.ContextMedia, Track{Usage: UsageVoiceCommunication}, model.ContextConversational},
		{"game", model.ContextMedia, Track{Usage: UsageGame}, model.ContextGame},
		{"notification", model.ContextMedia, Track{Usage: UsageNotification}, model.ContextNotifications},
		{"ringtone", model.ContextMedia, Track{Usage: UsageNotificationRingtone}, model.ContextRingtone},
		{"alarm", model.ContextMedia, Track{Usage: UsageAlarm}, model.ContextAlerts},
		{"emergency", model.ContextMedia, Track{Usage: UsageEmergency}, model.ContextEmergencyAlarm},
		{"unknown usage", model.ContextMedia, Track{Usage: UsageAssistant}, model.ContextMedia},
		{"hysteresis sonification", model.ContextConversational, Track{Content: ContentSonification}, model.ContextConversational},
		{"hysteresis ringtone", model.ContextConversational, Track{Usage: UsageNotificationRingtone}, model.ContextConversational},
		{"hysteresis alarm", model.ContextConversational, Track{Usage: UsageAlarm}, model.ContextConversational},
		{"no hysteresis for music", model.ContextConversational, Track{Content: ContentMusic}, model.ContextMedia},
		{"no hysteresis for game", model.ContextConversational, Track{Usage: UsageGame}, model.ContextGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextForTrack(tt.current, tt.track); got != tt.want {
				t.Errorf("ContextForTrack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseContext(t *testing.T) {
	tests := []struct {
		name   string
		in     []model.ContextType
		want   model.ContextType
		wantOK bool
	}{
		{"empty", nil, 0, false},
		{"conversational wins", []model.ContextType{model.ContextMedia, model.ContextConversational}, model.ContextConversational, true},
		{"media over others", []model.ContextType{model.ContextGame, model.ContextMedia}, model.ContextMedia, true},
		{"first listed", []model.ContextType{model.ContextRingtone, model.ContextGame}, model.ContextRingtone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChooseContext(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ChooseContext() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestContextFromMetadata(t *testing.T) {
	t.Run("SkipsEmptyTracks", func(t *testing.T) {
		_, ok := ContextFromMetadata(model.ContextMedia, []Track{{}, {}})
		if ok {
			t.Error("ContextFromMetadata() ok = true, want false")
		}
	})

	t.Run("VoiceDuringMedia", func(t *testing.T) {
		got, ok := ContextFromMetadata(model.ContextMedia, []Track{
			{Content: ContentMusic, Usage: UsageMedia},
			{Usage: UsageVoiceCommunication},
		})
		if !ok || got != model.ContextConversational {
			t.Errorf("ContextFromMetadata() = %v, %v, want CONVERSATIONAL, true", got, ok)
		}
	})
}
