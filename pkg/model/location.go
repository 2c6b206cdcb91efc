package model

// AudioLocation is a bitmask of speaker or microphone positions.
type AudioLocation uint32

const (
	LocationMonoAudio          AudioLocation = 0x00000000
	LocationFrontLeft          AudioLocation = 0x00000001
	LocationFrontRight         AudioLocation = 0x00000002
	LocationFrontCenter        AudioLocation = 0x00000004
	LocationLowFreqEffects1    AudioLocation = 0x00000008
	LocationBackLeft           AudioLocation = 0x00000010
	LocationBackRight          AudioLocation = 0x00000020
	LocationFrontLeftOfCenter  AudioLocation = 0x00000040
	LocationFrontRightOfCenter AudioLocation = 0x00000080
	LocationBackCenter         AudioLocation = 0x00000100
	LocationLowFreqEffects2    AudioLocation = 0x00000200
	LocationSideLeft           AudioLocation = 0x00000400
	LocationSideRight          AudioLocation = 0x00000800
	LocationTopFrontLeft       AudioLocation = 0x00001000
	LocationTopFrontRight      AudioLocation = 0x00002000
	LocationTopFrontCenter     AudioLocation = 0x00004000
	LocationTopCenter          AudioLocation = 0x00008000
	LocationTopBackLeft        AudioLocation = 0x00010000
	LocationTopBackRight       AudioLocation = 0x00020000
	LocationTopSideLeft        AudioLocation = 0x00040000
	LocationTopSideRight       AudioLocation = 0x00080000
	LocationTopBackCenter      AudioLocation = 0x00100000
	LocationBottomFrontCenter  AudioLocation = 0x00200000
	LocationBottomFrontLeft    AudioLocation = 0x00400000
	LocationBottomFrontRight   AudioLocation = 0x00800000
	LocationFrontLeftWide      AudioLocation = 0x01000000
	LocationFrontRightWide     AudioLocation = 0x02000000
	LocationLeftSurround       AudioLocation = 0x04000000
	LocationRightSurround      AudioLocation = 0x08000000
)

// LocationAnyLeft matches every left-hand position.
const LocationAnyLeft = LocationFrontLeft | LocationBackLeft | LocationFrontLeftOfCenter |
	LocationSideLeft | LocationTopFrontLeft | LocationTopBackLeft | LocationTopSideLeft |
	LocationBottomFrontLeft | LocationFrontLeftWide | LocationLeftSurround

// LocationAnyRight matches every right-hand position.
const LocationAnyRight = LocationFrontRight | LocationBackRight | LocationFrontRightOfCenter |
	LocationSideRight | LocationTopFrontRight | LocationTopBackRight | LocationTopSideRight |
	LocationBottomFrontRight | LocationFrontRightWide | LocationRightSurround

// IsLeft reports whether any left position bit is set.
func (l AudioLocation) IsLeft() bool {
	return l&LocationAnyLeft != 0
}

// IsRight reports whether any right position bit is set.
func (l AudioLocation) IsRight() bool {
	return l&LocationAnyRight != 0
}
