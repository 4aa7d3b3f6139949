package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Hazard Cry Timing
const (
	HazardCryDuration = 700 * time.Millisecond
	HazardCryAttack   = 30 * time.Millisecond
	HazardCryRelease  = 300 * time.Millisecond
)

// Victory Chime Timing
const (
	VictoryNoteDuration = 400 * time.Millisecond
	VictoryNoteAttack   = 10 * time.Millisecond
	VictoryNoteRelease  = 250 * time.Millisecond
)

// Game Over Sting Timing
const (
	GameOverStingDuration = 1200 * time.Millisecond
	GameOverStingAttack   = 5 * time.Millisecond
	GameOverStingRelease  = 900 * time.Millisecond
)

// Ambient Drone
const (
	// AmbientBaseFrequency is the fundamental of the eerie drone
	AmbientBaseFrequency = 55.0

	// AmbientWobblePeriod is the period of the drone's slow pitch wobble
	AmbientWobblePeriod = 7 * time.Second
)
