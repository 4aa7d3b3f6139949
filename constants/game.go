package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame interval (~60 FPS); one session tick per frame
	FrameUpdateInterval = 16 * time.Millisecond
)

// Match Timing Constants
const (
	// WinTime is how long the player must survive to win
	WinTime = 100 * time.Second

	// SpawnDelayMin and SpawnDelayMax bound the uniform delay before an event activates
	SpawnDelayMin = 2 * time.Second
	SpawnDelayMax = 5 * time.Second
)

// Hazard (baby) Constants
const (
	// HazardTimeout is how long an active hazard may be ignored before the baby dies
	HazardTimeout = 5 * time.Second

	// HazardRadius is the interaction radius of the hazard marker, in cells
	HazardRadius = 2
)

// Chore Constants
const (
	// ChoreClicksRequired is the number of hits that complete a chore
	ChoreClicksRequired = 10

	// ChoreTimeout is how long an active chore may stay unfinished
	ChoreTimeout = 15 * time.Second

	// ChoreGracePeriod is the pause after a completed chore before the next one is drawn
	ChoreGracePeriod = 5 * time.Second

	// DefaultChoreRadius is used for chores without an explicit radius
	DefaultChoreRadius = 3
)

// Haunting Constants
const (
	// AmbientFadeDuration is the crossfade length of each haunting stage
	AmbientFadeDuration = 5 * time.Second
)
