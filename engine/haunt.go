package engine

import (
	"time"
)

// HauntStage is one step of the haunting schedule: at At into the match, Room turns haunted
// and the ambient drone ramps toward Volume
type HauntStage struct {
	At     time.Duration
	Room   Room
	Volume float64
}

// DefaultHauntStages returns the four-stage escalation over the match
func DefaultHauntStages() []HauntStage {
	return []HauntStage{
		{At: 20 * time.Second, Room: Bedroom, Volume: 0.1},
		{At: 40 * time.Second, Room: Kitchen, Volume: 0.2},
		{At: 60 * time.Second, Room: LivingRoom, Volume: 0.4},
		{At: 80 * time.Second, Room: Bathroom, Volume: 0.9},
	}
}

// hauntSchedule tracks which stages have fired. Flags only go false -> true until reset.
type hauntSchedule struct {
	stages []HauntStage
	fired  []bool
}

func newHauntSchedule(stages []HauntStage) *hauntSchedule {
	return &hauntSchedule{
		stages: stages,
		fired:  make([]bool, len(stages)),
	}
}

// advance marks every stage whose threshold elapsed has reached and returns the newly
// fired ones in schedule order
func (h *hauntSchedule) advance(elapsed time.Duration) []HauntStage {
	var due []HauntStage
	for i, st := range h.stages {
		if h.fired[i] || elapsed < st.At {
			continue
		}
		h.fired[i] = true
		due = append(due, st)
	}
	return due
}

func (h *hauntSchedule) reset() {
	for i := range h.fired {
		h.fired[i] = false
	}
}

// firedAt reports whether the stage with the given threshold has fired
func (h *hauntSchedule) firedAt(threshold time.Duration) bool {
	for i, st := range h.stages {
		if st.At == threshold {
			return h.fired[i]
		}
	}
	return false
}

// haunted returns which rooms have been haunted by fired stages
func (h *hauntSchedule) haunted() [RoomCount]bool {
	var rooms [RoomCount]bool
	for i, st := range h.stages {
		if h.fired[i] && st.Room.Valid() {
			rooms[st.Room] = true
		}
	}
	return rooms
}
