package engine

import "time"

// HazardView is the render view of the hazard
type HazardView struct {
	State    EventState
	Visible  bool // Active and in the viewed room
	Room     Room
	Position Point
	Radius   float64
	Slot     int
	TimeLeft time.Duration
}

// ChoreView is the render view of the chore
type ChoreView struct {
	State    EventState
	Visible  bool // Active and in the viewed room
	Name     string
	Room     Room
	Position Point
	Radius   float64
	Progress float64
	Clicks   int
	Required int
	TimeLeft time.Duration
}

// Snapshot is everything the renderer needs for one frame
type Snapshot struct {
	RunID     string
	Room      Room
	Terminal  Terminal
	Elapsed   time.Duration
	Remaining time.Duration
	Haunted   [RoomCount]bool

	Hazard HazardView
	Chore  ChoreView

	CanGoLeft  bool
	CanGoRight bool

	HazardsCleared  int
	ChoresCompleted int
}

// Snapshot captures the session state at now
func (s *Session) Snapshot(now time.Time) Snapshot {
	elapsed := s.Elapsed(now)
	remaining := s.rules.WinTime - elapsed
	if remaining < 0 {
		remaining = 0
	}

	h, c := s.hazard, s.chore
	return Snapshot{
		RunID:     s.runID,
		Room:      s.room,
		Terminal:  s.terminal,
		Elapsed:   elapsed,
		Remaining: remaining,
		Haunted:   s.haunt.haunted(),
		Hazard: HazardView{
			State:    h.State(),
			Visible:  h.IsActive() && h.Room() == s.room,
			Room:     h.Room(),
			Position: h.Position(),
			Radius:   h.Radius(),
			Slot:     h.Slot(),
			TimeLeft: h.TimeLeft(now),
		},
		Chore: ChoreView{
			State:    c.State(),
			Visible:  c.IsActive() && c.Room() == s.room,
			Name:     c.Name(),
			Room:     c.Room(),
			Position: c.Position(),
			Radius:   c.Radius(),
			Progress: c.Progress(),
			Clicks:   c.Clicks(),
			Required: c.RequiredClicks(),
			TimeLeft: c.TimeLeft(now),
		},
		CanGoLeft:       s.CanNavigate(-1),
		CanGoRight:      s.CanNavigate(1),
		HazardsCleared:  s.hazardsCleared,
		ChoresCompleted: s.choresCompleted,
	}
}
