package engine

import (
	"time"

	"github.com/lixenwraith/demon-diapers/constants"
)

// ChoreSpec is one entry of the chore catalog
type ChoreSpec struct {
	Name   string
	Room   Room
	Radius float64

	// Anchor is the fixed position of the chore; nil places it randomly
	Anchor *Fraction
}

// genericChoreName is used when the catalog is empty
const genericChoreName = "Chore"

// DefaultChoreCatalog returns the four household chores, one per room
func DefaultChoreCatalog() []ChoreSpec {
	return []ChoreSpec{
		{Name: "Wash Dishes", Room: Kitchen, Radius: 3, Anchor: &Fraction{X: 0.3, Y: 7.0 / 12}},
		{Name: "Wash Toilet", Room: Bathroom, Radius: 3, Anchor: &Fraction{X: 5.0 / 12, Y: 4.0 / 6}},
		{Name: "Make Bed", Room: Bedroom, Radius: 4, Anchor: &Fraction{X: 0.5, Y: 4.0 / 6}},
		{Name: "Fix Lightbulb", Room: LivingRoom, Radius: 3, Anchor: &Fraction{X: 0.43, Y: 1.0 / 6}},
	}
}

// ChoreEvent is a repeated-click task. Reaching the required clicks moves it to Resolved for
// the grace period, after which a new chore is drawn. Leaving it Active past the chore timeout
// ends the game.
//
// Invariant: Completed() iff State() == Resolved; clicks stays within [0, required].
type ChoreEvent struct {
	timedEvent

	spec     ChoreSpec
	clicks   int
	required int
	graceEnd time.Time

	rng     RandomSource
	rules   Rules
	layout  *Layout
	catalog []ChoreSpec
}

// NewChoreEvent draws a chore from the catalog, Dormant until its spawn delay passes
func NewChoreEvent(now time.Time, rng RandomSource, rules Rules, layout *Layout, catalog []ChoreSpec, onActivate ActivateHook) *ChoreEvent {
	rules = rules.withDefaults()
	e := &ChoreEvent{
		required: rules.ChoreClicks,
		rng:      rng,
		rules:    rules,
		layout:   layout,
		catalog:  catalog,
	}
	e.timeout = rules.ChoreTimeout
	e.onActivate = onActivate
	e.Reset(now)
	return e
}

// Reset draws a new chore, room and position, clears progress and schedules the next spawn
func (e *ChoreEvent) Reset(now time.Time) {
	e.spec = e.drawSpec()
	e.radius = e.spec.Radius
	if e.radius <= 0 {
		e.radius = constants.DefaultChoreRadius
	}

	e.clicks = 0
	e.graceEnd = time.Time{}
	e.respawn(now, e.rng, e.rules, e.layout, e.spec.Room, e.candidates())
}

// candidates is the anchor on the current layout, or none for a random placement
func (e *ChoreEvent) candidates() []Point {
	if e.spec.Anchor == nil {
		return nil
	}
	return []Point{e.layout.Resolve(*e.spec.Anchor)}
}

// Relayout moves the chore onto the current layout after a resize, keeping its progress
func (e *ChoreEvent) Relayout() {
	e.relocate(e.layout, e.candidates())
}

// drawSpec picks a catalog entry uniformly; an empty catalog yields a generic chore in a
// random room with no anchor
func (e *ChoreEvent) drawSpec() ChoreSpec {
	if len(e.catalog) == 0 {
		return ChoreSpec{
			Name:   genericChoreName,
			Room:   Room(e.rng.Intn(RoomCount)),
			Radius: constants.DefaultChoreRadius,
		}
	}
	spec := e.catalog[e.rng.Intn(len(e.catalog))]
	if !spec.Room.Valid() {
		spec.Room = Room(e.rng.Intn(RoomCount))
	}
	return spec
}

// Update activates a due chore, and respawns a Resolved chore once its grace period is over
func (e *ChoreEvent) Update(now time.Time) {
	switch e.state {
	case Dormant:
		e.activateIfDue(now)
	case Resolved:
		if !now.Before(e.graceEnd) {
			e.Reset(now)
		}
	}
}

// IsClicked tests a click made while viewing room. Each hit adds one click; the final one
// resolves the chore and starts the grace period.
func (e *ChoreEvent) IsClicked(p Point, room Room, now time.Time) bool {
	if !e.hit(p, room) {
		return false
	}
	if e.clicks < e.required {
		e.clicks++
	}
	if e.clicks >= e.required {
		e.state = Resolved
		e.graceEnd = now.Add(e.rules.GracePeriod)
	}
	return true
}

// Name returns the chore name
func (e *ChoreEvent) Name() string { return e.spec.Name }

// Clicks returns the hits so far
func (e *ChoreEvent) Clicks() int { return e.clicks }

// RequiredClicks returns the hits needed to resolve the chore
func (e *ChoreEvent) RequiredClicks() int { return e.required }

// Completed reports whether the chore is in its grace period
func (e *ChoreEvent) Completed() bool { return e.state == Resolved }

// GraceEnd returns when the grace period ends; ok is false unless Resolved
func (e *ChoreEvent) GraceEnd() (time.Time, bool) {
	if e.state != Resolved {
		return time.Time{}, false
	}
	return e.graceEnd, true
}

// Progress returns clicks / required in [0, 1]
func (e *ChoreEvent) Progress() float64 {
	if e.required <= 0 {
		return 0
	}
	return float64(e.clicks) / float64(e.required)
}
