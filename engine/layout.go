package engine

import (
	"github.com/lixenwraith/demon-diapers/constants"
)

// Fraction is a position relative to the field size, each axis in [0, 1]
type Fraction struct {
	X, Y float64
}

// Layout is the resolved geometry of the play field for one screen size
type Layout struct {
	Width, Height int

	// ReservedBottom is the strip at the bottom kept free for navigation controls
	ReservedBottom int

	HazardRadius float64

	NavLeft  Rect
	NavRight Rect
	Retry    Rect
	Start    Rect

	// HazardSpots holds the candidate hazard positions per room; an empty entry falls back
	// to a uniform draw inside the safe bounds
	HazardSpots [RoomCount][]Point
}

// NewLayout resolves relative hazard spots against a field of width x height cells
func NewLayout(width, height int, spots [RoomCount][]Fraction, hazardRadius float64) *Layout {
	if hazardRadius <= 0 {
		hazardRadius = constants.HazardRadius
	}

	l := &Layout{
		Width:          width,
		Height:         height,
		ReservedBottom: constants.ButtonHeight + constants.ButtonMargin,
		HazardRadius:   hazardRadius,
	}

	buttonY := height - constants.ButtonHeight - constants.ButtonMargin
	l.NavLeft = Rect{X: constants.ButtonMargin, Y: buttonY, W: constants.ButtonWidth, H: constants.ButtonHeight}
	l.NavRight = Rect{
		X: width - constants.ButtonWidth - constants.ButtonMargin,
		Y: buttonY,
		W: constants.ButtonWidth,
		H: constants.ButtonHeight,
	}
	l.Retry = Rect{
		X: (width - constants.RetryButtonWidth) / 2,
		Y: buttonY,
		W: constants.RetryButtonWidth,
		H: constants.ButtonHeight,
	}
	l.Start = Rect{
		X: (width - constants.StartButtonWidth) / 2,
		Y: buttonY,
		W: constants.StartButtonWidth,
		H: constants.ButtonHeight,
	}

	for room := range spots {
		for _, f := range spots[room] {
			l.HazardSpots[room] = append(l.HazardSpots[room], l.Resolve(f))
		}
	}
	return l
}

// Resolve maps a relative position onto the field, truncating to whole cells
func (l *Layout) Resolve(f Fraction) Point {
	return Pt(int(float64(l.Width)*f.X), int(float64(l.Height)*f.Y))
}

// fractionOf is the inverse of Resolve, used to carry a placement across a resize
func (l *Layout) fractionOf(p Point) Fraction {
	if l.Width <= 0 || l.Height <= 0 {
		return Fraction{}
	}
	return Fraction{X: p.X / float64(l.Width), Y: p.Y / float64(l.Height)}
}

// clampPoint pulls p inside the same safe bounds RandomPoint draws from
func (l *Layout) clampPoint(p Point, radius float64) Point {
	r := int(radius)
	return Pt(
		clampInt(int(p.X), r, l.Width-r),
		clampInt(int(p.Y), r, l.Height-l.ReservedBottom-r),
	)
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// RandomPoint draws a uniform position for an event of the given radius. The horizontal
// bounds keep the marker on screen; the vertical bounds also keep it above the reserved strip.
func (l *Layout) RandomPoint(rng RandomSource, radius float64) Point {
	r := int(radius)
	x := uniformInt(rng, r, l.Width-r)
	y := uniformInt(rng, r, l.Height-l.ReservedBottom-r)
	return Pt(x, y)
}

// pickPosition applies the shared placement policy: a uniform choice among the candidates,
// or a uniform draw inside the safe bounds when there are none. The returned slot is the
// candidate index, or -1 for the fallback.
func (l *Layout) pickPosition(rng RandomSource, candidates []Point, radius float64) (Point, int) {
	if len(candidates) > 0 {
		slot := rng.Intn(len(candidates))
		return candidates[slot], slot
	}
	return l.RandomPoint(rng, radius), -1
}

// DefaultHazardSpots are the hand-placed hazard positions of the four rooms
func DefaultHazardSpots() [RoomCount][]Fraction {
	return [RoomCount][]Fraction{
		Bathroom:   {{0.2, 0.5}, {0.8, 0.6}},
		Kitchen:    {{0.25, 0.5}, {0.75, 0.5}},
		Bedroom:    {{0.1, 0.5}, {0.3, 0.87}},
		LivingRoom: {{0.9, 0.8}, {0.1, 0.5}},
	}
}
