package engine

import "math"

// Point is a position on the play field, in cells
type Point struct {
	X, Y float64
}

// Pt builds a Point from integer cell coordinates
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Cell returns the integer cell holding p
func (p Point) Cell() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Rect is an axis-aligned rectangle; the left/top edges are inside, right/bottom are not
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies in the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.X) && p.X < float64(r.X+r.W) &&
		p.Y >= float64(r.Y) && p.Y < float64(r.Y+r.H)
}

// Center returns the middle cell of the rectangle
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
