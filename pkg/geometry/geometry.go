package geometry

import "math"

// Epsilon is the tolerance used for geometric comparisons.
// Dimensions below this are treated as zero.
const Epsilon = 1e-9

// Point is a location in the local floorplate frame, in meters.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Rect is an axis-aligned rectangle. X,Y is the minimum corner; Width extends
// along +X and Depth along +Y.
type Rect struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Width float64 `yaml:"width" json:"width"`
	Depth float64 `yaml:"depth" json:"depth"`
}

// NewRect constructs a rectangle from its minimum corner and dimensions.
func NewRect(x, y, width, depth float64) Rect {
	return Rect{X: x, Y: y, Width: width, Depth: depth}
}

// MaxX returns the rectangle's maximum X coordinate.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the rectangle's maximum Y coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.Depth }

// CenterX returns the X coordinate of the rectangle center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the Y coordinate of the rectangle center.
func (r Rect) CenterY() float64 { return r.Y + r.Depth/2 }

// Center returns the rectangle center point.
func (r Rect) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Area returns the rectangle area in square meters.
func (r Rect) Area() float64 { return r.Width * r.Depth }

// IsEmpty reports whether the rectangle has no positive area.
func (r Rect) IsEmpty() bool { return r.Width <= Epsilon || r.Depth <= Epsilon }

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X-Epsilon && p.X <= r.MaxX()+Epsilon &&
		p.Y >= r.Y-Epsilon && p.Y <= r.MaxY()+Epsilon
}

// ContainsRect reports whether o lies entirely within r, edge contact allowed.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X-Epsilon && o.MaxX() <= r.MaxX()+Epsilon &&
		o.Y >= r.Y-Epsilon && o.MaxY() <= r.MaxY()+Epsilon
}

// Overlaps reports whether r and o share positive area. Rectangles that merely
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX()-Epsilon && o.X < r.MaxX()-Epsilon &&
		r.Y < o.MaxY()-Epsilon && o.Y < r.MaxY()-Epsilon
}

// Intersection returns the shared region of r and o. The second return value
// is false when the rectangles do not overlap.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Overlaps(o) {
		return Rect{}, false
	}
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Depth: y1 - y0}, true
}

// Vertices returns the rectangle corners in counter-clockwise order starting
// at the minimum corner.
func (r Rect) Vertices() []Point {
	return []Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}
