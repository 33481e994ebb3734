package geometry

import "math"

// Transform carries a local→host frame mapping: rotation about Z followed by
// translation, plus the floor elevation. Layouts are generated in the local
// frame; callers apply the transform to place geometry in world space.
type Transform struct {
	TranslateX float64 `yaml:"translateX" json:"translateX"`
	TranslateY float64 `yaml:"translateY" json:"translateY"`
	Rotation   float64 `yaml:"rotation" json:"rotation"` // radians about Z
	Elevation  float64 `yaml:"elevation" json:"elevation"`
}

// Apply maps a local-frame point into the host frame.
func (t Transform) Apply(p Point) Point {
	sin, cos := math.Sincos(t.Rotation)
	return Point{
		X: p.X*cos - p.Y*sin + t.TranslateX,
		Y: p.X*sin + p.Y*cos + t.TranslateY,
	}
}

// Invert maps a host-frame point back into the local frame.
// Invert(Apply(p)) reproduces p up to floating point error.
func (t Transform) Invert(p Point) Point {
	x := p.X - t.TranslateX
	y := p.Y - t.TranslateY
	sin, cos := math.Sincos(-t.Rotation)
	return Point{
		X: x*cos - y*sin,
		Y: x*sin + y*cos,
	}
}
