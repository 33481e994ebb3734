package synthesis

import (
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
)

// UtilityKey is the type key carried by utility space blocks: sub-minimum
// segments and corner strips no unit could claim.
const UtilityKey = "utility"

// Unit is a placed apartment or utility block.
type Unit struct {
	// TypeKey identifies the unit type, or UtilityKey for utility spaces.
	TypeKey string

	Side corridor.Side

	// Region is the unit footprint: a rectangle, or a polygon for L-shapes.
	Region geometry.Region

	// Width and Depth describe the rectangular body of the unit along and
	// across the corridor. For L-shapes they exclude the tab.
	Width float64
	Depth float64

	// Area is the region area in square meters, tab included.
	Area float64

	// IsCorner marks units seated on a corridor-end slot.
	IsCorner bool

	// IsEnd marks units whose segment touches a building end on their side.
	IsEnd bool

	IsLShaped bool
	IsUtility bool
}

// Rect returns the rectangular body of the unit.
func (u *Unit) Rect() geometry.Rect {
	if r, ok := u.Region.Rect(); ok {
		return r
	}
	return geometry.Rect{
		X:     u.Region.Bounds().X,
		Y:     u.bodyY(),
		Width: u.Width,
		Depth: u.Depth,
	}
}

func (u *Unit) bodyY() float64 {
	b := u.Region.Bounds()
	if u.Side == corridor.SideNorth {
		return b.MaxY() - u.Depth
	}
	return b.Y
}

// Pattern selects how unit widths are arranged within a segment.
type Pattern string

const (
	// PatternDescending places the widest unit first from the left.
	PatternDescending Pattern = "descending"

	// PatternAscending places the narrowest unit first from the left.
	PatternAscending Pattern = "ascending"

	// PatternValley places the widest units at the segment edges.
	PatternValley Pattern = "valley"

	// PatternAlternating interleaves wide and narrow units.
	PatternAlternating Pattern = "alternating"
)
