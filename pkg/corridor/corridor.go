package corridor

import (
	"fmt"

	"github.com/dgameiro/floorgen/pkg/geometry"
)

// Side identifies one of the two rentable sides of the corridor.
type Side string

const (
	// SideNorth is the +Y side of the corridor.
	SideNorth Side = "north"

	// SideSouth is the -Y side of the corridor.
	SideSouth Side = "south"
)

// Opposite returns the other corridor side.
func (s Side) Opposite() Side {
	if s == SideNorth {
		return SideSouth
	}
	return SideNorth
}

// Valid reports whether s is a known side.
func (s Side) Valid() bool { return s == SideNorth || s == SideSouth }

// Band is the depth-parallel strip on one side of the corridor occupied by
// units. YMin/YMax bound it in the local frame.
type Band struct {
	Side Side
	YMin float64
	YMax float64
}

// Depth returns the band depth.
func (b Band) Depth() float64 { return b.YMax - b.YMin }

// Plan is the corridor layout for a footprint: the corridor rectangle centered
// on y=0 and the two rentable bands. The corridor initially spans the full
// building length; L-shaped end units may trim it later.
type Plan struct {
	Length   float64
	Depth    float64
	Corridor geometry.Rect
	North    Band
	South    Band
}

// Band returns the rentable band for a side.
func (p Plan) Band(s Side) Band {
	if s == SideNorth {
		return p.North
	}
	return p.South
}

// BandDepth returns the rentable depth of each band; both bands are equal by
// construction.
func (p Plan) BandDepth() float64 { return p.North.Depth() }

// Analyze validates footprint dimensions against the corridor width and the
// minimum rentable depth derived from the unit mix, then builds the corridor
// plan. minRentableDepth comes from the smallest configured unit's area over
// its maximum width.
func Analyze(length, depth, corridorWidth, minRentableDepth float64) (Plan, error) {
	if length <= 0 || depth <= 0 {
		return Plan{}, fmt.Errorf("footprint dimensions must be positive, got %.2f x %.2f", length, depth)
	}
	if corridorWidth <= 0 {
		return Plan{}, fmt.Errorf("corridor width must be positive, got %.2f", corridorWidth)
	}
	if depth < corridorWidth+2*minRentableDepth {
		return Plan{}, fmt.Errorf(
			"footprint depth %.2f too narrow for corridor %.2f plus two rentable bands of %.2f",
			depth, corridorWidth, minRentableDepth)
	}

	half := corridorWidth / 2
	return Plan{
		Length: length,
		Depth:  depth,
		Corridor: geometry.Rect{
			X:     -length / 2,
			Y:     -half,
			Width: length,
			Depth: corridorWidth,
		},
		North: Band{Side: SideNorth, YMin: half, YMax: depth / 2},
		South: Band{Side: SideSouth, YMin: -depth / 2, YMax: -half},
	}, nil
}
