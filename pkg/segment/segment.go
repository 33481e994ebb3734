package segment

import (
	"sort"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
)

// Segment is a contiguous span of one corridor side between two obstacles.
type Segment struct {
	Side   corridor.Side
	StartX float64
	EndX   float64

	// AvailableDepth is the rentable band depth behind the span.
	AvailableDepth float64

	// Boundary flags. An end flag means the span abuts the building end; a
	// core flag means it abuts a core on this side.
	LeftIsEnd   bool
	RightIsEnd  bool
	LeftIsCore  bool
	RightIsCore bool

	// Utility marks spans too short for any configured unit; they host
	// utility spaces instead.
	Utility bool
}

// Length returns the span length.
func (s Segment) Length() float64 { return s.EndX - s.StartX }

// EndCount returns how many of the span's boundaries are building ends.
func (s Segment) EndCount() int {
	n := 0
	if s.LeftIsEnd {
		n++
	}
	if s.RightIsEnd {
		n++
	}
	return n
}

// Build produces the ordered segment list for both sides. minUnitWidth is the
// smallest configured unit minimum width; shorter spans are marked utility.
// Spans of zero length (cores flush against an end) are dropped.
func Build(plan corridor.Plan, placed []cores.Core, minUnitWidth float64) []Segment {
	var out []Segment
	for _, side := range []corridor.Side{corridor.SideNorth, corridor.SideSouth} {
		out = append(out, buildSide(plan, placed, side, minUnitWidth)...)
	}
	return out
}

func buildSide(plan corridor.Plan, placed []cores.Core, side corridor.Side, minUnitWidth float64) []Segment {
	half := plan.Length / 2
	band := plan.Band(side)

	var obstacles []geometry.Rect
	for _, c := range placed {
		if c.Side == side {
			obstacles = append(obstacles, c.Rect)
		}
	}
	sort.SliceStable(obstacles, func(i, j int) bool { return obstacles[i].X < obstacles[j].X })

	var segs []Segment
	cursor := -half
	leftIsEnd := true
	for _, ob := range obstacles {
		segs = appendSpan(segs, side, band, cursor, ob.X, leftIsEnd, false, minUnitWidth)
		cursor = ob.MaxX()
		leftIsEnd = false
	}
	segs = appendSpan(segs, side, band, cursor, half, leftIsEnd, true, minUnitWidth)
	return segs
}

func appendSpan(segs []Segment, side corridor.Side, band corridor.Band,
	start, end float64, leftIsEnd, rightIsEnd bool, minUnitWidth float64) []Segment {

	if end-start <= geometry.Epsilon {
		return segs
	}
	s := Segment{
		Side:           side,
		StartX:         start,
		EndX:           end,
		AvailableDepth: band.Depth(),
		LeftIsEnd:      leftIsEnd,
		RightIsEnd:     rightIsEnd,
		LeftIsCore:     !leftIsEnd,
		RightIsCore:    !rightIsEnd,
	}
	if s.Length() < minUnitWidth {
		s.Utility = true
	}
	return append(segs, s)
}

// TotalFrontage sums the length of non-utility segments over both sides; this
// is the frontage the global allocator plans against.
func TotalFrontage(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		if !s.Utility {
			total += s.Length()
		}
	}
	return total
}
