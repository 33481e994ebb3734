package synthesis

import (
	"math"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// ApplyLShapes extends eligible end units into L-shapes and closes the gaps
// cores leave short of the facade.
//
// At each building end, the corridor is trimmed by half the end unit's width
// and the unit wraps the vacated corridor strip as a rectangular tab. When
// both sides' end units are eligible the tab goes to the higher placement
// priority, tiebreak north. At cores that stop short of the facade, the
// left neighbor (then the right) extends over the core top; with no eligible
// neighbor the strip becomes a utility block.
//
// Returns the trimmed corridor rectangle and any utility strips added.
func ApplyLShapes(units []*Unit, plan corridor.Plan, placed []cores.Core,
	types []unitmix.TypeSpec, index map[string]int,
	corridorRect geometry.Rect) (geometry.Rect, []*Unit) {

	half := plan.Length / 2

	if u := pickEndUnit(units, types, index, -half); u != nil {
		tab := u.Width / 2
		makeEndTab(u, plan, tab, true)
		corridorRect.X += tab
		corridorRect.Width -= tab
	}
	if u := pickEndUnit(units, types, index, half); u != nil {
		tab := u.Width / 2
		makeEndTab(u, plan, tab, false)
		corridorRect.Width -= tab
	}

	var strips []*Unit
	for _, c := range placed {
		strip, ok := facadeStrip(c, plan)
		if !ok {
			continue
		}
		if extendOverCore(units, types, index, c, strip) {
			continue
		}
		strips = append(strips, utilityStrip(strip, c.Side))
	}
	return corridorRect, strips
}

// pickEndUnit selects the unit receiving the end tab at the given building
// end, or nil when neither side's end unit is L-shape eligible.
func pickEndUnit(units []*Unit, types []unitmix.TypeSpec, index map[string]int, endX float64) *Unit {
	var best *Unit
	bestPriority := 0
	for _, u := range units {
		if u.IsUtility || u.IsLShaped {
			continue
		}
		r, ok := u.Region.Rect()
		if !ok {
			continue
		}
		atEnd := math.Abs(r.X-endX) <= geometry.Epsilon ||
			math.Abs(r.MaxX()-endX) <= geometry.Epsilon
		if !atEnd || !u.IsCorner {
			continue
		}
		t := &types[index[u.TypeKey]]
		if !t.Advanced.LShapeEligible {
			continue
		}
		p := t.Advanced.PlacementPriority
		if best == nil || p > bestPriority ||
			(p == bestPriority && u.Side == corridor.SideNorth && best.Side == corridor.SideSouth) {
			best = u
			bestPriority = p
		}
	}
	return best
}

// makeEndTab rewrites the unit region as an L wrapping the corridor end.
func makeEndTab(u *Unit, plan corridor.Plan, tab float64, leftEnd bool) {
	r, _ := u.Region.Rect()
	cw2 := plan.Corridor.Depth / 2
	half := plan.Length / 2

	var vs []geometry.Point
	switch {
	case u.Side == corridor.SideNorth && leftEnd:
		vs = []geometry.Point{
			{X: -half, Y: -cw2}, {X: -half + tab, Y: -cw2}, {X: -half + tab, Y: cw2},
			{X: r.MaxX(), Y: cw2}, {X: r.MaxX(), Y: plan.North.YMax}, {X: -half, Y: plan.North.YMax},
		}
	case u.Side == corridor.SideNorth && !leftEnd:
		vs = []geometry.Point{
			{X: half - tab, Y: -cw2}, {X: half, Y: -cw2}, {X: half, Y: plan.North.YMax},
			{X: r.X, Y: plan.North.YMax}, {X: r.X, Y: cw2}, {X: half - tab, Y: cw2},
		}
	case u.Side == corridor.SideSouth && leftEnd:
		vs = []geometry.Point{
			{X: -half, Y: plan.South.YMin}, {X: r.MaxX(), Y: plan.South.YMin},
			{X: r.MaxX(), Y: -cw2}, {X: -half + tab, Y: -cw2},
			{X: -half + tab, Y: cw2}, {X: -half, Y: cw2},
		}
	default:
		vs = []geometry.Point{
			{X: r.X, Y: plan.South.YMin}, {X: half, Y: plan.South.YMin},
			{X: half, Y: cw2}, {X: half - tab, Y: cw2},
			{X: half - tab, Y: -cw2}, {X: r.X, Y: -cw2},
		}
	}

	u.Region = geometry.NewPolygonRegion(vs)
	u.Area = u.Region.Area()
	u.IsLShaped = true
}

// facadeStrip returns the rectangle between a core and the facade, if any.
func facadeStrip(c cores.Core, plan corridor.Plan) (geometry.Rect, bool) {
	if c.Side == corridor.SideNorth {
		depth := plan.North.YMax - c.Rect.MaxY()
		if depth <= geometry.Epsilon {
			return geometry.Rect{}, false
		}
		return geometry.Rect{X: c.Rect.X, Y: c.Rect.MaxY(), Width: c.Rect.Width, Depth: depth}, true
	}
	depth := c.Rect.Y - plan.South.YMin
	if depth <= geometry.Epsilon {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: c.Rect.X, Y: plan.South.YMin, Width: c.Rect.Width, Depth: depth}, true
}

// extendOverCore grows the core's neighbor across the facade strip. Left
// neighbor first, then right; returns false when neither is eligible.
func extendOverCore(units []*Unit, types []unitmix.TypeSpec, index map[string]int,
	c cores.Core, strip geometry.Rect) bool {

	if u := findNeighbor(units, c, true); u != nil && eligible(u, types, index) {
		makeCornerTab(u, c, strip, true)
		return true
	}
	if u := findNeighbor(units, c, false); u != nil && eligible(u, types, index) {
		makeCornerTab(u, c, strip, false)
		return true
	}
	return false
}

func eligible(u *Unit, types []unitmix.TypeSpec, index map[string]int) bool {
	return types[index[u.TypeKey]].Advanced.LShapeEligible
}

// findNeighbor locates the rectangular unit abutting the core on one side.
func findNeighbor(units []*Unit, c cores.Core, left bool) *Unit {
	for _, u := range units {
		if u.Side != c.Side || u.IsUtility || u.IsLShaped {
			continue
		}
		r, ok := u.Region.Rect()
		if !ok {
			continue
		}
		if left && math.Abs(r.MaxX()-c.Rect.X) <= geometry.Epsilon {
			return u
		}
		if !left && math.Abs(r.X-c.Rect.MaxX()) <= geometry.Epsilon {
			return u
		}
	}
	return nil
}

// makeCornerTab rewrites the neighbor as an L covering the facade strip.
func makeCornerTab(u *Unit, c cores.Core, strip geometry.Rect, left bool) {
	r, _ := u.Region.Rect()

	var vs []geometry.Point
	if u.Side == corridor.SideNorth {
		if left {
			vs = []geometry.Point{
				{X: r.X, Y: r.Y}, {X: r.MaxX(), Y: r.Y},
				{X: r.MaxX(), Y: strip.Y}, {X: strip.MaxX(), Y: strip.Y},
				{X: strip.MaxX(), Y: r.MaxY()}, {X: r.X, Y: r.MaxY()},
			}
		} else {
			vs = []geometry.Point{
				{X: r.X, Y: r.Y}, {X: r.MaxX(), Y: r.Y},
				{X: r.MaxX(), Y: r.MaxY()}, {X: strip.X, Y: r.MaxY()},
				{X: strip.X, Y: strip.Y}, {X: r.X, Y: strip.Y},
			}
		}
	} else {
		if left {
			vs = []geometry.Point{
				{X: r.X, Y: r.Y}, {X: strip.MaxX(), Y: r.Y},
				{X: strip.MaxX(), Y: strip.MaxY()}, {X: r.MaxX(), Y: strip.MaxY()},
				{X: r.MaxX(), Y: r.MaxY()}, {X: r.X, Y: r.MaxY()},
			}
		} else {
			vs = []geometry.Point{
				{X: strip.X, Y: r.Y}, {X: r.MaxX(), Y: r.Y},
				{X: r.MaxX(), Y: r.MaxY()}, {X: r.X, Y: r.MaxY()},
				{X: r.X, Y: strip.MaxY()}, {X: strip.X, Y: strip.MaxY()},
			}
		}
	}

	u.Region = geometry.NewPolygonRegion(vs)
	u.Area = u.Region.Area()
	u.IsLShaped = true
}
