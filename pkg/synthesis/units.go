package synthesis

import (
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/segment"
)

// BuildSegmentUnits lays the ordered, sized units into the segment's band as
// rectangles, left to right. The widths are assumed to sum to the span; any
// synthesis residual was already reported by SolveWidths.
func BuildSegmentUnits(seg segment.Segment, band corridor.Band,
	keys []string, widths []float64) []*Unit {

	units := make([]*Unit, 0, len(keys))
	cursor := seg.StartX
	for i, k := range keys {
		r := geometry.Rect{
			X:     cursor,
			Y:     band.YMin,
			Width: widths[i],
			Depth: band.Depth(),
		}
		u := &Unit{
			TypeKey: k,
			Side:    seg.Side,
			Region:  geometry.NewRectRegion(r),
			Width:   widths[i],
			Depth:   band.Depth(),
			Area:    r.Area(),
			IsEnd:   seg.LeftIsEnd || seg.RightIsEnd,
		}
		if (i == 0 && seg.LeftIsEnd) || (i == len(keys)-1 && seg.RightIsEnd) {
			u.IsCorner = true
		}
		units = append(units, u)
		cursor += widths[i]
	}
	return units
}

// BuildUtility covers a span no unit could claim with a utility block.
func BuildUtility(seg segment.Segment, band corridor.Band) *Unit {
	r := geometry.Rect{
		X:     seg.StartX,
		Y:     band.YMin,
		Width: seg.Length(),
		Depth: band.Depth(),
	}
	return &Unit{
		TypeKey:   UtilityKey,
		Side:      seg.Side,
		Region:    geometry.NewRectRegion(r),
		Width:     r.Width,
		Depth:     r.Depth,
		Area:      r.Area(),
		IsUtility: true,
	}
}

// utilityStrip covers a leftover rectangle (a core-top strip) with a utility
// block on the given side.
func utilityStrip(r geometry.Rect, side corridor.Side) *Unit {
	return &Unit{
		TypeKey:   UtilityKey,
		Side:      side,
		Region:    geometry.NewRectRegion(r),
		Width:     r.Width,
		Depth:     r.Depth,
		Area:      r.Area(),
		IsUtility: true,
	}
}
