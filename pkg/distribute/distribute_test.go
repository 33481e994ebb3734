package distribute

import (
	"math"
	"testing"

	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/segment"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

func mixSpec(key string, area, pct float64, tol float64, minW, maxW float64, priority int) unitmix.TypeSpec {
	return unitmix.TypeSpec{
		Key:              key,
		TargetArea:       area,
		TargetPercentage: pct,
		Advanced: unitmix.AdvancedSettings{
			CornerEligible:    true,
			SizeTolerance:     tol,
			MinWidth:          minW,
			MaxWidth:          maxW,
			PlacementPriority: priority,
			ExpansionWeight:   1,
			CompressionWeight: 1,
		},
	}
}

func testTypes() []unitmix.TypeSpec {
	return []unitmix.TypeSpec{
		mixSpec("studio", 54.8, 20, 15, 4.5, 9.0, 40),
		mixSpec("one-bed", 82.2, 40, 15, 6.0, 12.0, 60),
		mixSpec("two-bed", 109.6, 30, 15, 8.0, 15.0, 80),
		mixSpec("three-bed", 137.0, 10, 15, 10.0, 18.0, 90),
	}
}

func testSegments() []segment.Segment {
	depth := 9.145
	return []segment.Segment{
		{Side: corridor.SideNorth, StartX: -45.72, EndX: -34.14, AvailableDepth: depth, LeftIsEnd: true, RightIsCore: true},
		{Side: corridor.SideNorth, StartX: -30.48, EndX: 30.48, AvailableDepth: depth, LeftIsCore: true, RightIsCore: true},
		{Side: corridor.SideNorth, StartX: 34.14, EndX: 45.72, AvailableDepth: depth, LeftIsCore: true, RightIsEnd: true},
		{Side: corridor.SideSouth, StartX: -45.72, EndX: 45.72, AvailableDepth: depth, LeftIsEnd: true, RightIsEnd: true},
	}
}

// widthScorer prefers wide units, the efficiency strategy's shape.
func widthScorer(ctx ScoreContext) float64 { return ctx.IdealWidth }

// mixScorer chases the target mix.
func mixScorer(ctx ScoreContext) float64 { return -math.Abs(ctx.Deviation) }

func TestDistribute_AllUnitsPlaced(t *testing.T) {
	types := testTypes()
	segs := testSegments()
	alloc := unitmix.Allocate(segment.TotalFrontage(segs), 9.145, types)
	if alloc.Total == 0 {
		t.Fatal("allocation produced no units")
	}

	res := Distribute(segs, alloc, types, mixScorer)
	if len(res.Leftover) != 0 {
		t.Errorf("leftover units = %v, want none", res.Leftover)
	}

	placed := make(map[string]int)
	total := 0
	for _, a := range res.Assignments {
		for _, k := range a.Keys {
			placed[k]++
			total++
		}
	}
	if total != alloc.Total {
		t.Errorf("placed %d units, allocation was %d", total, alloc.Total)
	}
	for k, want := range alloc.Counts {
		if placed[k] != want {
			t.Errorf("type %s: placed %d, allocated %d", k, placed[k], want)
		}
	}
}

func TestDistribute_CapacityRespected(t *testing.T) {
	types := testTypes()
	segs := testSegments()
	alloc := unitmix.Allocate(segment.TotalFrontage(segs), 9.145, types)
	res := Distribute(segs, alloc, types, widthScorer)

	index := unitmix.ByKey(types)
	for _, a := range res.Assignments {
		if len(a.Keys) == 0 {
			continue
		}
		// The assigned minimum widths can never exceed the span.
		minSum := 0.0
		for _, k := range a.Keys {
			minSum += types[index[k]].Advanced.MinWidth
		}
		if minSum > a.Segment.Length()+1e-9 {
			t.Errorf("segment [%.1f,%.1f]: min widths %.2f exceed span %.2f",
				a.Segment.StartX, a.Segment.EndX, minSum, a.Segment.Length())
		}
	}
}

func TestDistribute_UtilitySegmentsGetNothing(t *testing.T) {
	types := testTypes()
	segs := testSegments()
	segs[0].Utility = true
	alloc := unitmix.Allocate(segment.TotalFrontage(segs), 9.145, types)
	res := Distribute(segs, alloc, types, mixScorer)
	if len(res.Assignments[0].Keys) != 0 {
		t.Errorf("utility segment received units: %v", res.Assignments[0].Keys)
	}
}

func TestDistribute_PremiumSegmentsFirst(t *testing.T) {
	segs := testSegments()
	order := passOneOrder(segs)
	// The south end-to-end span must be filled first (two building ends).
	if segs[order[0]].EndCount() != 2 {
		t.Errorf("first segment has EndCount %d, want 2", segs[order[0]].EndCount())
	}
	// Interior span last.
	last := segs[order[len(order)-1]]
	if last.EndCount() != 0 {
		t.Errorf("last segment has EndCount %d, want 0", last.EndCount())
	}
}

func TestDistribute_OverflowAvoidsRigidSegments(t *testing.T) {
	// One flexible and one rigid type; the overflow unit must land in the
	// segment without the rigid occupant.
	types := []unitmix.TypeSpec{
		mixSpec("flex", 60, 50, 20, 4.0, 12.0, 50),
		mixSpec("rigid", 60, 50, 0, 6.56, 6.56, 50),
	}
	depth := 9.145
	segs := []segment.Segment{
		{Side: corridor.SideNorth, StartX: 0, EndX: 14, AvailableDepth: depth, LeftIsEnd: true, RightIsCore: true},
		{Side: corridor.SideSouth, StartX: 0, EndX: 14, AvailableDepth: depth, LeftIsEnd: true, RightIsCore: true},
	}

	// Hand-build assignments: segment 0 holds a rigid unit, segment 1 a flex.
	assignments := []Assignment{
		{Segment: segs[0], Keys: []string{"rigid"}},
		{Segment: segs[1], Keys: []string{"flex"}},
	}
	got := bestOverflowSegment(assignments, types, unitmix.ByKey(types), &types[0])
	if got != 1 {
		t.Errorf("overflow chose segment %d, want the rigid-free segment 1", got)
	}
}

func TestDistribute_Deterministic(t *testing.T) {
	types := testTypes()
	segs := testSegments()
	alloc := unitmix.Allocate(segment.TotalFrontage(segs), 9.145, types)

	first := Distribute(segs, alloc, types, mixScorer)
	for run := 0; run < 5; run++ {
		again := Distribute(segs, alloc, types, mixScorer)
		if len(again.Assignments) != len(first.Assignments) {
			t.Fatal("assignment count differs between runs")
		}
		for i := range first.Assignments {
			a, b := first.Assignments[i], again.Assignments[i]
			if len(a.Keys) != len(b.Keys) {
				t.Fatalf("segment %d key count differs", i)
			}
			for j := range a.Keys {
				if a.Keys[j] != b.Keys[j] {
					t.Fatalf("segment %d key %d differs: %s vs %s", i, j, a.Keys[j], b.Keys[j])
				}
			}
		}
	}
}
