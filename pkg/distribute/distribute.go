package distribute

import (
	"fmt"
	"sort"

	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/segment"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// ScoreContext is what a strategy sees when ranking a candidate type for the
// next slot.
type ScoreContext struct {
	// Type is the candidate.
	Type *unitmix.TypeSpec

	// IdealWidth is the candidate's ideal frontage at the segment depth.
	IdealWidth float64

	// Deviation is the mix drift the candidate would carry after taking this
	// slot: (placed+1)/(total+1) minus its target share. Underrepresented
	// types score near zero, overrepresented ones drift positive.
	Deviation float64
}

// Scorer ranks a candidate; the highest score wins the slot. Ties fall back
// to descending placement priority, then lexicographic key.
type Scorer func(ctx ScoreContext) float64

// Assignment is the multiset of type keys chosen for one segment, in pick
// order. Ordering within the built segment is the synthesizer's concern.
type Assignment struct {
	Segment segment.Segment
	Keys    []string
}

// IdealSum returns the summed ideal widths of the assigned units.
func (a *Assignment) IdealSum(types []unitmix.TypeSpec, index map[string]int) float64 {
	sum := 0.0
	for _, k := range a.Keys {
		t := &types[index[k]]
		sum += t.IdealWidth(a.Segment.AvailableDepth)
	}
	return sum
}

// Result carries the per-segment assignments plus anything that could not be
// placed.
type Result struct {
	Assignments []Assignment

	// Leftover maps type key to counts that fit no segment even after the
	// overflow pass.
	Leftover map[string]int

	Warnings []string
}

// Distribute runs both passes. Segments arrive in geometric order and leave
// in the same order; utility segments receive no units.
func Distribute(segs []segment.Segment, alloc unitmix.Allocation,
	types []unitmix.TypeSpec, score Scorer) Result {

	index := unitmix.ByKey(types)
	shares := unitmix.Shares(types)

	remaining := make(map[string]int, len(types))
	for i := range types {
		remaining[types[i].Key] = alloc.Count(types[i].Key)
	}
	placed := make(map[string]int, len(types))
	placedTotal := 0

	assignments := make([]Assignment, len(segs))
	for i := range segs {
		assignments[i] = Assignment{Segment: segs[i]}
	}

	// Pass 1: capacity-aware fill in priority order. Segments bounded by two
	// building ends are the most premium, then single-end, then interior.
	order := passOneOrder(segs)
	for _, si := range order {
		seg := segs[si]
		if seg.Utility {
			continue
		}
		left := seg.Length()
		for {
			pick := pickBest(types, index, shares, remaining, placed, placedTotal,
				seg.AvailableDepth, left, score)
			if pick < 0 {
				break
			}
			t := &types[pick]
			assignments[si].Keys = append(assignments[si].Keys, t.Key)
			left -= t.IdealWidth(seg.AvailableDepth)
			remaining[t.Key]--
			placed[t.Key]++
			placedTotal++
		}
	}

	res := Result{Assignments: assignments, Leftover: make(map[string]int)}

	// Pass 2: overflow. Force leftover counts into the segments with the most
	// denial-adjusted slack, still respecting hard minimum widths.
	for i := range types {
		t := &types[i]
		for remaining[t.Key] > 0 {
			si := bestOverflowSegment(assignments, types, index, t)
			if si < 0 {
				break
			}
			assignments[si].Keys = append(assignments[si].Keys, t.Key)
			remaining[t.Key]--
		}
		if remaining[t.Key] > 0 {
			res.Leftover[t.Key] = remaining[t.Key]
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"could not place %d unit(s) of type %q in any segment", remaining[t.Key], t.Key))
		}
	}

	return res
}

// passOneOrder returns segment indices in fill order: by end count descending,
// then length descending, then north before south, then start position.
func passOneOrder(segs []segment.Segment) []int {
	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := segs[order[a]], segs[order[b]]
		if sa.EndCount() != sb.EndCount() {
			return sa.EndCount() > sb.EndCount()
		}
		if sa.Length() != sb.Length() {
			return sa.Length() > sb.Length()
		}
		if sa.Side != sb.Side {
			return sa.Side == corridor.SideNorth
		}
		return sa.StartX < sb.StartX
	})
	return order
}

// pickBest returns the index of the best-scoring type whose flexibility
// window fits the remaining span, or -1 when nothing fits.
func pickBest(types []unitmix.TypeSpec, index map[string]int, shares []float64,
	remaining, placed map[string]int, placedTotal int,
	depth, left float64, score Scorer) int {

	best := -1
	bestScore := 0.0
	for i := range types {
		t := &types[i]
		if remaining[t.Key] <= 0 {
			continue
		}
		ideal := t.IdealWidth(depth)
		// The unit may compress to (1-tol)·ideal, so it fits any span at
		// least that wide.
		if left < ideal*(1-t.Tolerance()) {
			continue
		}

		dev := float64(placed[t.Key]+1)/float64(placedTotal+1) - shares[i]
		s := score(ScoreContext{Type: t, IdealWidth: ideal, Deviation: dev})
		if best < 0 || s > bestScore || (s == bestScore && typeLess(t, &types[best])) {
			best = i
			bestScore = s
		}
	}
	return best
}

// typeLess is the deterministic tiebreak: higher priority first, then key.
func typeLess(a, b *unitmix.TypeSpec) bool {
	if a.Advanced.PlacementPriority != b.Advanced.PlacementPriority {
		return a.Advanced.PlacementPriority > b.Advanced.PlacementPriority
	}
	return a.Key < b.Key
}

// bestOverflowSegment finds the segment with the highest denial-adjusted
// slack that can still hold t at its hard minimum width. Returns -1 when no
// segment qualifies.
func bestOverflowSegment(assignments []Assignment, types []unitmix.TypeSpec,
	index map[string]int, t *unitmix.TypeSpec) int {

	best := -1
	bestScore := 0.0
	for si := range assignments {
		a := &assignments[si]
		if a.Segment.Utility {
			continue
		}
		minSum := t.Advanced.MinWidth
		denial := 0.0
		for _, k := range a.Keys {
			at := &types[index[k]]
			minSum += at.Advanced.MinWidth
			if tol := at.Tolerance(); tol > 0 {
				denial += 1 / tol
			} else {
				// Rigid types make a segment effectively closed to overflow.
				denial += 1e9
			}
		}
		if minSum > a.Segment.Length() {
			continue
		}
		slack := a.Segment.Length() - a.IdealSum(types, index)
		score := slack / (1 + denial)
		if best < 0 || score > bestScore {
			best = si
			bestScore = score
		}
	}
	return best
}
