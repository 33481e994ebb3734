package synthesis

import (
	"fmt"
	"sort"

	"github.com/dgameiro/floorgen/pkg/segment"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// Arrange orders a segment's units according to the strategy pattern, then
// enforces corner eligibility on corridor-end slots by swapping in the
// nearest eligible unit. Returns the permuted keys and widths plus warnings
// for slots no eligible type could fill.
func Arrange(seg segment.Segment, keys []string, widths []float64,
	types []unitmix.TypeSpec, index map[string]int, pattern Pattern) ([]string, []float64, []string) {

	n := len(keys)
	if n == 0 {
		return keys, widths, nil
	}

	// Sort widest-first with a stable key tiebreak so every pattern starts
	// from the same total order.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if widths[order[a]] != widths[order[b]] {
			return widths[order[a]] > widths[order[b]]
		}
		return keys[order[a]] < keys[order[b]]
	})

	slots := applyPattern(order, pattern)

	outKeys := make([]string, n)
	outWidths := make([]float64, n)
	for pos, idx := range slots {
		outKeys[pos] = keys[idx]
		outWidths[pos] = widths[idx]
	}

	var warnings []string
	if seg.LeftIsEnd {
		warnings = append(warnings, fixCorner(seg, outKeys, outWidths, types, index, 0)...)
	}
	if seg.RightIsEnd {
		warnings = append(warnings, fixCorner(seg, outKeys, outWidths, types, index, n-1)...)
	}
	return outKeys, outWidths, warnings
}

// applyPattern maps the widest-first order onto slot positions.
func applyPattern(sorted []int, pattern Pattern) []int {
	n := len(sorted)
	slots := make([]int, 0, n)
	switch pattern {
	case PatternAscending:
		for i := n - 1; i >= 0; i-- {
			slots = append(slots, sorted[i])
		}
	case PatternValley:
		// Widest at the edges, narrowest in the middle.
		left := make([]int, 0, n)
		right := make([]int, 0, n)
		for i, idx := range sorted {
			if i%2 == 0 {
				left = append(left, idx)
			} else {
				right = append(right, idx)
			}
		}
		slots = append(slots, left...)
		for i := len(right) - 1; i >= 0; i-- {
			slots = append(slots, right[i])
		}
	case PatternAlternating:
		lo, hi := 0, n-1
		for lo <= hi {
			slots = append(slots, sorted[lo])
			if lo != hi {
				slots = append(slots, sorted[hi])
			}
			lo++
			hi--
		}
	default: // PatternDescending
		slots = append(slots, sorted...)
	}
	return slots
}

// fixCorner ensures the unit at a corridor-end slot is corner eligible,
// swapping with the nearest eligible unit in the sequence.
func fixCorner(seg segment.Segment, keys []string, widths []float64,
	types []unitmix.TypeSpec, index map[string]int, slot int) []string {

	if types[index[keys[slot]]].Advanced.CornerEligible {
		return nil
	}
	for dist := 1; dist < len(keys); dist++ {
		for _, cand := range []int{slot - dist, slot + dist} {
			if cand < 0 || cand >= len(keys) {
				continue
			}
			if types[index[keys[cand]]].Advanced.CornerEligible {
				keys[slot], keys[cand] = keys[cand], keys[slot]
				widths[slot], widths[cand] = widths[cand], widths[slot]
				return nil
			}
		}
	}
	return []string{fmt.Sprintf(
		"segment [%.1f,%.1f] %s: no corner-eligible type for the end slot, %q remains",
		seg.StartX, seg.EndX, seg.Side, keys[slot])}
}
