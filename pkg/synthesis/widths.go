package synthesis

import (
	"fmt"
	"math"

	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/segment"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// SolveWidths assigns a concrete width to each unit in a segment. The gap
// between the summed ideal widths and the span is distributed across units in
// proportion to their expansion or compression weights, clamped to the hard
// width bounds; whatever a clamped unit cannot absorb is redistributed among
// the rest. A residual that survives with every unit clamped is reported as a
// warning.
//
// The returned widths are index-aligned with keys.
func SolveWidths(seg segment.Segment, keys []string,
	types []unitmix.TypeSpec, index map[string]int) ([]float64, []string) {

	if len(keys) == 0 {
		return nil, nil
	}

	widths := make([]float64, len(keys))
	idealSum := 0.0
	for i, k := range keys {
		widths[i] = types[index[k]].IdealWidth(seg.AvailableDepth)
		idealSum += widths[i]
	}

	diff := seg.Length() - idealSum
	var warnings []string

	clamped := make([]bool, len(keys))
	for pass := 0; pass < len(keys) && math.Abs(diff) > geometry.Epsilon; pass++ {
		weightSum := 0.0
		free := 0
		for i, k := range keys {
			if clamped[i] {
				continue
			}
			free++
			weightSum += flexWeight(&types[index[k]], diff)
		}
		if free == 0 {
			break
		}

		absorbed := 0.0
		for i, k := range keys {
			if clamped[i] {
				continue
			}
			t := &types[index[k]]
			share := diff / float64(free)
			if weightSum > 0 {
				share = diff * flexWeight(t, diff) / weightSum
			}
			target := widths[i] + share
			lo, hi := t.Advanced.MinWidth, t.Advanced.MaxWidth
			if target < lo {
				absorbed += lo - widths[i]
				widths[i] = lo
				clamped[i] = true
			} else if target > hi {
				absorbed += hi - widths[i]
				widths[i] = hi
				clamped[i] = true
			} else {
				absorbed += share
				widths[i] = target
			}
		}
		diff -= absorbed
	}

	if math.Abs(diff) > 1e-6 {
		warnings = append(warnings, fmt.Sprintf(
			"segment [%.1f,%.1f] %s: %.2fm of span could not be absorbed within width bounds",
			seg.StartX, seg.EndX, seg.Side, diff))
	}
	return widths, warnings
}

// flexWeight returns the weight a type contributes for the sign of the error.
func flexWeight(t *unitmix.TypeSpec, diff float64) float64 {
	if diff > 0 {
		return t.Advanced.ExpansionWeight
	}
	return t.Advanced.CompressionWeight
}
