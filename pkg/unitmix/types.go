package unitmix

import (
	"fmt"
	"math"
)

// AdvancedSettings carries the per-type placement behavior knobs.
type AdvancedSettings struct {
	// CornerEligible permits the type to occupy a corridor-end or outer-corner slot.
	CornerEligible bool `yaml:"cornerEligible" json:"cornerEligible"`

	// LShapeEligible permits the type to be synthesized as an L-shape at building ends.
	LShapeEligible bool `yaml:"lShapeEligible" json:"lShapeEligible"`

	// SizeTolerance is the maximum permissible width deviation from ideal,
	// in percent (0-50).
	SizeTolerance float64 `yaml:"sizeTolerance" json:"sizeTolerance"`

	// MinWidth and MaxWidth are hard width bounds in meters.
	MinWidth float64 `yaml:"minWidth" json:"minWidth"`
	MaxWidth float64 `yaml:"maxWidth" json:"maxWidth"`

	// PlacementPriority is the tiebreak score (1-100); higher is placed first
	// into premium slots.
	PlacementPriority int `yaml:"placementPriority" json:"placementPriority"`

	// ExpansionWeight is the relative share of stretch this type absorbs when a
	// segment must grow. CompressionWeight is the shrink counterpart.
	ExpansionWeight   float64 `yaml:"expansionWeight" json:"expansionWeight"`
	CompressionWeight float64 `yaml:"compressionWeight" json:"compressionWeight"`
}

// TypeSpec describes one unit type in the mix.
type TypeSpec struct {
	// Key is the stable string identifier.
	Key string `yaml:"key" json:"key"`

	// DisplayName is the human-facing label.
	DisplayName string `yaml:"displayName" json:"displayName"`

	// TargetArea is the target unit area in square meters.
	TargetArea float64 `yaml:"targetArea" json:"targetArea"`

	// TargetPercentage is the desired share of the mix (0-100).
	TargetPercentage float64 `yaml:"targetPercentage" json:"targetPercentage"`

	// Color is the presentation fill color (hex), passed through to exporters.
	Color string `yaml:"color,omitempty" json:"color,omitempty"`

	// Advanced holds the placement behavior settings.
	Advanced AdvancedSettings `yaml:"advanced" json:"advanced"`
}

// Tolerance returns the size tolerance as a fraction (0-0.5).
func (s *TypeSpec) Tolerance() float64 {
	return s.Advanced.SizeTolerance / 100
}

// IdealWidth returns the frontage width that yields TargetArea at the given
// rentable band depth.
func (s *TypeSpec) IdealWidth(depth float64) float64 {
	return s.TargetArea / depth
}

// percentageSumTolerance bounds how far the mix total may drift from 100
// before a warning is raised.
const percentageSumTolerance = 1e-6

// Validate checks the mix for hard input errors. It returns non-fatal
// observations (percentages not summing to 100) as warnings.
func Validate(types []TypeSpec) (warnings []string, err error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("no unit types configured")
	}

	seen := make(map[string]bool, len(types))
	sum := 0.0
	active := 0
	for i := range types {
		t := &types[i]
		if t.Key == "" {
			return nil, fmt.Errorf("unit type %d has an empty key", i)
		}
		if seen[t.Key] {
			return nil, fmt.Errorf("duplicate unit type key %q", t.Key)
		}
		seen[t.Key] = true

		if t.TargetPercentage < 0 {
			return nil, fmt.Errorf("unit type %q: negative percentage %.2f", t.Key, t.TargetPercentage)
		}
		if t.TargetArea <= 0 {
			return nil, fmt.Errorf("unit type %q: area must be positive, got %.2f", t.Key, t.TargetArea)
		}
		if t.Advanced.MinWidth > t.Advanced.MaxWidth {
			return nil, fmt.Errorf("unit type %q: minWidth %.2f exceeds maxWidth %.2f",
				t.Key, t.Advanced.MinWidth, t.Advanced.MaxWidth)
		}
		if t.Advanced.MaxWidth <= 0 {
			return nil, fmt.Errorf("unit type %q: maxWidth must be positive", t.Key)
		}
		if t.Advanced.SizeTolerance < 0 || t.Advanced.SizeTolerance > 50 {
			return nil, fmt.Errorf("unit type %q: sizeTolerance %.2f outside 0-50",
				t.Key, t.Advanced.SizeTolerance)
		}
		if t.Advanced.ExpansionWeight < 0 || t.Advanced.CompressionWeight < 0 {
			return nil, fmt.Errorf("unit type %q: flexibility weights must be non-negative", t.Key)
		}
		sum += t.TargetPercentage
		if t.TargetPercentage > 0 {
			active++
		}
	}

	if active == 0 {
		return nil, fmt.Errorf("no unit type has a positive percentage")
	}
	if math.Abs(sum-100) > percentageSumTolerance {
		warnings = append(warnings,
			fmt.Sprintf("unit mix percentages sum to %.2f, not 100; proceeding proportionally", sum))
	}
	return warnings, nil
}

// Shares returns per-type fractional shares normalized to sum to 1.
// Types with zero percentage get a zero share. The slice is index-aligned
// with the input.
func Shares(types []TypeSpec) []float64 {
	total := 0.0
	for i := range types {
		total += types[i].TargetPercentage
	}
	shares := make([]float64, len(types))
	if total <= 0 {
		return shares
	}
	for i := range types {
		shares[i] = types[i].TargetPercentage / total
	}
	return shares
}

// MinRentableDepth derives the minimum band depth from the smallest configured
// unit's area over its maximum width.
func MinRentableDepth(types []TypeSpec) float64 {
	depth := math.Inf(1)
	for i := range types {
		t := &types[i]
		if t.TargetPercentage <= 0 {
			continue
		}
		d := t.TargetArea / t.Advanced.MaxWidth
		if d < depth {
			depth = d
		}
	}
	if math.IsInf(depth, 1) {
		return 0
	}
	return depth
}

// SmallestMinWidth returns the smallest hard minimum width among active types.
// Segments shorter than this cannot host any unit.
func SmallestMinWidth(types []TypeSpec) float64 {
	w := math.Inf(1)
	for i := range types {
		t := &types[i]
		if t.TargetPercentage <= 0 {
			continue
		}
		if t.Advanced.MinWidth < w {
			w = t.Advanced.MinWidth
		}
	}
	if math.IsInf(w, 1) {
		return 0
	}
	return w
}

// ByKey returns an index from type key to position in the slice.
func ByKey(types []TypeSpec) map[string]int {
	idx := make(map[string]int, len(types))
	for i := range types {
		idx[types[i].Key] = i
	}
	return idx
}
