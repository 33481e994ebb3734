package floorplate

import (
	"fmt"
	"math"

	"github.com/dgameiro/floorgen/pkg/distribute"
	"github.com/dgameiro/floorgen/pkg/synthesis"
)

// Strategy selects one of the three generation variants.
type Strategy string

const (
	// StrategyBalanced trades mix fidelity against placement priority and
	// uses the valley pattern (wide units at segment edges).
	StrategyBalanced Strategy = "balanced"

	// StrategyMixOptimized chases the target mix exactly and relaxes
	// alignment by 20% in favor of exact sizing.
	StrategyMixOptimized Strategy = "mix-optimized"

	// StrategyEfficiencyOptimized prefers wide units to cut wall count and
	// forces full alignment to maximize wall sharing.
	StrategyEfficiencyOptimized Strategy = "efficiency-optimized"
)

// AllStrategies lists the variants in canonical order.
var AllStrategies = []Strategy{
	StrategyBalanced,
	StrategyMixOptimized,
	StrategyEfficiencyOptimized,
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyBalanced, StrategyMixOptimized, StrategyEfficiencyOptimized:
		return true
	}
	return false
}

// ParseStrategy maps a config string (long or short form) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "balanced":
		return StrategyBalanced, nil
	case "mix-optimized", "mix":
		return StrategyMixOptimized, nil
	case "efficiency-optimized", "efficiency":
		return StrategyEfficiencyOptimized, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", name)
	}
}

// profile bundles the knobs a strategy turns: the slot scoring function, the
// within-segment ordering pattern, and the alignment strictness adjustment.
type profile struct {
	scorer     distribute.Scorer
	pattern    synthesis.Pattern
	strictness func(base float64) float64
}

func (s Strategy) profile() profile {
	switch s {
	case StrategyMixOptimized:
		return profile{
			scorer:     func(ctx distribute.ScoreContext) float64 { return -math.Abs(ctx.Deviation) },
			pattern:    synthesis.PatternDescending,
			strictness: func(base float64) float64 { return base * 0.8 },
		}
	case StrategyEfficiencyOptimized:
		return profile{
			scorer:     func(ctx distribute.ScoreContext) float64 { return ctx.IdealWidth },
			pattern:    synthesis.PatternDescending,
			strictness: func(float64) float64 { return 1.0 },
		}
	default: // StrategyBalanced
		return profile{
			scorer: func(ctx distribute.ScoreContext) float64 {
				return float64(ctx.Type.Advanced.PlacementPriority) * (1 - math.Abs(ctx.Deviation))
			},
			pattern:    synthesis.PatternValley,
			strictness: func(base float64) float64 { return base },
		}
	}
}
