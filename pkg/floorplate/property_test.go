package floorplate

import (
	"errors"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
)

// TestGenerate_PropertyInvariants drives the whole pipeline across generated
// footprints and, whenever generation succeeds, asserts that it is
// deterministic, that a travel check marked pass is within the limit, and that
// every option places at least one unit.
func TestGenerate_PropertyInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		length := rapid.Float64Range(60, 180).Draw(t, "length")
		depth := rapid.Float64Range(15, 26).Draw(t, "depth")
		corridorWidth := rapid.Float64Range(1.4, 2.2).Draw(t, "corridorWidth")
		strictness := rapid.Float64Range(0, 1).Draw(t, "strictness")
		side := corridor.SideNorth
		if rapid.Bool().Draw(t, "southSide") {
			side = corridor.SideSouth
		}

		in := Input{
			Footprint: Footprint{Length: length, Depth: depth},
			UnitTypes: standardMix(),
			Corridor:  CorridorSpec{Width: corridorWidth},
			Cores:     cores.Config{Width: 3.66, Depth: 7.62, Side: side},
			Egress: cores.EgressSpec{
				Sprinklered:         true,
				DeadEndLimit:        15.24,
				TravelDistanceLimit: 76.2,
				CommonPathLimit:     38.1,
			},
			AlignmentStrictness: strictness,
			Strategies:          []Strategy{StrategyBalanced, StrategyEfficiencyOptimized},
		}

		options, err := Generate(in)
		if err != nil {
			// Small or narrow footprints may legitimately refuse; the error
			// must be one of the declared kinds.
			var fp *InvalidFootprintError
			var eg *EgressInfeasibleError
			var dg *DegenerateError
			if !errors.As(err, &fp) && !errors.As(err, &eg) && !errors.As(err, &dg) {
				t.Fatalf("unexpected error kind: %v (%T)", err, err)
			}
			return
		}

		again, err := Generate(in)
		if err != nil {
			t.Fatalf("second run failed where first succeeded: %v", err)
		}
		if !reflect.DeepEqual(options, again) {
			t.Fatal("generation is not deterministic")
		}

		for _, opt := range options {
			// A travel check reported as passing never measures above the
			// limit.
			if opt.Egress.TravelDistance.Pass &&
				opt.Egress.TravelDistance.Measured > in.Egress.TravelDistanceLimit {
				t.Fatal("travel marked pass above the limit")
			}
			if opt.Stats.TotalUnits == 0 {
				t.Fatal("successful generation placed no units")
			}
		}
	})
}
