package floorplate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/distribute"
	"github.com/dgameiro/floorgen/pkg/segment"
	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/unitmix"
	"github.com/dgameiro/floorgen/pkg/validation"
)

// Generate runs the full pipeline and returns one LayoutOption per requested
// strategy. Input errors (InvalidFootprintError, InvalidUnitMixError) and
// infeasibility (EgressInfeasibleError, DegenerateError) abort the call;
// degraded-but-usable conditions surface as warnings on each option.
func Generate(in Input) ([]LayoutOption, error) {
	if in.Footprint.Length <= 0 || in.Footprint.Depth <= 0 {
		return nil, &InvalidFootprintError{Reason: fmt.Sprintf(
			"dimensions must be positive, got %.2f x %.2f", in.Footprint.Length, in.Footprint.Depth)}
	}

	mixWarnings, err := unitmix.Validate(in.UnitTypes)
	if err != nil {
		return nil, &InvalidUnitMixError{Reason: err.Error()}
	}

	plan, err := corridor.Analyze(in.Footprint.Length, in.Footprint.Depth,
		in.Corridor.Width, unitmix.MinRentableDepth(in.UnitTypes))
	if err != nil {
		return nil, &InvalidFootprintError{Reason: err.Error()}
	}

	placement, err := cores.Place(plan, in.Cores, in.Egress)
	if err != nil {
		var inf *cores.InfeasibleError
		if errors.As(err, &inf) {
			return nil, &EgressInfeasibleError{Cause: inf}
		}
		return nil, &InvalidFootprintError{Reason: err.Error()}
	}

	segs := segment.Build(plan, placement.Cores, unitmix.SmallestMinWidth(in.UnitTypes))
	frontage := segment.TotalFrontage(segs)
	alloc := unitmix.Allocate(frontage, plan.BandDepth(), in.UnitTypes)
	if alloc.Total == 0 {
		return nil, &DegenerateError{Frontage: frontage, MeanWidth: alloc.MeanWidth}
	}

	strategies := in.Strategies
	if len(strategies) == 0 {
		strategies = AllStrategies
	}
	for _, s := range strategies {
		if !s.Valid() {
			return nil, fmt.Errorf("unknown strategy %q", s)
		}
	}

	options := make([]LayoutOption, 0, len(strategies))
	for _, s := range strategies {
		options = append(options, buildOption(in, s, plan, placement, segs, alloc, mixWarnings))
	}
	return options, nil
}

// buildOption runs distribution, synthesis, alignment, L-shapes and
// validation for one strategy.
func buildOption(in Input, strat Strategy, plan corridor.Plan,
	placement *cores.Placement, segs []segment.Segment,
	alloc unitmix.Allocation, baseWarnings []string) LayoutOption {

	prof := strat.profile()
	index := unitmix.ByKey(in.UnitTypes)

	warnings := append([]string(nil), baseWarnings...)

	dist := distribute.Distribute(segs, alloc, in.UnitTypes, prof.scorer)
	warnings = append(warnings, dist.Warnings...)

	var units []*synthesis.Unit
	for _, a := range dist.Assignments {
		band := plan.Band(a.Segment.Side)
		if a.Segment.Utility || len(a.Keys) == 0 {
			units = append(units, synthesis.BuildUtility(a.Segment, band))
			if !a.Segment.Utility {
				warnings = append(warnings, fmt.Sprintf(
					"segment [%.1f,%.1f] %s left unfilled, converted to utility",
					a.Segment.StartX, a.Segment.EndX, a.Segment.Side))
			}
			continue
		}

		widths, ww := synthesis.SolveWidths(a.Segment, a.Keys, in.UnitTypes, index)
		warnings = append(warnings, ww...)

		keys, widths, aw := synthesis.Arrange(a.Segment, a.Keys, widths, in.UnitTypes, index, prof.pattern)
		warnings = append(warnings, aw...)

		units = append(units, synthesis.BuildSegmentUnits(a.Segment, band, keys, widths)...)
	}

	master, slave := splitBySide(units, placement.CoreSide())
	strictness := prof.strictness(in.AlignmentStrictness)
	warnings = append(warnings, synthesis.Align(master, slave, in.UnitTypes, index, strictness)...)

	corridorRect, strips := synthesis.ApplyLShapes(units, plan, placement.Cores,
		in.UnitTypes, index, plan.Corridor)
	units = append(units, strips...)

	egress := validation.MeasureEgress(units, placement, in.Egress)
	if !egress.AllPass() {
		warnings = append(warnings, egressWarnings(egress)...)
	}

	stats, sw := validation.ComputeStats(in.Footprint.Length, in.Footprint.Depth,
		units, in.UnitTypes)
	warnings = append(warnings, sw...)

	coreCopy := make([]cores.Core, len(placement.Cores))
	copy(coreCopy, placement.Cores)

	return LayoutOption{
		Strategy:       strat,
		BuildingLength: in.Footprint.Length,
		BuildingDepth:  in.Footprint.Depth,
		FloorElevation: in.Footprint.FloorZ,
		Corridor:       corridorRect,
		Cores:          coreCopy,
		Units:          units,
		Stats:          stats,
		Egress:         egress,
		Transform:      in.Footprint.Transform(),
		Warnings:       warnings,
	}
}

// splitBySide separates units into the core-bearing (master) side and the
// opposite (slave) side, each sorted along the corridor.
func splitBySide(units []*synthesis.Unit, coreSide corridor.Side) (master, slave []*synthesis.Unit) {
	for _, u := range units {
		if u.Side == coreSide {
			master = append(master, u)
		} else {
			slave = append(slave, u)
		}
	}
	byX := func(us []*synthesis.Unit) {
		sort.SliceStable(us, func(i, j int) bool {
			return us[i].Region.Bounds().X < us[j].Region.Bounds().X
		})
	}
	byX(master)
	byX(slave)
	return master, slave
}

func egressWarnings(r validation.EgressReport) []string {
	var w []string
	if !r.DeadEnd.Pass {
		w = append(w, fmt.Sprintf("dead-end %.2fm exceeds limit %.2fm",
			r.DeadEnd.Measured, r.DeadEnd.Limit))
	}
	if !r.TravelDistance.Pass {
		w = append(w, fmt.Sprintf("travel distance %.2fm exceeds limit %.2fm",
			r.TravelDistance.Measured, r.TravelDistance.Limit))
	}
	if !r.CommonPath.Pass {
		w = append(w, fmt.Sprintf("common path %.2fm exceeds limit %.2fm",
			r.CommonPath.Measured, r.CommonPath.Limit))
	}
	return w
}
