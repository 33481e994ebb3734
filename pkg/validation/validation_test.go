package validation

import (
	"math"
	"testing"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

func fixturePlacement(t *testing.T) (corridor.Plan, *cores.Placement) {
	t.Helper()
	plan, err := corridor.Analyze(91.44, 19.81, 1.52, 6.0)
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	p, err := cores.Place(plan,
		cores.Config{Width: 3.66, Depth: 7.62, Side: corridor.SideNorth},
		cores.EgressSpec{Sprinklered: true, DeadEndLimit: 15.24, TravelDistanceLimit: 76.2, CommonPathLimit: 38.1})
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	return plan, p
}

func rectUnit(key string, side corridor.Side, x, y, w, d float64) *synthesis.Unit {
	r := geometry.Rect{X: x, Y: y, Width: w, Depth: d}
	return &synthesis.Unit{
		TypeKey: key,
		Side:    side,
		Region:  geometry.NewRectRegion(r),
		Width:   w,
		Depth:   d,
		Area:    r.Area(),
	}
}

func TestMeasureEgress_AllPassForCompactLayout(t *testing.T) {
	plan, p := fixturePlacement(t)
	eg := cores.EgressSpec{
		Sprinklered: true, DeadEndLimit: 15.24,
		TravelDistanceLimit: 76.2, CommonPathLimit: 38.1,
	}

	// Units clustered between the cores: well inside every limit.
	units := []*synthesis.Unit{
		rectUnit("a", corridor.SideNorth, -10, plan.North.YMin, 10, plan.BandDepth()),
		rectUnit("a", corridor.SideSouth, -10, plan.South.YMin, 10, plan.BandDepth()),
	}
	report := MeasureEgress(units, p, eg)
	if !report.AllPass() {
		t.Errorf("report must pass: %+v", report)
	}
	if report.TravelDistance.Measured <= 0 {
		t.Error("travel distance must be positive")
	}

	// Between the cores the choice distance is zero, so dead-end reduces to
	// the half unit depth.
	if math.Abs(report.DeadEnd.Measured-plan.BandDepth()/2) > 1e-9 {
		t.Errorf("dead-end = %v, want half depth %v", report.DeadEnd.Measured, plan.BandDepth()/2)
	}
}

func TestMeasureEgress_TravelFailsBeyondLimit(t *testing.T) {
	plan, p := fixturePlacement(t)
	eg := cores.EgressSpec{
		Sprinklered: true, DeadEndLimit: 15.24,
		TravelDistanceLimit: 20.0, // artificially tight
		CommonPathLimit:     38.1,
	}
	units := []*synthesis.Unit{
		rectUnit("a", corridor.SideSouth, -45.72, plan.South.YMin, 10, plan.BandDepth()),
	}
	report := MeasureEgress(units, p, eg)
	if report.TravelDistance.Pass {
		t.Errorf("travel %.2f must fail a 20m limit", report.TravelDistance.Measured)
	}
	if report.TravelDistance.Limit != 20.0 {
		t.Errorf("limit = %v, want 20", report.TravelDistance.Limit)
	}
}

func TestMeasureEgress_UtilityIgnored(t *testing.T) {
	plan, p := fixturePlacement(t)
	eg := cores.EgressSpec{
		Sprinklered: true, DeadEndLimit: 15.24,
		TravelDistanceLimit: 76.2, CommonPathLimit: 38.1,
	}
	utility := rectUnit("utility", corridor.SideSouth, -45.72, plan.South.YMin, 2, plan.BandDepth())
	utility.IsUtility = true
	report := MeasureEgress([]*synthesis.Unit{utility}, p, eg)
	if report.TravelDistance.Measured != 0 {
		t.Errorf("utility blocks must not contribute, measured %v", report.TravelDistance.Measured)
	}
}

func TestMeasureEgress_CommonPathUsesFactor(t *testing.T) {
	plan, p := fixturePlacement(t)
	base := cores.EgressSpec{
		Sprinklered: true, DeadEndLimit: 15.24,
		TravelDistanceLimit: 76.2, CommonPathLimit: 38.1,
	}
	units := []*synthesis.Unit{
		rectUnit("a", corridor.SideNorth, -5, plan.North.YMin, 10, plan.BandDepth()),
	}

	def := MeasureEgress(units, p, base)
	want := plan.BandDepth() * cores.DefaultCommonPathFactor
	if math.Abs(def.CommonPath.Measured-want) > 1e-9 {
		t.Errorf("common path = %v, want depth*1.2 = %v", def.CommonPath.Measured, want)
	}

	override := base
	override.CommonPathFactor = 2.0
	doubled := MeasureEgress(units, p, override)
	if math.Abs(doubled.CommonPath.Measured-plan.BandDepth()*2.0) > 1e-9 {
		t.Errorf("overridden common path = %v", doubled.CommonPath.Measured)
	}
}

func TestComputeStats(t *testing.T) {
	types := []unitmix.TypeSpec{
		{Key: "a", TargetPercentage: 50, TargetArea: 80,
			Advanced: unitmix.AdvancedSettings{MinWidth: 4, MaxWidth: 20}},
		{Key: "b", TargetPercentage: 50, TargetArea: 80,
			Advanced: unitmix.AdvancedSettings{MinWidth: 4, MaxWidth: 20}},
	}
	units := []*synthesis.Unit{
		rectUnit("a", corridor.SideNorth, 0, 1, 10, 9),
		rectUnit("a", corridor.SideNorth, 10, 1, 10, 9),
		rectUnit("b", corridor.SideSouth, 0, -10, 10, 9),
	}
	utility := rectUnit("utility", corridor.SideSouth, 10, -10, 2, 9)
	utility.IsUtility = true
	units = append(units, utility)

	stats, warnings := ComputeStats(91.44, 19.81, units, types)
	if stats.TotalUnits != 3 {
		t.Errorf("total units = %d, want 3 (utility excluded)", stats.TotalUnits)
	}
	if math.Abs(stats.NRSF-270) > 1e-9 {
		t.Errorf("NRSF = %v, want 270", stats.NRSF)
	}
	if math.Abs(stats.GSF-91.44*19.81) > 1e-9 {
		t.Errorf("GSF = %v", stats.GSF)
	}
	if math.Abs(stats.Efficiency-270/(91.44*19.81)) > 1e-9 {
		t.Errorf("efficiency = %v", stats.Efficiency)
	}
	if stats.UnitCounts["a"] != 2 || stats.UnitCounts["b"] != 1 {
		t.Errorf("counts = %v", stats.UnitCounts)
	}
	if math.Abs(stats.ActualMix["a"]-2.0/3.0) > 1e-9 {
		t.Errorf("actual mix a = %v", stats.ActualMix["a"])
	}

	// a is at 66.7% against a 50% target: beyond the 5% warning band.
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want drift warnings for both types", warnings)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats, _ := ComputeStats(10, 10, nil, nil)
	if stats.TotalUnits != 0 || stats.NRSF != 0 || stats.Efficiency != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}
