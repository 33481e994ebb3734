package synthesis

import (
	"fmt"
	"math"
	"sort"

	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// Align snaps slave-side demising walls toward the nearest master-side wall.
// The master side is the one carrying the cores; its walls are fixed. Each
// slave wall may move by at most its neighbors' tolerance-scaled widths,
// scaled again by the caller's strictness in [0,1]. Walls are visited left to
// right exactly once.
//
// Rigid neighbors (tolerance zero) pin their walls; a shift that would push a
// neighbor below its hard minimum width is clamped to the feasible remainder
// and reported. Clamping, rather than dropping the wall outright, keeps the
// total offset non-increasing in strictness.
func Align(master, slave []*Unit, types []unitmix.TypeSpec,
	index map[string]int, strictness float64) []string {

	if strictness <= 0 {
		return nil
	}
	if strictness > 1 {
		strictness = 1
	}

	masterWalls := interiorWalls(master)
	if len(masterWalls) == 0 {
		return nil
	}
	sort.Float64s(masterWalls)

	var warnings []string
	limited := 0
	for i := 0; i+1 < len(slave); i++ {
		leftUnit, rightUnit := slave[i], slave[i+1]
		if leftUnit.IsUtility || rightUnit.IsUtility {
			continue
		}
		lr, lok := leftUnit.Region.Rect()
		rr, rok := rightUnit.Region.Rect()
		if !lok || !rok {
			continue
		}
		// Only true demising walls: the two units must be contiguous.
		if math.Abs(lr.MaxX()-rr.X) > geometry.Epsilon {
			continue
		}

		wall := lr.MaxX()
		target := nearestWall(masterWalls, wall)
		d := target - wall
		if math.Abs(d) < geometry.Epsilon {
			continue
		}

		lt := &types[index[leftUnit.TypeKey]]
		rt := &types[index[rightUnit.TypeKey]]
		maxShift := math.Min(lr.Width*lt.Tolerance(), rr.Width*rt.Tolerance())
		maxShift = math.Min(maxShift, math.Abs(d))

		// Clamp to the headroom above each neighbor's hard floor: only the
		// infeasible portion of the shift is dropped, never the whole wall.
		headroom := math.Min(lr.Width-lt.Advanced.MinWidth, rr.Width-rt.Advanced.MinWidth)
		if headroom < maxShift {
			maxShift = headroom
			limited++
		}
		if maxShift <= geometry.Epsilon {
			continue
		}

		shift := strictness * math.Copysign(maxShift, d)
		newLeft := lr.Width + shift
		newRight := rr.Width - shift

		lr.Width = newLeft
		rr.X += shift
		rr.Width = newRight
		leftUnit.Region = geometry.NewRectRegion(lr)
		leftUnit.Width = newLeft
		leftUnit.Area = lr.Area()
		rightUnit.Region = geometry.NewRectRegion(rr)
		rightUnit.Width = newRight
		rightUnit.Area = rr.Area()
	}

	if limited > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"alignment limited %d wall(s) to preserve minimum widths", limited))
	}
	return warnings
}

// WallOffsetSum measures alignment quality: the summed distance from each
// slave demising wall to its nearest master wall.
func WallOffsetSum(master, slave []*Unit) float64 {
	masterWalls := interiorWalls(master)
	if len(masterWalls) == 0 {
		return 0
	}
	sort.Float64s(masterWalls)
	sum := 0.0
	for _, w := range interiorWalls(slave) {
		sum += math.Abs(nearestWall(masterWalls, w) - w)
	}
	return sum
}

// interiorWalls collects the shared boundaries between contiguous units.
func interiorWalls(units []*Unit) []float64 {
	var walls []float64
	for i := 0; i+1 < len(units); i++ {
		a, aok := units[i].Region.Rect()
		b, bok := units[i+1].Region.Rect()
		if !aok || !bok {
			continue
		}
		if units[i].IsUtility || units[i+1].IsUtility {
			continue
		}
		if math.Abs(a.MaxX()-b.X) <= geometry.Epsilon {
			walls = append(walls, a.MaxX())
		}
	}
	return walls
}

// nearestWall returns the closest value in the sorted walls slice.
func nearestWall(walls []float64, x float64) float64 {
	i := sort.SearchFloat64s(walls, x)
	if i == 0 {
		return walls[0]
	}
	if i == len(walls) {
		return walls[len(walls)-1]
	}
	if x-walls[i-1] <= walls[i]-x {
		return walls[i-1]
	}
	return walls[i]
}
