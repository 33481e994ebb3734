package unitmix

import (
	"math"
	"sort"
)

// Allocation is the result of the global largest-remainder apportionment.
type Allocation struct {
	// Counts maps type key to the number of units allocated.
	Counts map[string]int

	// Total is the total unit count N. Always equals the sum of Counts.
	Total int

	// MeanWidth is the percentage-weighted average ideal width used to size N.
	MeanWidth float64
}

// Count returns the allocated count for a type key.
func (a *Allocation) Count(key string) int { return a.Counts[key] }

// Allocate apportions unit counts across types by the largest-remainder
// method. frontage is the total rentable frontage over both corridor sides and
// bandDepth the rentable band depth.
//
// The residual after flooring is handed out one unit at a time in descending
// fractional-remainder order, tiebroken by descending placement priority and
// then lexicographic type key, so the result is a total order independent of
// input ordering quirks.
func Allocate(frontage, bandDepth float64, types []TypeSpec) Allocation {
	shares := Shares(types)

	mean := 0.0
	for i := range types {
		mean += shares[i] * types[i].IdealWidth(bandDepth)
	}

	alloc := Allocation{
		Counts:    make(map[string]int, len(types)),
		MeanWidth: mean,
	}
	if mean <= 0 || frontage <= 0 {
		return alloc
	}

	n := int(math.Floor(frontage / mean))
	if n <= 0 {
		return alloc
	}

	type remainder struct {
		index int
		frac  float64
	}
	floors := make([]int, len(types))
	remainders := make([]remainder, 0, len(types))
	assigned := 0
	for i := range types {
		raw := float64(n) * shares[i]
		fl := int(math.Floor(raw))
		floors[i] = fl
		assigned += fl
		remainders = append(remainders, remainder{index: i, frac: raw - float64(fl)})
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		ra, rb := remainders[a], remainders[b]
		if ra.frac != rb.frac {
			return ra.frac > rb.frac
		}
		pa := types[ra.index].Advanced.PlacementPriority
		pb := types[rb.index].Advanced.PlacementPriority
		if pa != pb {
			return pa > pb
		}
		return types[ra.index].Key < types[rb.index].Key
	})

	for i := 0; i < n-assigned && i < len(remainders); i++ {
		floors[remainders[i].index]++
	}

	for i := range types {
		alloc.Counts[types[i].Key] = floors[i]
		alloc.Total += floors[i]
	}
	return alloc
}
