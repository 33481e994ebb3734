package validation

import (
	"fmt"
	"math"

	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// Stats summarizes a layout: gross and net rentable area, efficiency, and
// the achieved unit mix against the targets.
type Stats struct {
	// GSF is the gross floor area, L·D.
	GSF float64 `yaml:"gsf" json:"gsf"`

	// NRSF is the net rentable area: the summed area of living units.
	// Utility blocks do not count.
	NRSF float64 `yaml:"nrsf" json:"nrsf"`

	// Efficiency is NRSF/GSF.
	Efficiency float64 `yaml:"efficiency" json:"efficiency"`

	// UnitCounts maps type key to the number of placed units.
	UnitCounts map[string]int `yaml:"unitCounts" json:"unitCounts"`

	// ActualMix maps type key to its achieved share of the total count.
	ActualMix map[string]float64 `yaml:"actualMix" json:"actualMix"`

	// MixDeviation maps type key to achieved share minus target share.
	MixDeviation map[string]float64 `yaml:"mixDeviation" json:"mixDeviation"`

	// TotalUnits is the placed living unit count.
	TotalUnits int `yaml:"totalUnits" json:"totalUnits"`
}

// mixDeviationWarningThreshold is the drift beyond which a type's achieved
// share earns a warning.
const mixDeviationWarningThreshold = 0.05

// ComputeStats derives the layout statistics and any mix-drift warnings.
func ComputeStats(length, depth float64, units []*synthesis.Unit,
	types []unitmix.TypeSpec) (Stats, []string) {

	s := Stats{
		GSF:          length * depth,
		UnitCounts:   make(map[string]int, len(types)),
		ActualMix:    make(map[string]float64, len(types)),
		MixDeviation: make(map[string]float64, len(types)),
	}

	for _, u := range units {
		if u.IsUtility {
			continue
		}
		s.NRSF += u.Area
		s.UnitCounts[u.TypeKey]++
		s.TotalUnits++
	}
	if s.GSF > 0 {
		s.Efficiency = s.NRSF / s.GSF
	}

	shares := unitmix.Shares(types)
	var warnings []string
	for i := range types {
		key := types[i].Key
		actual := 0.0
		if s.TotalUnits > 0 {
			actual = float64(s.UnitCounts[key]) / float64(s.TotalUnits)
		}
		s.ActualMix[key] = actual
		s.MixDeviation[key] = actual - shares[i]
		if math.Abs(s.MixDeviation[key]) > mixDeviationWarningThreshold {
			warnings = append(warnings, fmt.Sprintf(
				"type %q mix %.1f%% deviates from target %.1f%% by more than 5%%",
				key, actual*100, shares[i]*100))
		}
	}
	return s, warnings
}
