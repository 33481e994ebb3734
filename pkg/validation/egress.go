package validation

import (
	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/synthesis"
)

// MetricResult is one measured egress quantity against its limit.
type MetricResult struct {
	Measured float64 `yaml:"measured" json:"measured"`
	Limit    float64 `yaml:"limit" json:"limit"`
	Pass     bool    `yaml:"pass" json:"pass"`
}

// EgressReport carries the three egress checks for a layout.
type EgressReport struct {
	DeadEnd        MetricResult `yaml:"deadEnd" json:"deadEnd"`
	TravelDistance MetricResult `yaml:"travelDistance" json:"travelDistance"`
	CommonPath     MetricResult `yaml:"commonPath" json:"commonPath"`
}

// AllPass reports whether every egress metric is within its limit.
func (r EgressReport) AllPass() bool {
	return r.DeadEnd.Pass && r.TravelDistance.Pass && r.CommonPath.Pass
}

// MeasureEgress evaluates dead-end, travel-distance and common-path maxima
// over the unit centers, per the corridor Manhattan metric the placer uses.
func MeasureEgress(units []*synthesis.Unit, placement *cores.Placement,
	eg cores.EgressSpec) EgressReport {

	var maxDeadEnd, maxTravel, maxCommon float64
	for _, u := range units {
		if u.IsUtility {
			continue
		}
		c := u.Region.Centroid()
		r := u.Rect()

		if t := placement.TravelFrom(c.X, c.Y, u.Side); t > maxTravel {
			maxTravel = t
		}

		// Perpendicular leg: from the unit center to its corridor door wall.
		choice := placement.DistanceToChoice(c.X)
		if d := r.Depth/2 + choice; d > maxDeadEnd {
			maxDeadEnd = d
		}
		if cp := r.Depth*eg.PathFactor() + choice; cp > maxCommon {
			maxCommon = cp
		}
	}

	return EgressReport{
		DeadEnd: MetricResult{
			Measured: maxDeadEnd,
			Limit:    eg.DeadEndLimit,
			Pass:     maxDeadEnd <= eg.DeadEndLimit,
		},
		TravelDistance: MetricResult{
			Measured: maxTravel,
			Limit:    eg.TravelDistanceLimit,
			Pass:     maxTravel <= eg.TravelDistanceLimit,
		},
		CommonPath: MetricResult{
			Measured: maxCommon,
			Limit:    eg.CommonPathLimit,
			Pass:     maxCommon <= eg.CommonPathLimit,
		},
	}
}
