package floorplate

import (
	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/geometry"
	"github.com/dgameiro/floorgen/pkg/synthesis"
	"github.com/dgameiro/floorgen/pkg/unitmix"
	"github.com/dgameiro/floorgen/pkg/validation"
)

// Footprint is the building outline in host coordinates. Generation happens
// in a local frame with the footprint centered at the origin and axis
// aligned; the host transform is reapplied only on the output.
type Footprint struct {
	Length   float64 `yaml:"length" json:"length"`
	Depth    float64 `yaml:"depth" json:"depth"`
	CenterX  float64 `yaml:"centerX" json:"centerX"`
	CenterY  float64 `yaml:"centerY" json:"centerY"`
	Rotation float64 `yaml:"rotation" json:"rotation"`
	FloorZ   float64 `yaml:"floorZ" json:"floorZ"`
}

// Transform returns the local→host mapping for this footprint.
func (f Footprint) Transform() geometry.Transform {
	return geometry.Transform{
		TranslateX: f.CenterX,
		TranslateY: f.CenterY,
		Rotation:   f.Rotation,
		Elevation:  f.FloorZ,
	}
}

// CorridorSpec sets the corridor width in meters.
type CorridorSpec struct {
	Width float64 `yaml:"width" json:"width"`
}

// Input is everything Generate consumes. All lengths are meters.
type Input struct {
	Footprint Footprint
	UnitTypes []unitmix.TypeSpec
	Corridor  CorridorSpec
	Cores     cores.Config
	Egress    cores.EgressSpec

	// AlignmentStrictness in [0,1] scales how far slave-side walls snap
	// toward master walls. Strategies may adjust it.
	AlignmentStrictness float64

	// Strategies selects which variants to produce. Empty means all three.
	Strategies []Strategy
}

// LayoutOption is one complete generated floorplate.
type LayoutOption struct {
	Strategy Strategy `yaml:"strategy" json:"strategy"`

	BuildingLength float64 `yaml:"buildingLength" json:"buildingLength"`
	BuildingDepth  float64 `yaml:"buildingDepth" json:"buildingDepth"`
	FloorElevation float64 `yaml:"floorElevation" json:"floorElevation"`

	// Corridor is the (possibly end-trimmed) corridor rectangle.
	Corridor geometry.Rect

	Cores []cores.Core
	Units []*synthesis.Unit

	Stats  validation.Stats
	Egress validation.EgressReport

	// Transform maps the local-frame geometry into the host frame.
	Transform geometry.Transform

	// Warnings records non-fatal degradations: off-target mix, clamped
	// widths, denied alignment shifts, failed egress checks.
	Warnings []string
}
