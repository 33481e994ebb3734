package cores

import (
	"fmt"

	"github.com/dgameiro/floorgen/pkg/corridor"
	"github.com/dgameiro/floorgen/pkg/geometry"
)

// Kind distinguishes end cores from travel-distance-driven middle cores.
type Kind string

const (
	// KindEnd marks one of the two cores anchored near the building ends.
	KindEnd Kind = "end"

	// KindMiddle marks a core inserted to satisfy the travel distance limit.
	KindMiddle Kind = "middle"
)

// Core is a placed vertical-circulation block. Depth is measured
// perpendicular to the corridor.
type Core struct {
	Rect geometry.Rect
	Side corridor.Side
	Kind Kind
}

// Config sets the core dimensions and which corridor side cores occupy.
type Config struct {
	Width float64       `yaml:"width" json:"width"`
	Depth float64       `yaml:"depth" json:"depth"`
	Side  corridor.Side `yaml:"side" json:"side"`
}

// Validate checks the core configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Depth <= 0 {
		return fmt.Errorf("core dimensions must be positive, got %.2f x %.2f", c.Width, c.Depth)
	}
	if !c.Side.Valid() {
		return fmt.Errorf("core side must be %q or %q, got %q", corridor.SideNorth, corridor.SideSouth, c.Side)
	}
	return nil
}

// EgressSpec carries the fire-egress limits, in meters.
type EgressSpec struct {
	// Sprinklered selects the separation factor: 1/3 of the floor diagonal
	// when sprinklered, 1/2 otherwise.
	Sprinklered bool `yaml:"sprinklered" json:"sprinklered"`

	DeadEndLimit        float64 `yaml:"deadEndLimit" json:"deadEndLimit"`
	TravelDistanceLimit float64 `yaml:"travelDistanceLimit" json:"travelDistanceLimit"`
	CommonPathLimit     float64 `yaml:"commonPathLimit" json:"commonPathLimit"`

	// CommonPathFactor scales unit depth in the common-path heuristic.
	// Zero selects DefaultCommonPathFactor; jurisdictions may override.
	CommonPathFactor float64 `yaml:"commonPathFactor,omitempty" json:"commonPathFactor,omitempty"`

	// MaxCores caps total cores per floor. Zero selects DefaultMaxCores.
	MaxCores int `yaml:"maxCores,omitempty" json:"maxCores,omitempty"`
}

// DefaultCommonPathFactor is the unit-depth multiplier in the common-path
// heuristic. Kept as a named constant for jurisdictional override.
const DefaultCommonPathFactor = 1.2

// DefaultMaxCores is the cap on cores per floor.
const DefaultMaxCores = 5

// SeparationFactor returns the required exit-separation fraction of the floor
// diagonal.
func (e EgressSpec) SeparationFactor() float64 {
	if e.Sprinklered {
		return 1.0 / 3.0
	}
	return 1.0 / 2.0
}

// PathFactor returns the effective common-path unit-depth multiplier.
func (e EgressSpec) PathFactor() float64 {
	if e.CommonPathFactor > 0 {
		return e.CommonPathFactor
	}
	return DefaultCommonPathFactor
}

// CoreCap returns the effective maximum core count.
func (e EgressSpec) CoreCap() int {
	if e.MaxCores > 0 {
		return e.MaxCores
	}
	return DefaultMaxCores
}

// Validate checks the egress limits.
func (e EgressSpec) Validate() error {
	if e.DeadEndLimit <= 0 {
		return fmt.Errorf("deadEndLimit must be positive, got %.2f", e.DeadEndLimit)
	}
	if e.TravelDistanceLimit <= 0 {
		return fmt.Errorf("travelDistanceLimit must be positive, got %.2f", e.TravelDistanceLimit)
	}
	if e.CommonPathLimit <= 0 {
		return fmt.Errorf("commonPathLimit must be positive, got %.2f", e.CommonPathLimit)
	}
	if e.CommonPathFactor < 0 {
		return fmt.Errorf("commonPathFactor must be non-negative, got %.2f", e.CommonPathFactor)
	}
	if e.MaxCores < 0 {
		return fmt.Errorf("maxCores must be non-negative, got %d", e.MaxCores)
	}
	return nil
}

// InfeasibleError reports that egress limits cannot be met. It carries the
// measured values so callers can surface the overrun.
type InfeasibleError struct {
	Reason             string
	MaxTravel          float64
	TravelLimit        float64
	Separation         float64
	SeparationRequired float64
	CoreCount          int
}

func (e *InfeasibleError) Error() string {
	switch e.Reason {
	case "separation":
		return fmt.Sprintf("egress infeasible: exit separation %.2fm below required %.2fm",
			e.Separation, e.SeparationRequired)
	case "travel":
		return fmt.Sprintf("egress infeasible: travel distance %.2fm exceeds %.2fm with %d cores",
			e.MaxTravel, e.TravelLimit, e.CoreCount)
	default:
		return fmt.Sprintf("egress infeasible: %s", e.Reason)
	}
}
