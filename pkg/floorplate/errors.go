package floorplate

import (
	"fmt"

	"github.com/dgameiro/floorgen/pkg/cores"
)

// InvalidFootprintError rejects non-positive or too-narrow footprints, and
// core/corridor dimensions the footprint cannot host.
type InvalidFootprintError struct {
	Reason string
}

func (e *InvalidFootprintError) Error() string {
	return fmt.Sprintf("invalid footprint: %s", e.Reason)
}

// InvalidUnitMixError rejects unit-type catalogs with no active type,
// non-positive areas, or inverted width bounds.
type InvalidUnitMixError struct {
	Reason string
}

func (e *InvalidUnitMixError) Error() string {
	return fmt.Sprintf("invalid unit mix: %s", e.Reason)
}

// EgressInfeasibleError wraps the placer's measured overrun when the travel
// or separation limits cannot be met within the core cap.
type EgressInfeasibleError struct {
	Cause *cores.InfeasibleError
}

func (e *EgressInfeasibleError) Error() string { return e.Cause.Error() }

// Unwrap exposes the placer error for errors.As.
func (e *EgressInfeasibleError) Unwrap() error { return e.Cause }

// DegenerateError reports a footprint too small to admit a single unit of
// any configured type.
type DegenerateError struct {
	Frontage  float64
	MeanWidth float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf(
		"degenerate layout: frontage %.2fm admits no unit at mean width %.2fm",
		e.Frontage, e.MeanWidth)
}
