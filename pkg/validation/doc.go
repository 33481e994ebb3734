// Package validation measures a finished layout against the egress limits
// and computes the floorplate metrics: gross and net rentable area,
// efficiency, and the achieved unit mix.
package validation
