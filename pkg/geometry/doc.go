// Package geometry provides the 2D primitives shared by every pipeline stage:
// axis-aligned rectangles, simple polygons, the Region variant that unifies the
// two, and the host-frame transform applied to finished layouts.
//
// All coordinates are meters in the floorplate's local frame, which places the
// footprint center at the origin with the long axis along X.
package geometry
