// Package floorplate is the engine's public entry point. Generate runs the
// deterministic pipeline over a rectangular footprint:
//
//  1. Footprint analysis - usable interior and rentable bands
//  2. Corridor placement - central double-loaded corridor on y=0
//  3. Core placement - end cores plus travel-driven middle cores
//  4. Segmentation - rentable spans between cores and building ends
//  5. Allocation and distribution - largest-remainder counts assigned to
//     segments under the flexibility model
//  6. Geometry synthesis - widths, ordering, L-shapes, wall alignment
//  7. Validation and metrics - egress checks, GSF/NRSF/efficiency, warnings
//
// Each requested strategy (Balanced, MixOptimized, EfficiencyOptimized)
// yields an independent LayoutOption. Identical inputs produce identical
// results: there is no randomness and every tiebreak is a total order.
package floorplate
