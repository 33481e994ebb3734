// Package synthesis turns per-segment unit assignments into concrete
// geometry. Widths are solved with weighted error distribution under hard
// bounds, units are ordered by the strategy pattern, demising walls are
// aligned across the corridor, and eligible end units are extended into
// L-shapes that wrap the trimmed corridor ends.
package synthesis
