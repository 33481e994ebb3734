// Package corridor derives the usable interior of a rectangular footprint and
// places the central double-loaded corridor with its two rentable bands.
package corridor
