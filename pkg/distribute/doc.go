// Package distribute assigns the globally allocated unit counts to corridor
// segments. Pass one fills segments in priority order, choosing each unit via
// the strategy's scoring hook among the types whose flexibility window fits
// the remaining span. Pass two force-places any leftover counts into the
// segments with the most denial-adjusted slack, allowed to stretch the
// per-type tolerance up to the hard width bounds.
package distribute
