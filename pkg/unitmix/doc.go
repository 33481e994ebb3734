// Package unitmix defines the unit-type catalog the engine plans against and
// the largest-remainder apportionment that turns a target percentage mix into
// integer unit counts.
//
// Types are identified by a stable string key and carried as an ordered slice;
// the engine never hardcodes a canonical set of types, and every tiebreak is a
// total order over (priority, key) so allocation is deterministic.
package unitmix
