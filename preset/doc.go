// Package preset provides ready-made input sequences: the named example
// arrays offered to users, and deterministic generators for insertion
// orders with a known tree shape.
//
// Named presets (display order):
//
//	Balanced Tree  8,4,2,1,3,6,5,7,12,10,9,11,14,13,15   height 4, balanced
//	Perfect Tree   4,2,6,1,3,5,7                          height 3, balanced
//	Right Skewed   1,2,3,4,5,6,7                          height 7, not balanced
//	Left Skewed    7,6,5,4,3,2,1                          height 7, not balanced
//
// Generators:
//
//   - Ascending(n), Descending(n):  1..n in order / reverse (skewed trees).
//   - PerfectOrder(depth):          an order over 1..2^depth-1 that yields a
//     perfect tree of the given height.
//   - Shuffled(n, opts...):         a permutation of 1..n; use WithSeed or
//     WithRand for reproducible output.
//
// Errors:
//
//   - ErrUnknownPreset  Lookup of a name or slug that does not exist.
//   - ErrBadSize        negative n or depth, or depth too large.
package preset
