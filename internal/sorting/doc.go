// Package sorting generates step traces for classic comparison sorts.
//
// Every generator clones its input once, runs the algorithm to completion and returns
// the full trace. Step granularity is part of the contract: players and tests rely on
// the exact number and order of compare, swap and write records.
//
//   - [Bubble]: adjacent swaps, no early exit
//   - [Insertion]: mark, then compare+write per shift, then the insertion write
//   - [Merge]: top-down, left half wins ties (stable)
//   - [Quick]: Lomuto partition, last element as pivot
//
// Empty and single-element inputs produce one done record.
package sorting
