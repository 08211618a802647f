// Package trace defines the step record model shared by every trace generator.
//
// A trace is an ordered, immutable sequence of step records that fully describes one
// algorithm execution:
//
//   - [Step]: one unit of observable progress (comparison, swap, write, probe)
//   - [Trace]: the eager, fully materialized sequence of steps
//   - [Cursor]: the replay contract a playback driver walks through
//   - [Verify]: replays a trace against its input and reports inconsistencies
//
// # Example
//
//	tr := sorting.Bubble([]int{5, 3, 8, 1})
//	c := trace.NewCursor(tr)
//	for c.Next() {
//		render(c.Current())
//	}
//
// # Thread Safety
//
// Traces are values. Once returned they are never mutated by the engine, so they can be
// shared between readers. Cursors are NOT thread-safe.
package trace
