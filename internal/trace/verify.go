package trace

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Verify replays tr against input. Every step may only change positions named in its
// Swapping set, every named position must be in range, and the last array must be a
// permutation of input. Intermediate arrays may hold transient duplicates (insertion
// shifts, merge placements).
func Verify[T Number](input []T, tr Trace[T]) error {
	prev := input
	for i, s := range tr {
		if len(s.Array) != len(prev) {
			return &StepError{Step: i, Wrapped: errors.Wrapf(ErrInconsistent,
				"array length %d, want %d", len(s.Array), len(prev))}
		}
		for _, p := range append(slices.Clone(s.Comparing), s.Swapping...) {
			if p < 0 || p >= len(s.Array) {
				return &StepError{Step: i, Wrapped: errors.Wrapf(ErrInconsistent,
					"position %d out of range", p)}
			}
		}
		for p := range s.Array {
			if s.Array[p] != prev[p] && !slices.Contains(s.Swapping, p) {
				return &StepError{Step: i, Wrapped: errors.Wrapf(ErrInconsistent,
					"position %d changed outside the write set %v", p, s.Swapping)}
			}
		}
		prev = s.Array
	}
	if !SameMultiset(input, prev) {
		return errors.Wrap(ErrInconsistent, "final array is not a permutation of the input")
	}
	return nil
}

// SameMultiset reports whether a and b hold the same values with the same counts.
func SameMultiset[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// IsSorted reports whether values are non-decreasing.
func IsSorted[T Number](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
