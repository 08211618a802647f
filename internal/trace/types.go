package trace

import (
	"golang.org/x/exp/constraints"
)

// NotFound is the Index of a search record that did not match.
const NotFound = -1

// Number is the value domain of array traces.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind names what happened in a step.
type Kind string

const (
	KindCompare Kind = "compare"
	KindSwap    Kind = "swap"
	KindWrite   Kind = "write"
	KindMark    Kind = "mark"
	KindProbe   Kind = "probe"
	KindDone    Kind = "done"
)

// Bounds is the live search window of a binary search probe.
type Bounds struct {
	Left  int `json:"left"`
	Right int `json:"right"`
	Mid   int `json:"mid"`
}

// Step is an immutable snapshot of an array algorithm at one instant.
type Step[T Number] struct {
	Kind      Kind    `json:"kind"`
	Array     []T     `json:"array"`
	Comparing []int   `json:"comparing"`
	Swapping  []int   `json:"swapping"`
	Bounds    *Bounds `json:"bounds,omitempty"`
	Found     bool    `json:"found,omitempty"`
	Index     int     `json:"index"`
}

// Mutates reports whether the step names any written position.
func (s Step[T]) Mutates() bool { return len(s.Swapping) > 0 }

// Trace is the full step sequence of one run.
type Trace[T Number] []Step[T]

func (t Trace[T]) Len() int { return len(t) }

// Last returns the final step, or false for an empty trace.
func (t Trace[T]) Last() (Step[T], bool) {
	if len(t) == 0 {
		return Step[T]{}, false
	}
	return t[len(t)-1], true
}

// Final returns a copy of the last recorded array.
func (t Trace[T]) Final() []T {
	last, ok := t.Last()
	if !ok {
		return nil
	}
	return Clone(last.Array)
}

// Clone returns a value copy of values.
func Clone[T any](values []T) []T {
	c := make([]T, len(values))
	copy(c, values)
	return c
}

// Positions builds a non-nil position set.
func Positions(idx ...int) []int {
	p := make([]int, len(idx))
	copy(p, idx)
	return p
}
