package trace

import "iter"

// Recorder snapshots a generator's working array into steps and hands them to a sink.
// Once the sink declines a step the recorder drops every later one; generators poll
// Stopped to cut their loops short.
type Recorder[T Number] struct {
	yield   func(Step[T]) bool
	stopped bool
}

func NewRecorder[T Number](yield func(Step[T]) bool) *Recorder[T] {
	return &Recorder[T]{yield: yield}
}

func (r *Recorder[T]) Stopped() bool { return r.stopped }

// Emit records arr as it is now. arr is copied.
func (r *Recorder[T]) Emit(kind Kind, arr []T, comparing, swapping []int) {
	r.Push(Step[T]{
		Kind:      kind,
		Array:     Clone(arr),
		Comparing: Positions(comparing...),
		Swapping:  Positions(swapping...),
		Index:     NotFound,
	})
}

// Push hands a fully built step to the sink. Callers own copying.
func (r *Recorder[T]) Push(s Step[T]) {
	if r.stopped {
		return
	}
	if !r.yield(s) {
		r.stopped = true
	}
}

// Collect runs gen to completion and returns every recorded step.
func Collect[T Number](gen func(*Recorder[T])) Trace[T] {
	var out Trace[T]
	gen(NewRecorder(func(s Step[T]) bool {
		out = append(out, s)
		return true
	}))
	return out
}

// Seq runs gen lazily, one step per consumer pull.
func Seq[T Number](gen func(*Recorder[T])) iter.Seq[Step[T]] {
	return func(yield func(Step[T]) bool) {
		gen(NewRecorder(yield))
	}
}
