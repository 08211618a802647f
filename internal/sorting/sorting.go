package sorting

import (
	"iter"

	"github.com/san-kum/algotrace/internal/trace"
)

// Generator records one sort algorithm into r, working on arr in place.
type Generator[T trace.Number] func(r *trace.Recorder[T], arr []T)

// Bubble returns the bubble sort trace of values.
func Bubble[T trace.Number](values []T) trace.Trace[T] { return Run(values, bubble[T]) }

// Insertion returns the insertion sort trace of values.
func Insertion[T trace.Number](values []T) trace.Trace[T] { return Run(values, insertion[T]) }

// Merge returns the merge sort trace of values.
func Merge[T trace.Number](values []T) trace.Trace[T] { return Run(values, merge[T]) }

// Quick returns the quick sort trace of values.
func Quick[T trace.Number](values []T) trace.Trace[T] { return Run(values, quick[T]) }

// Steps yields the same records as the eager generator for gen, lazily.
func Steps[T trace.Number](values []T, gen Generator[T]) iter.Seq[trace.Step[T]] {
	return trace.Seq(func(r *trace.Recorder[T]) { generate(r, values, gen) })
}

// Run records gen over a clone of values.
func Run[T trace.Number](values []T, gen Generator[T]) trace.Trace[T] {
	return trace.Collect(func(r *trace.Recorder[T]) { generate(r, values, gen) })
}

func generate[T trace.Number](r *trace.Recorder[T], values []T, gen Generator[T]) {
	arr := trace.Clone(values)
	if len(arr) < 2 {
		r.Emit(trace.KindDone, arr, nil, nil)
		return
	}
	gen(r, arr)
}

// Lookup returns the generator registered under name.
func Lookup[T trace.Number](name string) (Generator[T], bool) {
	switch name {
	case "bubble":
		return bubble[T], true
	case "insertion":
		return insertion[T], true
	case "merge":
		return merge[T], true
	case "quick":
		return quick[T], true
	}
	return nil, false
}

// Names lists the registered algorithms.
func Names() []string {
	return []string{"bubble", "insertion", "merge", "quick"}
}
