package searching

import (
	"iter"

	"github.com/san-kum/algotrace/internal/trace"
)

// Generator records one search of target over values into r.
type Generator[T trace.Number] func(r *trace.Recorder[T], values []T, target T)

// Linear returns the linear search trace for target.
func Linear[T trace.Number](values []T, target T) (trace.Trace[T], error) {
	return Run(values, target, linear[T])
}

// Binary returns the binary search trace for target over sorted values.
func Binary[T trace.Number](values []T, target T) (trace.Trace[T], error) {
	return Run(values, target, binary[T])
}

// Steps yields the records of gen lazily.
func Steps[T trace.Number](values []T, target T, gen Generator[T]) (iter.Seq[trace.Step[T]], error) {
	if err := validate(target); err != nil {
		return nil, err
	}
	arr := trace.Clone(values)
	return trace.Seq(func(r *trace.Recorder[T]) { gen(r, arr, target) }), nil
}

// Result returns the outcome of a finished search trace: the matching index, or
// trace.NotFound.
func Result[T trace.Number](tr trace.Trace[T]) (int, bool) {
	last, ok := tr.Last()
	if !ok || !last.Found {
		return trace.NotFound, false
	}
	return last.Index, true
}

// Run records gen searching a clone of values for target.
func Run[T trace.Number](values []T, target T, gen Generator[T]) (trace.Trace[T], error) {
	if err := validate(target); err != nil {
		return nil, err
	}
	arr := trace.Clone(values)
	return trace.Collect(func(r *trace.Recorder[T]) { gen(r, arr, target) }), nil
}

// validate rejects NaN targets: no position can ever compare equal to them.
func validate[T trace.Number](target T) error {
	if target != target {
		return trace.InvalidArgument("search target is NaN")
	}
	return nil
}

func probe[T trace.Number](values []T, i int, target T, bounds *trace.Bounds) trace.Step[T] {
	s := trace.Step[T]{
		Kind:      trace.KindProbe,
		Array:     trace.Clone(values),
		Comparing: trace.Positions(i),
		Swapping:  trace.Positions(),
		Bounds:    bounds,
		Index:     trace.NotFound,
	}
	if values[i] == target {
		s.Found = true
		s.Index = i
	}
	return s
}

// Lookup returns the generator registered under name.
func Lookup[T trace.Number](name string) (Generator[T], bool) {
	switch name {
	case "linear":
		return linear[T], true
	case "binary":
		return binary[T], true
	}
	return nil, false
}

// Names lists the registered algorithms.
func Names() []string {
	return []string{"linear", "binary"}
}
