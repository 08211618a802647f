package searching

import "github.com/san-kum/algotrace/internal/trace"

// binary returns whichever equal element the bisection path lands on first, not
// necessarily the leftmost.
func binary[T trace.Number](r *trace.Recorder[T], values []T, target T) {
	left, right := 0, len(values)-1

	for left <= right && !r.Stopped() {
		mid := (left + right) / 2
		s := probe(values, mid, target, &trace.Bounds{Left: left, Right: right, Mid: mid})
		r.Push(s)

		switch {
		case s.Found:
			return
		case values[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
}
