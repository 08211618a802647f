package searching

import "github.com/san-kum/algotrace/internal/trace"

func linear[T trace.Number](r *trace.Recorder[T], values []T, target T) {
	for i := range values {
		if r.Stopped() {
			return
		}
		s := probe(values, i, target, nil)
		r.Push(s)
		if s.Found {
			return
		}
	}
}
