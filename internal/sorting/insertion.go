package sorting

import "github.com/san-kum/algotrace/internal/trace"

// insertion records each shift as two steps: the compare, then the write.
func insertion[T trace.Number](r *trace.Recorder[T], arr []T) {
	for i := 1; i < len(arr); i++ {
		if r.Stopped() {
			return
		}
		key := arr[i]
		j := i - 1
		r.Emit(trace.KindMark, arr, []int{i}, nil)

		for j >= 0 && arr[j] > key {
			r.Emit(trace.KindCompare, arr, []int{j, j + 1}, nil)
			arr[j+1] = arr[j]
			r.Emit(trace.KindWrite, arr, nil, []int{j, j + 1})
			j--
		}

		arr[j+1] = key
		r.Emit(trace.KindWrite, arr, nil, []int{j + 1})
	}
}
