package sorting

import "github.com/san-kum/algotrace/internal/trace"

func bubble[T trace.Number](r *trace.Recorder[T], arr []T) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if r.Stopped() {
				return
			}
			r.Emit(trace.KindCompare, arr, []int{j, j + 1}, nil)
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				r.Emit(trace.KindSwap, arr, nil, []int{j, j + 1})
			}
		}
	}
	r.Emit(trace.KindDone, arr, nil, nil)
}
