package sorting

import "github.com/san-kum/algotrace/internal/trace"

func quick[T trace.Number](r *trace.Recorder[T], arr []T) {
	quickSort(r, arr, 0, len(arr)-1)
}

func quickSort[T trace.Number](r *trace.Recorder[T], arr []T, low, high int) {
	if low >= high || r.Stopped() {
		return
	}
	p := partition(r, arr, low, high)
	quickSort(r, arr, low, p-1)
	quickSort(r, arr, p+1, high)
}

// partition is Lomuto with the last element as pivot. Every boundary swap and the
// final pivot swap are recorded, including swaps of a position with itself.
func partition[T trace.Number](r *trace.Recorder[T], arr []T, low, high int) int {
	pivot := arr[high]
	i := low - 1

	for j := low; j < high; j++ {
		r.Emit(trace.KindCompare, arr, []int{j, high}, nil)
		if arr[j] < pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
			r.Emit(trace.KindSwap, arr, nil, []int{i, j})
		}
	}

	arr[i+1], arr[high] = arr[high], arr[i+1]
	r.Emit(trace.KindSwap, arr, nil, []int{i + 1, high})
	return i + 1
}
