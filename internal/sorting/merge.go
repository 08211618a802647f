package sorting

import "github.com/san-kum/algotrace/internal/trace"

func merge[T trace.Number](r *trace.Recorder[T], arr []T) {
	mergeSort(r, arr, 0, len(arr)-1)
}

func mergeSort[T trace.Number](r *trace.Recorder[T], arr []T, left, right int) {
	if left >= right || r.Stopped() {
		return
	}
	mid := (left + right) / 2
	mergeSort(r, arr, left, mid)
	mergeSort(r, arr, mid+1, right)
	mergeHalves(r, arr, left, mid, right)
}

// mergeHalves compares positions by their original offsets, left+i and mid+1+j, even
// after earlier placements have overwritten them. Ties take the left element.
func mergeHalves[T trace.Number](r *trace.Recorder[T], arr []T, left, mid, right int) {
	lhs := trace.Clone(arr[left : mid+1])
	rhs := trace.Clone(arr[mid+1 : right+1])
	i, j, k := 0, 0, left

	for i < len(lhs) && j < len(rhs) {
		r.Emit(trace.KindCompare, arr, []int{left + i, mid + 1 + j}, nil)
		if lhs[i] <= rhs[j] {
			arr[k] = lhs[i]
			i++
		} else {
			arr[k] = rhs[j]
			j++
		}
		r.Emit(trace.KindWrite, arr, nil, []int{k})
		k++
	}

	for ; i < len(lhs); i, k = i+1, k+1 {
		arr[k] = lhs[i]
		r.Emit(trace.KindWrite, arr, nil, []int{k})
	}
	for ; j < len(rhs); j, k = j+1, k+1 {
		arr[k] = rhs[j]
		r.Emit(trace.KindWrite, arr, nil, []int{k})
	}
}
