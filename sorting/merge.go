package sorting

import "github.com/katalvlaran/algostep/step"

// Merge returns a top-down merge sort producer. Splitting emits nothing;
// each merge emits a Compare per head comparison and an Assign per slot
// written back. Ties take the left element, so the sort is stable.
func Merge(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameMerge, values, func(a *Array, em *step.Emitter) bool {
		return mergeSort(a, em, 0, a.Len())
	})
}

// mergeSort sorts a[lo:hi].
func mergeSort(a *Array, em *step.Emitter, lo, hi int) bool {
	if hi-lo < 2 {
		return true
	}
	mid := lo + (hi-lo)/2
	return mergeSort(a, em, lo, mid) &&
		mergeSort(a, em, mid, hi) &&
		merge(a, em, lo, mid, hi)
}

func merge(a *Array, em *step.Emitter, lo, mid, hi int) bool {
	left := append([]int(nil), a.values[lo:mid]...)
	right := append([]int(nil), a.values[mid:hi]...)

	write := func(k, v int) bool {
		a.set(k, v)
		return em.Emitf(step.KindAssign, step.Slot{Pos: k, Value: v}, "write %d", v)
	}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if !em.Emitf(step.KindCompare, step.Pair{I: lo + i, J: mid + j},
			"compare %d and %d", left[i], right[j]) {
			return false
		}
		if left[i] <= right[j] {
			if !write(k, left[i]) {
				return false
			}
			i++
		} else {
			if !write(k, right[j]) {
				return false
			}
			j++
		}
		k++
	}
	// Tails are already ordered; copy them without comparing.
	for ; i < len(left); i, k = i+1, k+1 {
		if !write(k, left[i]) {
			return false
		}
	}
	for ; j < len(right); j, k = j+1, k+1 {
		if !write(k, right[j]) {
			return false
		}
	}
	return true
}
