package sorting

import "github.com/katalvlaran/algostep/step"

// Quick returns a quicksort producer using the Lomuto partition scheme with
// the last element of each range as pivot. A Swap is emitted only when an
// element actually moves; self-swaps are skipped.
func Quick(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameQuick, values, func(a *Array, em *step.Emitter) bool {
		return quickSort(a, em, 0, a.Len()-1)
	})
}

func quickSort(a *Array, em *step.Emitter, lo, hi int) bool {
	if lo >= hi {
		return true
	}
	p, ok := partition(a, em, lo, hi)
	if !ok {
		return false
	}
	return quickSort(a, em, lo, p-1) && quickSort(a, em, p+1, hi)
}

// partition places a[hi] at its final position and returns that position.
func partition(a *Array, em *step.Emitter, lo, hi int) (int, bool) {
	pivot := a.At(hi)
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !em.Emitf(step.KindCompare, step.Pair{I: j, J: hi}, "compare %d with pivot %d", a.At(j), pivot) {
			return 0, false
		}
		if a.At(j) < pivot {
			i++
			if i != j {
				x, y := a.At(i), a.At(j)
				a.swap(i, j)
				if !em.Emitf(step.KindSwap, step.Pair{I: i, J: j}, "swap %d and %d", x, y) {
					return 0, false
				}
			}
		}
	}
	if i+1 != hi {
		a.swap(i+1, hi)
		if !em.Emitf(step.KindSwap, step.Pair{I: i + 1, J: hi}, "place pivot %d", pivot) {
			return 0, false
		}
	}
	return i + 1, true
}
