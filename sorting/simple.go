package sorting

import "github.com/katalvlaran/algostep/step"

// Bubble returns a bubble sort producer. Every pass compares all adjacent
// pairs of the unsorted prefix; there is no early exit, so a reverse-sorted
// input of n values yields exactly n(n-1)/2 Compare events.
func Bubble(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameBubble, values, func(a *Array, em *step.Emitter) bool {
		n := a.Len()
		for i := 0; i < n-1; i++ {
			for j := 0; j < n-1-i; j++ {
				x, y := a.At(j), a.At(j+1)
				if !em.Emitf(step.KindCompare, step.Pair{I: j, J: j + 1}, "compare %d and %d", x, y) {
					return false
				}
				if x > y {
					a.swap(j, j+1)
					if !em.Emitf(step.KindSwap, step.Pair{I: j, J: j + 1}, "swap %d and %d", x, y) {
						return false
					}
				}
			}
		}
		return true
	})
}

// Selection returns a selection sort producer. A Select event marks every
// new running minimum.
func Selection(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameSelection, values, func(a *Array, em *step.Emitter) bool {
		n := a.Len()
		for i := 0; i < n-1; i++ {
			minIdx := i
			for j := i + 1; j < n; j++ {
				if !em.Emitf(step.KindCompare, step.Pair{I: j, J: minIdx},
					"compare %d with min %d", a.At(j), a.At(minIdx)) {
					return false
				}
				if a.At(j) < a.At(minIdx) {
					minIdx = j
					if !em.Emitf(step.KindSelect, step.Slot{Pos: j, Value: a.At(j)}, "new min %d", a.At(j)) {
						return false
					}
				}
			}
			if minIdx != i {
				x, y := a.At(i), a.At(minIdx)
				a.swap(i, minIdx)
				if !em.Emitf(step.KindSwap, step.Pair{I: i, J: minIdx}, "swap %d and %d", x, y) {
					return false
				}
			}
		}
		return true
	})
}

// Insertion returns an insertion sort producer. The key walks left one
// adjacent swap at a time until the element before it is not larger.
func Insertion(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameInsertion, values, func(a *Array, em *step.Emitter) bool {
		for i := 1; i < a.Len(); i++ {
			for j := i; j > 0; j-- {
				x, y := a.At(j-1), a.At(j)
				if !em.Emitf(step.KindCompare, step.Pair{I: j - 1, J: j}, "compare %d and %d", x, y) {
					return false
				}
				if x <= y {
					break
				}
				a.swap(j-1, j)
				if !em.Emitf(step.KindSwap, step.Pair{I: j - 1, J: j}, "swap %d and %d", x, y) {
					return false
				}
			}
		}
		return true
	})
}
