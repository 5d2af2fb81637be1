package sorting

import "github.com/katalvlaran/algostep/step"

// Heap returns a heapsort producer: build a max-heap bottom-up, then
// repeatedly swap the root behind the shrinking heap and sift down.
// Children are compared left first with a strict greater-than, so ties keep
// the parent in place.
func Heap(values []int) (*step.Runner[*Array], error) {
	return newRunner(NameHeap, values, func(a *Array, em *step.Emitter) bool {
		n := a.Len()
		for i := n/2 - 1; i >= 0; i-- {
			if !siftDown(a, em, n, i) {
				return false
			}
		}
		for end := n - 1; end > 0; end-- {
			x, y := a.At(0), a.At(end)
			a.swap(0, end)
			if !em.Emitf(step.KindSwap, step.Pair{I: 0, J: end}, "swap %d and %d", x, y) {
				return false
			}
			if !siftDown(a, em, end, 0) {
				return false
			}
		}
		return true
	})
}

// siftDown restores the heap property for the subtree rooted at i within a[:size].
func siftDown(a *Array, em *step.Emitter, size, i int) bool {
	for {
		largest := i
		for _, child := range [2]int{2*i + 1, 2*i + 2} {
			if child >= size {
				break
			}
			if !em.Emitf(step.KindCompare, step.Pair{I: child, J: largest},
				"compare %d and %d", a.At(child), a.At(largest)) {
				return false
			}
			if a.At(child) > a.At(largest) {
				largest = child
			}
		}
		if largest == i {
			return true
		}
		x, y := a.At(i), a.At(largest)
		a.swap(i, largest)
		if !em.Emitf(step.KindSwap, step.Pair{I: i, J: largest}, "swap %d and %d", x, y) {
			return false
		}
		i = largest
	}
}
