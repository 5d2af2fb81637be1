package sorting

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algostep/step"
)

// ErrEmptyInput indicates that no values were supplied.
var ErrEmptyInput = step.InvalidInput("sorting: input must contain at least one value")

// Algorithm names, as reported by Producer.Name.
const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameMerge     = "merge"
	NameQuick     = "quick"
	NameHeap      = "heap"
)

// Array is the ordered sequence a sorting producer rearranges.
type Array struct {
	values []int
}

// NewArray copies values into a new Array.
func NewArray(values []int) *Array {
	return &Array{values: append([]int(nil), values...)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.values) }

// At returns the element at position i.
func (a *Array) At(i int) int { return a.values[i] }

// Values returns a copy of the elements.
func (a *Array) Values() []int { return append([]int(nil), a.values...) }

// Clone implements step.State.
func (a *Array) Clone() *Array { return NewArray(a.values) }

// String renders the array as "[5 1 4]".
func (a *Array) String() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (a *Array) swap(i, j int) { a.values[i], a.values[j] = a.values[j], a.values[i] }

func (a *Array) set(i, v int) { a.values[i] = v }

// IsSorted reports whether values are in non-decreasing order.
func IsSorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// Func builds a sorting producer from input values.
type Func func(values []int) (*step.Runner[*Array], error)

// All maps each algorithm name to its constructor.
var All = map[string]Func{
	NameBubble:    Bubble,
	NameSelection: Selection,
	NameInsertion: Insertion,
	NameMerge:     Merge,
	NameQuick:     Quick,
	NameHeap:      Heap,
}

func newRunner(name string, values []int, body func(*Array, *step.Emitter) bool) (*step.Runner[*Array], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return step.NewRunner(name, NewArray(values), func(a *Array, em *step.Emitter) {
		if !body(a, em) {
			return
		}
		em.Emit(step.KindDone, step.Values{Values: a.Values()}, "sorted")
	}), nil
}
