package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

// NameBinary is the producer name of Binary.
const NameBinary = "binary-search"

// ErrUnsorted indicates that binary search input is not in non-decreasing order.
var ErrUnsorted = step.InvalidInput("search: binary search input must be sorted")

// Window is the binary search container: the sorted values and the live
// [Low, High] window. Mid is -1 before the first probe; Result is -1 until found.
type Window struct {
	Values []int
	Target int
	Low    int
	High   int
	Mid    int
	Result int
}

// Clone implements step.State.
func (w *Window) Clone() *Window {
	c := *w
	c.Values = append([]int(nil), w.Values...)
	return &c
}

// String marks the window with brackets and the probe with asterisks,
// e.g. "2 5 8 [12 *16* 23] 38 target=23".
func (w *Window) String() string {
	var b strings.Builder
	for i, v := range w.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == w.Low && w.Low <= w.High {
			b.WriteByte('[')
		}
		if i == w.Mid {
			fmt.Fprintf(&b, "*%d*", v)
		} else {
			fmt.Fprint(&b, v)
		}
		if i == w.High && w.Low <= w.High {
			b.WriteByte(']')
		}
	}
	fmt.Fprintf(&b, " target=%d", w.Target)
	return b.String()
}

// Binary returns a binary search producer for target over values.
// Returns ErrUnsorted if values are not in non-decreasing order.
func Binary(values []int, target int) (*step.Runner[*Window], error) {
	if !sorting.IsSorted(values) {
		return nil, ErrUnsorted
	}
	w := &Window{
		Values: append([]int(nil), values...),
		Target: target,
		High:   len(values) - 1,
		Mid:    -1,
		Result: -1,
	}
	return step.NewRunner(NameBinary, w, runBinary), nil
}

func runBinary(w *Window, em *step.Emitter) {
	if len(w.Values) == 0 {
		return
	}
	for w.Low <= w.High {
		w.Mid = (w.Low + w.High) / 2
		v := w.Values[w.Mid]
		if !em.Emitf(step.KindVisit, step.Slot{Pos: w.Mid, Value: v}, "probe index %d", w.Mid) {
			return
		}
		if !em.Emitf(step.KindCompare, step.Probe{Pos: w.Mid, Value: v, Target: w.Target},
			"compare %d with %d", v, w.Target) {
			return
		}
		switch {
		case v == w.Target:
			w.Result = w.Mid
			if !em.Emitf(step.KindFound, step.Outcome{Index: w.Mid}, "found %d at index %d", v, w.Mid) {
				return
			}
			em.Emit(step.KindDone, step.Outcome{Index: w.Mid}, "search finished")
			return
		case v < w.Target:
			w.Low = w.Mid + 1
		default:
			w.High = w.Mid - 1
		}
	}
	if !em.Emitf(step.KindNotFound, step.Outcome{Index: -1}, "%d is not present", w.Target) {
		return
	}
	em.Emit(step.KindDone, step.Outcome{Index: -1}, "search finished")
}
