package knapsack

import (
	"github.com/katalvlaran/algostep/step"
)

// New returns a 0/1 knapsack producer over items and capacity.
//
// Algorithm Outline:
//  1. Let n = len(items). Allocate (n+1)x(capacity+1) table T, T[0][*] = 0.
//  2. For i = 1..n, for w = 0..capacity (row-major):
//     T[i][w] = T[i-1][w]                                  if weight[i-1] > w
//     T[i][w] = max(T[i-1][w], value[i-1] + T[i-1][w-weight[i-1]]) otherwise
//     Each write emits one TableUpdate.
//  3. Backtrack from (n, capacity): item i-1 is taken iff T[i][w] != T[i-1][w];
//     each taken item emits Select and reduces w by its weight.
//  4. Emit Done carrying the optimum.
//
// Complexity:
//
//	Time   = O(n·capacity)
//	Memory = O(n·capacity)
//
// Errors:
//   - ErrNoItems     : if items is empty.
//   - ErrBadCapacity : if capacity is outside 1..MaxCapacity.
//   - ErrBadItem     : if an item has weight <= 0 or value < 0.
func New(items []Item, capacity int) (*step.Runner[*Table], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, ErrBadCapacity
	}
	for _, it := range items {
		if it.Weight <= 0 || it.Value < 0 {
			return nil, ErrBadItem
		}
	}
	return step.NewRunner(Name, newTable(items, capacity), run), nil
}

func run(t *Table, em *step.Emitter) {
	if !fill(t, em) || !backtrack(t, em) {
		return
	}
	em.Emitf(step.KindDone, step.Values{Values: []int{t.Best()}}, "best value %d", t.Best())
}

// fill computes rows 1..n in row-major order.
func fill(t *Table, em *step.Emitter) bool {
	for i := 1; i <= len(t.Items); i++ {
		it := t.Items[i-1]
		prev, curr := t.Cells[i-1], t.Cells[i]
		for w := 0; w <= t.Capacity; w++ {
			v := prev[w]
			note := "skip item %d at capacity %d"
			if it.Weight <= w {
				if take := it.Value + prev[w-it.Weight]; take > v {
					v = take
					note = "take item %d at capacity %d"
				}
			}
			curr[w] = v
			t.Row, t.Col = i, w
			if !em.Emitf(step.KindTableUpdate, step.TableCell{Row: i, Col: w, Value: v}, note, i, w) {
				return false
			}
		}
	}
	return true
}

// backtrack walks from (n, capacity) up to row 1 selecting the taken items.
func backtrack(t *Table, em *step.Emitter) bool {
	w := t.Capacity
	for i := len(t.Items); i > 0; i-- {
		if t.Cells[i][w] == t.Cells[i-1][w] {
			continue
		}
		it := t.Items[i-1]
		t.Selected = append(t.Selected, i-1)
		if !em.Emitf(step.KindSelect, step.Item{Index: i - 1, Weight: it.Weight, Value: it.Value},
			"include item %d (weight %d, value %d)", i, it.Weight, it.Value) {
			return false
		}
		w -= it.Weight
	}
	return true
}
