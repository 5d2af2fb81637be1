// Package knapsack solves the 0/1 knapsack problem with a dynamic programming
// table and reports every table write and every chosen item as step events.
package knapsack

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "knapsack"

// MaxCapacity bounds the table width.
const MaxCapacity = 10_000

var (
	// ErrNoItems indicates an empty item list.
	ErrNoItems = step.InvalidInput("knapsack: at least one item is required")

	// ErrBadCapacity indicates a capacity outside 1..MaxCapacity.
	ErrBadCapacity = step.InvalidInput("knapsack: capacity must be between 1 and 10000")

	// ErrBadItem indicates a non-positive weight or a negative value.
	ErrBadItem = step.InvalidInput("knapsack: item weight must be positive and value non-negative")
)

// Item is one candidate with its weight and value.
type Item struct {
	Weight int `yaml:"weight"`
	Value  int `yaml:"value"`
}

// Table is the DP container. Cells has len(Items)+1 rows and Capacity+1
// columns; row 0 is all zeros.
type Table struct {
	Items    []Item
	Capacity int
	Cells    [][]int
	// Row and Col locate the most recent write, -1 before the first one.
	Row, Col int
	// Selected lists the chosen item indices in backtracking order.
	Selected []int
}

func newTable(items []Item, capacity int) *Table {
	cells := make([][]int, len(items)+1)
	for i := range cells {
		cells[i] = make([]int, capacity+1)
	}
	return &Table{
		Items:    append([]Item(nil), items...),
		Capacity: capacity,
		Cells:    cells,
		Row:      -1,
		Col:      -1,
	}
}

// Clone implements step.State.
func (t *Table) Clone() *Table {
	c := newTable(t.Items, t.Capacity)
	for i := range t.Cells {
		copy(c.Cells[i], t.Cells[i])
	}
	c.Row, c.Col = t.Row, t.Col
	c.Selected = append([]int(nil), t.Selected...)
	return c
}

// Best returns the optimum stored at [n][capacity].
func (t *Table) Best() int { return t.Cells[len(t.Items)][t.Capacity] }

// String renders the table with go-pretty, one row per item prefix.
// The most recent write is wrapped in brackets.
func (t *Table) String() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, 0, t.Capacity+2)
	header = append(header, "item \\ w")
	for w := 0; w <= t.Capacity; w++ {
		header = append(header, w)
	}
	tw.AppendHeader(header)

	for i, row := range t.Cells {
		label := "-"
		if i > 0 {
			it := t.Items[i-1]
			label = fmt.Sprintf("%d (w%d v%d)", i, it.Weight, it.Value)
		}
		r := make(table.Row, 0, len(row)+1)
		r = append(r, label)
		for w, v := range row {
			if i == t.Row && w == t.Col {
				r = append(r, fmt.Sprintf("[%d]", v))
			} else {
				r = append(r, v)
			}
		}
		tw.AppendRow(r)
	}
	if len(t.Selected) > 0 {
		tw.AppendFooter(table.Row{fmt.Sprintf("best %d", t.Best())})
	}
	return tw.Render()
}
