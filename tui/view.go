package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/katalvlaran/algostep/avl"
	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

const maxBar = 40

// View draws a snapshot for the terminal. Arrays become bars, grids are
// coloured cell by cell and AVL trees are drawn as an indented tree; every
// other container uses its String form.
func View(snap step.Snapshot) string {
	switch s := snap.(type) {
	case nil:
		return ""
	case *sorting.Array:
		return bars(s.Values())
	case *gridgraph.Search:
		return grid(s.Grid)
	case *avl.Tree:
		if s.Root == nil {
			return "(empty)"
		}
		return avlTree(s.Root).String()
	default:
		return snap.String()
	}
}

func bars(values []int) string {
	top := 1
	for _, v := range values {
		top = max(top, v)
	}
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('\n')
		}
		n := max(v, 0) * maxBar / top
		fmt.Fprintf(&b, "%4d %s", v, BarStyle.Render(strings.Repeat("█", n)))
	}
	return b.String()
}

func grid(g *gridgraph.Grid) string {
	var b strings.Builder
	for r := range g.Height {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range g.Width {
			st := g.At(gridgraph.Coord{Row: r, Col: c})
			b.WriteString(cellStyles[st].Render(st.String()))
		}
	}
	return b.String()
}

func avlTree(n *avl.Node) *tree.Tree {
	t := tree.Root(strconv.Itoa(n.Value))
	if n.Left == nil && n.Right == nil {
		return t
	}
	for _, c := range []*avl.Node{n.Left, n.Right} {
		if c == nil {
			t.Child("-")
			continue
		}
		t.Child(avlTree(c))
	}
	return t
}
