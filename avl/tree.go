package avl

import (
	"strconv"
	"strings"
)

// Node is one tree node. Children are owned by their parent; there are no
// parent pointers.
type Node struct {
	Value  int
	Height int
	Left   *Node
	Right  *Node
}

// Tree is the AVL container.
type Tree struct {
	Root *Node
	Size int
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func balance(n *Node) int { return height(n.Left) - height(n.Right) }

func update(n *Node) { n.Height = 1 + max(height(n.Left), height(n.Right)) }

// rotateRight lifts n.Left above n and returns the new subtree root.
func rotateRight(n *Node) *Node {
	l := n.Left
	n.Left = l.Right
	l.Right = n
	update(n)
	update(l)
	return l
}

// rotateLeft lifts n.Right above n and returns the new subtree root.
func rotateLeft(n *Node) *Node {
	r := n.Right
	n.Right = r.Left
	r.Left = n
	update(n)
	update(r)
	return r
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree) Height() int { return height(t.Root) }

// Contains reports whether v is stored in the tree.
func (t *Tree) Contains(v int) bool {
	for n := t.Root; n != nil; {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// InOrder returns the stored values in ascending order.
func (t *Tree) InOrder() []int {
	out := make([]int, 0, t.Size)
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.Root)
	return out
}

// Balanced reports whether every node has a correct height, a balance
// within [-1, 1], and whether the in-order sequence is strictly increasing.
func (t *Tree) Balanced() bool {
	var check func(*Node) (int, bool)
	check = func(n *Node) (int, bool) {
		if n == nil {
			return 0, true
		}
		lh, lok := check(n.Left)
		rh, rok := check(n.Right)
		h := 1 + max(lh, rh)
		return h, lok && rok && n.Height == h && lh-rh <= 1 && rh-lh <= 1
	}
	if _, ok := check(t.Root); !ok {
		return false
	}
	vals := t.InOrder()
	for i := 1; i < len(vals); i++ {
		if vals[i-1] >= vals[i] {
			return false
		}
	}
	return len(vals) == t.Size
}

// Clone implements step.State with a deep copy.
func (t *Tree) Clone() *Tree {
	var cp func(*Node) *Node
	cp = func(n *Node) *Node {
		if n == nil {
			return nil
		}
		return &Node{Value: n.Value, Height: n.Height, Left: cp(n.Left), Right: cp(n.Right)}
	}
	return &Tree{Root: cp(t.Root), Size: t.Size}
}

// String renders the tree in prefix form, e.g. "6(5 7)"; a missing child is "-".
func (t *Tree) String() string {
	if t.Root == nil {
		return "(empty)"
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			b.WriteByte('-')
			return
		}
		b.WriteString(strconv.Itoa(n.Value))
		if n.Left == nil && n.Right == nil {
			return
		}
		b.WriteByte('(')
		walk(n.Left)
		b.WriteByte(' ')
		walk(n.Right)
		b.WriteByte(')')
	}
	walk(t.Root)
	return b.String()
}
