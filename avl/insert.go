package avl

import (
	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "avl"

// ErrNoValues indicates an empty list of values to insert.
var ErrNoValues = step.InvalidInput("avl: at least one value is required")

// Insert returns a producer inserting values, in order, into an empty tree.
func Insert(values []int) (*step.Runner[*Tree], error) {
	return InsertInto(&Tree{}, values)
}

// InsertInto returns a producer inserting values into a copy of t.
func InsertInto(t *Tree, values []int) (*step.Runner[*Tree], error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	vals := append([]int(nil), values...)
	return step.NewRunner(Name, t.Clone(), func(t *Tree, em *step.Emitter) {
		for _, v := range vals {
			if !insert(t, em, v) {
				return
			}
		}
		em.Emitf(step.KindDone, step.Values{Values: t.InOrder()},
			"%d nodes, height %d", t.Size, t.Height())
	}), nil
}

// insert adds v and rebalances. The descent path doubles as an explicit
// parent stack, so every rotation is linked into the tree before its event
// is emitted.
func insert(t *Tree, em *step.Emitter, v int) bool {
	if t.Contains(v) {
		return true
	}

	// 1) Descend, comparing against every node on the way.
	var path []*Node
	for n := t.Root; n != nil; {
		if !em.Emitf(step.KindCompare, step.Probe{Pos: len(path), Value: n.Value, Target: v},
			"compare %d with %d", v, n.Value) {
			return false
		}
		path = append(path, n)
		if v < n.Value {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	// 2) Attach the new leaf.
	leaf := &Node{Value: v, Height: 1}
	switch {
	case len(path) == 0:
		t.Root = leaf
	case v < path[len(path)-1].Value:
		path[len(path)-1].Left = leaf
	default:
		path[len(path)-1].Right = leaf
	}
	t.Size++
	if !em.Emitf(step.KindAssign, step.Slot{Pos: len(path), Value: v}, "insert %d at depth %d", v, len(path)) {
		return false
	}

	// 3) Walk back up updating heights and rotating where unbalanced.
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		update(n)
		relink := func(sub *Node) {
			switch {
			case i == 0:
				t.Root = sub
			case path[i-1].Left == n:
				path[i-1].Left = sub
			default:
				path[i-1].Right = sub
			}
		}
		rotate := func(c, dir string, before, after *Node) bool {
			return em.Emitf(step.KindRotate,
				step.Rotation{Case: c, Direction: dir, Before: before.Value, After: after.Value},
				"%s: rotate %s at %d", c, dir, before.Value)
		}

		b := balance(n)
		switch {
		case b > 1 && v < n.Left.Value:
			sub := rotateRight(n)
			relink(sub)
			if !rotate("LL", "right", n, sub) {
				return false
			}
		case b < -1 && v > n.Right.Value:
			sub := rotateLeft(n)
			relink(sub)
			if !rotate("RR", "left", n, sub) {
				return false
			}
		case b > 1:
			child := n.Left
			n.Left = rotateLeft(child)
			update(n)
			if !rotate("LR", "left", child, n.Left) {
				return false
			}
			sub := rotateRight(n)
			relink(sub)
			if !rotate("LR", "right", n, sub) {
				return false
			}
		case b < -1:
			child := n.Right
			n.Right = rotateRight(child)
			update(n)
			if !rotate("RL", "right", child, n.Right) {
				return false
			}
			sub := rotateLeft(n)
			relink(sub)
			if !rotate("RL", "left", n, sub) {
				return false
			}
		}
	}
	return true
}
