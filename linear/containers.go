package linear

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity used when none is given.
const DefaultCapacity = 8

// Stack is a bounded LIFO of ints.
type Stack struct {
	items    []int
	capacity int
}

// NewStack returns an empty stack holding at most capacity values.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]int, 0, capacity), capacity: capacity}
}

// Len returns the number of stored values.
func (s *Stack) Len() int { return len(s.items) }

// Cap returns the capacity.
func (s *Stack) Cap() int { return s.capacity }

// Push adds v on top. It reports false on overflow.
func (s *Stack) Push(v int) bool {
	if len(s.items) == s.capacity {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Pop removes and returns the top value. It reports false on underflow.
func (s *Stack) Pop() (int, bool) {
	n := len(s.items)
	if n == 0 {
		return 0, false
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// Values returns the contents from bottom to top.
func (s *Stack) Values() []int { return append([]int(nil), s.items...) }

// Clone returns a deep copy.
func (s *Stack) Clone() *Stack {
	c := NewStack(s.capacity)
	c.items = append(c.items, s.items...)
	return c
}

// String renders "bottom [10 20] top (2/8)".
func (s *Stack) String() string {
	return fmt.Sprintf("bottom %s top (%d/%d)", join(s.items), len(s.items), s.capacity)
}

// Queue is a bounded FIFO of ints backed by a ring buffer.
type Queue struct {
	ring  []int
	front int
	size  int
}

// NewQueue returns an empty queue holding at most capacity values.
func NewQueue(capacity int) *Queue {
	return &Queue{ring: make([]int, capacity)}
}

// Len returns the number of stored values.
func (q *Queue) Len() int { return q.size }

// Cap returns the capacity.
func (q *Queue) Cap() int { return len(q.ring) }

// Enqueue appends v at the rear and returns the ring slot used.
// It reports false on overflow.
func (q *Queue) Enqueue(v int) (int, bool) {
	if q.size == len(q.ring) {
		return 0, false
	}
	slot := (q.front + q.size) % len(q.ring)
	q.ring[slot] = v
	q.size++
	return slot, true
}

// Dequeue removes the front value and returns it with its ring slot.
// It reports false on underflow.
func (q *Queue) Dequeue() (v, slot int, ok bool) {
	if q.size == 0 {
		return 0, 0, false
	}
	slot = q.front
	v = q.ring[slot]
	q.front = (q.front + 1) % len(q.ring)
	q.size--
	return v, slot, true
}

// Peek returns the front value and its ring slot without removing it.
func (q *Queue) Peek() (v, slot int, ok bool) {
	if q.size == 0 {
		return 0, 0, false
	}
	return q.ring[q.front], q.front, true
}

// Values returns the contents from front to rear.
func (q *Queue) Values() []int {
	out := make([]int, q.size)
	for i := range out {
		out[i] = q.ring[(q.front+i)%len(q.ring)]
	}
	return out
}

// Clone returns a deep copy.
func (q *Queue) Clone() *Queue {
	c := *q
	c.ring = append([]int(nil), q.ring...)
	return &c
}

// String renders "front [10 20] rear (2/8)".
func (q *Queue) String() string {
	return fmt.Sprintf("front %s rear (%d/%d)", join(q.Values()), q.size, len(q.ring))
}

func join(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
