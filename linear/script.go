package linear

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// Producer names.
const (
	NameStack = "stack"
	NameQueue = "queue"
)

var (
	// ErrBadCapacity indicates a capacity below one.
	ErrBadCapacity = step.InvalidInput("linear: capacity must be positive")

	// ErrBadOp indicates an unknown operation or one that does not apply to
	// the chosen container.
	ErrBadOp = step.InvalidInput("linear: invalid operation")
)

// OpCode names an operation.
type OpCode string

const (
	OpPush    OpCode = "push"
	OpPop     OpCode = "pop"
	OpEnqueue OpCode = "enqueue"
	OpDequeue OpCode = "dequeue"
	OpPeek    OpCode = "peek"
)

// Op is one scripted operation. Value is used by push and enqueue only.
type Op struct {
	Code  OpCode
	Value int
}

// String renders the op the way ParseOp reads it.
func (o Op) String() string {
	if o.Code == OpPush || o.Code == OpEnqueue {
		return fmt.Sprintf("%s %d", o.Code, o.Value)
	}
	return string(o.Code)
}

// ParseOp reads "push 42", "pop", "enqueue 7", "dequeue" or "peek".
func ParseOp(s string) (Op, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Op{}, errors.Wrap(ErrBadOp, "empty operation")
	}
	op := Op{Code: OpCode(fields[0])}
	switch op.Code {
	case OpPush, OpEnqueue:
		if len(fields) != 2 {
			return Op{}, errors.Wrapf(ErrBadOp, "%q needs one value", s)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return Op{}, errors.Wrapf(ErrBadOp, "%q: %v", s, err)
		}
		op.Value = v
	case OpPop, OpDequeue, OpPeek:
		if len(fields) != 1 {
			return Op{}, errors.Wrapf(ErrBadOp, "%q takes no value", s)
		}
	default:
		return Op{}, errors.Wrapf(ErrBadOp, "unknown operation %q", fields[0])
	}
	return op, nil
}

// ParseOps parses every entry with ParseOp.
func ParseOps(lines []string) ([]Op, error) {
	ops := make([]Op, 0, len(lines))
	for _, l := range lines {
		op, err := ParseOp(l)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Script is the container of a scripted run: exactly one of Stack or Queue
// is set.
type Script struct {
	Stack    *Stack
	Queue    *Queue
	Applied  int
	Rejected int
}

// Clone implements step.State.
func (s *Script) Clone() *Script {
	c := &Script{Applied: s.Applied, Rejected: s.Rejected}
	if s.Stack != nil {
		c.Stack = s.Stack.Clone()
	}
	if s.Queue != nil {
		c.Queue = s.Queue.Clone()
	}
	return c
}

// String renders the container.
func (s *Script) String() string {
	if s.Stack != nil {
		return s.Stack.String()
	}
	return s.Queue.String()
}

// Values returns the contents in container order.
func (s *Script) Values() []int {
	if s.Stack != nil {
		return s.Stack.Values()
	}
	return s.Queue.Values()
}

// RunStack returns a producer applying ops to an empty stack.
func RunStack(capacity int, ops []Op) (*step.Runner[*Script], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if err := check(ops, OpPush, OpPop, OpPeek); err != nil {
		return nil, err
	}
	return newScript(NameStack, &Script{Stack: NewStack(capacity)}, ops), nil
}

// RunQueue returns a producer applying ops to an empty queue.
func RunQueue(capacity int, ops []Op) (*step.Runner[*Script], error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if err := check(ops, OpEnqueue, OpDequeue, OpPeek); err != nil {
		return nil, err
	}
	return newScript(NameQueue, &Script{Queue: NewQueue(capacity)}, ops), nil
}

func check(ops []Op, allowed ...OpCode) error {
	for i, op := range ops {
		ok := false
		for _, a := range allowed {
			ok = ok || op.Code == a
		}
		if !ok {
			return errors.Wrapf(ErrBadOp, "op %d: %s", i, op)
		}
	}
	return nil
}

func newScript(name string, initial *Script, ops []Op) *step.Runner[*Script] {
	ops = append([]Op(nil), ops...)
	return step.NewRunner(name, initial, func(s *Script, em *step.Emitter) {
		for _, op := range ops {
			kind, p, note, ok := s.apply(op)
			if !ok {
				s.Rejected++
				continue
			}
			s.Applied++
			if !em.Emit(kind, p, note) {
				return
			}
		}
		em.Emitf(step.KindDone, step.Values{Values: s.Values()},
			"%d applied, %d refused", s.Applied, s.Rejected)
	})
}

// apply runs op and describes its event. ok is false when the container
// refused the operation.
func (s *Script) apply(op Op) (kind step.Kind, p step.Payload, note string, ok bool) {
	switch {
	case s.Stack != nil:
		st := s.Stack
		switch op.Code {
		case OpPush:
			if !st.Push(op.Value) {
				return
			}
			return step.KindAssign, step.Slot{Pos: st.Len() - 1, Value: op.Value},
				fmt.Sprintf("push %d", op.Value), true
		case OpPop:
			pos := st.Len() - 1
			v, popped := st.Pop()
			if !popped {
				return
			}
			return step.KindMove, step.Slot{Pos: pos, Value: v}, fmt.Sprintf("pop %d", v), true
		case OpPeek:
			v, has := st.Peek()
			if !has {
				return
			}
			return step.KindSelect, step.Slot{Pos: st.Len() - 1, Value: v}, fmt.Sprintf("peek %d", v), true
		}
	default:
		q := s.Queue
		switch op.Code {
		case OpEnqueue:
			slot, added := q.Enqueue(op.Value)
			if !added {
				return
			}
			return step.KindAssign, step.Slot{Pos: slot, Value: op.Value},
				fmt.Sprintf("enqueue %d", op.Value), true
		case OpDequeue:
			v, slot, removed := q.Dequeue()
			if !removed {
				return
			}
			return step.KindMove, step.Slot{Pos: slot, Value: v}, fmt.Sprintf("dequeue %d", v), true
		case OpPeek:
			v, slot, has := q.Peek()
			if !has {
				return
			}
			return step.KindSelect, step.Slot{Pos: slot, Value: v}, fmt.Sprintf("peek %d", v), true
		}
	}
	return
}
