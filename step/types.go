package step

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Error taxonomy shared by all producer packages.
var (
	// ErrInvalidInput classifies malformed or out-of-range algorithm input.
	ErrInvalidInput = errors.New("step: invalid input")

	// ErrStructuralViolation classifies a mutation that would break a container invariant.
	ErrStructuralViolation = errors.New("step: structural violation")
)

// InvalidInput returns a new error carrying msg, marked as ErrInvalidInput.
func InvalidInput(msg string) error {
	return errors.Mark(errors.New(msg), ErrInvalidInput)
}

// Kind enumerates the event variants an algorithm can emit.
type Kind int

const (
	KindCompare Kind = iota
	KindSwap
	KindAssign
	KindVisit
	KindBacktrack
	KindTableUpdate
	KindSelect
	KindRotate
	KindMove
	KindFound
	KindNotFound
	KindDone
)

var kindNames = [...]string{
	KindCompare:     "compare",
	KindSwap:        "swap",
	KindAssign:      "assign",
	KindVisit:       "visit",
	KindBacktrack:   "backtrack",
	KindTableUpdate: "table-update",
	KindSelect:      "select",
	KindRotate:      "rotate",
	KindMove:        "move",
	KindFound:       "found",
	KindNotFound:    "not-found",
	KindDone:        "done",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// Payload is the variant-specific data of an Event. The set of payloads is closed.
type Payload interface {
	fmt.Stringer
	payload()
}

// Pair names two positions of a sequence (Compare, Swap).
type Pair struct{ I, J int }

// Slot names a sequence position and the value written to or read from it.
type Slot struct{ Pos, Value int }

// Probe is a comparison of the element at Pos against a search key.
type Probe struct{ Pos, Value, Target int }

// Cell is a grid coordinate.
type Cell struct{ Row, Col int }

// TableCell is a write of Value into a table at (Row, Col).
type TableCell struct{ Row, Col, Value int }

// Rotation describes one single tree rotation. Case is LL, RR, LR or RL,
// Direction is "left" or "right"; Before and After are the subtree roots.
type Rotation struct {
	Case      string
	Direction string
	Before    int
	After     int
}

// DiscMove moves Disc from peg From to peg To.
type DiscMove struct{ Disc, From, To int }

// Outcome is the result position of a search; -1 when nothing was found.
type Outcome struct{ Index int }

// Item is a knapsack item chosen during backtracking.
type Item struct{ Index, Weight, Value int }

// Values carries a final sequence of values.
type Values struct{ Values []int }

// Empty is a payload with no data.
type Empty struct{}

func (Pair) payload()      {}
func (Slot) payload()      {}
func (Probe) payload()     {}
func (Cell) payload()      {}
func (TableCell) payload() {}
func (Rotation) payload()  {}
func (DiscMove) payload()  {}
func (Outcome) payload()   {}
func (Item) payload()      {}
func (Values) payload()    {}
func (Empty) payload()     {}

func (p Pair) String() string      { return fmt.Sprintf("(%d,%d)", p.I, p.J) }
func (s Slot) String() string      { return fmt.Sprintf("[%d]=%d", s.Pos, s.Value) }
func (p Probe) String() string     { return fmt.Sprintf("[%d]=%d vs %d", p.Pos, p.Value, p.Target) }
func (c Cell) String() string      { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }
func (t TableCell) String() string { return fmt.Sprintf("[%d][%d]=%d", t.Row, t.Col, t.Value) }
func (r Rotation) String() string {
	return fmt.Sprintf("%s %s %d->%d", r.Case, r.Direction, r.Before, r.After)
}
func (m DiscMove) String() string { return fmt.Sprintf("disc %d: %d->%d", m.Disc, m.From, m.To) }
func (o Outcome) String() string  { return fmt.Sprintf("index %d", o.Index) }
func (i Item) String() string {
	return fmt.Sprintf("item %d (w=%d v=%d)", i.Index, i.Weight, i.Value)
}
func (Empty) String() string { return "" }

func (v Values) String() string {
	parts := make([]string, len(v.Values))
	for i, x := range v.Values {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Event is one observable step of an algorithm run.
type Event struct {
	// Seq is the 1-based position of the event within its run.
	Seq     int
	Kind    Kind
	Payload Payload
	Note    string
}

// String renders the event on one line, e.g. "#3 swap (0,1) swap 5 and 1".
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", e.Seq, e.Kind)
	if e.Payload != nil {
		if s := e.Payload.String(); s != "" {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
	if e.Note != "" {
		b.WriteString(": ")
		b.WriteString(e.Note)
	}
	return b.String()
}

// Snapshot is a read-only view of a producer's container.
type Snapshot interface {
	fmt.Stringer
}
