// Package hanoi solves the Tower of Hanoi as a step producer.
//
// The classic recursion solve(n, src, aux, dst) moves n-1 discs out of the
// way, moves the largest disc, then moves the n-1 discs back on top. Every
// disc move is one Move event, so n discs yield exactly 2^n-1 events before
// the final Done. Pegs refuses any move that would put a larger disc on a
// smaller one.
package hanoi

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "hanoi"

// MaxDiscs bounds the puzzle size (2^12-1 = 4095 moves).
const MaxDiscs = 12

// Peg indices.
const (
	Source = iota
	Auxiliary
	Target
)

// PegNames names the pegs by index.
var PegNames = [3]string{"Source", "Auxiliary", "Target"}

var (
	// ErrDiscCount indicates a disc count outside 1..MaxDiscs.
	ErrDiscCount = step.InvalidInput("hanoi: disc count must be between 1 and 12")

	// ErrIllegalMove indicates a move from an empty peg, onto a smaller disc,
	// or between unknown pegs.
	ErrIllegalMove = errors.Mark(errors.New("hanoi: illegal move"), step.ErrStructuralViolation)
)

// Pegs is the puzzle container. Each peg lists disc sizes from base to top.
type Pegs struct {
	Discs int
	Pegs  [3][]int
	Moves int
}

// NewPegs stacks discs n..1 on the source peg.
func NewPegs(n int) *Pegs {
	p := &Pegs{Discs: n}
	for d := n; d >= 1; d-- {
		p.Pegs[Source] = append(p.Pegs[Source], d)
	}
	return p
}

// Top returns the top disc of peg i, or 0 when it is empty.
func (p *Pegs) Top(i int) int {
	if n := len(p.Pegs[i]); n > 0 {
		return p.Pegs[i][n-1]
	}
	return 0
}

// Move transfers the top disc of peg from onto peg to and returns its size.
// The move is refused with ErrIllegalMove if it would break the descending order.
func (p *Pegs) Move(from, to int) (int, error) {
	if from < 0 || from > 2 || to < 0 || to > 2 || from == to {
		return 0, errors.Wrapf(ErrIllegalMove, "peg %d to %d", from, to)
	}
	disc := p.Top(from)
	if disc == 0 {
		return 0, errors.Wrapf(ErrIllegalMove, "%s is empty", PegNames[from])
	}
	if top := p.Top(to); top != 0 && top < disc {
		return 0, errors.Wrapf(ErrIllegalMove, "disc %d onto disc %d", disc, top)
	}
	p.Pegs[from] = p.Pegs[from][:len(p.Pegs[from])-1]
	p.Pegs[to] = append(p.Pegs[to], disc)
	p.Moves++
	return disc, nil
}

// Valid reports whether every peg is strictly descending from base to top
// and all discs are accounted for.
func (p *Pegs) Valid() bool {
	total := 0
	for _, peg := range p.Pegs {
		for i := 1; i < len(peg); i++ {
			if peg[i] >= peg[i-1] {
				return false
			}
		}
		total += len(peg)
	}
	return total == p.Discs
}

// Clone implements step.State.
func (p *Pegs) Clone() *Pegs {
	c := &Pegs{Discs: p.Discs, Moves: p.Moves}
	for i := range p.Pegs {
		c.Pegs[i] = append([]int(nil), p.Pegs[i]...)
	}
	return c
}

// String renders one line per peg, e.g. "Source    | 3 2 1".
func (p *Pegs) String() string {
	var b strings.Builder
	for i, peg := range p.Pegs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-9s |", PegNames[i])
		for _, d := range peg {
			fmt.Fprintf(&b, " %d", d)
		}
	}
	return b.String()
}

// Solve returns a producer moving n discs from Source to Target.
func Solve(n int) (*step.Runner[*Pegs], error) {
	if n < 1 || n > MaxDiscs {
		return nil, ErrDiscCount
	}
	return step.NewRunner(Name, NewPegs(n), func(p *Pegs, em *step.Emitter) {
		if !solve(p, em, p.Discs, Source, Auxiliary, Target) {
			return
		}
		em.Emitf(step.KindDone, step.Values{Values: append([]int(nil), p.Pegs[Target]...)},
			"moved %d discs in %d moves", p.Discs, p.Moves)
	}), nil
}

func solve(p *Pegs, em *step.Emitter, n, src, aux, dst int) bool {
	if n == 0 {
		return true
	}
	if !solve(p, em, n-1, src, dst, aux) {
		return false
	}
	disc, err := p.Move(src, dst)
	if err != nil {
		panic(errors.WithAssertionFailure(err))
	}
	if !em.Emitf(step.KindMove, step.DiscMove{Disc: disc, From: src, To: dst},
		"move disc %d from %s to %s", disc, PegNames[src], PegNames[dst]) {
		return false
	}
	return solve(p, em, n-1, aux, src, dst)
}
