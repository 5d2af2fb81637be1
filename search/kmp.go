package search

import (
	"strings"

	"github.com/katalvlaran/algostep/step"
)

// NameKMP is the producer name of KMP.
const NameKMP = "kmp"

// ErrEmptyPattern indicates an empty KMP pattern.
var ErrEmptyPattern = step.InvalidInput("search: pattern must not be empty")

// Matcher is the KMP container: text, pattern, prefix table and cursors.
// Positions count runes, not bytes.
type Matcher struct {
	Text    []rune
	Pattern []rune
	LPS     []int
	I, J    int
	Matches []int
}

// Clone implements step.State.
func (m *Matcher) Clone() *Matcher {
	c := *m
	c.Text = append([]rune(nil), m.Text...)
	c.Pattern = append([]rune(nil), m.Pattern...)
	c.LPS = append([]int(nil), m.LPS...)
	c.Matches = append([]int(nil), m.Matches...)
	return &c
}

// String renders the text with the pattern aligned under the current
// attempt and a caret under the character being tested.
func (m *Matcher) String() string {
	var b strings.Builder
	b.WriteString(string(m.Text))
	b.WriteByte('\n')
	offset := m.I - m.J
	if offset < 0 {
		offset = 0
	}
	b.WriteString(strings.Repeat(" ", offset))
	b.WriteString(string(m.Pattern))
	b.WriteByte('\n')
	if m.I < len(m.Text) {
		b.WriteString(strings.Repeat(" ", m.I))
		b.WriteByte('^')
	}
	return b.String()
}

// LPS returns the longest proper prefix which is also a suffix for every
// prefix of pattern.
func LPS(pattern []rune) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// KMP returns a producer reporting every (possibly overlapping) occurrence of
// pattern in text.
func KMP(text, pattern string) (*step.Runner[*Matcher], error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	p := []rune(pattern)
	m := &Matcher{Text: []rune(text), Pattern: p, LPS: LPS(p)}
	return step.NewRunner(NameKMP, m, runKMP), nil
}

func runKMP(m *Matcher, em *step.Emitter) {
	n, k := len(m.Text), len(m.Pattern)
	for m.I < n {
		if !em.Emitf(step.KindCompare, step.Pair{I: m.I, J: m.J},
			"compare text[%d]=%c with pattern[%d]=%c", m.I, m.Text[m.I], m.J, m.Pattern[m.J]) {
			return
		}
		switch {
		case m.Text[m.I] == m.Pattern[m.J]:
			m.I++
			m.J++
			if m.J == k {
				start := m.I - k
				m.Matches = append(m.Matches, start)
				m.J = m.LPS[m.J-1]
				if !em.Emitf(step.KindFound, step.Outcome{Index: start}, "match at index %d", start) {
					return
				}
			}
		case m.J > 0:
			m.J = m.LPS[m.J-1]
		default:
			m.I++
		}
	}
	if len(m.Matches) == 0 {
		if !em.Emit(step.KindNotFound, step.Outcome{Index: -1}, "pattern not found") {
			return
		}
	}
	em.Emitf(step.KindDone, step.Values{Values: append([]int(nil), m.Matches...)},
		"%d match(es)", len(m.Matches))
}
