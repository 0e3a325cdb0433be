package ll

import (
	"fmt"

	"github.com/npillmayer/ll1/ll/sparse"
	"golang.org/x/tools/container/intsets"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 5.3 LL(1) Parse Tables

// GrammarConflictError is returned by BuildTable if two productions compete for
// one table cell, i.e. if the grammar is not LL(1).
type GrammarConflictError struct {
	NonTerminal *Symbol
	Terminal    *Symbol     // lookahead terminal or end marker
	Existing    *Production // production already in the cell
	Competing   *Production // production which was to be entered
}

func (e *GrammarConflictError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): conflict at (%s, %s) between %s and %s",
		e.NonTerminal, e.Terminal, e.Existing, e.Competing)
}

// Table is an LL(1) parse table, mapping pairs of (non-terminal, lookahead) to
// productions. Tables are created by BuildTable and are immutable afterwards.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix // rows = non-terminals, columns = terminal values
}

// BuildTable constructs the LL(1) parse table for an analysed grammar.
// For every production A -> α:
//
//   - for every terminal a in FIRST(α), enter A -> α at (A, a)
//   - if α is nullable, enter A -> α at (A, b) for every b in FOLLOW(A)
//
// If a cell is already occupied by a different production, construction stops
// and a *GrammarConflictError is returned.
func BuildTable(ga *LLAnalysis) (*Table, error) {
	g := ga.Grammar()
	tracer().Debugf("=== build LL(1) table ==================================")
	t := &Table{
		g:      g,
		matrix: sparse.NewIntMatrix(g.NonTerminalCount(), g.TerminalCount(), sparse.DefaultNullValue),
	}
	for _, p := range g.productions {
		A := p.LHS
		var nullable bool
		if p.IsEpsilon() {
			nullable = true
		} else {
			var first *intsets.Sparse
			first, nullable = ga.first.Sequence(p.rhs)
			if err := t.enter(A, first, p); err != nil {
				return nil, err
			}
		}
		if nullable {
			if err := t.enter(A, ga.follow.sets[A.Value], p); err != nil {
				return nil, err
			}
		}
	}
	tracer().Infof("LL(1) table for %q has %d entries", g.Name, t.matrix.ValueCount())
	return t, nil
}

func (t *Table) enter(A *Symbol, lookaheads *intsets.Sparse, p *Production) error {
	for _, v := range lookaheads.AppendTo(nil) {
		if v == EpsilonValue {
			continue
		}
		a := t.g.terminals[v]
		if prev := t.matrix.Value(A.Value, v); prev != t.matrix.NullValue() && int(prev) != p.Serial {
			err := &GrammarConflictError{
				NonTerminal: A,
				Terminal:    a,
				Existing:    t.g.productions[prev],
				Competing:   p,
			}
			tracer().Errorf("%s", err.Error())
			return err
		}
		t.matrix.Set(A.Value, v, int32(p.Serial))
		tracer().Debugf("M[%s, %s] = %s", A, a, p)
	}
	return nil
}

// Grammar returns the grammar of the table.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Size returns the number of occupied cells.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

// Lookup returns the production at (A, a), or nil if the cell is empty.
// a is a terminal or the end marker.
func (t *Table) Lookup(A *Symbol, a *Symbol) *Production {
	if !A.IsNonTerminal() || a == nil || !(a.IsTerminal() || a.IsEndMarker()) {
		return nil
	}
	if A.Value >= t.matrix.M() || a.Value >= t.matrix.N() {
		return nil
	}
	if t.matrix.IsEmpty(A.Value, a.Value) {
		return nil
	}
	return t.g.productions[t.matrix.Value(A.Value, a.Value)]
}

// Lookaheads returns the terminals (and possibly '$') for which the table has
// an entry in the row of A, ordered by terminal value.
func (t *Table) Lookaheads(A *Symbol) []*Symbol {
	if !A.IsNonTerminal() || A.Value >= t.matrix.M() {
		return nil
	}
	var las []*Symbol
	t.matrix.Row(A.Value, func(j int, _ int32) {
		las = append(las, t.g.terminals[j])
	})
	return las
}

// Entry is an occupied table cell.
type Entry struct {
	NonTerminal *Symbol
	Terminal    *Symbol
	Production  *Production
}

func (e Entry) String() string {
	return fmt.Sprintf("M[%s, %s] = %s", e.NonTerminal, e.Terminal, e.Production)
}

// Entries returns all occupied cells, ordered by non-terminal, then terminal value.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.matrix.ValueCount())
	t.matrix.Each(func(i, j int, v int32) {
		entries = append(entries, Entry{
			NonTerminal: t.g.nonterminals[i],
			Terminal:    t.g.terminals[j],
			Production:  t.g.productions[v],
		})
	})
	return entries
}

// MissingEntry is a pair (non-terminal, lookahead) without a table entry.
type MissingEntry struct {
	NonTerminal *Symbol
	Terminal    *Symbol
}

func (m MissingEntry) String() string {
	return fmt.Sprintf("(%s, %s)", m.NonTerminal, m.Terminal)
}

// Validate lists every pair of non-terminal and terminal (or '$') which has no
// table entry, ordered by non-terminal, then terminal value. This is for
// diagnostics only: an empty cell is a syntax error to be found at parse time,
// not a defect of the table.
func (t *Table) Validate() []MissingEntry {
	var missing []MissingEntry
	for _, A := range t.g.nonterminals {
		for _, a := range t.g.terminals[EndMarkerValue:] {
			if t.matrix.IsEmpty(A.Value, a.Value) {
				missing = append(missing, MissingEntry{NonTerminal: A, Terminal: a})
			}
		}
	}
	tracer().Debugf("table has %d empty cells", len(missing))
	return missing
}
