package ll

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/tools/container/intsets"
)

// === FIRST sets ============================================================

// FirstSets holds FIRST(A) for every non-terminal A of a grammar. FIRST of
// terminals, epsilon and the end marker is implicit: each maps to itself.
// Sets contain terminal values; EpsilonValue is a member if A can derive the
// empty string.
type FirstSets struct {
	g    *Grammar
	sets []*intsets.Sparse // indexed by non-terminal value
}

// ComputeFirst computes the FIRST sets for a grammar by fixpoint iteration.
// Every pass computes a fresh generation of sets from the previous one, until
// a pass changes nothing. Every set is a growing subset of a finite set of
// terminals, thus the iteration terminates.
func ComputeFirst(g *Grammar) *FirstSets {
	cur := newSets(len(g.nonterminals))
	lookup := func(A *Symbol) *intsets.Sparse {
		return firstOf(A, cur)
	}
	pass := 0
	for changed := true; changed; {
		pass++
		next := copySets(cur)
		for _, p := range g.productions {
			f, nullable := firstOfSequence(p.rhs, lookup)
			if nullable {
				f.Insert(EpsilonValue)
			}
			next[p.LHS.Value].UnionWith(f)
		}
		changed = setsDiffer(g, "FIRST", pass, cur, next)
		cur = next
	}
	tracer().Debugf("FIRST sets stable after %d passes", pass)
	return &FirstSets{g: g, sets: cur}
}

// First returns FIRST(A) for any grammar symbol A. The returned set is a copy.
func (fs *FirstSets) First(A *Symbol) *intsets.Sparse {
	r := &intsets.Sparse{}
	r.Copy(firstOf(A, fs.sets))
	return r
}

// Sequence returns FIRST(X1 … Xn) without epsilon, together with a flag telling
// if every Xi may derive the empty string. The empty sequence is nullable.
func (fs *FirstSets) Sequence(syms []*Symbol) (*intsets.Sparse, bool) {
	return firstOfSequence(syms, func(A *Symbol) *intsets.Sparse {
		return firstOf(A, fs.sets)
	})
}

// Nullable returns true if A may derive the empty string.
func (fs *FirstSets) Nullable(A *Symbol) bool {
	return firstOf(A, fs.sets).Has(EpsilonValue)
}

func (fs *FirstSets) String() string {
	var b bytes.Buffer
	for _, A := range fs.g.nonterminals {
		b.WriteString(fmt.Sprintf("FIRST(%s) = %s\n", A, fs.g.SetString(fs.sets[A.Value])))
	}
	return b.String()
}

// firstOf returns FIRST(A), given the FIRST sets of the non-terminals.
// Must not be modified by the caller.
func firstOf(A *Symbol, sets []*intsets.Sparse) *intsets.Sparse {
	if A.IsNonTerminal() {
		return sets[A.Value]
	}
	s := &intsets.Sparse{}
	s.Insert(A.Value) // terminals, epsilon and '$' map to themselves
	return s
}

// Scan X1 … Xn from left to right, collecting FIRST(Xi) \ {epsilon}, and stop
// at the first Xi which is not nullable.
func firstOfSequence(syms []*Symbol, first func(*Symbol) *intsets.Sparse) (*intsets.Sparse, bool) {
	f := &intsets.Sparse{}
	for _, A := range syms {
		fA := first(A)
		f.UnionWith(fA)
		f.Remove(EpsilonValue)
		if !fA.Has(EpsilonValue) {
			return f, false
		}
	}
	return f, true
}

// === FOLLOW sets ===========================================================

// FollowSets holds FOLLOW(A) for every non-terminal A of a grammar. Sets contain
// terminal values and possibly EndMarkerValue.
type FollowSets struct {
	g    *Grammar
	sets []*intsets.Sparse // indexed by non-terminal value
}

// ComputeFollow computes the FOLLOW sets for a grammar by fixpoint iteration,
// given the grammar's FIRST sets. FOLLOW(start) is seeded with '$'.
func ComputeFollow(g *Grammar, first *FirstSets) *FollowSets {
	cur := newSets(len(g.nonterminals))
	cur[g.start.Value].Insert(EndMarkerValue)
	pass := 0
	for changed := true; changed; {
		pass++
		next := copySets(cur)
		for _, p := range g.productions {
			for i, X := range p.rhs {
				if !X.IsNonTerminal() {
					continue
				}
				f, nullable := first.Sequence(p.rhs[i+1:])
				next[X.Value].UnionWith(f)
				if nullable {
					next[X.Value].UnionWith(cur[p.LHS.Value])
				}
			}
		}
		changed = setsDiffer(g, "FOLLOW", pass, cur, next)
		cur = next
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", pass)
	return &FollowSets{g: g, sets: cur}
}

// Follow returns FOLLOW(A) for a non-terminal A, or nil for other symbols.
// The returned set is a copy.
func (fs *FollowSets) Follow(A *Symbol) *intsets.Sparse {
	if !A.IsNonTerminal() {
		return nil
	}
	r := &intsets.Sparse{}
	r.Copy(fs.sets[A.Value])
	return r
}

func (fs *FollowSets) String() string {
	var b bytes.Buffer
	for _, A := range fs.g.nonterminals {
		b.WriteString(fmt.Sprintf("FOLLOW(%s) = %s\n", A, fs.g.SetString(fs.sets[A.Value])))
	}
	return b.String()
}

// --- Set helpers -----------------------------------------------------------

// setsDiffer compares two generations of sets, where next[i] ⊇ cur[i]. The
// bool returned by intsets.Sparse.UnionWith cannot be used for this: it may
// report a change for a subset.
func setsDiffer(g *Grammar, name string, pass int, cur, next []*intsets.Sparse) bool {
	differ := false
	for i := range next {
		if next[i].Len() != cur[i].Len() {
			tracer().Debugf("%s pass %d: %s grows to %s", name, pass, g.nonterminals[i],
				g.SetString(next[i]))
			differ = true
		}
	}
	return differ
}

func newSets(n int) []*intsets.Sparse {
	sets := make([]*intsets.Sparse, n)
	for i := range sets {
		sets[i] = &intsets.Sparse{}
	}
	return sets
}

// intsets.Sparse must not be copied by assignment.
func copySets(sets []*intsets.Sparse) []*intsets.Sparse {
	c := make([]*intsets.Sparse, len(sets))
	for i, s := range sets {
		c[i] = &intsets.Sparse{}
		c[i].Copy(s)
	}
	return c
}

// SetTerminals resolves a set of terminal values to grammar symbols, in order of value.
func (g *Grammar) SetTerminals(set *intsets.Sparse) []*Symbol {
	vals := set.AppendTo(nil)
	syms := make([]*Symbol, 0, len(vals))
	for _, v := range vals {
		if A := g.Terminal(v); A != nil {
			syms = append(syms, A)
		}
	}
	return syms
}

// SetString renders a set of terminal values as a set of symbol names, e.g. "{ $ + ) }".
func (g *Grammar) SetString(set *intsets.Sparse) string {
	syms := g.SetTerminals(set)
	if len(syms) == 0 {
		return "{ }"
	}
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return "{ " + strings.Join(names, " ") + " }"
}

// === Grammar Analysis ======================================================

// LLAnalysis is an object for grammar analysis (computing FIRST and FOLLOW sets).
// Once created it is immutable and may be shared between parsers.
type LLAnalysis struct {
	g      *Grammar
	first  *FirstSets
	follow *FollowSets
}

// Analysis creates an analyser for a grammar and computes its FIRST and FOLLOW sets.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// FirstSets returns the FIRST sets of the grammar.
func (ga *LLAnalysis) FirstSets() *FirstSets {
	return ga.first
}

// FollowSets returns the FOLLOW sets of the grammar.
func (ga *LLAnalysis) FollowSets() *FollowSets {
	return ga.follow
}

// First returns FIRST(A).
func (ga *LLAnalysis) First(A *Symbol) *intsets.Sparse {
	return ga.first.First(A)
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (ga *LLAnalysis) Follow(A *Symbol) *intsets.Sparse {
	return ga.follow.Follow(A)
}

// FirstOfSequence returns FIRST(X1 … Xn) without epsilon and a flag telling
// whether the sequence may derive the empty string.
func (ga *LLAnalysis) FirstOfSequence(syms []*Symbol) (*intsets.Sparse, bool) {
	return ga.first.Sequence(syms)
}

// Nullable returns true if A may derive the empty string.
func (ga *LLAnalysis) Nullable(A *Symbol) bool {
	return ga.first.Nullable(A)
}

// Dump is a debugging helper, writing FIRST and FOLLOW sets to the trace,
// ordered by name.
func (ga *LLAnalysis) Dump() {
	names := treeset.NewWithStringComparator()
	ga.g.EachNonTerminal(func(A *Symbol) interface{} {
		names.Add(A.Name)
		return nil
	})
	it := names.Iterator()
	for it.Next() {
		A := ga.g.SymbolByName(it.Value().(string))
		tracer().Debugf("FIRST(%s) = %s   FOLLOW(%s) = %s", A, ga.g.SetString(ga.First(A)),
			A, ga.g.SetString(ga.Follow(A)))
	}
}
