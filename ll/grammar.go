package ll

import (
	"fmt"
	"strings"
)

// === Productions ===========================================================

// Production is a grammar rule A -> X1 … Xn. Every production is owned by
// exactly one non-terminal, its left hand side. An empty alternative is
// represented as the single-symbol sequence [epsilon].
type Production struct {
	Serial int     // position of the production within the grammar
	LHS    *Symbol // left hand side, a non-terminal
	rhs    []*Symbol
}

// RHS returns a copy of the right hand side of a production.
func (p *Production) RHS() []*Symbol {
	return append([]*Symbol(nil), p.rhs...)
}

// Len returns the number of symbols on the right hand side. An epsilon
// production has length 1.
func (p *Production) Len() int {
	return len(p.rhs)
}

// Symbol returns the i-th symbol of the right hand side.
func (p *Production) Symbol(i int) *Symbol {
	return p.rhs[i]
}

// IsEpsilon returns true for productions A -> epsilon.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsEpsilon()
}

// RHSString returns the right hand side as a space separated list of symbols.
func (p *Production) RHSString() string {
	names := make([]string, len(p.rhs))
	for i, A := range p.rhs {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

func (p *Production) String() string {
	return p.LHS.Name + " -> " + p.RHSString()
}

func (p *Production) equalRHS(rhs []*Symbol) bool {
	if len(p.rhs) != len(rhs) {
		return false
	}
	for i := range rhs {
		if p.rhs[i] != rhs[i] {
			return false
		}
	}
	return true
}

// === Grammars ==============================================================

// Grammar is a context-free grammar. Grammars are created by a GrammarBuilder
// (or by loading them from text) and are immutable afterwards.
type Grammar struct {
	Name         string
	start        *Symbol
	terminals    []*Symbol // indexed by value; [0] = epsilon, [1] = end marker
	nonterminals []*Symbol // indexed by value
	symbols      map[string]*Symbol
	productions  []*Production   // in order of definition
	byLHS        [][]*Production // indexed by non-terminal value
}

// Start returns the start symbol of the grammar, i.e. the left hand side of the
// first production.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.productions)
}

// Production returns production number n (0…Size()-1), or nil.
func (g *Grammar) Production(n int) *Production {
	if n < 0 || n >= len(g.productions) {
		return nil
	}
	return g.productions[n]
}

// Productions returns all productions of the grammar in order of definition.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.productions...)
}

// ProductionsFor returns the productions for non-terminal A, in order of definition.
func (g *Grammar) ProductionsFor(A *Symbol) []*Production {
	if !A.IsNonTerminal() || A.Value >= len(g.byLHS) || g.nonterminals[A.Value] != A {
		return nil
	}
	return append([]*Production(nil), g.byLHS[A.Value]...)
}

// SymbolByName finds a grammar symbol. "epsilon" and "$" resolve to Epsilon and
// EndMarker respectively. Returns nil if no symbol of that name exists.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// Terminal returns the terminal with a given value, or nil. Values 0 and 1 denote
// epsilon and the end marker.
func (g *Grammar) Terminal(value int) *Symbol {
	if value < 0 || value >= len(g.terminals) {
		return nil
	}
	return g.terminals[value]
}

// NonTerminal returns the non-terminal with a given value, or nil.
func (g *Grammar) NonTerminal(value int) *Symbol {
	if value < 0 || value >= len(g.nonterminals) {
		return nil
	}
	return g.nonterminals[value]
}

// TerminalCount returns the number of terminal values in use, including
// epsilon and the end marker.
func (g *Grammar) TerminalCount() int {
	return len(g.terminals)
}

// NonTerminalCount returns the number of non-terminals.
func (g *Grammar) NonTerminalCount() int {
	return len(g.nonterminals)
}

// EachTerminal iterates over all terminals of the grammar (not including epsilon
// and the end marker), in order of value, executing a mapper function.
// The results of the mapper calls are collected.
func (g *Grammar) EachTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals[firstUserValue:] {
		r = append(r, mapper(A))
	}
	return r
}

// EachNonTerminal iterates over all non-terminals of the grammar, in order of value,
// executing a mapper function.
func (g *Grammar) EachNonTerminal(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// Dump is a debugging helper. It writes the grammar to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol: %s", g.start)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Grammar Builder =======================================================

// Symbol classification requested by a builder client.
type symbolHint int8

const (
	inferred symbolHint = iota
	forceNonTerminal
	forceTerminal
	forceEpsilon
)

type rawSymbol struct {
	name string
	hint symbolHint
}

type rawRule struct {
	lhs string
	rhs []rawSymbol
}

// GrammarBuilder is a builder type for grammars. Clients add rules one at a
// time and finally call Grammar(), which classifies all symbols and checks the
// grammar for consistency.
type GrammarBuilder struct {
	name     string
	rules    []*rawRule
	declared []string
}

// NewGrammarBuilder creates a new grammar builder, given the name of the grammar.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// DeclareNonTerminals declares a set of non-terminals up front. Declared
// non-terminals must have at least one production when Grammar() is called.
func (gb *GrammarBuilder) DeclareNonTerminals(names ...string) *GrammarBuilder {
	gb.declared = append(gb.declared, names...)
	return gb
}

// Add adds a production lhs -> rhs. Symbols of rhs are classified by Grammar().
// The literal "epsilon" denotes the empty string.
func (gb *GrammarBuilder) Add(lhs string, rhs ...string) *GrammarBuilder {
	r := gb.LHS(lhs)
	for _, name := range rhs {
		r.S(name)
	}
	r.End()
	return gb
}

// LHS starts a new rule with left hand side lhs.
//
//    b.LHS("S").N("A").T("a").End()    // S -> A a
//
func (gb *GrammarBuilder) LHS(lhs string) *RuleBuilder {
	return &RuleBuilder{gb: gb, rule: &rawRule{lhs: lhs}}
}

// RuleBuilder collects the right hand side of a rule. Created by GrammarBuilder.LHS().
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *rawRule
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rawSymbol{name, forceNonTerminal})
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rawSymbol{name, forceTerminal})
	return rb
}

// S appends a symbol to the right hand side, leaving its classification to the
// grammar builder.
func (rb *RuleBuilder) S(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rawSymbol{name, inferred})
	return rb
}

// End completes a rule. A rule with an empty right hand side is an epsilon-rule.
func (rb *RuleBuilder) End() {
	rb.gb.rules = append(rb.gb.rules, rb.rule)
}

// Epsilon completes a rule A -> epsilon.
func (rb *RuleBuilder) Epsilon() {
	rb.rule.rhs = append(rb.rule.rhs, rawSymbol{Epsilon.Name, forceEpsilon})
	rb.End()
}

// Grammar returns the grammar built so far. Symbol classification is done in
// two passes: first every left hand side becomes a non-terminal, then every
// right hand side symbol which is not a non-terminal becomes a terminal.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no productions", gb.name)
	}
	g := &Grammar{
		Name:      gb.name,
		terminals: []*Symbol{Epsilon, EndMarker},
		symbols:   map[string]*Symbol{Epsilon.Name: Epsilon, EndMarker.Name: EndMarker},
	}
	// pass 1: non-terminals
	for _, r := range gb.rules {
		if err := checkName(r.lhs); err != nil {
			return nil, fmt.Errorf("invalid left hand side: %w", err)
		}
		g.defineNonTerminal(r.lhs)
	}
	for _, name := range gb.declared {
		if err := checkName(name); err != nil {
			return nil, fmt.Errorf("invalid non-terminal declaration: %w", err)
		}
		g.defineNonTerminal(name)
	}
	g.byLHS = make([][]*Production, len(g.nonterminals))
	g.start = g.symbols[gb.rules[0].lhs]
	// pass 2: terminals and productions
	for _, r := range gb.rules {
		rhs := make([]*Symbol, 0, len(r.rhs))
		for _, raw := range r.rhs {
			A, err := g.classify(raw)
			if err != nil {
				return nil, fmt.Errorf("rule for %s: %w", r.lhs, err)
			}
			if !A.IsEpsilon() {
				rhs = append(rhs, A)
			}
		}
		if len(rhs) == 0 {
			rhs = append(rhs, Epsilon)
		}
		g.addProduction(g.symbols[r.lhs], rhs)
	}
	for _, A := range g.nonterminals {
		if len(g.byLHS[A.Value]) == 0 {
			return nil, fmt.Errorf("non-terminal %s has no productions", A)
		}
	}
	tracer().Debugf("grammar %q: %d productions, %d non-terminals, %d terminals",
		g.Name, len(g.productions), len(g.nonterminals), len(g.terminals)-firstUserValue)
	return g, nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty symbol name")
	case name == Epsilon.Name || name == EndMarker.Name:
		return fmt.Errorf("symbol name %q is reserved", name)
	case strings.ContainsAny(name, " \t\r\n"):
		return fmt.Errorf("symbol name %q contains whitespace", name)
	}
	return nil
}

func (g *Grammar) defineNonTerminal(name string) {
	if _, ok := g.symbols[name]; ok {
		return
	}
	A := &Symbol{Name: name, Value: len(g.nonterminals), kind: NonTerminalSymbol}
	g.nonterminals = append(g.nonterminals, A)
	g.symbols[name] = A
}

func (g *Grammar) classify(raw rawSymbol) (*Symbol, error) {
	if raw.hint == forceEpsilon || (raw.hint == inferred && raw.name == Epsilon.Name) {
		return Epsilon, nil
	}
	if err := checkName(raw.name); err != nil {
		return nil, err
	}
	A, known := g.symbols[raw.name]
	switch raw.hint {
	case forceNonTerminal:
		if !known || !A.IsNonTerminal() {
			return nil, fmt.Errorf("non-terminal %s has no productions", raw.name)
		}
	case forceTerminal:
		if known && A.IsNonTerminal() {
			return nil, fmt.Errorf("symbol %s used as a terminal, but has productions", raw.name)
		}
	}
	if known {
		return A, nil
	}
	A = &Symbol{Name: raw.name, Value: len(g.terminals), kind: TerminalSymbol}
	g.terminals = append(g.terminals, A)
	g.symbols[raw.name] = A
	return A, nil
}

func (g *Grammar) addProduction(lhs *Symbol, rhs []*Symbol) {
	for _, p := range g.byLHS[lhs.Value] {
		if p.equalRHS(rhs) {
			tracer().Infof("ignoring duplicate production %s", p)
			return
		}
	}
	p := &Production{Serial: len(g.productions), LHS: lhs, rhs: rhs}
	g.productions = append(g.productions, p)
	g.byLHS[lhs.Value] = append(g.byLHS[lhs.Value], p)
}
