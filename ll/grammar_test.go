package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.Add("S", "A", "b") // A is used before its rule
	b.Add("A", "a")
	b.Add("A", "epsilon")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol S, is %s", g.Start())
	}
	if A := g.SymbolByName("A"); !A.IsNonTerminal() {
		t.Errorf("expected A to be a non-terminal, is %#v", A)
	}
	for _, name := range []string{"a", "b"} {
		if a := g.SymbolByName(name); !a.IsTerminal() {
			t.Errorf("expected %s to be a terminal, is %#v", name, a)
		}
	}
	if g.SymbolByName("b").Value != firstUserValue {
		t.Errorf("expected b to be the first user terminal, is %#v", g.SymbolByName("b"))
	}
	if g.Size() != 3 {
		t.Errorf("expected 3 productions, have %d", g.Size())
	}
	if p := g.Production(2); !p.IsEpsilon() {
		t.Errorf("expected production #2 to be an epsilon production, is %s", p)
	}
	if n := len(g.ProductionsFor(g.SymbolByName("A"))); n != 2 {
		t.Errorf("expected A to have 2 productions, has %d", n)
	}
}

func TestBuilderFluent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.NonTerminalCount() != 4 {
		t.Errorf("expected 4 non-terminals, have %d", g.NonTerminalCount())
	}
	if g.TerminalCount() != 5 { // epsilon, $, a, b, d
		t.Errorf("expected 5 terminal values, have %d", g.TerminalCount())
	}
	if p := g.Production(5); p.String() != "D -> epsilon" {
		t.Errorf("expected empty rule to be an epsilon production, is %s", p)
	}
	terms := g.EachTerminal(func(A *Symbol) interface{} {
		return A.Name
	})
	if len(terms) != 3 || terms[0] != "a" || terms[2] != "d" {
		t.Errorf("unexpected terminals %v", terms)
	}
}

func TestBuilderEpsilonDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.Add("S", "a", "epsilon", "b")
	b.Add("S", "epsilon", "epsilon")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if p := g.Production(0); p.Len() != 2 || p.RHSString() != "a b" {
		t.Errorf("expected epsilon to be dropped from longer alternative, have %s", p)
	}
	if p := g.Production(1); !p.IsEpsilon() {
		t.Errorf("expected alternative of epsilons to be S -> epsilon, have %s", p)
	}
}

func TestBuilderDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.Add("S", "a")
	b.Add("S", "a")
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 1 {
		t.Errorf("expected duplicate production to be ignored, have %d productions", g.Size())
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	tests := []struct {
		name  string
		build func(*GrammarBuilder)
	}{
		{"empty grammar", func(b *GrammarBuilder) {}},
		{"reserved lhs", func(b *GrammarBuilder) { b.Add("$", "a") }},
		{"reserved rhs", func(b *GrammarBuilder) { b.Add("S", "a", "$") }},
		{"epsilon lhs", func(b *GrammarBuilder) { b.Add("epsilon", "a") }},
		{"terminal with productions", func(b *GrammarBuilder) {
			b.Add("S", "A")
			b.LHS("A").T("S").End()
		}},
		{"non-terminal without productions", func(b *GrammarBuilder) {
			b.LHS("S").N("X").End()
		}},
		{"terminal forced as non-terminal", func(b *GrammarBuilder) {
			b.LHS("S").T("a").End()
			b.LHS("S").N("a").T("b").End()
		}},
		{"declared without productions", func(b *GrammarBuilder) {
			b.DeclareNonTerminals("S", "X")
			b.Add("S", "a")
		}},
	}
	for _, test := range tests {
		b := NewGrammarBuilder(test.name)
		test.build(b)
		if _, err := b.Grammar(); err == nil {
			t.Errorf("%s: expected grammar to be rejected", test.name)
		} else {
			t.Logf("%s: %v", test.name, err)
		}
	}
}
