package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
# LL(1) expression grammar
E  -> T E'
E' -> + T E' | epsilon
T  -> F T'
T' -> * F T' | epsilon
F  -> ( E ) | id
`

func TestLoadExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g, err := LoadFromText("expr", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	if g.Start().Name != "E" {
		t.Errorf("expected start symbol E, is %s", g.Start())
	}
	if g.Size() != 8 {
		t.Errorf("expected 8 productions, have %d", g.Size())
	}
	if g.NonTerminalCount() != 5 {
		t.Errorf("expected 5 non-terminals, have %d", g.NonTerminalCount())
	}
	expected := []string{"+", "*", "(", ")", "id"}
	for i, name := range expected {
		if a := g.Terminal(firstUserValue + i); a == nil || a.Name != name {
			t.Errorf("expected terminal #%d to be %s, is %v", firstUserValue+i, name, a)
		}
	}
	if p := g.Production(2); p.String() != "E' -> epsilon" {
		t.Errorf("expected production #2 to be E' -> epsilon, is %s", p)
	}
}

func TestLoadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	tests := []struct {
		source string
		line   int
	}{
		{"S -> a\nS a b", 2},
		{"\n# comment\nS T -> a", 3},
		{"S -> a | | b", 1},
		{"S -> a\n\n-> b", 3},
		{"S -> a |", 1},
		{"S -> a $", 1},
		{"S -> a\nA -> a -> b", 2},
	}
	for _, test := range tests {
		_, err := LoadFromText("malformed", test.source)
		if err == nil {
			t.Errorf("expected %q to be rejected", test.source)
			continue
		}
		var m *MalformedRuleError
		if !errors.As(err, &m) {
			t.Errorf("expected MalformedRuleError for %q, got %v", test.source, err)
			continue
		}
		if m.Line != test.line {
			t.Errorf("expected error in line %d, reported line %d (%v)", test.line, m.Line, err)
		}
		if !IsMalformedRule(err) {
			t.Errorf("IsMalformedRule does not recognize %v", err)
		}
	}
}

func TestLoadSemanticError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	_, err := LoadFromText("empty", "# nothing here\n\n")
	if err == nil {
		t.Fatalf("expected empty grammar to be rejected")
	}
	if IsMalformedRule(err) {
		t.Errorf("empty grammar is not a malformed rule: %v", err)
	}
}
