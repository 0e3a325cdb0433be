package ll

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	table, err := BuildTable(Analysis(g))
	if err != nil {
		t.Fatal(err)
	}
	if table.Size() != 13 {
		t.Errorf("expected 13 table entries, have %d", table.Size())
	}
	sym := g.SymbolByName
	expected := []struct {
		A, a string
		p    string
	}{
		{"E", "id", "E -> T E'"},
		{"E'", "+", "E' -> + T E'"},
		{"E'", ")", "E' -> epsilon"},
		{"E'", "$", "E' -> epsilon"},
		{"T'", "+", "T' -> epsilon"},
		{"T'", "*", "T' -> * F T'"},
		{"F", "(", "F -> ( E )"},
	}
	for _, x := range expected {
		p := table.Lookup(sym(x.A), sym(x.a))
		if p == nil || p.String() != x.p {
			t.Errorf("expected M[%s, %s] = %s, is %v", x.A, x.a, x.p, p)
		}
	}
	if p := table.Lookup(sym("F"), sym("+")); p != nil {
		t.Errorf("expected M[F, +] to be empty, is %s", p)
	}
	if p := table.Lookup(sym("F"), Epsilon); p != nil {
		t.Errorf("expected lookup with epsilon to fail, is %s", p)
	}
	if las := table.Lookaheads(sym("F")); len(las) != 2 || table.Lookup(sym("F"), las[1]) == nil {
		t.Errorf("expected 2 lookaheads for F, have %v", las)
	}
	if las := table.Lookaheads(sym("id")); las != nil {
		t.Errorf("expected no lookaheads for a terminal, have %v", las)
	}
	entries := table.Entries()
	if len(entries) != 13 {
		t.Fatalf("expected 13 entries, have %d", len(entries))
	}
	if entries[0].String() != "M[E, (] = E -> T E'" {
		t.Errorf("unexpected first entry %s", entries[0])
	}
}

func TestTableUniqueness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	table, err := BuildTable(Analysis(g))
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, e := range table.Entries() {
		key := e.NonTerminal.Name + "/" + e.Terminal.Name
		if seen[key] {
			t.Errorf("duplicate table cell %s", key)
		}
		seen[key] = true
	}
}

func TestTableLeftRecursionConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g, err := LoadFromText("left-recursive", `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = BuildTable(Analysis(g))
	if err == nil {
		t.Fatalf("expected left-recursive grammar to be rejected")
	}
	var conflict *GrammarConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected GrammarConflictError, got %v", err)
	}
	if conflict.NonTerminal.Name != "E" || conflict.Terminal.Name != "(" {
		t.Errorf("expected conflict at (E, (), is %v", err)
	}
	if conflict.Existing.Serial != 0 || conflict.Competing.Serial != 1 {
		t.Errorf("expected conflict between productions 0 and 1, is %v", err)
	}
	t.Logf("%v", err)
}

func TestTableFollowConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g, err := LoadFromText("G", "S -> A a\nA -> a | epsilon")
	if err != nil {
		t.Fatal(err)
	}
	_, err = BuildTable(Analysis(g))
	var conflict *GrammarConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected GrammarConflictError, got %v", err)
	}
	if conflict.NonTerminal.Name != "A" || conflict.Terminal.Name != "a" {
		t.Errorf("expected conflict at (A, a), is %v", err)
	}
	if !conflict.Competing.IsEpsilon() {
		t.Errorf("expected epsilon production to be the competing one, is %s", conflict.Competing)
	}
}

func TestTableValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g, err := LoadFromText("G", "S -> a B | c\nB -> b")
	if err != nil {
		t.Fatal(err)
	}
	table, err := BuildTable(Analysis(g))
	if err != nil {
		t.Fatal(err)
	}
	missing := table.Validate()
	expected := []string{"(S, $)", "(S, b)", "(B, $)", "(B, a)", "(B, c)"}
	if len(missing) != len(expected) {
		t.Fatalf("expected %d missing entries, have %v", len(expected), missing)
	}
	for i, m := range missing {
		if m.String() != expected[i] {
			t.Errorf("expected missing entry #%d to be %s, is %s", i, expected[i], m)
		}
	}
}

func TestTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	table, err := BuildTable(Analysis(loadExpr(t)))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	TableAsHTML(table, &buf)
	html := buf.String()
	if !strings.Contains(html, "<td>E&#39;</td>") {
		t.Errorf("expected escaped row header for E' in HTML output")
	}
	if strings.Count(html, "<tr>") != 5 {
		t.Errorf("expected one row per non-terminal")
	}
}

func TestEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	src := EBNF(g)
	if !strings.Contains(src, `N1_E_ = [ "+" N2_T N1_E_ ] .`) {
		t.Errorf("unexpected EBNF for E':\n%s", src)
	}
	if err := VerifyEBNF(g); err != nil {
		t.Errorf("expected expression grammar to verify, got %v", err)
	}
	unreachable, err := LoadFromText("unreachable", "S -> a\nX -> b")
	if err != nil {
		t.Fatal(err)
	}
	if err = VerifyEBNF(unreachable); err == nil {
		t.Errorf("expected unreachable non-terminal X to be reported")
	}
	onlyEps, err := LoadFromText("eps", "S -> A a\nA -> epsilon")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(EBNF(onlyEps), "N1_A = .") {
		t.Errorf("expected epsilon-only rule to be empty, is\n%s", EBNF(onlyEps))
	}
	if err = VerifyEBNF(onlyEps); err != nil {
		t.Errorf("expected grammar with epsilon-only rule to verify, got %v", err)
	}
}
