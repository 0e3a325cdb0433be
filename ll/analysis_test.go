package ll

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func loadExpr(t *testing.T) *Grammar {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	g, err := LoadFromText("expr", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	ga := analyzeWithin(t, g, 3*time.Second)
	ga.Dump()
	expected := map[string]string{
		"E":  "{ ( id }",
		"E'": "{ epsilon + }",
		"T":  "{ ( id }",
		"T'": "{ epsilon * }",
		"F":  "{ ( id }",
	}
	for A, set := range expected {
		if s := g.SetString(ga.First(g.SymbolByName(A))); s != set {
			t.Errorf("expected FIRST(%s) = %s, is %s", A, set, s)
		}
	}
	if s := g.SetString(ga.First(g.SymbolByName("+"))); s != "{ + }" {
		t.Errorf("expected FIRST of a terminal to be itself, is %s", s)
	}
	if s := g.SetString(ga.First(Epsilon)); s != "{ epsilon }" {
		t.Errorf("expected FIRST(epsilon) = { epsilon }, is %s", s)
	}
	if !ga.Nullable(g.SymbolByName("T'")) || ga.Nullable(g.SymbolByName("T")) {
		t.Errorf("nullability of T and T' is wrong")
	}
}

func TestFollowSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	ga := analyzeWithin(t, g, 3*time.Second)
	expected := map[string]string{
		"E":  "{ $ ) }",
		"E'": "{ $ ) }",
		"T":  "{ $ + ) }",
		"T'": "{ $ + ) }",
		"F":  "{ $ + * ) }",
	}
	for A, set := range expected {
		if s := g.SetString(ga.Follow(g.SymbolByName(A))); s != set {
			t.Errorf("expected FOLLOW(%s) = %s, is %s", A, set, s)
		}
	}
	if ga.Follow(g.SymbolByName("id")) != nil {
		t.Errorf("expected FOLLOW of a terminal to be nil")
	}
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	ga := analyzeWithin(t, g, 3*time.Second)
	seq := []*Symbol{g.SymbolByName("T'"), g.SymbolByName("E'")}
	f, nullable := ga.FirstOfSequence(seq)
	if !nullable {
		t.Errorf("expected T' E' to be nullable")
	}
	if s := g.SetString(f); s != "{ + * }" {
		t.Errorf("expected FIRST(T' E') = { + * }, is %s", s)
	}
	seq = append(seq, g.SymbolByName(")"))
	if f, nullable = ga.FirstOfSequence(seq); nullable || g.SetString(f) != "{ + * ) }" {
		t.Errorf("expected FIRST(T' E' )) = { + * ) }, not nullable; is %s, %v", g.SetString(f), nullable)
	}
	if _, nullable = ga.FirstOfSequence(nil); !nullable {
		t.Errorf("expected empty sequence to be nullable")
	}
}

func TestNullableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	// nullability has to propagate upwards through several passes
	g, err := LoadFromText("chain", "S -> A B c\nA -> B\nB -> D\nD -> d | epsilon")
	if err != nil {
		t.Fatal(err)
	}
	ga := analyzeWithin(t, g, 3*time.Second)
	for _, name := range []string{"A", "B", "D"} {
		if !ga.Nullable(g.SymbolByName(name)) {
			t.Errorf("expected %s to be nullable", name)
		}
	}
	if s := g.SetString(ga.First(g.SymbolByName("S"))); s != "{ c d }" {
		t.Errorf("expected FIRST(S) = { c d }, is %s", s)
	}
	if s := g.SetString(ga.Follow(g.SymbolByName("D"))); s != "{ c d }" {
		t.Errorf("expected FOLLOW(D) = { c d }, is %s", s)
	}
}

func TestAnalysisIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	ga1, ga2 := Analysis(g), Analysis(g)
	if ga1.FirstSets().String() != ga2.FirstSets().String() {
		t.Errorf("FIRST sets differ between runs")
	}
	if ga1.FollowSets().String() != ga2.FollowSets().String() {
		t.Errorf("FOLLOW sets differ between runs")
	}
	fp1, err := ga1.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fp2, _ := ga2.Fingerprint()
	fp3, _ := Analysis(loadExpr(t)).Fingerprint()
	if fp1 != fp2 || fp1 != fp3 {
		t.Errorf("expected identical fingerprints, have %s, %s, %s", fp1, fp2, fp3)
	}
	other, err := LoadFromText("expr", strings.Replace(exprGrammar, "id", "num", 1))
	if err != nil {
		t.Fatal(err)
	}
	if fp4, _ := Analysis(other).Fingerprint(); fp4 == fp1 {
		t.Errorf("expected different grammars to have different fingerprints")
	}
}

func TestSetsString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	g := loadExpr(t)
	ga := analyzeWithin(t, g, 3*time.Second)
	s := ga.FollowSets().String()
	if !strings.HasPrefix(s, "FOLLOW(E) = { $ ) }\n") {
		t.Errorf("unexpected rendering of FOLLOW sets:\n%s", s)
	}
	if n := strings.Count(ga.FirstSets().String(), "\n"); n != g.NonTerminalCount() {
		t.Errorf("expected one line per non-terminal, have %d", n)
	}
}

// analyzeWithin runs the analysis of g in the background and fails the test if
// it does not complete within d.
func analyzeWithin(t *testing.T, g *Grammar, d time.Duration) *LLAnalysis {
	done := make(chan *LLAnalysis, 1)
	go func() {
		done <- Analysis(g)
	}()
	select {
	case ga := <-done:
		return ga
	case <-time.After(d):
		t.Fatalf("analysis of %q did not terminate within %v", g.Name, d)
	}
	return nil
}

func TestAnalysisTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.grammar")
	defer teardown()
	//
	grammars := []string{
		"S -> a | b",
		"S -> a S b | epsilon",
		"S -> A B\nA -> a A | epsilon\nB -> b B | c | epsilon",
		exprGrammar,
	}
	for i, src := range grammars {
		g, err := LoadFromText(fmt.Sprintf("G%d", i), src)
		if err != nil {
			t.Fatal(err)
		}
		ga := analyzeWithin(t, g, 3*time.Second)
		if A := g.Start(); ga.Follow(A) == nil || !ga.Follow(A).Has(EndMarkerValue) {
			t.Errorf("expected $ in FOLLOW(%s) of grammar %d", A, i)
		}
	}
	g, _ := LoadFromText("alt", "S -> a | b")
	ga := analyzeWithin(t, g, 3*time.Second)
	if s := g.SetString(ga.First(g.Start())); s != "{ a b }" {
		t.Errorf("expected FIRST(S) = { a b }, is %s", s)
	}
}
