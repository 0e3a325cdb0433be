package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultGrammarTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.cli")
	defer teardown()
	//
	ga, err := loadGrammar("")
	if err != nil {
		t.Fatal(err)
	}
	sets := setsTable(ga)
	if len(sets) != 6 {
		t.Errorf("expected header and 5 rows of sets, have %d rows", len(sets))
	}
	for _, row := range sets[1:] {
		nullable := row[0] == "E'" || row[0] == "T'"
		if (row[1] == "yes") != nullable {
			t.Errorf("wrong nullability for %s: %q", row[0], row[1])
		}
	}
	intp, err := newIntp(ga, false)
	if err != nil {
		t.Fatal(err)
	}
	table := parseTable(intp.table)
	if len(table) != 6 || len(table[0]) != 8 {
		t.Errorf("expected table of 6x8 cells, is %dx%d", len(table), len(table[0]))
	}
	if table[0][len(table[0])-1] != "$" {
		t.Errorf("expected last column to be $, is %s", table[0][len(table[0])-1])
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.cli")
	defer teardown()
	//
	ga, err := loadGrammar("")
	if err != nil {
		t.Fatal(err)
	}
	for _, uselm := range []bool{false, true} {
		intp, err := newIntp(ga, uselm)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = intp.Eval("x * (y + 1)"); err != nil {
			t.Errorf("expected input to be accepted, got %v", err)
		}
		if intp.tree == nil {
			t.Fatalf("expected parse tree after accepted input")
		}
		list := leveledTree(intp.tree)
		if list[0].Level != 0 || list[0].Text != "E" {
			t.Errorf("expected tree to start with E at level 0, is %v", list[0])
		}
		if intp.rt.Symbols.Size() != 3 {
			t.Errorf("expected x, y and 1 in symbol table, have %d symbols", intp.rt.Symbols.Size())
		}
		if _, err = intp.Eval("x +"); err == nil {
			t.Errorf("expected incomplete input to be rejected")
		}
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.cli")
	defer teardown()
	//
	ga, err := loadGrammar("")
	if err != nil {
		t.Fatal(err)
	}
	intp, err := newIntp(ga, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{":sets", ":table", ":check", ":ebnf", ":symbols", ":tree", ":help"} {
		if quit, err := intp.Eval(cmd); quit || err != nil {
			t.Errorf("command %s failed: %v", cmd, err)
		}
	}
	if _, err := intp.Eval(":frobnicate"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestLoadMissingGrammarFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.cli")
	defer teardown()
	//
	if _, err := loadGrammar("does/not/exist.txt"); err == nil {
		t.Errorf("expected error for missing grammar file")
	}
}
