/*
Package ll implements prerequisites for LL(1) parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  epsilon
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  epsilon
    g, err := b.Grammar()

Symbols added with S(…) are classified when the grammar is built: every
symbol appearing as a left hand side is a non-terminal, every other symbol is
a terminal. The order of rules does not matter for this.

Grammars may as well be read from text, one rule per line:

    E  -> T E'
    E' -> + T E' | epsilon
    T  -> F T'
    T' -> * F T' | epsilon
    F  -> ( E ) | id

    g, err := ll.LoadFromText("expr", source)

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes FIRST and
FOLLOW sets for the grammar.

    ga := ll.Analysis(g)
    g.EachNonTerminal(func(A *Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %s\n", A, g.SetString(ga.First(A)))
        return nil
    })

    // Output for the expression grammar above:
    FIRST(E) = { ( id }
    FIRST(E') = { epsilon + }
    FIRST(T) = { ( id }
    FIRST(T') = { epsilon * }
    FIRST(F) = { ( id }

Parser Table Construction

Using grammar analysis as input, the LL(1) table is constructed. Construction
fails with a GrammarConflictError if two productions compete for a table cell,
i.e. if the grammar is not LL(1).

    table, err := ll.BuildTable(ga)
    if err != nil {
        var conflict *ll.GrammarConflictError
        errors.As(err, &conflict)
        …
    }

The table is then handed to a parser, see package ll/parser.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.grammar")
}
