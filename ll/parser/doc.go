/*
Package parser provides a table-driven LL(1) parser. Clients have to use the
tools of package ll to prepare the parse table. The parser utilizes this table
to create a leftmost derivation for a given input, provided through a scanner
interface.

This parser is intended for small grammars, e.g. for configuration input,
small domain-specific languages or for teaching purposes. Clients are able to
construct the parse table from a grammar and use the parser directly, without a
code-generation or compile step.

Usage

Clients load or construct a grammar, which is subjected to grammar analysis
and table construction:

	g, err := ll.LoadFromText("G", "S -> a S b | epsilon")
	table, err := ll.BuildTable(ll.Analysis(g))
	if err != nil { ... }  // grammar is not LL(1)

Finally parse some input:

	p := parser.NewParser(table)
	scan := scanner.GoTokenizer("input", strings.NewReader("a a b b"))
	derivation, err := p.Parse(scan)

Tokens are matched against terminals by category or by lexeme: identifiers
match a terminal named "id" and numeric constants a terminal named "number",
if the grammar has such terminals. All other tokens match the terminal named
like their lexeme. Option CategoryTerminal changes the mapping.

Clients who want to observe the parser may call Reset and then Step
repeatedly, inspecting the parser state in between.

Syntax errors are reported as one of MismatchError, NoProductionError or
IncompleteParseError. Each carries a Diagnostic with the input position, the
parse stack and a window of tokens around the error position.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.parser'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.parser")
}
