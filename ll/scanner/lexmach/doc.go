/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the LL(1) parser of package ll/parser.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine is initialized from a lexicon of keywords, operators and delimiters.
Identifiers, numbers, double-quoted strings, whitespace and line comments
are pre-defined. Package lexmach is very opinionated on how to do the setup
of lexmachine. Clients who need more liberty in how to create the scanner
should use their own wrapper code to fit lexmachine into the
scanner.Tokenizer interface.

	lex := lexmach.Lexicon{
		Keywords:   []string{"if", "else"},
		Operators:  []string{"+", "-", "=="},
		Delimiters: []string{"(", ")", ";"},
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(lex)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until end of input.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.Category() != ll1.EndOfInput {
			…
		}
	}

Please refer to package ll/parser on how to create parsers and plug in a
scanner.Tokenizer.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
