/*
Package ll1 is an LL(1) parsing toolbox.

It analyses context-free grammars, builds predictive parse tables and runs a
table-driven parser over streams of categorized tokens. Grammars which are not
LL(1) are rejected; ll1 will not try to rewrite them. Package structure is
as follows:

■ ll: Package ll implements grammars, FIRST/FOLLOW analysis and LL(1) parse
table construction.

■ ll/parser: Package parser implements the predictive stack machine, producing
a leftmost derivation or a located syntax error.

■ ll/scanner: Package scanner defines the tokenizer interface the parser relies on,
together with some default tokenizers.

■ runtime: Package runtime provides a small symbol table for scanners.

■ cmd/ll1: An interactive workbench to analyze grammars and parse input.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1
