/*
Command ll1 is an interactive workbench for LL(1) grammars. It loads a grammar
from a text file, computes FIRST and FOLLOW sets, builds the LL(1) parse table
and parses input with it. Input is given as command line arguments, as a PIF
token file, or line by line in interactive mode.

	ll1 -grammar expr.txt -trace Debug "a + b * c"
	ll1 -grammar minilang.txt -lexmach -pif program.pif

Without a grammar file, ll1 uses a small expression grammar. In interactive
mode, lines starting with a colon are commands; type :help for a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.cli'
func tracer() tracing.Trace {
	return tracing.Select("ll1.cli")
}

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{"ll1.cli", "ll1.grammar", "ll1.parser", "ll1.scanner", "ll1.runtime"}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
