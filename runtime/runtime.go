/*
Package runtime implements the symbol table of a compilation unit.

Scanners enter identifiers and constants into a symbol table, which assigns
positions to them. Tokens reference their lexeme by symbol table position.
Positions start at 1 and are stable: entering a lexeme a second time returns
its first position.

    st := runtime.NewSymbolTable()
    scan := scanner.GoTokenizer("input", reader, scanner.WithSymbolTable(st))

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer, if one is installed, and to key
// 'll1.runtime' otherwise.
func T() tracing.Trace {
	if gtrace.SyntaxTracer != nil {
		return gtrace.SyntaxTracer
	}
	return tracing.Select("ll1.runtime")
}

// Runtime is a type implementing the environment for the analysis of a
// compilation unit.
type Runtime struct {
	Symbols *SymbolTable // identifiers and constants
	UData   interface{}  // extension point
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty symbol table.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.Symbols = NewSymbolTable()
	T().Debugf("new runtime environment")
	return rt
}
