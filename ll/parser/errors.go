package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
)

// ErrorKind classifies syntax errors.
type ErrorKind int8

// Kinds of syntax errors.
const (
	Mismatch        ErrorKind = iota + 1 // terminal on stack does not match the input
	NoProduction                         // empty table cell for non-terminal and lookahead
	IncompleteParse                      // input ran out while terminals remain on the stack
)

func (k ErrorKind) String() string {
	switch k {
	case Mismatch:
		return "mismatch"
	case NoProduction:
		return "no production"
	case IncompleteParse:
		return "incomplete parse"
	}
	return fmt.Sprintf("error-kind(%d)", int8(k))
}

// Diagnostic describes the parser's situation at a syntax error.
type Diagnostic struct {
	Kind        ErrorKind
	Cursor      int          // index of the offending token
	Token       ll1.Token    // the offending token
	Stack       []*ll.Symbol // parse stack, bottom to top
	Window      []ll1.Token  // tokens around the cursor
	WindowStart int          // index of Window[0] within the input
}

// Diag returns the diagnostic. All syntax errors of this package embed a
// Diagnostic, thus
//
//    var d interface{ Diag() parser.Diagnostic }
//    if errors.As(err, &d) { … }
//
// works for all of them. See also DiagnosticOf.
func (d Diagnostic) Diag() Diagnostic {
	return d
}

// Format renders the token window, one token per line, marking the offending
// token with an arrow, followed by the parse stack:
//
//       a               (position 0)
//    -> c               (position 1)
//       <end of input>  (position 2)
//    stack: [$ b S]
//
func (d Diagnostic) Format() string {
	var b bytes.Buffer
	for i, t := range d.Window {
		pos := d.WindowStart + i
		prefix := "   "
		if pos == d.Cursor {
			prefix = "-> "
		}
		b.WriteString(fmt.Sprintf("%s%-15s (position %d)\n", prefix, tokenText(t), pos))
	}
	b.WriteString("stack: ")
	b.WriteString(symbolsString(d.Stack))
	return b.String()
}

func tokenText(t ll1.Token) string {
	if t.Category() == ll1.EndOfInput {
		return "<end of input>"
	}
	return t.Lexeme()
}

// DiagnosticOf extracts the diagnostic from a syntax error.
func DiagnosticOf(err error) (Diagnostic, bool) {
	var d interface{ Diag() Diagnostic }
	if errors.As(err, &d) {
		return d.Diag(), true
	}
	return Diagnostic{}, false
}

// MismatchError is returned if the terminal on top of the stack does not
// match the current token. The bottom marker $ is a terminal, too: if it is
// left on the stack while input remains, Expected is $ and Remaining holds the
// unconsumed input.
type MismatchError struct {
	Diagnostic
	Expected  *ll.Symbol
	Remaining []ll1.Token // unconsumed input, if Expected is $
}

func (e *MismatchError) Error() string {
	if e.Expected.IsEndMarker() {
		lexemes := make([]string, len(e.Remaining))
		for i, t := range e.Remaining {
			lexemes[i] = t.Lexeme()
		}
		return fmt.Sprintf("syntax error at position %d: expected %s, got %q, remaining input [%s]",
			e.Cursor, e.Expected, tokenText(e.Token), strings.Join(lexemes, " "))
	}
	return fmt.Sprintf("syntax error at position %d: expected %s, got %q",
		e.Cursor, e.Expected, tokenText(e.Token))
}

// NoProductionError is returned if the table has no entry for the non-terminal
// on top of the stack and the current token.
type NoProductionError struct {
	Diagnostic
	NonTerminal *ll.Symbol
	Lookahead   *ll.Symbol   // nil if the token matches no terminal
	Expected    []*ll.Symbol // lookaheads with an entry for NonTerminal
}

func (e *NoProductionError) Error() string {
	la := "<none>"
	if e.Lookahead != nil {
		la = e.Lookahead.Name
	}
	return fmt.Sprintf("syntax error at position %d: no production for %s with lookahead %s (token %q), expected one of %s",
		e.Cursor, e.NonTerminal, la, tokenText(e.Token), symbolsString(e.Expected))
}

// IncompleteParseError is returned if the input is exhausted while terminals
// remain on the stack.
type IncompleteParseError struct {
	Diagnostic
	Pending []*ll.Symbol // symbols left on the stack (top first), without $
}

func (e *IncompleteParseError) Error() string {
	return fmt.Sprintf("incomplete parse at position %d: input exhausted, expected %s",
		e.Cursor, symbolsString(e.Pending))
}
