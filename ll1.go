package ll1

import "fmt"

// --- Token categories ------------------------------------------------------

// Category is the lexical class of a token, as determined by a scanner.
// The parser uses it to match tokens against grammar terminals: identifiers and
// numeric constants match by category, everything else by lexeme.
type Category int8

// Token categories. EndOfInput is delivered exactly once, after the last
// real token.
const (
	Unknown Category = iota
	Identifier
	NumericConstant
	Literal
	Operator
	Delimiter
	EndOfInput
)

var categoryNames = [...]string{
	Unknown:         "unknown",
	Identifier:      "identifier",
	NumericConstant: "numeric-constant",
	Literal:         "literal",
	Operator:        "operator",
	Delimiter:       "delimiter",
	EndOfInput:      "end-of-input",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int8(c))
	}
	return categoryNames[c]
}

// --- A general purpose interface for tokens --------------------------------

// Token represents an input token. Tokens are usually produced by a scanner.
//
// An example would be a token for an identifier:
//
//    Category  = Identifier
//    Lexeme    = "radius"
//    SymbolRef = 3, true     // position in the scanner's symbol table
//    Span      = 67…73       // occured from position 67 in the input stream
//
// Tokens which are neither identifiers nor constants do not carry a symbol
// table reference.
type Token interface {
	Category() Category
	Lexeme() string
	SymbolRef() (int, bool)
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, denoting no input at all.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
