package ll

import "fmt"

// SymbolKind tags grammar symbols.
type SymbolKind int8

// Kinds of grammar symbols. Terminals and non-terminals are disjoint.
const (
	TerminalSymbol SymbolKind = iota
	NonTerminalSymbol
	EpsilonSymbol
	EndMarkerSymbol
)

// Terminal values reserved for epsilon and the end marker. Terminal sets
// (FIRST and FOLLOW) are sets of terminal values, and they have to be able
// to contain these two.
const (
	EpsilonValue   = 0
	EndMarkerValue = 1
	firstUserValue = 2
)

// Symbol represents a grammar symbol. Value is the serial number of the
// symbol within its alphabet: terminals (including epsilon and the end
// marker) and non-terminals are numbered independently.
type Symbol struct {
	Name  string
	Value int
	kind  SymbolKind
}

// Epsilon is the symbol denoting the empty alternative.
var Epsilon = &Symbol{Name: "epsilon", Value: EpsilonValue, kind: EpsilonSymbol}

// EndMarker is the symbol denoting the end of input ('$').
var EndMarker = &Symbol{Name: "$", Value: EndMarkerValue, kind: EndMarkerSymbol}

// Kind returns the kind of a symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal returns true if A is a terminal symbol. Epsilon and the end marker
// are not terminals.
func (A *Symbol) IsTerminal() bool {
	return A != nil && A.kind == TerminalSymbol
}

// IsNonTerminal returns true if A is a non-terminal symbol.
func (A *Symbol) IsNonTerminal() bool {
	return A != nil && A.kind == NonTerminalSymbol
}

// IsEpsilon returns true for the epsilon symbol.
func (A *Symbol) IsEpsilon() bool {
	return A != nil && A.kind == EpsilonSymbol
}

// IsEndMarker returns true for '$'.
func (A *Symbol) IsEndMarker() bool {
	return A != nil && A.kind == EndMarkerSymbol
}

func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}

// GoString is a debugging helper.
func (A *Symbol) GoString() string {
	kinds := [...]string{"T", "N", "ε", "$"}
	return fmt.Sprintf("<%s:%s/%d>", A.Name, kinds[A.kind], A.Value)
}
