package lexmach

import (
	"strings"
	"unicode"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// Token type IDs used with lexmachine. Lexmachine tokens carry an integer
// type, which the adapter maps back to token categories.
const (
	identifierID = iota + 1
	numberID
	stringID
	keywordID
	operatorID
	delimiterID
)

var categoryForID = map[int]ll1.Category{
	identifierID: ll1.Identifier,
	numberID:     ll1.NumericConstant,
	stringID:     ll1.Literal,
	keywordID:    ll1.Literal,
	operatorID:   ll1.Operator,
	delimiterID:  ll1.Delimiter,
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// Lexicon lists the fixed tokens of a language.
type Lexicon struct {
	Keywords   []string
	Operators  []string
	Delimiters []string
}

// MiniLang is the lexicon of MiniLang, a tiny C-like teaching language.
var MiniLang = Lexicon{
	Keywords:   scanner.MiniLangKeywords,
	Operators:  []string{"+", "-", "*", "/", "<<", ">>", "=", "!=", ">", "<", "<=", ">=", "==", "[", "]"},
	Delimiters: scanner.DefaultDelimiters,
}

// NewLMAdapter creates a new lexmachine adapter. It receives a lexicon of
// keywords ("if", "for", …), operators and delimiters. Identifiers, numbers,
// strings, whitespace and //-comments are pre-defined.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(lex Lexicon) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, name := range lex.Keywords {
		adapter.Lexer.Add([]byte(literal(name)), MakeToken(keywordID))
	}
	for _, op := range lex.Operators {
		adapter.Lexer.Add([]byte(literal(op)), MakeToken(operatorID))
	}
	for _, d := range lex.Delimiters {
		adapter.Lexer.Add([]byte(literal(d)), MakeToken(delimiterID))
	}
	adapter.Lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	adapter.Lexer.Add([]byte(`\"[^"]*\"`), MakeToken(stringID))
	adapter.Lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(identifierID))
	adapter.Lexer.Add([]byte(`[0-9]+(\.[0-9]+)?`), MakeToken(numberID))
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// literal escapes the operator characters of a fixed token for use as a
// regular expression. Letters and digits stay as they are, as lexmachine reads
// a backslash before them as an escape sequence.
func literal(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string, opts ...Option) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	lms := &LMScanner{scanner: s, Error: logError}
	for _, opt := range opts {
		opt(lms)
	}
	return lms, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	symbols scanner.SymbolRegistry
	Error   func(error)
	end     uint64
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// Option configures an LMScanner.
type Option func(*LMScanner)

// WithSymbolTable makes the scanner enter identifiers and constants into a
// symbol table.
func WithSymbolTable(st scanner.SymbolRegistry) Option {
	return func(lms *LMScanner) {
		lms.symbols = st
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Input which does not match any
// token pattern is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() ll1.Token {
	if lms.scanner == nil {
		return scanner.EOFToken(0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.EOFToken(lms.end)
	}
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	span := ll1.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))}
	lms.end = span.To()
	t := scanner.MakeToken(categoryForID[token.Type], lexeme, span)
	if lms.symbols != nil && token.Type != keywordID && token.Type != operatorID &&
		token.Type != delimiterID {
		t = t.WithSymbolRef(lms.symbols.Enter(lexeme))
	}
	tracer().Debugf("token %s at %s", t, span)
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
