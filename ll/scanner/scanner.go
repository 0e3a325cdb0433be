/*
Package scanner defines an interface for scanners to be used with the LL(1) parser
of package ll/parser.

Three tokenizers are provided: (1) a thin wrapper over the Go std lib
'text/scanner', (2) a reader for token files in PIF format, and (3) an adapter
for lexmachine, living in sub-package `lexmach`.

Every tokenizer delivers tokens of type ll1.Token, classified into categories
(identifier, numeric constant, literal, operator, delimiter). After the last
real token, a tokenizer delivers a token of category ll1.EndOfInput.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ll1.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for all
// the tokenizers of this package.
type DefaultToken struct {
	cat    ll1.Category
	lexeme string
	ref    int // position in the symbol table, 0 = none
	span   ll1.Span
}

var _ ll1.Token = DefaultToken{}

// MakeToken creates a token without a symbol table reference.
func MakeToken(cat ll1.Category, lexeme string, span ll1.Span) DefaultToken {
	return DefaultToken{
		cat:    cat,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates an end-of-input token at input position pos.
func EOFToken(pos uint64) DefaultToken {
	return DefaultToken{cat: ll1.EndOfInput, span: ll1.Span{pos, pos}}
}

// WithSymbolRef returns a copy of t referencing position pos of a symbol table.
// Positions start at 1.
func (t DefaultToken) WithSymbolRef(pos int) DefaultToken {
	t.ref = pos
	return t
}

func (t DefaultToken) Category() ll1.Category {
	return t.cat
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) SymbolRef() (int, bool) {
	return t.ref, t.ref > 0
}

func (t DefaultToken) Span() ll1.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.cat == ll1.EndOfInput {
		return "<end of input>"
	}
	return fmt.Sprintf("%q/%s", t.lexeme, t.cat)
}

// --- Default tokenizer -----------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lexicon
	Error func(error) // error handler
	done  bool
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// Identifiers and keywords follow Go rules, numbers are Go integers or floats,
// strings and characters are Go literals. Punctuation is matched against the
// operators and delimiters of the tokenizer, preferring the longest operator.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{lexicon: defaultLexicon()}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(&t.lexicon)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() ll1.Token {
	if t.done {
		return EOFToken(uint64(t.Pos().Offset))
	}
	r := t.Scan()
	from := uint64(t.Position.Offset)
	var token DefaultToken
	switch r {
	case scanner.EOF:
		tracer().Debugf("DefaultTokenizer reached end of input")
		t.done = true
		return EOFToken(uint64(t.Pos().Offset))
	case scanner.Ident:
		lexeme := t.TokenText()
		if t.keywords[lexeme] {
			token = MakeToken(ll1.Literal, lexeme, ll1.Span{})
		} else {
			token = t.enter(MakeToken(ll1.Identifier, lexeme, ll1.Span{}))
		}
	case scanner.Int, scanner.Float:
		token = t.enter(MakeToken(ll1.NumericConstant, t.TokenText(), ll1.Span{}))
	case scanner.String, scanner.RawString, scanner.Char:
		token = t.enter(MakeToken(ll1.Literal, t.TokenText(), ll1.Span{}))
	default:
		lexeme := string(r)
		for {
			next := t.Peek()
			if next == scanner.EOF || !t.isOperatorPrefix(lexeme+string(next)) {
				break
			}
			t.Next()
			lexeme += string(next)
		}
		token = MakeToken(t.classify(lexeme), lexeme, ll1.Span{})
		if token.cat == ll1.Unknown {
			t.Error(fmt.Errorf("%s: unknown token %q", t.Position, lexeme))
		}
	}
	token.span = ll1.Span{from, uint64(t.Pos().Offset)}
	tracer().Debugf("token %s at %s", token, token.span)
	return token
}

// --- Token slices ----------------------------------------------------------

// TokenSlice is a tokenizer over a pre-scanned list of tokens. Create one with
// FromTokens or ReadPIF.
type TokenSlice struct {
	tokens []ll1.Token
	pos    int
	Error  func(error)
}

var _ Tokenizer = (*TokenSlice)(nil)

// FromTokens creates a tokenizer delivering tokens, followed by an
// end-of-input token (unless the last token already is one).
func FromTokens(tokens []ll1.Token) *TokenSlice {
	return &TokenSlice{tokens: tokens, Error: logError}
}

// SetErrorHandler sets an error handler for the tokenizer. A token slice does not
// produce errors by itself.
func (ts *TokenSlice) SetErrorHandler(h func(error)) {
	if h == nil {
		ts.Error = logError
		return
	}
	ts.Error = h
}

// NextToken is part of the Tokenizer interface.
func (ts *TokenSlice) NextToken() ll1.Token {
	if ts.pos < len(ts.tokens) {
		t := ts.tokens[ts.pos]
		ts.pos++
		return t
	}
	var end uint64
	if len(ts.tokens) > 0 {
		end = ts.tokens[len(ts.tokens)-1].Span().To()
	}
	return EOFToken(end)
}

// Tokens returns the tokens of the slice.
func (ts *TokenSlice) Tokens() []ll1.Token {
	return ts.tokens
}

// --- Scanner options -------------------------------------------------------

// SymbolRegistry is implemented by symbol tables. Enter returns the position of
// a lexeme, inserting it if necessary. Positions start at 1.
type SymbolRegistry interface {
	Enter(lexeme string) int
}

type lexicon struct {
	keywords   map[string]bool
	operators  map[string]bool
	delimiters map[string]bool
	symbols    SymbolRegistry
}

// DefaultOperators and DefaultDelimiters are the punctuation a tokenizer
// recognizes, unless configured otherwise.
var (
	DefaultOperators  = []string{"+", "-", "*", "/", "%", "<<", ">>", "=", "!=", ">", "<", "<=", ">=", "==", "[", "]", "!"}
	DefaultDelimiters = []string{"(", ")", "{", "}", ",", ";"}
)

// MiniLangKeywords are the keywords of MiniLang, a tiny C-like teaching language.
var MiniLangKeywords = []string{"int", "double", "void", "main", "cout", "cin", "while", "if", "else", "M_PI", "endl"}

func defaultLexicon() lexicon {
	return lexicon{
		keywords:   set(nil),
		operators:  set(DefaultOperators),
		delimiters: set(DefaultDelimiters),
	}
}

func set(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func (l *lexicon) enter(t DefaultToken) DefaultToken {
	if l.symbols == nil {
		return t
	}
	return t.WithSymbolRef(l.symbols.Enter(t.lexeme))
}

func (l *lexicon) isOperatorPrefix(s string) bool {
	for op := range l.operators {
		if strings.HasPrefix(op, s) {
			return true
		}
	}
	return false
}

// classify categorizes punctuation and keywords.
func (l *lexicon) classify(lexeme string) ll1.Category {
	switch {
	case l.delimiters[lexeme]:
		return ll1.Delimiter
	case l.operators[lexeme]:
		return ll1.Operator
	case l.keywords[lexeme]:
		return ll1.Literal
	}
	return ll1.Unknown
}

// Option configures a tokenizer.
type Option func(l *lexicon)

// Keywords adds keywords. Keywords are delivered as tokens of category Literal
// and are not entered into the symbol table.
func Keywords(kw ...string) Option {
	return func(l *lexicon) {
		for _, k := range kw {
			l.keywords[k] = true
		}
	}
}

// Operators replaces the set of operators.
func Operators(ops ...string) Option {
	return func(l *lexicon) {
		l.operators = set(ops)
	}
}

// Delimiters replaces the set of delimiters.
func Delimiters(delims ...string) Option {
	return func(l *lexicon) {
		l.delimiters = set(delims)
	}
}

// WithSymbolTable makes the tokenizer enter identifiers and constants into a
// symbol table. Tokens carry their symbol table position.
func WithSymbolTable(st SymbolRegistry) Option {
	return func(l *lexicon) {
		l.symbols = st
	}
}

// MiniLang configures a tokenizer for MiniLang: keywords, operators and
// delimiters.
func MiniLang() Option {
	return func(l *lexicon) {
		Keywords(MiniLangKeywords...)(l)
		l.operators = set([]string{"+", "-", "*", "/", "<<", ">>", "=", "!=", ">", "<", "<=", ">=", "==", "[", "]"})
		l.delimiters = set(DefaultDelimiters)
	}
}
