package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/scanner"
)

// State is the state of a parser.
type State int8

// A parser is Running until it either accepts its input or fails. Both
// Accepted and Failed are final.
const (
	Running State = iota
	Accepted
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int8(s))
}

// DefaultContextWindow is the number of tokens before and after the error
// position which diagnostics include.
const DefaultContextWindow = 3

// errNotReset is returned by Step for a parser without input.
var errNotReset = errors.New("parser has no input; call Reset first")

// Parser is an LL(1)-parser type. Create and initialize one with parser.NewParser(...)
type Parser struct {
	table      *ll.Table
	g          *ll.Grammar
	window     int                     // context window for diagnostics
	categories map[ll1.Category]string // terminals matched by token category
	stack      *arraystack.Stack       // parse stack of *ll.Symbol
	input      []ll1.Token
	cursor     int // index of the current token
	state      State
	err        error
	derivation *Derivation
}

// Option configures a parser.
type Option func(p *Parser)

// ContextWindow sets the number of tokens before and after an error position
// to include in diagnostics.
func ContextWindow(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.window = n
		}
	}
}

// CategoryTerminal makes tokens of category cat match the terminal named
// terminal. An empty name removes the mapping for cat.
func CategoryTerminal(cat ll1.Category, terminal string) Option {
	return func(p *Parser) {
		if terminal == "" {
			delete(p.categories, cat)
			return
		}
		p.categories[cat] = terminal
	}
}

// NewParser creates an LL(1) parser for a parse table.
func NewParser(table *ll.Table, opts ...Option) *Parser {
	p := &Parser{
		table:  table,
		g:      table.Grammar(),
		window: DefaultContextWindow,
		categories: map[ll1.Category]string{
			ll1.Identifier:      "id",
			ll1.NumericConstant: "number",
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset starts a new parse for a list of tokens. If the tokens do not end with
// an end-of-input token, one is appended. Tokens after the first end-of-input
// token are ignored.
func (p *Parser) Reset(tokens []ll1.Token) {
	p.input = make([]ll1.Token, 0, len(tokens)+1)
	for _, t := range tokens {
		p.input = append(p.input, t)
		if t.Category() == ll1.EndOfInput {
			break
		}
	}
	if n := len(p.input); n == 0 || p.input[n-1].Category() != ll1.EndOfInput {
		var end uint64
		if n > 0 {
			end = p.input[n-1].Span().To()
		}
		p.input = append(p.input, scanner.EOFToken(end))
	}
	p.stack = arraystack.New()
	p.stack.Push(ll.EndMarker)
	p.stack.Push(p.g.Start())
	p.cursor = 0
	p.state = Running
	p.err = nil
	p.derivation = newDerivation(p.g)
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	tracer().Debugf("parser reset with %d tokens", len(p.input))
}

// Step applies a single transition of the parser. With X being the top of the
// stack and a the current token:
//
//   - X = $, a = end of input: accept
//   - X = $, a remaining input: fail (mismatch, expected $)
//   - X terminal, a = end of input: fail (input exhausted)
//   - X terminal matching a: pop X, advance the input
//   - X terminal not matching a: fail (mismatch)
//   - X non-terminal: look up the table at (X, a); if empty, fail;
//     otherwise pop X and push the production's right hand side in reverse
//
// Once the parser has accepted or failed, Step does nothing and returns the
// same result again.
func (p *Parser) Step() (State, error) {
	if p.stack == nil {
		return Failed, errNotReset
	}
	if p.state != Running {
		return p.state, p.err
	}
	x, _ := p.stack.Peek()
	X := x.(*ll.Symbol)
	token := p.input[p.cursor]
	eof := token.Category() == ll1.EndOfInput
	tracer().Debugf("stack = %v, token #%d = %q", p.stackSymbols(), p.cursor, token.Lexeme())
	switch {
	case X.IsEndMarker():
		if eof {
			p.state = Accepted
			tracer().Infof("input accepted")
			return p.state, nil
		}
		return p.fail(&MismatchError{
			Diagnostic: p.diagnose(Mismatch),
			Expected:   X,
			Remaining:  p.input[p.cursor : len(p.input)-1],
		})
	case X.IsTerminal():
		if eof {
			return p.fail(&IncompleteParseError{
				Diagnostic: p.diagnose(IncompleteParse),
				Pending:    p.pendingSymbols(),
			})
		}
		if p.terminalFor(token) != X {
			return p.fail(&MismatchError{
				Diagnostic: p.diagnose(Mismatch),
				Expected:   X,
			})
		}
		p.stack.Pop()
		p.derivation.tokens = append(p.derivation.tokens, token)
		p.cursor++
	case X.IsNonTerminal():
		a := p.terminalFor(token)
		prod := p.table.Lookup(X, a)
		if prod == nil {
			return p.fail(&NoProductionError{
				Diagnostic:  p.diagnose(NoProduction),
				NonTerminal: X,
				Lookahead:   a,
				Expected:    p.table.Lookaheads(X),
			})
		}
		tracer().Debugf("apply %s", prod)
		p.stack.Pop()
		p.derivation.productions.Add(prod)
		if !prod.IsEpsilon() {
			for i := prod.Len() - 1; i >= 0; i-- {
				p.stack.Push(prod.Symbol(i))
			}
		}
	default:
		panic(fmt.Sprintf("unexpected symbol %#v on parse stack", X))
	}
	return Running, nil
}

func (p *Parser) fail(err error) (State, error) {
	p.state = Failed
	p.err = err
	tracer().Errorf("%s", err.Error())
	return p.state, err
}

// Parse reads tokens from a tokenizer until end of input and parses them.
// Returns the leftmost derivation of the input, if accepted.
func (p *Parser) Parse(scan scanner.Tokenizer) (*Derivation, error) {
	var tokens []ll1.Token
	for {
		t := scan.NextToken()
		tokens = append(tokens, t)
		if t.Category() == ll1.EndOfInput {
			break
		}
	}
	return p.ParseTokens(tokens)
}

// ParseTokens parses a list of tokens. Returns the leftmost derivation of the
// input, if accepted.
func (p *Parser) ParseTokens(tokens []ll1.Token) (*Derivation, error) {
	p.Reset(tokens)
	state := Running
	var err error
	for state == Running {
		state, err = p.Step()
	}
	if state != Accepted {
		return nil, err
	}
	return p.derivation, nil
}

// State returns the current state of the parser.
func (p *Parser) State() State {
	return p.state
}

// Err returns the error which made the parser fail, or nil.
func (p *Parser) Err() error {
	return p.err
}

// Cursor returns the index of the current token.
func (p *Parser) Cursor() int {
	return p.cursor
}

// Derivation returns the derivation so far. For a failed parse, this is the
// derivation up to the error.
func (p *Parser) Derivation() *Derivation {
	return p.derivation
}

// Stack returns the symbols on the parse stack, from bottom to top.
func (p *Parser) Stack() []*ll.Symbol {
	return p.stackSymbols()
}

// terminalFor returns the terminal a token matches, '$' for end of input, or
// nil if the token matches no terminal of the grammar.
func (p *Parser) terminalFor(token ll1.Token) *ll.Symbol {
	if token.Category() == ll1.EndOfInput {
		return ll.EndMarker
	}
	if name, ok := p.categories[token.Category()]; ok {
		if a := p.g.SymbolByName(name); a.IsTerminal() {
			return a
		}
	}
	if a := p.g.SymbolByName(token.Lexeme()); a.IsTerminal() {
		return a
	}
	return nil
}

// arraystack lists its values top first.
func (p *Parser) stackSymbols() []*ll.Symbol {
	if p.stack == nil {
		return nil
	}
	values := p.stack.Values()
	syms := make([]*ll.Symbol, len(values))
	for i, v := range values {
		syms[len(values)-1-i] = v.(*ll.Symbol)
	}
	return syms
}

// pendingSymbols lists the symbols left on the stack above '$', top first.
func (p *Parser) pendingSymbols() []*ll.Symbol {
	var pending []*ll.Symbol
	for _, v := range p.stack.Values() {
		if A := v.(*ll.Symbol); !A.IsEndMarker() {
			pending = append(pending, A)
		}
	}
	return pending
}

func (p *Parser) diagnose(kind ErrorKind) Diagnostic {
	from := p.cursor - p.window
	if from < 0 {
		from = 0
	}
	to := p.cursor + p.window + 1
	if to > len(p.input) {
		to = len(p.input)
	}
	return Diagnostic{
		Kind:        kind,
		Cursor:      p.cursor,
		Token:       p.input[p.cursor],
		Stack:       p.stackSymbols(),
		Window:      append([]ll1.Token(nil), p.input[from:to]...),
		WindowStart: from,
	}
}

func symbolsString(syms []*ll.Symbol) string {
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return "[" + strings.Join(names, " ") + "]"
}
