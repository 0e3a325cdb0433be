package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ll1"
)

// PIF (program internal form) is a token file format: two header lines, then
// one token per line
//
//    lexeme | code | symbol-table-position
//
// Code 0 denotes an identifier, code 1 a constant. Tokens with any other code
// are classified by their lexeme. The symbol table position is "-" for tokens
// which are neither identifiers nor constants. Further columns are ignored, as
// are blank lines and separator lines consisting of dashes.
const (
	PIFIdentifier = 0
	PIFConstant   = 1
	PIFAtom       = 2 // code written for keywords, operators and delimiters
)

// PIFFormatError is returned for lines of a PIF file which cannot be parsed.
type PIFFormatError struct {
	Line   int // 1-based line number
	Text   string
	Reason string
}

func (e *PIFFormatError) Error() string {
	return fmt.Sprintf("PIF format error in line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ReadPIF reads a PIF token file and returns a tokenizer over its tokens. The
// tokenizer is configured for MiniLang unless options say otherwise. Token spans
// are token indices, as PIF does not record input positions.
func ReadPIF(r io.Reader, opts ...Option) (*TokenSlice, error) {
	lex := defaultLexicon()
	MiniLang()(&lex)
	for _, opt := range opts {
		opt(&lex)
	}
	var tokens []ll1.Token
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		if lineno <= 2 { // header
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.Trim(line, "-") == "" {
			continue
		}
		token, err := parsePIFLine(&lex, line, uint64(len(tokens)))
		if err != nil {
			return nil, &PIFFormatError{Line: lineno, Text: line, Reason: err.Error()}
		}
		tokens = append(tokens, token)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading PIF: %w", err)
	}
	tracer().Infof("read %d tokens from PIF", len(tokens))
	return FromTokens(tokens), nil
}

func parsePIFLine(lex *lexicon, line string, index uint64) (DefaultToken, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return DefaultToken{}, fmt.Errorf("expected 3 columns, have %d", len(parts))
	}
	lexeme := strings.TrimSpace(parts[0])
	if lexeme == "" {
		return DefaultToken{}, fmt.Errorf("empty token")
	}
	code, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return DefaultToken{}, fmt.Errorf("code is not a number")
	}
	var pos int
	if p := strings.TrimSpace(parts[2]); p != "-" {
		if pos, err = strconv.Atoi(p); err != nil || pos < 1 {
			return DefaultToken{}, fmt.Errorf("invalid symbol table position %q", p)
		}
	}
	span := ll1.Span{index, index + 1}
	var token DefaultToken
	switch code {
	case PIFIdentifier:
		token = MakeToken(ll1.Identifier, lexeme, span)
	case PIFConstant:
		if _, err := strconv.ParseFloat(lexeme, 64); err == nil {
			token = MakeToken(ll1.NumericConstant, lexeme, span)
		} else {
			token = MakeToken(ll1.Literal, lexeme, span)
		}
	default:
		token = MakeToken(lex.classify(lexeme), lexeme, span)
	}
	return token.WithSymbolRef(pos), nil
}

// WritePIF writes tokens in PIF format. End-of-input tokens are not written.
func WritePIF(w io.Writer, tokens []ll1.Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("PIF\n")
	bw.WriteString(fmt.Sprintf("%-15s| %-5s| %s\n", "Token", "Code", "ST Position"))
	for _, t := range tokens {
		code := PIFAtom
		switch t.Category() {
		case ll1.EndOfInput:
			continue
		case ll1.Identifier:
			code = PIFIdentifier
		case ll1.NumericConstant:
			code = PIFConstant
		}
		pos := "-"
		if ref, ok := t.SymbolRef(); ok {
			pos = strconv.Itoa(ref)
			if code == PIFAtom {
				code = PIFConstant // string constants
			}
		}
		bw.WriteString(fmt.Sprintf("%-15s| %-5d| %s\n", t.Lexeme(), code, pos))
	}
	return bw.Flush()
}
