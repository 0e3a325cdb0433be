package ll

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF renders a grammar in the EBNF dialect of package golang.org/x/exp/ebnf.
// Non-terminals are renamed to exported Go identifiers (e.g. E' becomes N1_E_),
// terminals become string tokens. Epsilon-alternatives turn the remaining
// alternatives into an option:
//
//    E' -> + T E' | epsilon     ⇒     N1_E_ = [ "+" N2_T N1_E_ ] .
//
func EBNF(g *Grammar) string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("/* grammar %s, start symbol %s */\n\n", g.Name, g.start))
	for _, A := range g.nonterminals {
		var alts []string
		optional := false
		for _, p := range g.byLHS[A.Value] {
			if p.IsEpsilon() {
				optional = true
				continue
			}
			terms := make([]string, len(p.rhs))
			for i, X := range p.rhs {
				terms[i] = ebnfTerm(X)
			}
			alts = append(alts, strings.Join(terms, " "))
		}
		expr := strings.Join(alts, " | ")
		if optional && expr != "" {
			expr = "[ " + expr + " ]"
		}
		b.WriteString(ebnfName(A))
		b.WriteString(" = ")
		if expr != "" {
			b.WriteString(expr)
			b.WriteString(" ")
		}
		b.WriteString(".\n")
	}
	return b.String()
}

// VerifyEBNF exports a grammar to EBNF, re-parses it and checks it with
// ebnf.Verify. This reports non-terminals unreachable from the start symbol.
func VerifyEBNF(g *Grammar) error {
	src := EBNF(g)
	tracer().Debugf("EBNF for %s:\n%s", g.Name, src)
	eg, err := ebnf.Parse(g.Name+".ebnf", strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("cannot parse EBNF of grammar %q: %w", g.Name, err)
	}
	if err = ebnf.Verify(eg, ebnfName(g.start)); err != nil {
		return fmt.Errorf("grammar %q: %w", g.Name, err)
	}
	return nil
}

func ebnfTerm(X *Symbol) string {
	if X.IsNonTerminal() {
		return ebnfName(X)
	}
	return strconv.Quote(X.Name)
}

// Production names for package ebnf have to be identifiers, and upper case
// names denote non-lexical productions.
func ebnfName(A *Symbol) string {
	sanitized := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, A.Name)
	return fmt.Sprintf("N%d_%s", A.Value, sanitized)
}
