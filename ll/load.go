package ll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RuleSeparator separates the left hand side of a rule from its alternatives.
const RuleSeparator = "->"

// MalformedRuleError is returned when a line of grammar text cannot be parsed
// into a left hand side and alternatives.
type MalformedRuleError struct {
	Line   int    // 1-based line number
	Text   string // the offending line
	Reason string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed rule in line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// LoadFromText reads a grammar from a string. See Load.
func LoadFromText(gname string, source string) (*Grammar, error) {
	return Load(gname, strings.NewReader(source))
}

// Load reads a grammar from r. Every non-blank line not starting with '#' is a rule
//
//    LHS -> alt1 | alt2 | …
//
// where every alternative is a whitespace separated list of symbols. The literal
// "epsilon" denotes the empty alternative. The left hand side of the first rule
// is the start symbol. Lines which cannot be parsed result in a
// *MalformedRuleError.
func Load(gname string, r io.Reader) (*Grammar, error) {
	b := NewGrammarBuilder(gname)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseRule(b, lineno, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading grammar %q: %w", gname, err)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("error loading grammar %q: %w", gname, err)
	}
	g.Dump()
	return g, nil
}

func parseRule(b *GrammarBuilder, lineno int, line string) error {
	malformed := func(reason string) error {
		return &MalformedRuleError{Line: lineno, Text: line, Reason: reason}
	}
	sep := strings.Index(line, RuleSeparator)
	if sep < 0 {
		return malformed("missing '" + RuleSeparator + "'")
	}
	lhs := strings.Fields(line[:sep])
	if len(lhs) != 1 {
		return malformed("left hand side must be exactly one symbol")
	}
	if err := checkName(lhs[0]); err != nil {
		return malformed(err.Error())
	}
	rhs := line[sep+len(RuleSeparator):]
	if strings.Contains(rhs, RuleSeparator) {
		return malformed("more than one '" + RuleSeparator + "'")
	}
	for i, alt := range strings.Split(rhs, "|") {
		syms := strings.Fields(alt)
		if len(syms) == 0 {
			return malformed(fmt.Sprintf("alternative #%d is empty", i+1))
		}
		for _, s := range syms {
			if s == EndMarker.Name {
				return malformed("symbol '$' is reserved")
			}
		}
		b.Add(lhs[0], syms...)
	}
	return nil
}

// IsMalformedRule returns true if err is or wraps a *MalformedRuleError.
func IsMalformedRule(err error) bool {
	var m *MalformedRuleError
	return errors.As(err, &m)
}
