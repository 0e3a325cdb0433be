package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
)

// Derivation is the result of a successful parse: the productions applied by
// the parser, in order. For an LL parser, this is a leftmost derivation of the
// input.
type Derivation struct {
	g           *ll.Grammar
	productions *arraylist.List // of *ll.Production
	tokens      []ll1.Token     // matched tokens, in input order
}

func newDerivation(g *ll.Grammar) *Derivation {
	return &Derivation{g: g, productions: arraylist.New()}
}

// Len returns the number of derivation steps.
func (d *Derivation) Len() int {
	return d.productions.Size()
}

// Productions returns the applied productions, in order.
func (d *Derivation) Productions() []*ll.Production {
	prods := make([]*ll.Production, 0, d.productions.Size())
	it := d.productions.Iterator()
	for it.Next() {
		prods = append(prods, it.Value().(*ll.Production))
	}
	return prods
}

// Steps renders each derivation step as text, e.g. "S -> a S b".
func (d *Derivation) Steps() []string {
	prods := d.Productions()
	steps := make([]string, len(prods))
	for i, p := range prods {
		steps[i] = p.String()
	}
	return steps
}

// Tokens returns the tokens matched by the parser.
func (d *Derivation) Tokens() []ll1.Token {
	return d.tokens
}

// Yield replays the derivation, starting from the start symbol and always
// replacing the leftmost non-terminal. It returns the resulting sentence of
// terminals, which for an accepted input corresponds one-to-one to the input
// tokens. An error is returned if the productions do not form a leftmost
// derivation.
func (d *Derivation) Yield() ([]*ll.Symbol, error) {
	form := []*ll.Symbol{d.g.Start()}
	done := 0 // form[:done] consists of terminals only
	for i, p := range d.Productions() {
		for done < len(form) && !form[done].IsNonTerminal() {
			done++
		}
		if done == len(form) || form[done] != p.LHS {
			return nil, fmt.Errorf("derivation step %d: %s does not expand the leftmost non-terminal", i, p)
		}
		var rhs []*ll.Symbol
		if !p.IsEpsilon() {
			rhs = p.RHS()
		}
		rest := append(rhs, form[done+1:]...)
		form = append(form[:done], rest...)
	}
	for _, A := range form {
		if A.IsNonTerminal() {
			return nil, fmt.Errorf("derivation is incomplete, %s not expanded", A)
		}
	}
	return form, nil
}

// YieldString returns the yield as a space separated list of terminals.
func (d *Derivation) YieldString() string {
	form, err := d.Yield()
	if err != nil {
		return ""
	}
	names := make([]string, len(form))
	for i, A := range form {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

// --- Parse trees -----------------------------------------------------------

// Node is a node of a parse tree. Inner nodes are non-terminals, leaves are
// terminals (carrying their token) or epsilon.
type Node struct {
	Symbol     *ll.Symbol
	Production *ll.Production // production applied at this node, nil for leaves
	Token      ll1.Token      // token for terminal leaves
	Span       ll1.Span       // input span covered by this node
	Children   []*Node
}

// IsLeaf returns true for terminals and epsilon.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	if n.Token != nil {
		return fmt.Sprintf("%s %q", n.Symbol, n.Token.Lexeme())
	}
	return n.Symbol.String()
}

// Walk visits the nodes of a tree in pre-order, with depth 0 for the root.
func (n *Node) Walk(f func(n *Node, depth int)) {
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		f(n, depth)
		for _, ch := range n.Children {
			walk(ch, depth+1)
		}
	}
	walk(n, 0)
}

// Tree builds the parse tree of a derivation. Returns nil for an empty
// derivation.
func (d *Derivation) Tree() *Node {
	prods := d.Productions()
	if len(prods) == 0 {
		return nil
	}
	k, t := 0, 0 // next production, next token
	var expand func(A *ll.Symbol) *Node
	expand = func(A *ll.Symbol) *Node {
		n := &Node{Symbol: A}
		switch {
		case A.IsNonTerminal():
			if k >= len(prods) {
				return n
			}
			n.Production = prods[k]
			k++
			first := true
			for _, X := range n.Production.RHS() {
				ch := expand(X)
				n.Children = append(n.Children, ch)
				if ch.Span.IsNull() {
					continue
				}
				if first {
					n.Span, first = ch.Span, false
				} else {
					n.Span = n.Span.Extend(ch.Span)
				}
			}
		case A.IsTerminal():
			if t < len(d.tokens) {
				n.Token = d.tokens[t]
				n.Span = n.Token.Span()
				t++
			}
		}
		return n
	}
	return expand(d.g.Start())
}

// TreeAsGraphViz exports a parse tree to the Graphviz Dot format.
func TreeAsGraphViz(root *Node, w io.Writer) {
	io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=box, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	if root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := make(map[*Node]int)
	root.Walk(func(n *Node, depth int) {
		id := len(ids)
		ids[n] = id
		io.WriteString(w, fmt.Sprintf("n%03d [fillcolor=%s label=%q]\n", id, nodecolor(n), n.String()))
	})
	root.Walk(func(n *Node, depth int) {
		for _, ch := range n.Children {
			io.WriteString(w, fmt.Sprintf("n%03d -> n%03d\n", ids[n], ids[ch]))
		}
	})
	io.WriteString(w, "}\n")
}

func nodecolor(n *Node) string {
	if n.Symbol.IsNonTerminal() {
		return "white"
	}
	return "lightgray"
}
