package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports an LL(1) table in HTML-format. Rows are non-terminals,
// columns are terminals followed by '$'. Cells contain the production serial
// and the production itself.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("LL(1) table not yet created, cannot export to HTML")
		return
	}
	g := t.g
	cols := append(append([]*Symbol{}, g.terminals[firstUserValue:]...), EndMarker)
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table for %s of size = %d<p>", html.EscapeString(g.Name), t.Size()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range cols {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(a.Name)))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for _, A := range g.nonterminals {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(A.Name)))
		for _, a := range cols {
			if p := t.Lookup(A, a); p == nil {
				td = "&nbsp;"
			} else {
				td = fmt.Sprintf("%d: %s", p.Serial, html.EscapeString(p.String()))
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
