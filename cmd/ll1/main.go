package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/parser"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/ll1/ll/scanner/lexmach"
	"github.com/npillmayer/ll1/runtime"
)

// We provide a simple expression grammar as a default.
const defaultGrammar = `# arithmetic expressions
E  -> T E'
E' -> + T E' | epsilon
T  -> F T'
T' -> * F T' | epsilon
F  -> ( E ) | id | number
`

// main() starts the workbench. It loads and analyzes a grammar, parses input
// given as arguments or as a PIF file, and then optionally enters interactive
// mode.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	gfile := flag.String("grammar", "", "Grammar file (default: expression grammar)")
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	piffile := flag.String("pif", "", "Parse the tokens of a PIF file")
	htmlfile := flag.String("html", "", "Write the parse table as HTML to a file")
	dotfile := flag.String("dot", "", "Write the parse tree of the input as GraphViz to a file")
	uselm := flag.Bool("lexmach", false, "Tokenize input with lexmachine and the MiniLang lexicon")
	window := flag.Int("window", parser.DefaultContextWindow, "Number of tokens shown around a syntax error")
	interactive := flag.Bool("i", false, "Enter interactive mode after processing input")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to the LL(1) workbench")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar and parse table
	ga, err := loadGrammar(*gfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	ga.Grammar().Dump()                // only visible in debug mode
	ga.Dump()
	intp, err := newIntp(ga, *uselm, parser.ContextWindow(*window))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	intp.showSets()
	intp.showTable()
	if *htmlfile != "" {
		err = writeFile(*htmlfile, func(w io.Writer) { ll.TableAsHTML(intp.table, w) })
		if err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	//
	// parse input from arguments or PIF file
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(3)
		}
	}
	if *piffile != "" {
		if err := intp.parsePIF(*piffile); err != nil {
			os.Exit(3)
		}
	}
	if *dotfile != "" && intp.tree != nil {
		err = writeFile(*dotfile, func(w io.Writer) { parser.TreeAsGraphViz(intp.tree, w) })
		if err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	if (input != "" || *piffile != "") && !*interactive {
		return
	}
	//
	// set up REPL
	intp.repl, err = readline.New("ll1> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	defer intp.repl.Close()
	tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar loads a grammar from a file, or the default grammar for an empty
// file name, and analyzes it.
func loadGrammar(filename string) (*ll.LLAnalysis, error) {
	var g *ll.Grammar
	var err error
	if filename == "" {
		g, err = ll.LoadFromText("Expressions", defaultGrammar)
	} else {
		var f *os.File
		if f, err = os.Open(filename); err != nil {
			return nil, err
		}
		defer f.Close()
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		g, err = ll.Load(name, f)
	}
	if err != nil {
		return nil, err
	}
	tracer().Infof("Loaded grammar %s with %d productions", g.Name, g.Size())
	return ll.Analysis(g), nil
}

func writeFile(filename string, write func(io.Writer)) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	write(f)
	if err = f.Close(); err == nil {
		tracer().Infof("Wrote %s", filename)
	}
	return err
}

// --- Interpreter -----------------------------------------------------------

// Intp is our interpreter object
type Intp struct {
	ga     *ll.LLAnalysis
	table  *ll.Table
	parser *parser.Parser
	rt     *runtime.Runtime   // symbol table for identifiers and constants
	lm     *lexmach.LMAdapter // nil: tokenize with the Go tokenizer
	repl   *readline.Instance
	tree   *parser.Node // parse tree of the last accepted input
}

func newIntp(ga *ll.LLAnalysis, uselm bool, opts ...parser.Option) (*Intp, error) {
	table, err := ll.BuildTable(ga)
	if err != nil {
		return nil, err
	}
	intp := &Intp{
		ga:     ga,
		table:  table,
		parser: parser.NewParser(table, opts...),
		rt:     runtime.NewRuntimeEnvironment(),
	}
	if uselm {
		if intp.lm, err = lexmach.NewLMAdapter(lexmach.MiniLang); err != nil {
			return nil, err
		}
	}
	return intp, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var commands = [][2]string{
	{":sets", "show FIRST and FOLLOW sets"},
	{":table", "show the LL(1) parse table"},
	{":check", "list empty table cells, verify the grammar as EBNF"},
	{":ebnf", "show the grammar in EBNF notation"},
	{":symbols", "show the symbol table"},
	{":tree", "show the parse tree of the last accepted input"},
	{":quit", "leave the workbench"},
}

// Eval executes a command, if line starts with a colon, or parses line as
// input otherwise.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		tok, err := intp.tokenizer(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false, err
		}
		return false, intp.parse(tok)
	}
	switch strings.Fields(line)[0] {
	case ":quit", ":q":
		return true, nil
	case ":sets":
		intp.showSets()
	case ":table":
		intp.showTable()
	case ":check":
		return false, intp.check()
	case ":ebnf":
		pterm.Println(ll.EBNF(intp.ga.Grammar()))
	case ":symbols":
		intp.showSymbols()
	case ":tree":
		intp.showTree()
	case ":help":
		data := pterm.TableData{{"Command", "Description"}}
		for _, c := range commands {
			data = append(data, []string{c[0], c[1]})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	default:
		err := fmt.Errorf("unknown command %s, try :help", line)
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

func (intp *Intp) tokenizer(line string) (scanner.Tokenizer, error) {
	var tok scanner.Tokenizer
	if intp.lm != nil {
		lms, err := intp.lm.Scanner(line, lexmach.WithSymbolTable(intp.rt.Symbols))
		if err != nil {
			return nil, err
		}
		tok = lms
	} else {
		tok = scanner.GoTokenizer("input", strings.NewReader(line),
			scanner.MiniLang(), scanner.WithSymbolTable(intp.rt.Symbols))
	}
	tok.SetErrorHandler(func(e error) {
		pterm.Warning.Println(e.Error())
	})
	return tok, nil
}

func (intp *Intp) parsePIF(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	defer f.Close()
	tokens, err := scanner.ReadPIF(f)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	tracer().Infof("Read %d tokens from %s", len(tokens.Tokens()), filename)
	return intp.parse(tokens)
}

func (intp *Intp) parse(tok scanner.Tokenizer) error {
	d, err := intp.parser.Parse(tok)
	if err != nil {
		pterm.Error.Println(err.Error())
		if diag, ok := parser.DiagnosticOf(err); ok {
			pterm.Println(diag.Format())
		}
		return err
	}
	for i, step := range d.Steps() {
		tracer().Debugf("%3d: %s", i, step)
	}
	intp.tree = d.Tree()
	pterm.Info.Printf("accepted in %d derivation steps, yield: %s\n", d.Len(), d.YieldString())
	intp.showTree()
	return nil
}

// --- Output ----------------------------------------------------------------

func (intp *Intp) showSets() {
	pterm.DefaultTable.WithHasHeader().WithData(setsTable(intp.ga)).Render()
}

func (intp *Intp) showTable() {
	pterm.DefaultTable.WithHasHeader().WithData(parseTable(intp.table)).Render()
}

func (intp *Intp) showSymbols() {
	data := pterm.TableData{{"Position", "Lexeme"}}
	intp.rt.Symbols.Each(func(lexeme string, tag *runtime.Tag) {
		data = append(data, []string{fmt.Sprintf("%d", tag.Position()), lexeme})
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) showTree() {
	if intp.tree == nil {
		pterm.Info.Println("no parse tree")
		return
	}
	root := pterm.NewTreeFromLeveledList(leveledTree(intp.tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

// check lists the empty cells of the parse table and checks the grammar for
// undefined or unreachable non-terminals.
func (intp *Intp) check() error {
	missing := intp.table.Validate()
	pterm.Info.Printf("%d table entries, %d empty cells\n", intp.table.Size(), len(missing))
	for _, m := range missing {
		tracer().Debugf("empty cell %s", m)
	}
	if fp, err := intp.ga.Fingerprint(); err == nil {
		pterm.Info.Printf("analysis fingerprint %s\n", fp)
	}
	if err := ll.VerifyEBNF(intp.ga.Grammar()); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// setsTable lists nullability, FIRST and FOLLOW for every non-terminal.
func setsTable(ga *ll.LLAnalysis) pterm.TableData {
	g := ga.Grammar()
	data := pterm.TableData{{"Non-terminal", "Nullable", "FIRST", "FOLLOW"}}
	g.EachNonTerminal(func(A *ll.Symbol) interface{} {
		nullable := ""
		if ga.Nullable(A) {
			nullable = "yes"
		}
		data = append(data, []string{A.Name, nullable,
			g.SetString(ga.First(A)), g.SetString(ga.Follow(A))})
		return nil
	})
	return data
}

// parseTable renders the table with a row per non-terminal and a column per
// terminal, including $.
func parseTable(table *ll.Table) pterm.TableData {
	g := table.Grammar()
	var columns []*ll.Symbol
	g.EachTerminal(func(a *ll.Symbol) interface{} {
		columns = append(columns, a)
		return nil
	})
	columns = append(columns, ll.EndMarker)
	header := []string{""}
	for _, a := range columns {
		header = append(header, a.Name)
	}
	data := pterm.TableData{header}
	g.EachNonTerminal(func(A *ll.Symbol) interface{} {
		row := []string{A.Name}
		for _, a := range columns {
			cell := ""
			if p := table.Lookup(A, a); p != nil {
				cell = p.RHSString()
			}
			row = append(row, cell)
		}
		data = append(data, row)
		return nil
	})
	return data
}

func leveledTree(root *parser.Node) pterm.LeveledList {
	var list pterm.LeveledList
	root.Walk(func(n *parser.Node, depth int) {
		list = append(list, pterm.LeveledListItem{
			Level: depth,
			Text:  n.String(),
		})
	})
	return list
}
