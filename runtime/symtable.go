package runtime

import (
	"bufio"
	"fmt"
	"io"
)

// Symbol table for identifiers and constants of a compilation unit.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with parser
// generators and grammars: Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used for
// the lexemes of the input.
//
type Tag struct {
	name  string
	pos   int         // position in the symbol table, starting at 1
	UData interface{} // user data
}

// NewTag creates a new tag, not yet entered into a table.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'@%d>", s.Name(), s.pos)
}

// Name gets the tag's name, i.e. the lexeme.
func (s *Tag) Name() string {
	return s.name
}

// Position returns the tag's position in its symbol table, or 0 if the tag
// has not been entered.
func (s *Tag) Position() int {
	return s.pos
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics). Every tag
// is assigned a position, counting from 1 in order of insertion.
type SymbolTable struct {
	Table     map[string]*Tag
	tags      []*Tag // in order of position
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Creates non-existent tags on the fly.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	tag := t.createTag(tagname)
	t.insertTag(tag)
	T().Debugf("symbol table: %s", tag)
	return tag, false
}

// Enter returns the position of a lexeme, inserting it if necessary.
// Enter makes a symbol table usable for scanners (see scanner.WithSymbolTable).
func (t *SymbolTable) Enter(lexeme string) int {
	tag, _ := t.ResolveOrDefineTag(lexeme)
	if tag == nil {
		return 0
	}
	return tag.pos
}

// Position returns the position of a lexeme, if present.
func (t *SymbolTable) Position(lexeme string) (int, bool) {
	if tag := t.ResolveTag(lexeme); tag != nil {
		return tag.pos, true
	}
	return 0, false
}

// TagAt returns the tag at position pos, or nil.
func (t *SymbolTable) TagAt(pos int) *Tag {
	if pos < 1 || pos > len(t.tags) {
		return nil
	}
	return t.tags[pos-1]
}

func (t *SymbolTable) insertTag(tag *Tag) {
	tag.pos = len(t.tags) + 1
	t.tags = append(t.tags, tag)
	t.Table[tag.name] = tag
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.tags)
}

// Each iterates over each tag in the table in order of position, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for _, tag := range t.tags {
		mapper(tag.name, tag)
	}
}

// Write writes the symbol table as text, one tag per line.
func (t *SymbolTable) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("ST\n")
	bw.WriteString(fmt.Sprintf("%-15s| %s\n", "Symbol", "Position"))
	t.Each(func(name string, tag *Tag) {
		bw.WriteString(fmt.Sprintf("%-15s| %d\n", name, tag.pos))
	})
	return bw.Flush()
}
