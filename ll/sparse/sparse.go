/*
Package sparse implements a compact integer matrix for LL(1) parse tables.

Parse tables are indexed by non-terminal and lookahead terminal. Most of these
pairs stay empty, so the matrix stores only occupied cells, as (row, column,
value) triplets kept in row-major order (COO encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

Matrices are written during table construction only. Afterwards they may be
read from any number of goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// DefaultNullValue marks empty cells, unless a matrix is created with a
// different null value.
const DefaultNullValue = -2147483648

// IntMatrix is a sparse m x n matrix of int32 values.
//
//     M := NewIntMatrix(10, 10, -1)  // -1 marks empty cells
//     M.Set(2, 3, 4711)              // returns -1, the cell was empty
//     v := M.Value(2, 3)             // 4711
//     M.IsEmpty(9, 9)                // true
//
// Cells may be overwritten, but not cleared.
type IntMatrix struct {
	cells   []cell // row-major order
	rows    int
	cols    int
	nullval int32
}

type cell struct {
	row, col int
	value    int32
}

func (c cell) String() string {
	return fmt.Sprintf("[%d,%d]=%d", c.row, c.col, c.value)
}

// NewIntMatrix creates an empty matrix with m rows and n columns.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{rows: m, cols: n, nullval: nullValue}
}

// M returns the number of rows.
func (m *IntMatrix) M() int {
	return m.rows
}

// N returns the number of columns.
func (m *IntMatrix) N() int {
	return m.cols
}

// NullValue returns the value of empty cells.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of occupied cells.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// Value returns the value at (i,j), or the null value for an empty cell.
func (m *IntMatrix) Value(i, j int) int32 {
	if k, ok := m.search(i, j); ok {
		return m.cells[k].value
	}
	return m.nullval
}

// IsEmpty returns true if no value has been set at (i,j).
func (m *IntMatrix) IsEmpty(i, j int) bool {
	_, ok := m.search(i, j)
	return !ok
}

// Set stores a value at (i,j) and returns the value previously stored there,
// or the null value. Set panics for indices outside of the matrix.
func (m *IntMatrix) Set(i, j int, value int32) int32 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("sparse.IntMatrix.Set(%d,%d) out of range %d x %d", i, j, m.rows, m.cols))
	}
	k, ok := m.search(i, j)
	if ok {
		prev := m.cells[k].value
		m.cells[k].value = value
		return prev
	}
	m.cells = append(m.cells, cell{})
	copy(m.cells[k+1:], m.cells[k:])
	m.cells[k] = cell{row: i, col: j, value: value}
	return m.nullval
}

// Each calls f for every occupied cell, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, c := range m.cells {
		f(c.row, c.col, c.value)
	}
}

// Row calls f for every occupied cell of row i, ordered by column.
func (m *IntMatrix) Row(i int, f func(j int, value int32)) {
	k := sort.Search(len(m.cells), func(k int) bool { return m.cells[k].row >= i })
	for ; k < len(m.cells) && m.cells[k].row == i; k++ {
		f(m.cells[k].col, m.cells[k].value)
	}
}

// search finds the index of cell (i,j). If the cell is empty, it returns the
// index where it would have to be inserted.
func (m *IntMatrix) search(i, j int) (int, bool) {
	k := sort.Search(len(m.cells), func(k int) bool {
		c := m.cells[k]
		return c.row > i || c.row == i && c.col >= j
	})
	found := k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j
	return k, found
}
