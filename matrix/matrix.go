// Package matrix 7 feb 2018, generic since Oct 2026
// A two dimensional matrix of any cell type. It is used for scores,
// trace directions and, with a vector type, for several alignments at once.
// You can declare a Matrix. This will have zero space allocated.
// Before you use it, call Resize. You can call New with the right size
// if you have a one-off use.
// If you want to use matrices whose size changes on iterations of a loop,
// then declare the matrix at the start. On each iteration call Resize.
// The innards will grow as necessary, using the same backing store.
// The cells live in one flat slice, either row after row (RowMajor) or
// column after column (ColumnMajor). The major slices point into it.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Order says how cells are laid out in the backing store.
type Order byte

const (
	RowMajor    Order = iota // row0col0, row0col1, ...
	ColumnMajor              // col0row0, col0row1, ...
)

var (
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// String for the order is mainly for debugging.
func (o Order) String() string {
	if o == RowMajor {
		return "row major"
	}
	return "column major"
}

// Matrix is a two dimensional array of T.
type Matrix[T any] struct {
	major    [][]T // rows or columns, depending on order
	fullData []T
	nrow     int
	ncol     int
	order    Order
}

// fixSlices sets the pointers in a matrix.
// It is in its own function so we can call it for new objects
// or when resizing an old one.
func (m *Matrix[T]) fixSlices() {
	nmaj, nmin := m.nrow, m.ncol
	if m.order == ColumnMajor {
		nmaj, nmin = m.ncol, m.nrow
	}
	tmp := m.fullData
	m.major = make([][]T, nmaj)
	for i := range m.major {
		m.major[i] = tmp[:nmin:nmin]
		tmp = tmp[nmin:]
	}
}

// New gives us a zero filled rows x cols matrix.
func New[T any](rows, cols int, order Order) *Matrix[T] {
	m := &Matrix[T]{order: order}
	return m.Resize(rows, cols)
}

// NewFrom builds a matrix around cells, which must be in the
// matrix's major order. The slice is not copied.
func NewFrom[T any](rows, cols int, order Order, cells []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %d x %d", ErrInvalidArgument, len(cells), rows, cols)
	}
	m := &Matrix[T]{nrow: rows, ncol: cols, order: order, fullData: cells}
	m.fixSlices()
	return m, nil
}

// Resize takes a matrix and desired size. If the backing array is too
// small, it is reallocated. Otherwise it is reused and cleared, so old
// contents do not survive.
// It will not reduce the space needed by a matrix.
func (m *Matrix[T]) Resize(rows, cols int) *Matrix[T] {
	n := rows * cols
	if n > cap(m.fullData) {
		m.fullData = make([]T, n)
	} else {
		m.fullData = m.fullData[:n]
		clear(m.fullData)
	}
	m.nrow, m.ncol = rows, cols
	m.fixSlices()
	return m
}

// Size returns the number of rows and number of columns.
func (m *Matrix[T]) Size() (nrow, ncol int) { return m.nrow, m.ncol }

func (m *Matrix[T]) Rows() int    { return m.nrow }
func (m *Matrix[T]) Cols() int    { return m.ncol }
func (m *Matrix[T]) Order() Order { return m.order }

// Cells gives the backing store in major order.
func (m *Matrix[T]) Cells() []T { return m.fullData }

// Major returns row k (RowMajor) or column k (ColumnMajor).
func (m *Matrix[T]) Major(k int) []T { return m.major[k] }

// Index turns a coordinate into a position in the backing store.
// It does no checking.
func (m *Matrix[T]) Index(c Coordinate) int {
	if m.order == RowMajor {
		return c.Row*m.ncol + c.Col
	}
	return c.Col*m.nrow + c.Row
}

// CoordinateOf is the inverse of Index.
func (m *Matrix[T]) CoordinateOf(i int) Coordinate {
	if m.order == RowMajor {
		return Coordinate{Row: i / m.ncol, Col: i % m.ncol}
	}
	return Coordinate{Row: i % m.nrow, Col: i / m.nrow}
}

// Contains reports whether c lies inside the matrix.
func (m *Matrix[T]) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < m.nrow && c.Col < m.ncol
}

// At is the checked accessor.
func (m *Matrix[T]) At(c Coordinate) (T, error) {
	if !m.Contains(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %d x %d", ErrIndexOutOfRange, c, m.nrow, m.ncol)
	}
	return m.fullData[m.Index(c)], nil
}

// Get, Set and Ptr are unchecked. Out of range coordinates
// either panic or land in the wrong cell.
func (m *Matrix[T]) Get(c Coordinate) T    { return m.fullData[m.Index(c)] }
func (m *Matrix[T]) Set(c Coordinate, v T) { m.fullData[m.Index(c)] = v }
func (m *Matrix[T]) Ptr(c Coordinate) *T   { return &m.fullData[m.Index(c)] }

// Convert copies the matrix into a new one with the given order.
// Every coordinate keeps its value.
func (m *Matrix[T]) Convert(order Order) *Matrix[T] {
	r := New[T](m.nrow, m.ncol, order)
	for i, v := range m.fullData {
		r.Set(m.CoordinateOf(i), v)
	}
	return r
}

// CursorAt returns a cursor sitting on c.
func (m *Matrix[T]) CursorAt(c Coordinate) Cursor[T] {
	return Cursor[T]{m: m, pos: m.Index(c)}
}

// String returns the matrix printed out, row by row, in a form that
// might be useful for debugging.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.nrow; i++ {
		for j := 0; j < m.ncol; j++ {
			fmt.Fprintf(&b, "%5v", m.Get(Coordinate{Row: i, Col: j}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cursor is a position in a matrix which can be moved around.
type Cursor[T any] struct {
	m   *Matrix[T]
	pos int
}

// Move shifts the cursor by a two dimensional offset.
func (c *Cursor[T]) Move(o Offset) {
	c.pos = c.m.Index(c.Coordinate().Add(o))
}

// Advance moves n cells along the backing store, so a step of one goes
// to the next column in a row major matrix and to the next row in a
// column major one.
func (c *Cursor[T]) Advance(n int) { c.pos += n }

func (c Cursor[T]) Coordinate() Coordinate { return c.m.CoordinateOf(c.pos) }
func (c Cursor[T]) Value() T               { return c.m.fullData[c.pos] }
func (c Cursor[T]) Ptr() *T                { return &c.m.fullData[c.pos] }
