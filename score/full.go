package score

import "github.com/andrew-torda/alnmat/matrix"

// Full keeps the best, horizontal and vertical scores of every cell.
type Full[S any] struct {
	coords matrix.CoordinateMatrix
	best   *matrix.Matrix[S]
	hor    *matrix.Matrix[S]
	vert   *matrix.Matrix[S]
	init   S
}

func NewFull[S any](cols, rows int, init S) *Full[S] {
	m := &Full[S]{
		best: matrix.New[S](rows, cols, matrix.ColumnMajor),
		hor:  matrix.New[S](rows, cols, matrix.ColumnMajor),
		vert: matrix.New[S](rows, cols, matrix.ColumnMajor),
	}
	m.Resize(cols, rows, init)
	return m
}

// Resize throws away the old scores, but keeps the space.
func (m *Full[S]) Resize(cols, rows int, init S) {
	for _, x := range []*matrix.Matrix[S]{m.best, m.hor, m.vert} {
		x.Resize(rows, cols)
		fill(x.Cells(), init)
	}
	m.coords.Resize(cols, rows)
	m.init = init
}

func (m *Full[S]) Cols() int { return m.best.Cols() }
func (m *Full[S]) Rows() int { return m.best.Rows() }

func (m *Full[S]) Column(j int) Column[S] {
	return Column[S]{CoordColumn: m.coords.Column(j), src: m}
}

// Best reads a best score after the matrix has been filled.
func (m *Full[S]) Best(c matrix.Coordinate) S {
	if !m.best.Contains(c) {
		return m.init
	}
	return m.best.Get(c)
}

func (m *Full[S]) cell(j, i int) Cell[S] {
	at := matrix.Coordinate{Row: i, Col: j}
	c := Cell[S]{
		best:  m.best.Ptr(at),
		wLeft: m.hor.Ptr(at),
		wUp:   m.vert.Ptr(at),
		diag:  m.init,
		left:  m.init,
		up:    m.init,
	}
	if j > 0 {
		c.left = m.hor.Get(matrix.Coordinate{Row: i, Col: j - 1})
		if i > 0 {
			c.diag = m.best.Get(matrix.Coordinate{Row: i - 1, Col: j - 1})
		}
	}
	if i > 0 {
		c.up = m.vert.Get(matrix.Coordinate{Row: i - 1, Col: j})
	}
	return c
}
