package score

import "github.com/andrew-torda/alnmat/matrix"

// SingleColumn is the rolling score matrix. It keeps one column, so memory
// goes with the number of rows, and it is overwritten as the columns go by.
// The best score of the cell above-left is saved when a best score is
// overwritten, and read back as the diagonal one row further down.
type SingleColumn[S any] struct {
	coords matrix.CoordinateMatrix
	best   []S
	hor    []S
	up     S
	stash  S
	init   S
}

// NewSingleColumn is a rolling matrix of cols x rows.
func NewSingleColumn[S any](cols, rows int, init S) *SingleColumn[S] {
	m := new(SingleColumn[S])
	m.Resize(cols, rows, init)
	return m
}

// Resize reuses the column if it is big enough. Everything is
// set to init, which is what a cell outside the matrix scores.
func (m *SingleColumn[S]) Resize(cols, rows int, init S) {
	if rows > cap(m.best) {
		m.best = make([]S, rows)
		m.hor = make([]S, rows)
	}
	m.best, m.hor = m.best[:rows], m.hor[:rows]
	fill(m.best, init)
	fill(m.hor, init)
	m.coords.Resize(cols, rows)
	m.init = init
	m.up, m.stash = init, init
}

func (m *SingleColumn[S]) Cols() int { return m.coords.Cols() }
func (m *SingleColumn[S]) Rows() int { return len(m.best) }

// Cap is the number of cells the matrix has allocated.
func (m *SingleColumn[S]) Cap() int { return cap(m.best) + cap(m.hor) }

// Column starts column j. Columns have to be taken left to right,
// the matrix does not know which one it is holding.
func (m *SingleColumn[S]) Column(j int) Column[S] {
	m.up, m.stash = m.init, m.init
	return Column[S]{CoordColumn: m.coords.Column(j), src: m}
}

func (m *SingleColumn[S]) cell(_, i int) Cell[S] {
	return Cell[S]{
		best:  &m.best[i],
		stash: &m.stash,
		wLeft: &m.hor[i],
		wUp:   &m.up,
		diag:  m.stash,
		left:  m.hor[i],
		up:    m.up,
	}
}
