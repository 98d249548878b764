// Package dpmat glues a score matrix and a trace matrix together, so an
// aligner can walk one set of columns and get both a cell's scores and its
// traces. Nothing extra is stored. A cell is a pair of proxies and writes go
// straight through to the two matrices underneath.
package dpmat

import (
	"fmt"

	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/score"
	"github.com/andrew-torda/alnmat/trace"
)

// Matrix is a score matrix and a trace matrix of the same shape.
type Matrix[S any] struct {
	scr score.Matrix[S]
	tr  trace.Matrix
}

// New pairs up two matrices, which must have the same shape.
func New[S any](s score.Matrix[S], t trace.Matrix) (*Matrix[S], error) {
	if s.Cols() != t.Cols() || s.Rows() != t.Rows() {
		return nil, fmt.Errorf("%w: score %d x %d, trace %d x %d", matrix.ErrInvalidArgument,
			s.Rows(), s.Cols(), t.Rows(), t.Cols())
	}
	return &Matrix[S]{scr: s, tr: t}, nil
}

// NewFull is an unbanded matrix with every score and trace kept.
func NewFull[S any](cols, rows int, init S) *Matrix[S] {
	return &Matrix[S]{scr: score.NewFull(cols, rows, init), tr: trace.NewFull(cols, rows)}
}

// NewBanded is the banded matrix for sequences of length firstLen and
// secondLen.
func NewBanded[S any](firstLen, secondLen int, band matrix.Band, init S) (*Matrix[S], error) {
	s, err := score.NewBanded(firstLen, secondLen, band, init)
	if err != nil {
		return nil, err
	}
	t, err := trace.NewBanded(firstLen, secondLen, band)
	if err != nil {
		return nil, err
	}
	return New[S](s, t)
}

// Resize resizes both halves. It only works for matrices made with
// NewFull, since a band is fixed by the sequence lengths.
func (m *Matrix[S]) Resize(cols, rows int, init S) error {
	s, ok1 := m.scr.(*score.Full[S])
	t, ok2 := m.tr.(*trace.Full)
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: cannot resize a banded matrix", matrix.ErrInvalidArgument)
	}
	s.Resize(cols, rows, init)
	t.Resize(cols, rows)
	return nil
}

func (m *Matrix[S]) Cols() int { return m.scr.Cols() }
func (m *Matrix[S]) Rows() int { return m.scr.Rows() }

// Score and Trace give back the two halves.
func (m *Matrix[S]) Score() score.Matrix[S] { return m.scr }
func (m *Matrix[S]) Trace() trace.Matrix    { return m.tr }

// Column gets column j of both matrices.
func (m *Matrix[S]) Column(j int) Column[S] {
	s := m.scr.Column(j)
	return Column[S]{CoordColumn: s.CoordColumn, s: s, t: m.tr.Column(j)}
}

// TracePath starts a walk back from c.
func (m *Matrix[S]) TracePath(c matrix.Coordinate) (*trace.Iterator, error) {
	return m.tr.TracePath(c)
}

// Column is a score column and a trace column covering the same rows.
// At(k) is the coordinate of cell k.
type Column[S any] struct {
	matrix.CoordColumn
	s score.Column[S]
	t trace.Column
}

func (c Column[S]) Cell(k int) Cell[S] {
	return Cell[S]{s: c.s.Cell(k), t: c.t.Cell(k)}
}

// Cell gives a score cell and a trace cell under one set of names.
type Cell[S any] struct {
	s score.Cell[S]
	t trace.Cell
}

func (c Cell[S]) BestScore() S       { return c.s.Best() }
func (c Cell[S]) HorizontalScore() S { return c.s.Horizontal() }
func (c Cell[S]) VerticalScore() S   { return c.s.Vertical() }
func (c Cell[S]) DiagonalScore() S   { return c.s.Diagonal() }

func (c Cell[S]) SetBestScore(v S)       { c.s.SetBest(v) }
func (c Cell[S]) SetHorizontalScore(v S) { c.s.SetHorizontal(v) }
func (c Cell[S]) SetVerticalScore(v S)   { c.s.SetVertical(v) }

func (c Cell[S]) BestTrace() trace.Direction       { return c.t.Best() }
func (c Cell[S]) HorizontalTrace() trace.Direction { return c.t.Horizontal() }
func (c Cell[S]) VerticalTrace() trace.Direction   { return c.t.Vertical() }

func (c Cell[S]) SetBestTrace(d trace.Direction)       { c.t.SetBest(d) }
func (c Cell[S]) SetHorizontalTrace(d trace.Direction) { c.t.SetHorizontal(d) }
func (c Cell[S]) SetVerticalTrace(d trace.Direction)   { c.t.SetVertical(d) }
