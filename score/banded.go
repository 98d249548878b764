package score

import "github.com/andrew-torda/alnmat/matrix"

// Banded keeps every cell inside a band. Storage has one row per band slot,
// see matrix.BandGeometry, so a diagonal neighbour is in the same slot of
// the previous column and a left neighbour is one slot further down.
type Banded[S any] struct {
	coords *matrix.CoordinateMatrix
	geom   matrix.BandGeometry
	best   *matrix.Matrix[S]
	hor    *matrix.Matrix[S]
	vert   *matrix.Matrix[S]
	init   S
}

// NewBanded is the score matrix for aligning sequences of length
// firstLen and secondLen inside band.
func NewBanded[S any](firstLen, secondLen int, band matrix.Band, init S) (*Banded[S], error) {
	coords, err := matrix.NewBanded(firstLen, secondLen, band)
	if err != nil {
		return nil, err
	}
	g := coords.Geometry()
	m := &Banded[S]{coords: coords, geom: g, init: init}
	m.best = matrix.New[S](g.Size, g.Cols, matrix.ColumnMajor)
	m.hor = matrix.New[S](g.Size, g.Cols, matrix.ColumnMajor)
	m.vert = matrix.New[S](g.Size, g.Cols, matrix.ColumnMajor)
	for _, x := range []*matrix.Matrix[S]{m.best, m.hor, m.vert} {
		fill(x.Cells(), init)
	}
	return m, nil
}

func (m *Banded[S]) Cols() int                     { return m.geom.Cols }
func (m *Banded[S]) Rows() int                     { return m.geom.Rows }
func (m *Banded[S]) Geometry() matrix.BandGeometry { return m.geom }

func (m *Banded[S]) Column(j int) Column[S] {
	return Column[S]{CoordColumn: m.coords.Column(j), src: m}
}

// Best reads a best score by absolute coordinate. Cells outside the
// band score init.
func (m *Banded[S]) Best(c matrix.Coordinate) S {
	if !m.geom.Contains(c) {
		return m.init
	}
	return m.best.Get(m.geom.Storage(c))
}

func (m *Banded[S]) cell(j, i int) Cell[S] {
	s := m.geom.Slot(matrix.Coordinate{Row: i, Col: j})
	at := matrix.Coordinate{Row: s, Col: j}
	c := Cell[S]{
		best:  m.best.Ptr(at),
		wLeft: m.hor.Ptr(at),
		wUp:   m.vert.Ptr(at),
		diag:  m.init,
		left:  m.init,
		up:    m.init,
	}
	if j > 0 {
		if s+1 < m.geom.Size {
			c.left = m.hor.Get(matrix.Coordinate{Row: s + 1, Col: j - 1})
		}
		if i > 0 {
			c.diag = m.best.Get(matrix.Coordinate{Row: s, Col: j - 1})
		}
	}
	if i > m.geom.RowBegin(j) {
		c.up = m.vert.Get(matrix.Coordinate{Row: s - 1, Col: j})
	}
	return c
}
