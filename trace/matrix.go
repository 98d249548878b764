package trace

import (
	"fmt"

	"github.com/andrew-torda/alnmat/matrix"
)

// Matrix is what the two trace matrices have in common.
type Matrix interface {
	Cols() int
	Rows() int
	Column(j int) Column
	TracePath(c matrix.Coordinate) (*Iterator, error)
}

// Column is one column of a trace matrix. As with score columns, cells
// count from the column's first row and have to be taken top to bottom.
type Column struct {
	matrix.CoordColumn
	best   *matrix.Matrix[Direction]
	hor    []Direction
	up     *Direction
	slot0  int // storage row of the first cell
	banded bool
}

// Cell gives a proxy to cell k.
func (c Column) Cell(k int) Cell {
	s := c.slot0 + k
	r := Cell{
		best:  c.best.Ptr(matrix.Coordinate{Row: s, Col: c.Index()}),
		wUp:   c.up,
		up:    *c.up,
		left:  None,
		wLeft: &c.hor[s],
	}
	if c.Index() > 0 {
		if !c.banded {
			r.left = c.hor[s]
		} else if s+1 < len(c.hor) {
			r.left = c.hor[s+1]
		}
	}
	return r
}

// Cell is a proxy to one trace cell. Horizontal and Vertical are the
// traces passed in from the left and from above. The setters store the
// ones passed on.
type Cell struct {
	best  *Direction
	wLeft *Direction
	wUp   *Direction
	left  Direction
	up    Direction
}

func (c Cell) Best() Direction           { return *c.best }
func (c Cell) SetBest(d Direction)       { *c.best = d }
func (c Cell) Horizontal() Direction     { return c.left }
func (c Cell) SetHorizontal(d Direction) { *c.wLeft = d }
func (c Cell) Vertical() Direction       { return c.up }
func (c Cell) SetVertical(d Direction)   { *c.wUp = d }

// Full is an unbanded trace matrix. Only the best traces are kept for
// every cell. The gap traces are carried along, one column's worth of
// horizontal ones and a single vertical one.
type Full struct {
	coords matrix.CoordinateMatrix
	best   *matrix.Matrix[Direction]
	hor    []Direction
	up     Direction
}

// NewFull is an unbanded trace matrix of cols x rows.
func NewFull(cols, rows int) *Full {
	m := new(Full)
	m.Resize(cols, rows)
	return m
}

// Resize throws away old traces. A Full must be resized before use.
func (m *Full) Resize(cols, rows int) {
	if m.best == nil {
		m.best = matrix.New[Direction](rows, cols, matrix.ColumnMajor)
	} else {
		m.best.Resize(rows, cols)
	}
	if rows > cap(m.hor) {
		m.hor = make([]Direction, rows)
	}
	m.hor = m.hor[:rows]
	clear(m.hor)
	m.coords.Resize(cols, rows)
}

func (m *Full) Cols() int { return m.best.Cols() }
func (m *Full) Rows() int { return m.best.Rows() }

// Best gives the stored cells, rows by columns.
func (m *Full) Best() *matrix.Matrix[Direction] { return m.best }

func (m *Full) Column(j int) Column {
	m.up = None
	return Column{CoordColumn: m.coords.Column(j), best: m.best, hor: m.hor, up: &m.up}
}

// TracePath starts a walk back from c.
func (m *Full) TracePath(c matrix.Coordinate) (*Iterator, error) {
	if !m.best.Contains(c) {
		return nil, fmt.Errorf("%w: trace from %v in %d x %d", matrix.ErrInvalidArgument,
			c, m.best.Rows(), m.best.Cols())
	}
	return NewIterator(m.best, c), nil
}

// Banded is a trace matrix for a band. Storage is diagonal aligned as
// for the banded score matrix.
type Banded struct {
	coords *matrix.CoordinateMatrix
	geom   matrix.BandGeometry
	best   *matrix.Matrix[Direction]
	hor    []Direction
	up     Direction
}

// NewBanded is the trace matrix for sequences of length firstLen and
// secondLen in band.
func NewBanded(firstLen, secondLen int, band matrix.Band) (*Banded, error) {
	coords, err := matrix.NewBanded(firstLen, secondLen, band)
	if err != nil {
		return nil, err
	}
	g := coords.Geometry()
	return &Banded{
		coords: coords,
		geom:   g,
		best:   matrix.New[Direction](g.Size, g.Cols, matrix.ColumnMajor),
		hor:    make([]Direction, g.Size),
	}, nil
}

func (m *Banded) Cols() int                     { return m.geom.Cols }
func (m *Banded) Rows() int                     { return m.geom.Rows }
func (m *Banded) Geometry() matrix.BandGeometry { return m.geom }

// Best gives the stored cells, band slots by columns.
func (m *Banded) Best() *matrix.Matrix[Direction] { return m.best }

func (m *Banded) Column(j int) Column {
	m.up = None
	return Column{
		CoordColumn: m.coords.Column(j),
		best:        m.best,
		hor:         m.hor,
		up:          &m.up,
		slot0:       m.geom.SlotBegin(j),
		banded:      true,
	}
}

// TracePath starts a walk back from c, which is an ordinary matrix
// coordinate and has to be inside the band.
func (m *Banded) TracePath(c matrix.Coordinate) (*Iterator, error) {
	if !m.geom.Contains(c) {
		return nil, fmt.Errorf("%w: trace from %v outside band in %d x %d", matrix.ErrInvalidArgument,
			c, m.geom.Rows, m.geom.Cols)
	}
	return NewBandedIterator(m.best, m.geom.Storage(c), m.geom.ColIndex), nil
}
