package matrix

import "github.com/andrew-torda/alnmat/simd"

// CoordinateMatrix hands out the coordinates of a DP matrix, column by
// column, without storing any cells. Unbanded, every column has all rows.
// Banded, a column has only the rows inside the band.
type CoordinateMatrix struct {
	geom   BandGeometry
	banded bool
}

// Resize makes an unbanded coordinate matrix.
func (m *CoordinateMatrix) Resize(cols, rows int) {
	m.geom = BandGeometry{Cols: cols, Rows: rows, ColIndex: cols, Size: rows + cols}
	m.banded = false
}

// NewBanded gives the coordinates for aligning sequences of length
// firstLen and secondLen within band.
func NewBanded(firstLen, secondLen int, band Band) (*CoordinateMatrix, error) {
	g, err := NewBandGeometry(firstLen, secondLen, band)
	if err != nil {
		return nil, err
	}
	return &CoordinateMatrix{geom: g, banded: true}, nil
}

func (m *CoordinateMatrix) Cols() int { return m.geom.Cols }
func (m *CoordinateMatrix) Rows() int { return m.geom.Rows }

// Geometry is only meaningful for a banded matrix.
func (m *CoordinateMatrix) Geometry() BandGeometry { return m.geom }

// Len is the number of coordinates over all columns.
func (m *CoordinateMatrix) Len() (n int) {
	for j := 0; j < m.Cols(); j++ {
		n += m.Column(j).Len()
	}
	return n
}

// Column returns the coordinates of column j.
func (m *CoordinateMatrix) Column(j int) CoordColumn {
	if !m.banded {
		return CoordColumn{col: j, begin: 0, end: m.geom.Rows}
	}
	return CoordColumn{col: j, begin: m.geom.RowBegin(j), end: m.geom.RowEnd(j)}
}

// CoordColumn is one column of a CoordinateMatrix.
type CoordColumn struct {
	col, begin, end int
}

func (c CoordColumn) Index() int    { return c.col }
func (c CoordColumn) RowBegin() int { return c.begin }
func (c CoordColumn) RowEnd() int   { return c.end }
func (c CoordColumn) Len() int      { return c.end - c.begin }

// At gives the i'th coordinate of the column, counting from the first
// row in the column.
func (c CoordColumn) At(i int) Coordinate {
	return Coordinate{Row: c.begin + i, Col: c.col}
}

// SimdAt is At with the row and column copied into every lane, which
// is what a batch of alignments needs.
func (c CoordColumn) SimdAt(i int) simd.Coordinate {
	return simd.NewCoordinate(uint32(c.begin+i), uint32(c.col))
}

// All returns every coordinate in the column.
func (c CoordColumn) All() []Coordinate {
	r := make([]Coordinate, c.Len())
	for i := range r {
		r[i] = c.At(i)
	}
	return r
}
