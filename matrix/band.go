package matrix

import "fmt"

// BandGeometry describes where a band sits in a cols x rows DP matrix.
// The band is clamped so it always contains the main diagonal, then cut
// to the matrix. Banded storage keeps Size slots per column, and cell
// (row, col) lives in slot row - col + ColIndex, so a diagonal stays in one
// slot from column to column.
type BandGeometry struct {
	Cols     int
	Rows     int
	ColIndex int // how far the band reaches above the main diagonal
	RowIndex int // and how far below it
	Size     int // ColIndex + RowIndex + 1
}

// NewBandGeometry works out the band for aligning a sequence of length
// firstLen (along the columns) against one of length secondLen (rows).
// The band must reach the last cell.
func NewBandGeometry(firstLen, secondLen int, band Band) (BandGeometry, error) {
	var g BandGeometry
	if !band.Valid() || firstLen < 0 || secondLen < 0 {
		return g, fmt.Errorf("%w: band %+v lengths %d %d", ErrInvalidArgument, band, firstLen, secondLen)
	}
	g.Cols, g.Rows = firstLen+1, secondLen+1
	g.ColIndex = min(max(band.Upper, 0), g.Cols-1)
	g.RowIndex = min(-min(band.Lower, 0), g.Rows-1)
	g.Size = g.ColIndex + g.RowIndex + 1
	if last := (Coordinate{Row: g.Rows - 1, Col: g.Cols - 1}); !g.Contains(last) {
		return g, fmt.Errorf("%w: band %+v does not reach %v", ErrInvalidArgument, band, last)
	}
	return g, nil
}

// RowBegin and RowEnd give the half open row range of column j.
func (g BandGeometry) RowBegin(j int) int { return max(0, j-g.ColIndex) }
func (g BandGeometry) RowEnd(j int) int   { return min(g.Rows, j-g.ColIndex+g.Size) }

// SlotBegin is the storage slot of the first cell of column j.
func (g BandGeometry) SlotBegin(j int) int { return max(0, g.ColIndex-j) }

// Slot gives the storage row for c. It does not check the band.
func (g BandGeometry) Slot(c Coordinate) int { return c.Row - c.Col + g.ColIndex }

// Contains says if c is inside both the matrix and the band.
func (g BandGeometry) Contains(c Coordinate) bool {
	if c.Col < 0 || c.Col >= g.Cols {
		return false
	}
	return c.Row >= g.RowBegin(c.Col) && c.Row < g.RowEnd(c.Col)
}

// Storage converts an absolute coordinate to a (slot, col) one.
func (g BandGeometry) Storage(c Coordinate) Coordinate {
	return Coordinate{Row: g.Slot(c), Col: c.Col}
}

// Absolute converts a (slot, col) coordinate back.
func (g BandGeometry) Absolute(s Coordinate) Coordinate {
	return Coordinate{Row: s.Row + s.Col - g.ColIndex, Col: s.Col}
}
