package matrix

import "fmt"

// Coordinate is a cell in a matrix. Both parts are non-negative
// for anything that is really in a matrix.
type Coordinate struct {
	Row int
	Col int
}

// Offset is a signed difference between two coordinates.
type Offset struct {
	Row int
	Col int
}

func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub gives the offset that takes d to c.
func (c Coordinate) Sub(d Coordinate) Offset {
	return Offset{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Less orders by column, then row, the way a column major
// matrix is walked.
func (c Coordinate) Less(d Coordinate) bool {
	if c.Col != d.Col {
		return c.Col < d.Col
	}
	return c.Row < d.Row
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Band is a diagonal strip of a DP matrix. Diagonal d holds the cells with
// col - row == d, so the main diagonal is 0, Upper is to the right of it
// and Lower below it.
type Band struct {
	Lower int
	Upper int
}

// Valid says if the band has lower <= upper
func (b Band) Valid() bool { return b.Lower <= b.Upper }
