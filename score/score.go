// Package score has the score matrices for affine gap alignment.
// A DP column is walked top to bottom and each cell hands back the scores
// a recurrence needs (diagonal, from the left, from above) and takes the new
// best score and the gap scores it passes right and down.
// The recurrence itself lives with the aligner. These types only store
// things and hand them out in the right order.
//
// Rows run along the second sequence, columns along the first, and both get
// an extra row or column for the border, so a matrix for sequences of
// length n and m has n+1 columns and m+1 rows.
package score

import "github.com/andrew-torda/alnmat/matrix"

// Matrix is what all the score matrices look like from outside.
type Matrix[S any] interface {
	Cols() int
	Rows() int
	Column(j int) Column[S]
}

type source[S any] interface {
	cell(j, i int) Cell[S]
}

// Column is one DP column. Its coordinates come from the matrix's
// coordinate matrix. Cells are numbered from the first row in the column,
// which is not row 0 in a banded matrix.
type Column[S any] struct {
	matrix.CoordColumn
	src source[S]
}

// Cell gets cell k. In a rolling matrix the cells must be taken in order
// and each must have its best score set before the next one is taken.
func (c Column[S]) Cell(k int) Cell[S] { return c.src.cell(c.Index(), c.RowBegin()+k) }

// Cell is a proxy for one cell. The values coming in from the diagonal,
// the left and above are read when the cell is made. The setters write
// straight into the matrix.
type Cell[S any] struct {
	best  *S
	stash *S
	wLeft *S
	wUp   *S
	diag  S
	left  S
	up    S
}

func (c Cell[S]) Best() S { return *c.best }

// SetBest stores the cell's score. A rolling matrix also keeps the old
// value, which is the next row's diagonal.
func (c Cell[S]) SetBest(v S) {
	if c.stash != nil {
		*c.stash = *c.best
	}
	*c.best = v
}

// Diagonal is the best score of the cell up and to the left.
func (c Cell[S]) Diagonal() S { return c.diag }

// Horizontal is the gap score passed in from the left neighbour.
func (c Cell[S]) Horizontal() S { return c.left }

// SetHorizontal stores the gap score for the right neighbour.
func (c Cell[S]) SetHorizontal(v S) { *c.wLeft = v }

// Vertical is the gap score passed down from the cell above.
func (c Cell[S]) Vertical() S { return c.up }

// SetVertical stores the gap score for the cell below.
func (c Cell[S]) SetVertical(v S) { *c.wUp = v }

func fill[S any](s []S, v S) {
	for i := range s {
		s[i] = v
	}
}
