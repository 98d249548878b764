package trace

import (
	"slices"

	"github.com/andrew-torda/alnmat/gapdec"
	"github.com/andrew-torda/alnmat/matrix"
)

// Alignment is what comes out of a walk through a trace matrix.
// First runs along the columns, Second along the rows. Begin and End
// are the matrix coordinates where the walk stopped and started, so the
// aligned pieces are first[Begin.Col:End.Col] and second[Begin.Row:End.Row].
type Alignment[T comparable] struct {
	First  *gapdec.Decorator[T]
	Second *gapdec.Decorator[T]
	Path   []Direction // from Begin to End
	Begin  matrix.Coordinate
	End    matrix.Coordinate
}

// Build uses up the iterator and puts the gaps into the two sequences.
// Going up consumes a residue of second against a gap, going left one of
// first against a gap.
func Build[T comparable](it *Iterator, first, second []T) Alignment[T] {
	end := it.Coordinate()
	path := it.Path()
	begin := it.Coordinate()
	slices.Reverse(path)
	a := Alignment[T]{
		First:  gapdec.New(first[begin.Col:end.Col]),
		Second: gapdec.New(second[begin.Row:end.Row]),
		Path:   path,
		Begin:  begin,
		End:    end,
	}
	for pos, d := range path {
		switch d {
		case Up:
			a.First.InsertGap(pos, 1)
		case Left:
			a.Second.InsertGap(pos, 1)
		}
	}
	return a
}
