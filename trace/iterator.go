package trace

import "github.com/andrew-torda/alnmat/matrix"

// Iterator walks backwards through a trace matrix. It starts on a cell,
// gives the direction taken from there, and moves to the predecessor
// until it lands on a cell with no direction.
//
//	for it := m.TracePath(end); !it.Done(); it.Next() {
//		... it.Direction(), it.Coordinate()
//	}
type Iterator struct {
	cur   matrix.Cursor[Direction]
	dir   Direction
	moves [3]matrix.Offset // diagonal, up, left
	pivot int
	band  bool
	done  bool
}

var (
	unbandedMoves = [3]matrix.Offset{{Row: -1, Col: -1}, {Row: -1}, {Col: -1}}
	bandedMoves   = [3]matrix.Offset{{Col: -1}, {Row: -1}, {Row: 1, Col: -1}}
)

// NewIterator starts at c in an unbanded trace matrix.
func NewIterator(m *matrix.Matrix[Direction], c matrix.Coordinate) *Iterator {
	it := &Iterator{cur: m.CursorAt(c), moves: unbandedMoves}
	it.set()
	return it
}

// NewBandedIterator starts at storage coordinate s of a banded trace
// matrix, where storage row = row - col + pivot.
func NewBandedIterator(m *matrix.Matrix[Direction], s matrix.Coordinate, pivot int) *Iterator {
	it := &Iterator{cur: m.CursorAt(s), moves: bandedMoves, pivot: pivot, band: true}
	it.set()
	return it
}

func (it *Iterator) set() {
	it.dir = pick(it.cur.Value())
	it.done = it.dir == None
}

// Done is true once the walk has reached a cell with no direction.
func (it *Iterator) Done() bool { return it.done }

// Direction is Diagonal, Up or Left.
func (it *Iterator) Direction() Direction { return it.dir }

// Coordinate is where the iterator stands, as a matrix coordinate.
func (it *Iterator) Coordinate() matrix.Coordinate {
	c := it.cur.Coordinate()
	if it.band {
		c.Row += c.Col - it.pivot
	}
	return c
}

// Next moves to the predecessor. Going up or left, the walk stays in the
// gap unless the cell it leaves opened it.
func (it *Iterator) Next() {
	if it.done {
		return
	}
	old := it.cur.Value()
	switch it.dir {
	case Diagonal:
		it.cur.Move(it.moves[0])
		it.set()
		return
	case Up:
		it.cur.Move(it.moves[1])
		if old&upCarry != 0 {
			it.set()
			return
		}
	case Left:
		it.cur.Move(it.moves[2])
		if old&leftCarry != 0 {
			it.set()
			return
		}
	}
	if it.cur.Value() == None {
		it.done = true
	}
}

// Path collects the remaining directions. The iterator is used up.
func (it *Iterator) Path() []Direction {
	var r []Direction
	for ; !it.Done(); it.Next() {
		r = append(r, it.Direction())
	}
	return r
}
