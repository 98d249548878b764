package gapdec

import "cmp"

// Sequence is anything that can be read as a gapped sequence.
type Sequence[T any] interface {
	Len() int
	At(i int) Gapped[T]
}

// Plain is an ordinary slice seen as a gapped sequence with no gaps.
type Plain[T any] []T

func (p Plain[T]) Len() int           { return len(p) }
func (p Plain[T]) At(i int) Gapped[T] { return Gapped[T]{Val: p[i]} }

// Equal is true if a and b have the same length and the same
// residues and gaps in the same places.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		x, y := a.At(i), b.At(i)
		if x.Gap != y.Gap || (!x.Gap && x.Val != y.Val) {
			return false
		}
	}
	return true
}

// Compare is lexicographic. A gap comes after every residue and a
// sequence that is a prefix of another comes first.
// It returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Sequence[T]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := compareOne(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func compareOne[T cmp.Ordered](x, y Gapped[T]) int {
	switch {
	case x.Gap && y.Gap:
		return 0
	case x.Gap:
		return 1
	case y.Gap:
		return -1
	}
	return cmp.Compare(x.Val, y.Val)
}

// Less is Compare(a, b) < 0.
func Less[T cmp.Ordered](a, b Sequence[T]) bool { return Compare(a, b) < 0 }
