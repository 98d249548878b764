// Package gapdec puts gaps into a sequence without touching it.
// A Decorator holds the original, ungapped slice and a sorted list of
// anchors. Each anchor marks a run of gaps by where the run starts in the
// gapped sequence and how many gaps there are up to and including the run.
// Looking up position i is a binary search over the anchors.
//
// The underlying slice is shared, not copied. Whoever made it has to
// leave it alone while the decorator is in use.
package gapdec

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

var (
	ErrGapErase   = errors.New("gapdec: range to erase is not all gaps")
	ErrOutOfRange = errors.New("gapdec: position out of range")
)

// Gapped is one element of a gapped sequence. If Gap is set, Val
// means nothing.
type Gapped[T any] struct {
	Val T
	Gap bool
}

type anchor struct {
	pos int // first gap of the run, in gapped coordinates
	cum int // number of gaps up to and including this run
}

// Decorator is a gapped view of a slice.
type Decorator[T comparable] struct {
	seq     []T
	anchors []anchor
}

// New wraps seq with no gaps.
func New[T comparable](seq []T) *Decorator[T] {
	return &Decorator[T]{seq: seq}
}

// Parse takes a sequence that already has gaps in it and splits it
// into the residues and the anchors.
func Parse[T comparable](vals []T, gap T) *Decorator[T] {
	d := new(Decorator[T])
	ngap := 0
	for i, v := range vals {
		if v != gap {
			d.seq = append(d.seq, v)
			continue
		}
		ngap++
		if i == 0 || vals[i-1] != gap {
			d.anchors = append(d.anchors, anchor{pos: i, cum: ngap})
		} else {
			d.anchors[len(d.anchors)-1].cum = ngap
		}
	}
	return d
}

// AssignUnaligned replaces the underlying sequence and drops all gaps.
func (d *Decorator[T]) AssignUnaligned(seq []T) {
	d.seq = seq
	d.anchors = d.anchors[:0]
}

// Underlying is the ungapped sequence.
func (d *Decorator[T]) Underlying() []T { return d.seq }

// Len counts residues and gaps.
func (d *Decorator[T]) Len() int { return len(d.seq) + d.ngaps() }

func (d *Decorator[T]) ngaps() int {
	if len(d.anchors) == 0 {
		return 0
	}
	return d.anchors[len(d.anchors)-1].cum
}

// cumBefore is the number of gaps before anchor k's run.
func (d *Decorator[T]) cumBefore(k int) int {
	if k <= 0 {
		return 0
	}
	return d.anchors[k-1].cum
}

// runEnd is one past the last gap of anchor k's run.
func (d *Decorator[T]) runEnd(k int) int {
	a := d.anchors[k]
	return a.pos + a.cum - d.cumBefore(k)
}

// find returns the last anchor starting at or before i, or -1.
func (d *Decorator[T]) find(i int) int {
	return sort.Search(len(d.anchors), func(k int) bool { return d.anchors[k].pos > i }) - 1
}

// IsGap says if position i is a gap.
func (d *Decorator[T]) IsGap(i int) bool {
	k := d.find(i)
	return k >= 0 && i < d.runEnd(k)
}

// At returns element i. It panics if i is out of range, as a slice would.
func (d *Decorator[T]) At(i int) Gapped[T] {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("gapdec: index %d out of range [0:%d]", i, d.Len()))
	}
	k := d.find(i)
	if k < 0 {
		return Gapped[T]{Val: d.seq[i]}
	}
	if i < d.runEnd(k) {
		return Gapped[T]{Gap: true}
	}
	return Gapped[T]{Val: d.seq[i-d.anchors[k].cum]}
}

// shift moves anchors from k onwards by n gaps.
func (d *Decorator[T]) shift(k, n int) {
	for ; k < len(d.anchors); k++ {
		d.anchors[k].pos += n
		d.anchors[k].cum += n
	}
}

// InsertGap puts count gaps in front of position pos. If pos touches a
// gap run, the run gets longer. Inserting zero gaps does nothing.
// The return value is the position of the first new gap.
func (d *Decorator[T]) InsertGap(pos, count int) (int, error) {
	if pos < 0 || pos > d.Len() || count < 0 {
		return pos, fmt.Errorf("%w: insert %d gaps at %d, length %d", ErrOutOfRange, count, pos, d.Len())
	}
	if count == 0 {
		return pos, nil
	}
	k := d.find(pos)
	if k >= 0 && pos <= d.runEnd(k) {
		d.anchors[k].cum += count
		d.shift(k+1, count)
		return pos, nil
	}
	a := anchor{pos: pos, cum: d.cumBefore(k+1) + count}
	d.anchors = append(d.anchors, anchor{})
	copy(d.anchors[k+2:], d.anchors[k+1:])
	d.anchors[k+1] = a
	d.shift(k+2, count)
	return pos, nil
}

// EraseGap removes the gap at pos.
func (d *Decorator[T]) EraseGap(pos int) (int, error) {
	return d.EraseGaps(pos, pos+1)
}

// EraseGaps removes positions first up to, not including, last. They must
// all be gaps, otherwise nothing is changed and the error is ErrGapErase.
// The return value is first, which now holds whatever followed the gaps.
func (d *Decorator[T]) EraseGaps(first, last int) (int, error) {
	if first < 0 || last > d.Len() || first > last {
		return first, fmt.Errorf("%w: erase [%d,%d), length %d", ErrOutOfRange, first, last, d.Len())
	}
	if first == last {
		return first, nil
	}
	k := d.find(first)
	if k < 0 || last > d.runEnd(k) {
		return first, fmt.Errorf("%w: [%d,%d)", ErrGapErase, first, last)
	}
	n := last - first
	d.anchors[k].cum -= n
	if d.anchors[k].cum == d.cumBefore(k) {
		d.anchors = append(d.anchors[:k], d.anchors[k+1:]...)
	} else {
		k++
	}
	d.shift(k, -n)
	return first, nil
}

// Clone copies the gaps. The underlying sequence is shared.
func (d *Decorator[T]) Clone() *Decorator[T] {
	return &Decorator[T]{seq: d.seq, anchors: append([]anchor(nil), d.anchors...)}
}

// Values writes out the sequence with gap in place of each gap.
func (d *Decorator[T]) Values(gap T) []T {
	r := make([]T, 0, d.Len())
	for _, g := range d.All() {
		if g.Gap {
			r = append(r, gap)
		} else {
			r = append(r, g.Val)
		}
	}
	return r
}

// All goes over the elements in order.
func (d *Decorator[T]) All() iter.Seq2[int, Gapped[T]] {
	return func(yield func(int, Gapped[T]) bool) {
		i, u := 0, 0
		for k, a := range d.anchors {
			for ; i < a.pos; i, u = i+1, u+1 {
				if !yield(i, Gapped[T]{Val: d.seq[u]}) {
					return
				}
			}
			for end := d.runEnd(k); i < end; i++ {
				if !yield(i, Gapped[T]{Gap: true}) {
					return
				}
			}
		}
		for ; u < len(d.seq); i, u = i+1, u+1 {
			if !yield(i, Gapped[T]{Val: d.seq[u]}) {
				return
			}
		}
	}
}

// Backward goes over the elements from the end.
func (d *Decorator[T]) Backward() iter.Seq2[int, Gapped[T]] {
	return func(yield func(int, Gapped[T]) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, d.At(i)) {
				return
			}
		}
	}
}

// Equal compares element by element with anything gapped.
func (d *Decorator[T]) Equal(o Sequence[T]) bool { return Equal[T](d, o) }
