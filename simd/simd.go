// Package simd has a fixed width vector of numbers. Each lane holds the
// value for a different alignment, and every operation works on all lanes
// at once. There is no assembler here. The loops are short and the
// compiler is left to do what it can with them.
package simd

// Lanes is the number of values in a Vec.
const Lanes = 8

// Number is anything we are willing to do arithmetic on in a lane.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Vec is a lane packed value.
type Vec[T Number] [Lanes]T

// Fill puts x in every lane.
func Fill[T Number](x T) (v Vec[T]) {
	for i := range v {
		v[i] = x
	}
	return v
}

// Iota gives start, start+1, ...
func Iota[T Number](start T) (v Vec[T]) {
	for i := range v {
		v[i] = start + T(i)
	}
	return v
}

func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// Max is lane-wise.
func (v Vec[T]) Max(w Vec[T]) Vec[T] {
	for i := range v {
		if w[i] > v[i] {
			v[i] = w[i]
		}
	}
	return v
}

// Eq returns a mask with bit i set where lane i is equal.
func (v Vec[T]) Eq(w Vec[T]) Mask {
	var m Mask
	for i := range v {
		if v[i] == w[i] {
			m |= 1 << i
		}
	}
	return m
}

// Blend takes lanes from v where m is set and from w elsewhere.
func (v Vec[T]) Blend(m Mask, w Vec[T]) Vec[T] {
	for i := range v {
		if m&(1<<i) == 0 {
			v[i] = w[i]
		}
	}
	return v
}

// Mask has one bit per lane.
type Mask uint8

// AllLanes is a mask with every lane set.
const AllLanes Mask = 1<<Lanes - 1

func (m Mask) All() bool { return m == AllLanes }

// Coordinate is a matrix coordinate with a row and a column per lane.
type Coordinate struct {
	Row Vec[uint32]
	Col Vec[uint32]
}

// NewCoordinate copies row and col into every lane.
func NewCoordinate(row, col uint32) Coordinate {
	return Coordinate{Row: Fill(row), Col: Fill(col)}
}

// Eq compares lane-wise. A lane is set if both row and column agree.
func (c Coordinate) Eq(d Coordinate) Mask {
	return c.Row.Eq(d.Row) & c.Col.Eq(d.Col)
}
