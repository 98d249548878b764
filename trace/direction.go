// Package trace stores where each DP cell got its score from and walks
// back through it to recover an alignment.
package trace

import "strings"

// Direction is a bit mask. Several bits can be set when scores tie.
// An open flag says a gap run starts in this cell, so a walk going up
// (or left) through a gap stops there and looks at the next cell afresh.
type Direction uint8

const (
	None     Direction = 0
	Diagonal Direction = 0b00001
	UpOpen   Direction = 0b00110
	Up       Direction = 0b00100
	LeftOpen Direction = 0b11000
	Left     Direction = 0b10000
)

const (
	upCarry   = UpOpen &^ Up
	leftCarry = LeftOpen &^ Left
)

// String gives D, U, UO, L, LO or N, or several of them joined by |.
func (d Direction) String() string {
	if d == None {
		return "N"
	}
	var parts []string
	if d&Diagonal != 0 {
		parts = append(parts, "D")
	}
	switch {
	case d&UpOpen == UpOpen:
		parts = append(parts, "UO")
	case d&Up != 0:
		parts = append(parts, "U")
	}
	switch {
	case d&LeftOpen == LeftOpen:
		parts = append(parts, "LO")
	case d&Left != 0:
		parts = append(parts, "L")
	}
	return strings.Join(parts, "|")
}

// pick chooses one direction out of a cell. Diagonal wins, then up.
func pick(d Direction) Direction {
	switch {
	case d&Diagonal != 0:
		return Diagonal
	case d&Up != 0:
		return Up
	case d&Left != 0:
		return Left
	}
	return None
}

// Carry keeps only the open flags of the gap traces coming into a cell.
// They go into the cell's best trace, so a walk along a gap knows which
// cell opened it.
func Carry(vertical, horizontal Direction) Direction {
	return vertical&upCarry | horizontal&leftCarry
}
