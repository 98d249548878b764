package gotoh

import (
	"fmt"

	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/score"
	"github.com/andrew-torda/alnmat/simd"
)

// Score is the identity score of a against b.
func (scr *MatchScr) Score(a, b byte) float32 {
	if a == b {
		return scr.Match
	}
	return scr.Mismatch
}

// ScoreBatch scores up to simd.Lanes pairs in one sweep over a rolling
// matrix with a lane per pair. first[k] is aligned to second[k]. All the
// first sequences have to be the same length, as do all the second ones.
// subst gives the score of two residues, as MatchScr.Score or
// submat.Submat.Score do.
func (a *Aligner) ScoreBatch(first, second [][]byte, subst func(x, y byte) float32) ([]float32, error) {
	n := len(first)
	if n == 0 || n > simd.Lanes || len(second) != n {
		return nil, fmt.Errorf("%w: %d and %d sequences, lanes %d",
			matrix.ErrInvalidArgument, len(first), len(second), simd.Lanes)
	}
	for k := 1; k < n; k++ {
		if len(first[k]) != len(first[0]) || len(second[k]) != len(second[0]) {
			return nil, fmt.Errorf("%w: pair %d has lengths %d, %d not %d, %d", matrix.ErrInvalidArgument,
				k, len(first[k]), len(second[k]), len(first[0]), len(second[0]))
		}
	}
	cols, rows := len(first[0])+1, len(second[0])+1
	m := score.NewSingleColumn(cols, rows, simd.Fill(bigf))
	opn, wdn := simd.Fill(a.Open+a.Wdn), simd.Fill(a.Wdn)
	var last simd.Vec[float32]
	for j := 0; j < cols; j++ {
		col := m.Column(j)
		for i := 0; i < rows; i++ {
			c := col.Cell(i)
			var best simd.Vec[float32]
			if i > 0 || j > 0 {
				diag := simd.Fill(bigf)
				if i > 0 && j > 0 {
					var sub simd.Vec[float32]
					for k := 0; k < n; k++ {
						sub[k] = subst(first[k][j-1], second[k][i-1])
					}
					diag = c.Diagonal().Add(sub)
				}
				best = diag.Max(c.Vertical()).Max(c.Horizontal())
			}
			c.SetBest(best)
			c.SetHorizontal(best.Sub(opn).Max(c.Horizontal().Sub(wdn)))
			c.SetVertical(best.Sub(opn).Max(c.Vertical().Sub(wdn)))
			last = best
		}
	}
	r := make([]float32, n)
	copy(r, last[:n])
	return r, nil
}
