// Feb 2018, reworked Oct 2026 to sit on the dpmat matrices.

// Package gotoh implements the Gotoh version of global pair-wise alignments
// with affine gap penalties.
// The first sequence runs along the columns and the second down the rows.
// Scores for each pair of residues come from a matrix with one row per
// residue of the first sequence and one column per residue of the second,
// as made by IdentScore or by submat.
// An Aligner keeps its matrices, so it can be re-used over different
// alignments and the storage goes away when the aligner goes away.
package gotoh

import (
	"fmt"
	"strings"

	fmatrix "github.com/andrew-torda/matrix"

	"github.com/andrew-torda/alnmat/dpmat"
	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/score"
	"github.com/andrew-torda/alnmat/seq"
	"github.com/andrew-torda/alnmat/trace"
)

// Pnlty has the gap opening and widening values. Note, this is different to
// some earlier code. Opening costs you -(Open+Wdn). Each extension costs
// -Wdn
type Pnlty struct {
	Open float32
	Wdn  float32
}

// MatchScr is for identity scoring.
type MatchScr struct {
	Match    float32 // matched characters
	Mismatch float32 // mismatched
}

const bigf float32 = -1e+38

// IdentScore fills out a score matrix using identity. Values for match/mismatch
// come from the scr structure.
// for an M x N pair, we have an M x N matrix. There is no extra room
// at the start and end.
func IdentScore(s []byte, t []byte, scr *MatchScr) (smat *fmatrix.FMatrix2d) {
	smat = fmatrix.NewFMatrix2d(len(s), len(t))
	mat := smat.Mat
	for i, cs := range s {
		for j, ct := range t {
			if cs == ct {
				mat[i][j] = scr.Match
			} else {
				mat[i][j] = scr.Mismatch
			}
		}
	}
	return
}

// step is what comes out of one cell.
type step struct {
	best, hor, vert       float32
	bestTr, horTr, vertTr trace.Direction
}

// relax is the recurrence for one cell. diag already has the substitution
// score added, or is bigf if there is no diagonal neighbour. left and up
// are the gap scores coming in, with their traces. The origin scores zero
// and has no trace.
func relax(diag, left, up float32, leftTr, upTr trace.Direction, pn Pnlty, origin bool) (s step) {
	if origin {
		s.best = 0
	} else {
		s.best = max(diag, up, left)
		if diag == s.best {
			s.bestTr |= trace.Diagonal
		}
		if up == s.best {
			s.bestTr |= trace.Up
		}
		if left == s.best {
			s.bestTr |= trace.Left
		}
		s.bestTr |= trace.Carry(upTr, leftTr)
	}
	opn := s.best - (pn.Open + pn.Wdn)
	s.vert, s.vertTr = opn, trace.UpOpen
	if e := up - pn.Wdn; e > opn {
		s.vert, s.vertTr = e, trace.Up
	}
	s.hor, s.horTr = opn, trace.LeftOpen
	if e := left - pn.Wdn; e > opn {
		s.hor, s.horTr = e, trace.Left
	}
	return s
}

// Result is a finished alignment. Score is the score in the last cell.
type Result struct {
	Score float32
	trace.Alignment[byte]
}

// Aligner holds the penalties and the matrices, which grow as needed.
type Aligner struct {
	Pnlty
	dp   *dpmat.Matrix[float32]
	roll *score.SingleColumn[float32]
}

func NewAligner(pn Pnlty) *Aligner { return &Aligner{Pnlty: pn} }

// checkSub makes sure the score matrix fits the sequences.
func checkSub(first, second []byte, sub *fmatrix.FMatrix2d) error {
	if sub == nil {
		return fmt.Errorf("%w: no score matrix", matrix.ErrInvalidArgument)
	}
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	if nr, nc := sub.Size(); nr != len(first) || nc != len(second) {
		return fmt.Errorf("%w: score matrix %d x %d for sequences of %d and %d",
			matrix.ErrInvalidArgument, nr, nc, len(first), len(second))
	}
	return nil
}

// Align implements Gotoh, O. J. Mol. Biol. (1982) 162, 705-708.
// It does not have the bugs described in Flouri, T, Kobert, K., Rognes, T
// and Stamatakis, doi: http://dx.doi.org/10.1101/031500 (2015).
// The whole of both sequences is aligned.
func (a *Aligner) Align(first, second []byte, sub *fmatrix.FMatrix2d) (Result, error) {
	if err := checkSub(first, second, sub); err != nil {
		return Result{}, err
	}
	cols, rows := len(first)+1, len(second)+1
	if a.dp == nil {
		a.dp = dpmat.NewFull[float32](cols, rows, bigf)
	} else if err := a.dp.Resize(cols, rows, bigf); err != nil {
		return Result{}, err
	}
	return a.finish(a.dp, first, second, sub)
}

// AlignBanded only looks at cells whose diagonal, column minus row, lies
// within band. The band has to reach the last cell.
func (a *Aligner) AlignBanded(first, second []byte, sub *fmatrix.FMatrix2d, band matrix.Band) (Result, error) {
	if err := checkSub(first, second, sub); err != nil {
		return Result{}, err
	}
	m, err := dpmat.NewBanded[float32](len(first), len(second), band, bigf)
	if err != nil {
		return Result{}, err
	}
	return a.finish(m, first, second, sub)
}

func (a *Aligner) finish(m *dpmat.Matrix[float32], first, second []byte, sub *fmatrix.FMatrix2d) (Result, error) {
	scr := fill(m, sub, a.Pnlty)
	it, err := m.TracePath(matrix.Coordinate{Row: m.Rows() - 1, Col: m.Cols() - 1})
	if err != nil {
		return Result{}, err
	}
	return Result{Score: scr, Alignment: trace.Build(it, first, second)}, nil
}

// fill runs the recurrence over a score and trace matrix and returns the
// score in the last cell.
func fill(m *dpmat.Matrix[float32], sub *fmatrix.FMatrix2d, pn Pnlty) (last float32) {
	for j := 0; j < m.Cols(); j++ {
		col := m.Column(j)
		for k := 0; k < col.Len(); k++ {
			at, c := col.At(k), col.Cell(k)
			diag := bigf
			if at.Row > 0 && at.Col > 0 {
				diag = c.DiagonalScore() + sub.Mat[at.Col-1][at.Row-1]
			}
			s := relax(diag, c.HorizontalScore(), c.VerticalScore(),
				c.HorizontalTrace(), c.VerticalTrace(), pn, at == matrix.Coordinate{})
			c.SetBestScore(s.best)
			c.SetBestTrace(s.bestTr)
			c.SetHorizontalScore(s.hor)
			c.SetHorizontalTrace(s.horTr)
			c.SetVerticalScore(s.vert)
			c.SetVerticalTrace(s.vertTr)
			last = s.best
		}
	}
	return last
}

// Sweep runs the recurrence over any score matrix, without traces, and
// returns the score in the last cell. The matrix must be of
// len(first)+1 x len(second)+1 for the two sequences behind sub. If hook
// is not nil, it gets each column once the column is finished.
func Sweep(m score.Matrix[float32], sub *fmatrix.FMatrix2d, pn Pnlty, hook func(score.Column[float32])) (last float32) {
	for j := 0; j < m.Cols(); j++ {
		col := m.Column(j)
		for k := 0; k < col.Len(); k++ {
			i, c := col.RowBegin()+k, col.Cell(k)
			diag := bigf
			if i > 0 && j > 0 {
				diag = c.Diagonal() + sub.Mat[j-1][i-1]
			}
			s := relax(diag, c.Horizontal(), c.Vertical(), trace.None, trace.None, pn, i == 0 && j == 0)
			c.SetBest(s.best)
			c.SetHorizontal(s.hor)
			c.SetVertical(s.vert)
			last = s.best
		}
		if hook != nil {
			hook(col)
		}
	}
	return last
}

// Score gives the alignment score only. It keeps a single column, so the
// memory goes with the length of the second sequence.
func (a *Aligner) Score(first, second []byte, sub *fmatrix.FMatrix2d) (float32, error) {
	if err := checkSub(first, second, sub); err != nil {
		return 0, err
	}
	cols, rows := len(first)+1, len(second)+1
	if a.roll == nil {
		a.roll = score.NewSingleColumn(cols, rows, bigf)
	} else {
		a.roll.Resize(cols, rows, bigf)
	}
	return Sweep(a.roll, sub, a.Pnlty, nil), nil
}

// PrintSeqDebug is a primitive printer for aligned sequences, but
// it is essential for debugging.
func PrintSeqDebug(verbose bool, r Result) {
	if !verbose {
		return
	}
	var b strings.Builder
	for _, d := range r.Path {
		b.WriteString(d.String())
	}
	fmt.Println("aligned, score", r.Score, "path", b.String(), ":\n",
		string(r.First.Values(seq.GapChar)), "\n", string(r.Second.Values(seq.GapChar)))
}
