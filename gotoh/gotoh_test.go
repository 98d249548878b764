// Scores are for global alignments, end gaps cost the same as any other.

package gotoh_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	gth "github.com/andrew-torda/alnmat/gotoh"
	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/randseq"
	"github.com/andrew-torda/alnmat/score"
	"github.com/andrew-torda/alnmat/seq"
	"github.com/andrew-torda/alnmat/simd"
	"github.com/andrew-torda/alnmat/submat"
	"github.com/google/go-cmp/cmp"
)

func rev(s string) string {
	t := []byte(s)
	for i, j := 0, len(t)-1; i < j; i, j = i+1, j-1 {
		t[i], t[j] = t[j], t[i]
	}
	return string(t)
}

var testpairs = []struct {
	s1      string       // I tried to line this up and make it readable.
	s2      string       // gofmt removes all the excess spaces
	m_scr   gth.MatchScr // Given to identity score function
	a_scr   gth.Pnlty    // Gap open and widen penalties
	scr_exp float32      // expected score
}{
	{"a", "a", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 5},
	{"abcd", "abd", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 13},
	{"abcde", "abe", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 12},
	{"abcdef", "abf", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 11},
	{"abcdef", "abde", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 16},
	{"abc", "abc", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 15},
	{"ab", "xy", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, -4},
	{"", "abc", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, -4},
	{"", "", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 0},
	{"abcde", "bcd", gth.MatchScr{2, 1}, gth.Pnlty{2, 4}, -6},
	{"bcde", "ae", gth.MatchScr{5, -2}, gth.Pnlty{1, 1}, 0},
}

func TestGotoh(t *testing.T) {
	const verbose = false
	al := gth.NewAligner(gth.Pnlty{})
	var f = func(s1, s2 string, m_scr *gth.MatchScr, pn gth.Pnlty) float32 {
		al.Pnlty = pn
		scr_mat := gth.IdentScore([]byte(s1), []byte(s2), m_scr)
		r, err := al.Align([]byte(s1), []byte(s2), scr_mat)
		if err != nil {
			t.Fatal(err)
		}
		gth.PrintSeqDebug(verbose, r)
		return r.Score
	}
	for _, x := range testpairs {
		s1, s2 := x.s1, x.s2
		scr_1 := f(s1, s2, &x.m_scr, x.a_scr)
		scr_2 := f(s2, s1, &x.m_scr, x.a_scr)
		scr_3 := f(rev(s2), rev(s1), &x.m_scr, x.a_scr)
		if scr_1 != scr_2 {
			t.Fatal("string1/string2 string2/string1 scores not equal.\n",
				"Strings were ", s1, s2, "scores", scr_1, scr_2)
		}
		if scr_2 != scr_3 {
			t.Fatal("scores not equal with reversed strings\n", "Strings were ", s1, s2)
		}
		if scr_1 != x.scr_exp {
			t.Fatal("Wrong score while aligning\n", s1, "and", s2, "Expected", x.scr_exp, "got", scr_1)
		}
	}
}

// Three cases whose alignments are not ambiguous.
func TestAlignStrings(t *testing.T) {
	var tests = []struct {
		s1, s2   string
		al1, al2 string
	}{
		{"abcd", "abd", "abcd", "ab-d"},
		{"abcdef", "abf", "abcdef", "ab---f"},
		{"abd", "abcd", "ab-d", "abcd"},
	}
	m_scr := gth.MatchScr{Match: 5, Mismatch: -2}
	al := gth.NewAligner(gth.Pnlty{Open: 1, Wdn: 1})
	for _, tt := range tests {
		s1, s2 := []byte(tt.s1), []byte(tt.s2)
		r, err := al.Align(s1, s2, gth.IdentScore(s1, s2, &m_scr))
		if err != nil {
			t.Fatal(err)
		}
		if a := string(r.First.Values(seq.GapChar)); a != tt.al1 {
			t.Fatal("first aligned as", a, "wanted", tt.al1)
		}
		if a := string(r.Second.Values(seq.GapChar)); a != tt.al2 {
			t.Fatal("second aligned as", a, "wanted", tt.al2)
		}
		if r.Begin != (matrix.Coordinate{}) || r.End != (matrix.Coordinate{Row: len(s2), Col: len(s1)}) {
			t.Fatal("global alignment ends", r.Begin, r.End)
		}
	}
}

func TestBadScoreMatrix(t *testing.T) {
	al := gth.NewAligner(gth.Pnlty{Open: 1, Wdn: 1})
	s1, s2 := []byte("abc"), []byte("ab")
	if _, err := al.Align(s1, s2, nil); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("nil score matrix gave", err)
	}
	m_scr := gth.MatchScr{Match: 1}
	if _, err := al.Score(s1, s2, gth.IdentScore(s2, s1, &m_scr)); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("transposed score matrix gave", err)
	}
}

// The rolling matrix has to give the same best scores as the full one,
// column by column, while only holding one column.
func TestRollingEqualsFull(t *testing.T) {
	gen := randseq.New(1)
	s1 := gen.Seq(seq.Protein, 37)
	s2 := append([]byte{}, s1...)
	gen.Mutate(seq.Protein, 0.3, s2)
	s2, err := gen.DelN(6, s2)
	if err != nil {
		t.Fatal(err)
	}
	m_scr := gth.MatchScr{Match: 5, Mismatch: -1}
	sub := gth.IdentScore(s1, s2, &m_scr)
	pn := gth.Pnlty{Open: 2, Wdn: 1}
	cols, rows := len(s1)+1, len(s2)+1

	collect := func(got *[][]float32) func(score.Column[float32]) {
		return func(col score.Column[float32]) {
			var v []float32
			for k := 0; k < col.Len(); k++ {
				v = append(v, col.Cell(k).Best())
			}
			*got = append(*got, v)
		}
	}
	var full, rolling [][]float32
	roll := score.NewSingleColumn(cols, rows, float32(-1e38))
	scrFull := gth.Sweep(score.NewFull(cols, rows, float32(-1e38)), sub, pn, collect(&full))
	scrRoll := gth.Sweep(roll, sub, pn, collect(&rolling))
	if scrFull != scrRoll {
		t.Fatal("full", scrFull, "rolling", scrRoll)
	}
	if diff := cmp.Diff(full, rolling); diff != "" {
		t.Fatal("columns differ", diff)
	}
	if roll.Cap() != 2*rows {
		t.Fatal("rolling matrix holds", roll.Cap(), "cells for", rows, "rows")
	}
	al := gth.NewAligner(pn)
	r, err := al.Align(s1, s2, sub)
	if err != nil {
		t.Fatal(err)
	}
	s, err := al.Score(s1, s2, sub)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != scrFull || s != scrFull {
		t.Fatal("aligner", r.Score, s, "sweep", scrFull)
	}
}

func TestBanded(t *testing.T) {
	m_scr := gth.MatchScr{Match: 5, Mismatch: -2}
	al := gth.NewAligner(gth.Pnlty{Open: 1, Wdn: 1})
	gen := randseq.New(7)
	for n := 0; n < 10; n++ {
		s1 := gen.Seq(seq.DNA, 20+n)
		s2 := gen.InsN(seq.DNA, 3, gen.DelRand(0.2, append([]byte{}, s1...)))
		sub := gth.IdentScore(s1, s2, &m_scr)
		full, err := al.Align(s1, s2, sub)
		if err != nil {
			t.Fatal(err)
		}
		wide := matrix.Band{Lower: -len(s2), Upper: len(s1)}
		b, err := al.AlignBanded(s1, s2, sub, wide)
		if err != nil {
			t.Fatal(err)
		}
		if b.Score != full.Score {
			t.Fatal("wide band scored", b.Score, "unbanded", full.Score)
		}
		if !b.First.Equal(full.First) || !b.Second.Equal(full.Second) {
			t.Fatal("wide band aligned differently\n", string(b.First.Values('-')),
				"\n", string(full.First.Values('-')))
		}
	}

	s1, s2 := []byte("abcdef"), []byte("abf")
	sub := gth.IdentScore(s1, s2, &m_scr)
	b, err := al.AlignBanded(s1, s2, sub, matrix.Band{Lower: 0, Upper: 3})
	if err != nil {
		t.Fatal(err)
	}
	if b.Score != 11 || string(b.Second.Values('-')) != "ab---f" {
		t.Fatal("narrow band", b.Score, string(b.Second.Values('-')))
	}
	if _, err := al.AlignBanded(s1, s2, sub, matrix.Band{Lower: -1, Upper: 1}); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("band missing the last cell gave", err)
	}
	// reaches the last column, but only its top rows
	long := []byte("abcdef")
	if _, err := al.AlignBanded(s2[:2], long, gth.IdentScore(s2[:2], long, &m_scr),
		matrix.Band{Lower: -1, Upper: 1}); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("band ending above the last cell gave", err)
	}
}

func TestBatch(t *testing.T) {
	gen := randseq.New(3)
	var first, second [][]byte
	for k := 0; k < simd.Lanes-1; k++ {
		s := gen.Seq(seq.Protein, 15)
		first = append(first, s)
		u := append([]byte{}, s[:11]...)
		gen.Mutate(seq.Protein, 0.4, u)
		second = append(second, u)
	}
	m_scr := gth.MatchScr{Match: 4, Mismatch: -1}
	al := gth.NewAligner(gth.Pnlty{Open: 3, Wdn: 1})
	got, err := al.ScoreBatch(first, second, m_scr.Score)
	if err != nil {
		t.Fatal(err)
	}
	for k := range first {
		want, err := al.Score(first[k], second[k], gth.IdentScore(first[k], second[k], &m_scr))
		if err != nil {
			t.Fatal(err)
		}
		if got[k] != want {
			t.Fatal("lane", k, "scored", got[k], "alone", want)
		}
	}
	if _, err := al.ScoreBatch(first, second[1:], m_scr.Score); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("unpaired batch gave", err)
	}
	second[2] = second[2][1:]
	if _, err := al.ScoreBatch(first, second, m_scr.Score); !errors.Is(err, matrix.ErrInvalidArgument) {
		t.Fatal("ragged batch gave", err)
	}
}

const blosum62 = `#  Matrix made by matblas from blosum62.iij
#  * column uses minimum score
#  BLOSUM Clustered Scoring Matrix in 1/2 Bit Units
   A  R  N  D  C  Q  E  G  H  I  L  K  M  F  P  S  T  W  Y  V  B  Z  X  *
A  4 -1 -2 -2  0 -1 -1  0 -2 -1 -1 -1 -1 -2 -1  1  0 -3 -2  0 -2 -1  0 -4
R -1  5  0 -2 -3  1  0 -2  0 -3 -2  2 -1 -3 -2 -1 -1 -3 -2 -3 -1  0 -1 -4
N -2  0  6  1 -3  0  0  0  1 -3 -3  0 -2 -3 -2  1  0 -4 -2 -3  3  0 -1 -4
D -2 -2  1  6 -3  0  2 -1 -1 -3 -4 -1 -3 -3 -1  0 -1 -4 -3 -3  4  1 -1 -4
C  0 -3 -3 -3  9 -3 -4 -3 -3 -1 -1 -3 -1 -2 -3 -1 -1 -2 -2 -1 -3 -3 -2 -4
Q -1  1  0  0 -3  5  2 -2  0 -3 -2  1  0 -3 -1  0 -1 -2 -1 -2  0  3 -1 -4
E -1  0  0  2 -4  2  5 -2  0 -3 -3  1 -2 -3 -1  0 -1 -3 -2 -2  1  4 -1 -4
G  0 -2  0 -1 -3 -2 -2  6 -2 -4 -4 -2 -3 -3 -2  0 -2 -2 -3 -3 -1 -2 -1 -4
H -2  0  1 -1 -3  0  0 -2  8 -3 -3 -1 -2 -1 -2 -1 -2 -2  2 -3  0  0 -1 -4
I -1 -3 -3 -3 -1 -3 -3 -4 -3  4  2 -3  1  0 -3 -2 -1 -3 -1  3 -3 -3 -1 -4
L -1 -2 -3 -4 -1 -2 -3 -4 -3  2  4 -2  2  0 -3 -2 -1 -2 -1  1 -4 -3 -1 -4
K -1  2  0 -1 -3  1  1 -2 -1 -3 -2  5 -1 -3 -1  0 -1 -3 -2 -2  0  1 -1 -4
M -1 -1 -2 -3 -1  0 -2 -3 -2  1  2 -1  5  0 -2 -1 -1 -1 -1  1 -3 -1 -1 -4
F -2 -3 -3 -3 -2 -3 -3 -3 -1  0  0 -3  0  6 -4 -2 -2  1  3 -1 -3 -3 -1 -4
P -1 -2 -2 -1 -3 -1 -1 -2 -2 -3 -3 -1 -2 -4  7 -1 -1 -4 -3 -2 -2 -1 -2 -4
S  1 -1  1  0 -1  0  0  0 -1 -2 -2  0 -1 -2 -1  4  1 -3 -2 -2  0  0  0 -4
T  0 -1  0 -1 -1 -1 -1 -2 -2 -1 -1 -1 -1 -2 -1  1  5 -2 -2  0 -1 -1  0 -4
W -3 -3 -4 -4 -2 -2 -3 -2 -2 -3 -2 -3 -1  1 -4 -3 -2 11  2 -3 -4 -3 -2 -4
Y -2 -2 -2 -3 -2 -1 -2 -3  2 -1 -1 -2 -1  3 -3 -2 -2  2  7 -1 -3 -2 -1 -4
V  0 -3 -3 -3 -1 -2 -2 -3 -3  3  1 -2  1 -1 -2 -2  0 -3 -1  4 -3 -2 -1 -4
B -2 -1  3  4 -3  0  1 -1  0 -3 -4  0 -3 -3 -2  0 -1 -4 -3 -3  4  1 -1 -4
Z -1  0  0  1 -3  3  4 -2  0 -3 -3  1 -1 -3 -1  0 -1 -3 -2 -2  1  4 -1 -4
X  0 -1 -1 -1 -2 -1 -1 -1 -1 -1 -1 -1 -1 -1 -2  0  0 -2 -1 -1 -1 -1 -1 -4
* -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4 -4  1
`

// TestWithBlosum checks that a real substitution matrix goes through
// the same calls, and that the batch and rolling scores agree with it.
func TestWithBlosum(t *testing.T) {
	seqs := []string{"acdefgacdefg", "cdefgacsfg", "cdefgactg", "cdefgacwg"}
	subst_mat, err := submat.ReadFrom(strings.NewReader(blosum62), "blosum62")
	if err != nil {
		t.Fatal(err)
	}
	al := gth.NewAligner(gth.Pnlty{Open: 2, Wdn: 2})
	for i, s := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			u := seqs[j]
			scr_mat := subst_mat.ScoreSeqs([]byte(s), []byte(u))
			r, err := al.Align([]byte(s), []byte(u), scr_mat)
			if err != nil {
				t.Fatal(err)
			}
			back, err := al.Score([]byte(u), []byte(s), subst_mat.ScoreSeqs([]byte(u), []byte(s)))
			if err != nil {
				t.Fatal(err)
			}
			if back != r.Score {
				t.Fatal(s, u, "scored", r.Score, "and reversed", back)
			}
			if testing.Verbose() {
				gth.PrintSeqDebug(true, r)
			}
		}
	}
	b, err := al.ScoreBatch([][]byte{[]byte(seqs[1]), []byte(seqs[1])},
		[][]byte{[]byte(seqs[2]), []byte(seqs[3])}, subst_mat.Score)
	if err != nil {
		t.Fatal(err)
	}
	for k, u := range seqs[2:] {
		s, _ := al.Score([]byte(seqs[1]), []byte(u), subst_mat.ScoreSeqs([]byte(seqs[1]), []byte(u)))
		if b[k] != s {
			t.Fatal("batch with blosum", b[k], s)
		}
	}
}

func ExampleAligner_Align() {
	s1, s2 := []byte("abcdef"), []byte("abde")
	al := gth.NewAligner(gth.Pnlty{Open: 1, Wdn: 1})
	r, _ := al.Align(s1, s2, gth.IdentScore(s1, s2, &gth.MatchScr{Match: 5, Mismatch: -2}))
	fmt.Println(r.Score)
	fmt.Println(string(r.First.Values('-')))
	fmt.Println(string(r.Second.Values('-')))
	// Output:
	// 16
	// abcdef
	// ab-de-
}
