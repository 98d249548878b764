package randseq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrew-torda/alnmat/randseq"
	"github.com/andrew-torda/alnmat/seq"
)

func TestSeed(t *testing.T) {
	a, b := randseq.New(5), randseq.New(5)
	if !bytes.Equal(a.Seq(seq.Protein, 50), b.Seq(seq.Protein, 50)) {
		t.Fatal("same seed, different sequences")
	}
	for _, c := range a.Seq(seq.DNA, 100) {
		if !strings.ContainsRune("ACGT", rune(c)) {
			t.Fatal("not DNA", string(c))
		}
	}
}

func TestMutate(t *testing.T) {
	g := randseq.New(1)
	s := g.Seq(seq.Protein, 200)
	u := append([]byte{}, s...)
	n := g.Mutate(seq.Protein, 0.25, u)
	diff := 0
	for i := range s {
		if s[i] != u[i] {
			diff++
		}
	}
	if diff != n || n == 0 {
		t.Fatal("said", n, "changes, found", diff)
	}
	if g.Mutate(seq.Protein, 0, u) != 0 {
		t.Fatal("rate 0 changed something")
	}
}

func TestDelIns(t *testing.T) {
	g := randseq.New(2)
	s := g.Seq(seq.DNA, 30)
	d, err := g.DelN(10, append([]byte{}, s...))
	if err != nil || len(d) != 20 {
		t.Fatal("DelN", len(d), err)
	}
	if _, err := g.DelN(30, s); err == nil {
		t.Fatal("deleted everything")
	}
	if _, err := g.DelN(-1, s); err == nil {
		t.Fatal("negative delete")
	}
	if r := g.DelRand(1, append([]byte{}, s...)); len(r) != 0 {
		t.Fatal("DelRand 1 left", len(r))
	}
	if r := g.InsN(seq.DNA, 5, nil); len(r) != 5 {
		t.Fatal("InsN into nothing", len(r))
	}
	s1, s2 := g.Pair(seq.Protein, 40, 0.2, 0.1)
	if len(s1) != 40 || len(s2) == 0 {
		t.Fatal("pair lengths", len(s1), len(s2))
	}
}

func TestWriteFasta(t *testing.T) {
	var sb strings.Builder
	if err := randseq.New(3).WriteFasta(&sb, seq.Protein, "testing seq", 12, 70); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != 12 {
		t.Fatal("count >, got ", n, "expected", 12)
	}
	seqs, err := seq.ReadFasta(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if seqs[8].GetCmmt() != "testing seq  9" || seqs[11].Len() != 70 {
		t.Fatal("read back", seqs[8].GetCmmt(), seqs[11].Len())
	}
}
