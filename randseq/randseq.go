// Generate random sequences. At the moment, this is for testing, but they
// do not really belong in the test file.
// We do not work with "Seq" structures. We just make byte slices filled
// with characters.

// Package randseq makes random sequences and mutated, shortened and
// lengthened copies of them. Every Gen has its own source, so a seed
// always gives the same sequences.
package randseq

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/andrew-torda/alnmat/seq"
	"github.com/pkg/errors"
)

var (
	dnaAlfbt     = []byte{'A', 'C', 'G', 'T'}
	proteinAlfbt = []byte{'a', 'c', 'd', 'e', 'f', 'g',
		'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}
)

// getAlfbt returns the alphabet for a sequence type.
func getAlfbt(typ seq.SeqType) []byte {
	switch typ {
	case seq.DNA:
		return dnaAlfbt
	case seq.Protein:
		return proteinAlfbt
	default:
		panic("program bug: unknown alphabet type")
	}
}

// Gen is a generator with its own random number source.
type Gen struct {
	rnd *rand.Rand
}

func New(seed int64) *Gen { return &Gen{rand.New(rand.NewSource(seed))} }

// Seq returns n random characters of the given type.
func (g *Gen) Seq(typ seq.SeqType, n int) []byte {
	alfbt := getAlfbt(typ)
	t := make([]byte, n)
	for i := range t {
		t[i] = alfbt[g.rnd.Intn(len(alfbt))]
	}
	return t
}

// Mutate changes some characters in s randomly.
// typ is either Protein or DNA. Rate is the probability of
// a change.
// The change happens in place, so you probably want to
// act on a copy.
// Return the number of positions that were actually changed.
func (g *Gen) Mutate(typ seq.SeqType, rate float32, s []byte) (n int) {
	alfbt := getAlfbt(typ)
	for i, cOld := range s {
		if g.rnd.Float32() < rate {
			n++
			a := cOld
			for a == cOld {
				a = alfbt[g.rnd.Intn(len(alfbt))]
			}
			s[i] = a
		}
	}
	return
}

// keep squeezes out the marked positions, in place.
func keep(s []byte, delme []bool) []byte {
	k := 0
	for i := range s {
		if !delme[i] {
			s[k] = s[i]
			k++
		}
	}
	return s[:k]
}

// DelRand randomly deletes some characters from a sequence.
// It works in place.
func (g *Gen) DelRand(rate float32, s []byte) []byte {
	delme := make([]bool, len(s))
	for i := range s {
		delme[i] = g.rnd.Float32() < rate
	}
	return keep(s, delme)
}

// DelN deletes n elements from the byte slice.
// The deletion happens in place.
func (g *Gen) DelN(nToDel int, s []byte) ([]byte, error) {
	if nToDel < 0 {
		return nil, errors.New("randseq: DelN given negative number of places to delete")
	}
	if nToDel >= len(s) {
		return nil, errors.Errorf("randseq: %d to delete from %d", nToDel, len(s))
	}
	delme := make([]bool, len(s))
	for _, n := range g.rnd.Perm(len(s))[:nToDel] {
		delme[n] = true
	}
	return keep(s, delme), nil
}

// insertOne puts a single byte into a byte slice, before pos. Inserting
// at len(s) appends.
func insertOne(pos int, s []byte, b byte) []byte {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = b
	return s
}

// InsN inserts n random characters at random places.
func (g *Gen) InsN(typ seq.SeqType, nToIns int, s []byte) []byte {
	alfbt := getAlfbt(typ)
	for i := 0; i < nToIns; i++ {
		b := alfbt[g.rnd.Intn(len(alfbt))]
		s = insertOne(g.rnd.Intn(len(s)+1), s, b)
	}
	return s
}

// Pair makes a random sequence and a relative of it, with mutations at
// rate mut and then about indel*n deletions and insertions.
func (g *Gen) Pair(typ seq.SeqType, n int, mut, indel float32) (s, t []byte) {
	s = g.Seq(typ, n)
	t = append([]byte{}, s...)
	g.Mutate(typ, mut, t)
	t = g.DelRand(indel, t)
	t = g.InsN(typ, int(indel*float32(n)), t)
	return s, t
}

// WriteFasta writes nseq random sequences of length n. The comments are
// cmmt followed by the number of the sequence.
func (g *Gen) WriteFasta(w io.Writer, typ seq.SeqType, cmmt string, nseq, n int) error {
	width := len(fmt.Sprintf("%d", nseq))
	seqs := make([]seq.Seq, nseq)
	for i := range seqs {
		seqs[i] = seq.New(fmt.Sprintf("%s %[2]*d", cmmt, width, i+1), g.Seq(typ, n))
	}
	return seq.Write(w, seqs...)
}
