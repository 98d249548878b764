// 20 Dec 2017

// Package seq provides sequences, which usually begin their lives in
// fasta format. It can read them, from any reader or from a file mapped
// into memory, and write them back out.
package seq

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// We only read ascii characters, so anything bigger than this is not
// valid.
const MaxSym uint8 = 127

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unknown SeqType = iota // Really unknown, not a protein or nucleotide
	Protein                //
	DNA                    //
)

func (t SeqType) String() string {
	switch t {
	case Protein:
		return "protein"
	case DNA:
		return "DNA"
	}
	return "unknown"
}

// Seq is the exported type.
type Seq struct {
	cmmt string
	seq  []byte
}

// New makes a sequence. The comment does not have the leading ">".
func New(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// Function GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// Function GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

func (s Seq) Len() int { return len(s.seq) }

// GeneID returns the gene identifier for a sequence.
// Of course it does not really do that. It just returns the first
// word in the comment which is likely to be the gene identifier.
func (s Seq) GeneID() string {
	if tmp := strings.Fields(s.cmmt); len(tmp) > 0 {
		return tmp[0]
	}
	return ""
}

// Species tries to return the organism from which a sequence
// comes. Actually, it just looks in the comment line for a string
// between square brackets and returns it. Given
//
//	> xyz.123 comment here [  homo sapiens]
//
// it should return "homo sapiens" with leading and trailing white
// space removed.
func (s Seq) Species() (species string, ok bool) {
	var i, j int
	if i = strings.LastIndexByte(s.cmmt, '['); i == -1 {
		return
	}
	if j = strings.LastIndexByte(s.cmmt, ']'); j == -1 {
		return
	}
	if i >= j { // We treat it as if there is no species
		return
	}
	return strings.TrimSpace(s.cmmt[i+1 : j]), true
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c > MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// RmGaps returns the sequence with the gap characters taken out.
// The original is not touched.
func (s Seq) RmGaps() Seq {
	t := make([]byte, 0, len(s.seq))
	for _, c := range s.seq {
		if c != GapChar {
			t = append(t, c)
		}
	}
	return Seq{cmmt: s.cmmt, seq: t}
}

// GetType guesses if a sequence is DNA or protein. Anything made only
// of ACGTUN and gaps, in either case, is DNA.
func (s Seq) GetType() SeqType {
	if len(s.seq) == 0 {
		return Unknown
	}
	for _, c := range s.seq {
		switch c {
		case 'a', 'c', 'g', 't', 'u', 'n', 'A', 'C', 'G', 'T', 'U', 'N', GapChar:
		default:
			return Protein
		}
	}
	return DNA
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() (t string) {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// Write puts the sequences out in fasta format, 60 characters per line.
func Write(w io.Writer, seqs ...Seq) error {
	const cPerLine = 60
	var b bytes.Buffer
	for _, seq := range seqs {
		fmt.Fprintf(&b, "%c%s\n", cmmtChar, seq.cmmt)
		s := seq.seq
		for ; len(s) > cPerLine; s = s[cPerLine:] {
			b.Write(s[:cPerLine])
			b.WriteByte('\n')
		}
		b.Write(s)
		b.WriteByte('\n')
	}
	_, err := b.WriteTo(w)
	return err
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	return f_tmp.Name(), nil
}
