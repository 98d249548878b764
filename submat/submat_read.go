// 23 Feb 2018
// read a substitution matrix

// Package submat reads substitution matrices in the blast/ncbi text
// format and scores pairs of residues and whole sequences with them.
package submat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/pkg/errors"
)

// Submat is the export type. it internals do not have to be exported.
type Submat struct {
	mat  *matrix.FMatrix2d
	cmap [128]int8
}

const notset int8 = -1

// String prints out a substitution matrix. Useful during debugging.
func (submat *Submat) String() (s string) {
	cmap := submat.cmap[:]
	s = "Mapping\n"
	n := 10
	for i := range cmap {
		if cmap[i] != notset {
			s = s + fmt.Sprintf("%4s%4d", string(rune(i)), cmap[i])
			n--
			if n == 0 {
				n = 10
				s = s + "\n"
			}
		}
	}
	s += "\nThe matrix\n"
	s += fmt.Sprintf("%4s", " ")
	for c := '*'; c < 'Z'; c++ {
		if cmap[c] != notset {
			s += fmt.Sprintf("%4s", string(c))
		}
	}
	s += "\n"
	for c := '*'; c < 'Z'; c++ {
		if cmap[c] != notset {
			s += fmt.Sprintf("%4s", string(c))
			for d := '*'; d < 'Z'; d++ {
				if cmap[d] != notset {
					f := submat.mat.Mat[cmap[c]][cmap[d]]
					s += fmt.Sprintf("%4.0f", f)
				}
			}
			s += "\n"
		}
	}
	return s
}

// CmmtScanner is a wrapper around bufio.Scanner that will ignore anything
// after a comment character and remove leading and trailing white space.
type CmmtScanner struct {
	*bufio.Scanner
	cmmt byte // Comment character
}

// NewCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - removes leading spaces
//   - removes anything after a comment character
func NewCmmtScanner(r io.Reader, cmmt byte) *CmmtScanner {
	return &CmmtScanner{bufio.NewScanner(r), cmmt}
}

// CBytes presents exactly the same interface as scanner.Bytes, but
// has to do a bit more work.
// Before returning, we remove anything after the comment symbol and
// strip leading and trailing white space.
// If this leaves us with an empty string, we call Scan again.
// Like the Bytes function, this works directly in the i/o buffer
// and does not allocate any memory. If you like the string it returns,
// you have to save it somewhere.
func (s *CmmtScanner) CBytes() []byte {
	ok := true
	for b := s.Bytes(); ok; ok, b = s.Scan(), s.Bytes() {
		if i := bytes.IndexByte(b, s.cmmt); i >= 0 {
			b = b[:i]
		}
		b = bytes.TrimSpace(b)
		if len(b) > 0 {
			return b
		}
	}
	return nil
}

// The first non-comment line  of the substitution matrix file
// contains a list of the allowed characters. Each field has to be
// one character long
func alfbtLine(inline []byte, submat *Submat) (int, error) {
	cmap := submat.cmap[:]
	for i := range cmap {
		cmap[i] = notset
	}
	f := bytes.Fields(inline)
	if len(f) == 0 {
		return 0, errors.New("no alphabet line")
	}
	for _, c := range f {
		if len(c) != 1 {
			return 0, errors.Errorf("expected a single character, got %q", c)
		}
		if c[0] >= 128 {
			return 0, errors.Errorf("saw a non-ascii character in %q", inline)
		}
	}
	for i, c := range f {
		cmap[c[0]] = int8(i)
	}
	for i, c := range f { // If not set, set both upper and lower case
		l := (bytes.ToLower(c))[0] // This is safe, since we have checked
		u := (bytes.ToUpper(c))[0] // that c is one-byte long
		if cmap[l] == notset {     // Lower case index
			cmap[l] = int8(i)
		}
		if cmap[u] == notset { //     Corresponding upper case index
			cmap[u] = int8(i)
		}
	}
	return len(f), nil
}

// Read will read a substitution matrix from a filename.
func Read(fname string) (*Submat, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "submat")
	}
	defer fp.Close()
	return ReadFrom(fp, fname)
}

// ReadFrom reads a substitution matrix from r. name is only used in
// error messages.
func ReadFrom(r io.Reader, name string) (*Submat, error) {
	submat := new(Submat)
	scnr := NewCmmtScanner(r, '#')
	scnr.Scan()
	nAlfbt, err := alfbtLine(scnr.CBytes(), submat)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	submat.mat = matrix.NewFMatrix2d(nAlfbt, nAlfbt)
	nc := 0
	for scnr.Scan() {
		line := scnr.CBytes()
		if line == nil {
			break
		}
		fields := bytes.Fields(line)
		if len(fields) != nAlfbt+1 {
			return nil, errors.Errorf("reading %s. Wrong number of items on line:\n%s", name, line)
		}
		if len(fields[0]) != 1 || fields[0][0] >= 128 || submat.cmap[fields[0][0]] == notset {
			return nil, errors.Errorf("reading %s: invalid character on line %s", name, line)
		}
		i := submat.cmap[fields[0][0]]
		for j := 0; j < nAlfbt; j++ {
			f, err := strconv.ParseFloat(string(fields[j+1]), 32)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %s", name)
			}
			x := float32(f)
			submat.mat.Mat[i][j], submat.mat.Mat[j][i] = x, x
		}
		nc++
	}
	if err := scnr.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if nc != nAlfbt {
		return nil, errors.Errorf("reading %s: %d rows for %d characters, not enough lines found", name, nc, nAlfbt)
	}
	return submat, nil
}

// Score returns the similarity score of bytes a and b, given
// a specific scoring matrix. Anything not in the alphabet scores 0.
func (submat *Submat) Score(a, b byte) (f float32) {
	if a >= 128 || b >= 128 {
		return 0
	}
	i := submat.cmap[a]
	j := submat.cmap[b]
	if i == notset || j == notset {
		return 0
	}
	return submat.mat.Mat[i][j]
}

// ScoreSeqs will take two sequences and calculate a similarity matrix
// based on the substitution matrix.
// We return an M x N matrix, where M and N are the lengths of first
// and second sequences respectively.
func (submat *Submat) ScoreSeqs(s, t []byte) (scr_mat *matrix.FMatrix2d) {
	scr_mat = matrix.NewFMatrix2d(len(s), len(t))
	mat := scr_mat.Mat
	for i, cs := range s {
		for j, ct := range t {
			mat[i][j] = submat.Score(cs, ct)
		}
	}
	return
}
