// Reader for fasta format files.

package seq

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

var ErrNoSeq = errors.New("no sequences found")

// isWhite is true for the characters we drop from sequence lines.
var isWhite = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// appendNonWhite copies everything but white space from src onto dst.
func appendNonWhite(dst, src []byte) []byte {
	for _, c := range src {
		if !isWhite[c] {
			dst = append(dst, c)
		}
	}
	return dst
}

// parse goes through a whole fasta file in memory. Sequences are copied
// out, so b can go away afterwards.
func parse(b []byte) ([]Seq, error) {
	var seqs []Seq
	for len(b) > 0 {
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i], b[i+1:]
		} else {
			b = nil
		}
		if len(line) > 0 && line[0] == cmmtChar {
			if n := len(seqs); n > 0 && len(seqs[n-1].seq) == 0 {
				return nil, errors.Errorf("zero length sequence after %q", seqs[n-1].cmmt)
			}
			cmmt := string(bytes.TrimSpace(line[1:]))
			seqs = append(seqs, Seq{cmmt: cmmt})
			continue
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		n := len(seqs)
		if n == 0 {
			return nil, errors.Errorf("sequence before the first %q: %.20q", cmmtChar, line)
		}
		seqs[n-1].seq = appendNonWhite(seqs[n-1].seq, line)
	}
	if n := len(seqs); n == 0 {
		return nil, ErrNoSeq
	} else if len(seqs[n-1].seq) == 0 {
		return nil, errors.Errorf("zero length sequence after %q", seqs[n-1].cmmt)
	}
	return seqs, nil
}

// ReadFasta reads fasta formatted sequences from rdr.
func ReadFasta(rdr io.Reader) ([]Seq, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, errors.Wrap(err, "reading fasta")
	}
	return parse(b)
}

// ReadFile maps a fasta file into memory and reads the sequences.
func ReadFile(fname string) ([]Seq, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "seq")
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, errors.Wrap(err, fname)
	}
	if fi.Size() == 0 { // mmap does not like empty files
		return nil, errors.Wrap(ErrNoSeq, fname)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mapping %s", fname)
	}
	defer mm.Unmap()
	seqs, err := parse(mm)
	return seqs, errors.Wrap(err, fname)
}
