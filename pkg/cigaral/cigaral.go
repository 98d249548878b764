// 16 Oct 2026

// Package cigaral is the work behind the cigaral command. It aligns
// sequences from a query file to the first sequence of a reference file
// and writes out the CIGAR and the two gapped strings.
package cigaral

import (
	"fmt"
	"io"

	fmatrix "github.com/andrew-torda/matrix"
	"github.com/pkg/errors"

	"github.com/andrew-torda/alnmat/cigar"
	"github.com/andrew-torda/alnmat/gotoh"
	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/seq"
	"github.com/andrew-torda/alnmat/submat"
)

// Options contains all the choices passed in from the caller.
type Options struct {
	gotoh.Pnlty
	gotoh.MatchScr
	SubmatFile string       // substitution matrix, identity scores if empty
	Band       *matrix.Band // nil for an unbanded alignment
	Extended   bool         // =/X instead of M
	Verbose    bool
}

// readOne reads a fasta file and tidies up the sequences for aligning.
func readOne(fname string) ([]seq.Seq, error) {
	seqs, err := seq.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	for i := range seqs {
		seqs[i] = seqs[i].RmGaps()
		if err := seqs[i].Upper(); err != nil {
			return nil, errors.Wrap(err, fname)
		}
	}
	return seqs, nil
}

// Main aligns every sequence in queryFile to the first one in refFile.
func Main(opts *Options, refFile, queryFile string, w io.Writer) error {
	refs, err := readOne(refFile)
	if err != nil {
		return err
	}
	queries, err := readOne(queryFile)
	if err != nil {
		return err
	}
	var smat *submat.Submat
	if opts.SubmatFile != "" {
		if smat, err = submat.Read(opts.SubmatFile); err != nil {
			return err
		}
	}
	ref := refs[0]
	if opts.Verbose {
		fmt.Fprintln(w, "reference", ref.GeneID(), ref.GetType(), "length", ref.Len())
	}
	al := gotoh.NewAligner(opts.Pnlty)
	for _, q := range queries {
		var sub *fmatrix.FMatrix2d
		if smat != nil {
			sub = smat.ScoreSeqs(ref.GetSeq(), q.GetSeq())
		} else {
			sub = gotoh.IdentScore(ref.GetSeq(), q.GetSeq(), &opts.MatchScr)
		}
		var r gotoh.Result
		if opts.Band != nil {
			r, err = al.AlignBanded(ref.GetSeq(), q.GetSeq(), sub, *opts.Band)
		} else {
			r, err = al.Align(ref.GetSeq(), q.GetSeq(), sub)
		}
		if err != nil {
			return errors.Wrapf(err, "aligning %s to %s", q.GeneID(), ref.GeneID())
		}
		c, err := cigar.FromAlignment[byte](r.First, r.Second, cigar.Clip{}, opts.Extended)
		if err != nil {
			return errors.Wrapf(err, "cigar for %s", q.GeneID())
		}
		fmt.Fprintln(w, ref.GeneID(), q.GeneID(), c, r.Score)
		fmt.Fprintln(w, string(r.First.Values(seq.GapChar)))
		fmt.Fprintln(w, string(r.Second.Values(seq.GapChar)))
		gotoh.PrintSeqDebug(opts.Verbose, r)
	}
	return nil
}
