// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/alnmat/randseq"
	. "github.com/andrew-torda/alnmat/seq"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var seed int64
	var dna, pair bool
	var mut, indel float64
	f.BoolVar(&dna, "d", false, "DNA instead of protein")
	f.BoolVar(&pair, "p", false, "write a sequence and a mutated relative to fname.1 and fname.2")
	f.Float64Var(&mut, "m", 0.2, "mutation rate for -p")
	f.Float64Var(&indel, "i", 0.05, "insertion and deletion rate for -p")
	f.Int64Var(&seed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	var nums [2]int
	for i, a := range f.Args()[1:] {
		n, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, emsg, a)
			os.Exit(ExitFailure)
		}
		nums[i] = int(n)
	}
	typ := Protein
	if dna {
		typ = DNA
	}
	gen := randseq.New(seed)
	fname := f.Arg(0)
	var err error
	if pair {
		err = writePairs(gen, typ, fname, nums[0], nums[1], float32(mut), float32(indel))
	} else {
		err = create(fname, func(w io.Writer) error {
			return gen.WriteFasta(w, typ, "random", nums[0], nums[1])
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

// create opens fname, or uses stdout for "-", and hands it to wrt.
func create(fname string, wrt func(io.Writer) error) error {
	if fname == "-" || fname == "" {
		return wrt(os.Stdout)
	}
	ft, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("File for output: %w", err)
	}
	if err := wrt(ft); err != nil {
		ft.Close()
		return err
	}
	return ft.Close()
}

// writePairs writes nseq related pairs, the originals to fname.1 and the
// relatives to fname.2, ready for cigaral.
func writePairs(gen *randseq.Gen, typ SeqType, fname string, nseq, n int, mut, indel float32) error {
	var s1, s2 []Seq
	for i := 1; i <= nseq; i++ {
		s, t := gen.Pair(typ, n, mut, indel)
		s1 = append(s1, New(fmt.Sprintf("orig %d", i), s))
		s2 = append(s2, New(fmt.Sprintf("relative %d", i), t))
	}
	if err := create(fname+".1", func(w io.Writer) error { return Write(w, s1...) }); err != nil {
		return err
	}
	return create(fname+".2", func(w io.Writer) error { return Write(w, s2...) })
}
