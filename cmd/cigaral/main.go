// 16 Oct 2026

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"

	"github.com/pkg/profile"

	"github.com/andrew-torda/alnmat/matrix"
	"github.com/andrew-torda/alnmat/pkg/cigaral"
	. "github.com/andrew-torda/alnmat/seq"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(path.Base(os.Args[0]) + ": ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run does the work and gives back the exit code, so deferred calls
// happen before the program exits.
func run(args []string, w io.Writer) int {
	f := flag.NewFlagSet("cigaral", flag.ContinueOnError)
	var opts cigaral.Options
	var band matrix.Band
	var cpuprofile string
	f.Usage = func() {
		fmt.Fprintln(f.Output(), "usage:", path.Base(os.Args[0]), "[opts] ref.fa query.fa")
		f.PrintDefaults()
	}
	opts.Open, opts.Wdn, opts.Match, opts.Mismatch = 3, 1, 5, -2
	f.Var(float32Flag{&opts.Open}, "o", "gap open penalty, opening costs -(o+w)")
	f.Var(float32Flag{&opts.Wdn}, "w", "gap widen penalty")
	f.Var(float32Flag{&opts.Match}, "match", "identity score for a match")
	f.Var(float32Flag{&opts.Mismatch}, "mismatch", "identity score for a mismatch")
	f.StringVar(&opts.SubmatFile, "m", "", "substitution matrix file, identity scores if not given")
	f.IntVar(&band.Lower, "lower", 0, "lowest diagonal of the band, column minus row")
	f.IntVar(&band.Upper, "upper", 0, "highest diagonal of the band")
	f.BoolVar(&opts.Extended, "x", false, "extended cigar with = and X")
	f.BoolVar(&opts.Verbose, "v", false, "verbose")
	f.StringVar(&cpuprofile, "cpuprofile", "", "write a cpu profile to this directory")
	if err := f.Parse(args); err != nil { // flag has already complained
		return ExitUsageError
	}
	if f.NArg() != 2 {
		f.Usage()
		return ExitUsageError
	}
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "lower" || fl.Name == "upper" {
			opts.Band = &band
		}
	})
	if cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuprofile), profile.Quiet).Stop()
	}
	if err := cigaral.Main(&opts, f.Arg(0), f.Arg(1), w); err != nil {
		log.Print(err)
		return ExitFailure
	}
	return ExitSuccess
}
