// 16 Oct 2026

/*
Cigaral aligns sequences with the Gotoh algorithm and prints the result as
a CIGAR string.
Usage:

	cigaral [options] ref.fa query.fa

Every sequence in query.fa is aligned, end to end, to the first sequence
in ref.fa. Gaps in the input are removed first. For each query there are
three lines, the names, CIGAR and score, then the gapped reference and
the gapped query.

Flags:

	-o
		gap open penalty. Opening a gap costs -(o+w)
	-w
		gap widen penalty, each extension costs -w
	-m
		substitution matrix file in blast format. Without one, identity
		scores are used
	-match, -mismatch
		identity scores
	-lower, -upper
		if either is given, only cells whose diagonal (column minus row)
		is between lower and upper are calculated
	-x
		write an extended cigar with = and X instead of M
	-v
		verbose
	-cpuprofile
		directory for a cpu profile
*/
package main
