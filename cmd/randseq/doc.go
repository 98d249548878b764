// 31 July 2020

/*
Randseq is for making random sequences for testing the code.
Usage:

	randseq [options] fname nseq length

will generate nseq sequences of length length and write them to fname.
With -p, it writes nseq pairs instead. The originals go to fname.1 and
a mutated relative of each, with insertions and deletions, goes to
fname.2. These are the two files cigaral wants.

Flags:

	-d
		DNA, the default is protein
	-p
		write related pairs
	-m
		mutation rate for the relatives
	-i
		insertion and deletion rate for the relatives
	-r
		random number seed
*/
package main
