// 18 Oct 2026

/*
Seqlen prints the length of each sequence in a fasta file and then
some statistics over all of them.

Usage:

	seqlen [-v] fasta_file

For each sequence there is one line with the identifier (the first word
after the ">") and the number of residues or bases. Gap characters are
counted. Line breaks and white space are not. Then come four lines,

	Number of sequences: n
	Total length: t
	Max length: max
	Min length: min

The flags are:

	-v
		Write debugging chatter to standard error.

With no file name, it prints a usage line and exits happily.
A file with no sequences is an error, since there is no longest
or shortest sequence.
*/
package main
