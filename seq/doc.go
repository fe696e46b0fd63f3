/*
Package seq models amino acid sequences.

A Residue is one of the 20 standard amino acids. It can be parsed from, and
rendered as, its one letter code ("W"), its three letter code ("Trp") or its
full name ("Tryptophan").

A Sequence is a mutable, ordered list of residues. It supports copying,
indexed and sliced access (with start/stop/step slices in the usual
convention), insertion, deletion and searching for sub-sequences. Sequences
compare as Equal by content, but are ordered by length alone.

This package does no I/O. Reading and writing sequence file formats, and
any biological computation on sequences, are left to other packages.
*/
package seq
