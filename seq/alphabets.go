package seq

import (
	"slices"

	"golang.org/x/text/cases"
)

// An Alphabet is an ordered set of residues.
type Alphabet []Residue

func NewAlphabet(residues ...Residue) Alphabet {
	return Alphabet(residues)
}

func (a Alphabet) Len() int {
	return len(a)
}

// Index returns the position of r in the alphabet, or -1 if r is not a
// member.
func (a Alphabet) Index(r Residue) int {
	return slices.Index(a, r)
}

func (a Alphabet) Contains(r Residue) bool {
	return a.Index(r) >= 0
}

// The 20 standard amino acids, identified by their one letter codes.
const (
	Ala Residue = 'A'
	Cys Residue = 'C'
	Asp Residue = 'D'
	Glu Residue = 'E'
	Phe Residue = 'F'
	Gly Residue = 'G'
	His Residue = 'H'
	Ile Residue = 'I'
	Lys Residue = 'K'
	Leu Residue = 'L'
	Met Residue = 'M'
	Asn Residue = 'N'
	Pro Residue = 'P'
	Gln Residue = 'Q'
	Arg Residue = 'R'
	Ser Residue = 'S'
	Thr Residue = 'T'
	Val Residue = 'V'
	Trp Residue = 'W'
	Tyr Residue = 'Y'
)

// AminoAcids is the alphabet of the 20 standard amino acids, ordered by
// one letter code.
var AminoAcids = NewAlphabet(
	Ala, Cys, Asp, Glu, Phe, Gly, His, Ile, Lys, Leu,
	Met, Asn, Pro, Gln, Arg, Ser, Thr, Val, Trp, Tyr,
)

type aminoNames struct {
	medium, long string
}

// aminoTable maps each amino acid to its three letter code and full name.
var aminoTable = map[Residue]aminoNames{
	Ala: {"Ala", "Alanine"},
	Cys: {"Cys", "Cysteine"},
	Asp: {"Asp", "Aspartate"},
	Glu: {"Glu", "Glutamate"},
	Phe: {"Phe", "Phenylalanine"},
	Gly: {"Gly", "Glycine"},
	His: {"His", "Histidine"},
	Ile: {"Ile", "Isoleucine"},
	Lys: {"Lys", "Lysine"},
	Leu: {"Leu", "Leucine"},
	Met: {"Met", "Methionine"},
	Asn: {"Asn", "Asparagine"},
	Pro: {"Pro", "Proline"},
	Gln: {"Gln", "Glutamine"},
	Arg: {"Arg", "Arginine"},
	Ser: {"Ser", "Serine"},
	Thr: {"Thr", "Threonine"},
	Val: {"Val", "Valine"},
	Trp: {"Trp", "Tryptophan"},
	Tyr: {"Tyr", "Tyrosine"},
}

// byName is the reverse of aminoTable, keyed by the case folded short,
// medium and long names of every amino acid. It is created in this
// package's 'init' function.
var byName = map[string]Residue{}

func init() {
	for r, names := range aminoTable {
		byName[foldName(r.Short())] = r
		byName[foldName(names.medium)] = r
		byName[foldName(names.long)] = r
	}
}

// foldName returns the lookup key for a residue name. A cases.Caser is
// stateful, so a fresh one is made on every call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
