package seq

// A Residue corresponds to a single entry in a sequence: one amino acid,
// stored as its one letter code. Two residues are equal exactly when they
// name the same amino acid, regardless of how each was built.
//
// The zero value is not a valid residue.
type Residue byte

// ParseResidue resolves a token to an amino acid. The token may be the one
// letter code, the three letter code or the full name, in any letter case.
// Anything else (including the empty string) yields a *ResidueError.
func ParseResidue(token string) (Residue, error) {
	if r, ok := byName[foldName(token)]; ok {
		return r, nil
	}
	return 0, &ResidueError{Token: token, Pos: -1}
}

// MustParseResidue is like ParseResidue, but panics if the token is not a
// valid residue name.
func MustParseResidue(token string) Residue {
	r, err := ParseResidue(token)
	if err != nil {
		panic(err)
	}
	return r
}

// NewResidue builds a residue from a single value. A valid Residue is
// copied, a string is parsed with ParseResidue and a byte or rune is parsed
// as a one character token. Any other value is rejected with a
// *ResidueError.
func NewResidue(v interface{}) (Residue, error) {
	switch v := v.(type) {
	case Residue:
		if !v.IsValid() {
			return 0, &ResidueError{Token: v, Pos: -1}
		}
		return v, nil
	case string:
		return ParseResidue(v)
	case byte:
		if r, err := ParseResidue(string(rune(v))); err == nil {
			return r, nil
		}
	case rune:
		if r, err := ParseResidue(string(v)); err == nil {
			return r, nil
		}
	}
	return 0, &ResidueError{Token: v, Pos: -1}
}

// IsValid returns true if r is one of the 20 standard amino acids.
func (r Residue) IsValid() bool {
	_, ok := aminoTable[r]
	return ok
}

// Render returns the name of the residue in the given mode.
func (r Residue) Render(m Mode) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	if !r.IsValid() {
		return "", &ResidueError{Token: r, Pos: -1}
	}
	return r.name(m), nil
}

// name assumes that both r and m are valid.
func (r Residue) name(m Mode) string {
	switch m {
	case Medium:
		return aminoTable[r].medium
	case Long:
		return aminoTable[r].long
	}
	return r.Short()
}

// Short returns the one letter code.
func (r Residue) Short() string {
	return string(rune(r))
}

// Medium returns the three letter code, or "" if r is not valid.
func (r Residue) Medium() string {
	return aminoTable[r].medium
}

// Long returns the full name, or "" if r is not valid.
func (r Residue) Long() string {
	return aminoTable[r].long
}

func (r Residue) String() string {
	return r.Short()
}
