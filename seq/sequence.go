package seq

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// NotFound is returned by sub-sequence searches that find no match.
const NotFound = -1

// A Sequence is an ordered list of amino acid residues together with the
// mode used to render it as text.
//
// A Sequence owns its residues: every constructor copies its input, and no
// two Sequence values ever share storage. The zero value is an empty
// sequence rendered in Short mode.
//
// Methods that only read a Sequence treat a nil *Sequence as empty. Methods
// that change it (SetMode, Set, SetSlice, Delete, DeleteSlice, DeleteRange,
// Insert, Extend and Remove) need a non-nil receiver.
//
// A Sequence is not safe for concurrent use while it is being mutated.
type Sequence struct {
	residues []Residue
	mode     Mode
}

// New builds a sequence from one of the following:
//
//	nil or ""            an empty sequence
//	Residue              a one residue sequence
//	*Sequence, Sequence  a deep copy (rendered in Short mode)
//	string               see below
//	[]Residue, []string  one residue per item
//	[]interface{}        one residue per item, each a Residue, string,
//	                     byte or rune
//
// A string made up entirely of uppercase letters is read as a run of one
// letter codes, so "ACD" has three residues. Any other string is a single
// residue token in any naming convention, e.g., "Ala" or "alanine". A
// sequence of three letter codes must therefore be given as a []string.
//
// Values of any other type yield an *InputError. A token that does not name
// an amino acid yields a *ResidueError.
func New(input interface{}) (*Sequence, error) {
	residues, err := toResidues(input)
	if err != nil {
		return nil, err
	}
	return &Sequence{residues: residues, mode: Short}, nil
}

// MustNew is like New, but panics on error.
func MustNew(input interface{}) *Sequence {
	s, err := New(input)
	if err != nil {
		panic(err)
	}
	return s
}

// FromString is New for string input.
func FromString(text string) (*Sequence, error) {
	residues, err := parseText(text)
	if err != nil {
		return nil, err
	}
	return &Sequence{residues: residues, mode: Short}, nil
}

// FromResidues is New for a list of residues.
func FromResidues(residues []Residue) (*Sequence, error) {
	return New(residues)
}

// FromTokens is New for a list of residue names.
func FromTokens(tokens []string) (*Sequence, error) {
	return New(tokens)
}

// toResidues converts any input accepted by New into a freshly allocated
// list of valid residues.
func toResidues(input interface{}) ([]Residue, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case Residue:
		if !v.IsValid() {
			return nil, &ResidueError{Token: v, Pos: -1}
		}
		return []Residue{v}, nil
	case *Sequence:
		return v.Slice(), nil
	case Sequence:
		return v.Slice(), nil
	case string:
		return parseText(v)
	case []Residue:
		for i, r := range v {
			if !r.IsValid() {
				return nil, &ResidueError{Token: r, Pos: i}
			}
		}
		return slices.Clone(v), nil
	case []string:
		residues := make([]Residue, len(v))
		for i, token := range v {
			r, err := ParseResidue(token)
			if err != nil {
				return nil, &ResidueError{Token: token, Pos: i}
			}
			residues[i] = r
		}
		return residues, nil
	case []interface{}:
		residues := make([]Residue, len(v))
		for i, item := range v {
			r, err := NewResidue(item)
			if err != nil {
				var rerr *ResidueError
				if errors.As(err, &rerr) {
					rerr.Pos = i
				}
				return nil, err
			}
			residues[i] = r
		}
		return residues, nil
	}
	return nil, &InputError{Value: input}
}

// parseText applies the string rule of New.
func parseText(text string) ([]Residue, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if !isShortForm(text) {
		r, err := ParseResidue(text)
		if err != nil {
			return nil, err
		}
		return []Residue{r}, nil
	}

	residues := make([]Residue, len(text))
	for i := 0; i < len(text); i++ {
		r := Residue(text[i])
		if !r.IsValid() {
			return nil, &ResidueError{Token: text[i : i+1], Pos: i}
		}
		residues[i] = r
	}
	return residues, nil
}

// isShortForm returns true if every character of text is an uppercase
// ASCII letter.
func isShortForm(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 'A' || text[i] > 'Z' {
			return false
		}
	}
	return true
}

// list is nil safe access to the residues.
func (s *Sequence) list() []Residue {
	if s == nil {
		return nil
	}
	return s.residues
}

// Copy returns a deep copy of the sequence. As with New, the copy is
// rendered in Short mode whatever the mode of s.
func (s *Sequence) Copy() *Sequence {
	return &Sequence{residues: s.Slice(), mode: Short}
}

// Slice returns a copy of the residues in the sequence.
func (s *Sequence) Slice() []Residue {
	return slices.Clone(s.list())
}

// Len returns the number of residues in the sequence.
func (s *Sequence) Len() int {
	return len(s.list())
}

// Compare orders sequences by length only: it returns -1, 0 or +1 as s is
// shorter than, the same length as, or longer than o. Content is not
// considered, so Compare can return 0 for sequences that are not Equal.
func (s *Sequence) Compare(o *Sequence) int {
	return cmp.Compare(s.Len(), o.Len())
}

// Greater returns true if s is longer than o.
func (s *Sequence) Greater(o *Sequence) bool { return s.Compare(o) > 0 }

// Less returns true if s is shorter than o.
func (s *Sequence) Less(o *Sequence) bool { return s.Compare(o) < 0 }

// GreaterEqual returns true if s is at least as long as o.
func (s *Sequence) GreaterEqual(o *Sequence) bool { return s.Compare(o) >= 0 }

// LessEqual returns true if s is at most as long as o.
func (s *Sequence) LessEqual(o *Sequence) bool { return s.Compare(o) <= 0 }

// Equal returns true if s and o have the same residues in the same order.
// The render modes are not compared.
func (s *Sequence) Equal(o *Sequence) bool {
	return slices.Equal(s.list(), o.list())
}

// All iterates over the positions and residues of the sequence.
func (s *Sequence) All() iter.Seq2[int, Residue] {
	return func(yield func(int, Residue) bool) {
		for i, r := range s.list() {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Residues iterates over the residues of the sequence.
func (s *Sequence) Residues() iter.Seq[Residue] {
	return func(yield func(Residue) bool) {
		for _, r := range s.list() {
			if !yield(r) {
				return
			}
		}
	}
}

// Mode returns the mode used by String.
func (s *Sequence) Mode() Mode {
	if s == nil || s.mode == "" {
		return Short
	}
	return s.mode
}

// SetMode changes the mode used by String. The residues are untouched.
func (s *Sequence) SetMode(m Mode) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mode = m
	return nil
}

// String renders every residue in the sequence's mode, without separators.
func (s *Sequence) String() string {
	return s.render(s.Mode())
}

func (s *Sequence) render(m Mode) string {
	var b strings.Builder
	for _, r := range s.list() {
		b.WriteString(r.name(m))
	}
	return b.String()
}

// Format implements fmt.Formatter. The verbs %s and %v render the sequence
// in its own mode, %+v in Long mode and %#v in Medium mode. %q quotes the
// result of String. Width, precision and the '-' flag apply as they do to
// a string, e.g., "%-8s" pads on the right and "%.3v" keeps 3 characters.
func (s *Sequence) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		m := s.Mode()
		if verb == 'v' && f.Flag('+') {
			m = Long
		} else if verb == 'v' && f.Flag('#') {
			m = Medium
		}
		fmt.Fprintf(f, stringDirective(f, 's'), s.render(m))
	case 'q':
		fmt.Fprintf(f, stringDirective(f, 'q'), s.String())
	default:
		fmt.Fprintf(f, "%%!%c(%T=%s)", verb, s, s.String())
	}
}

// stringDirective rebuilds the width, precision and '-' flag of the
// directive being formatted around the given string verb. Other flags are
// dropped since they select a mode rather than a layout.
func stringDirective(f fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	if f.Flag('-') {
		b.WriteByte('-')
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}

func (s *Sequence) checkIndex(i int) error {
	if i < 0 || i >= s.Len() {
		return &IndexError{Index: i, Length: s.Len()}
	}
	return nil
}

// At returns the residue at position i.
func (s *Sequence) At(i int) (Residue, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.residues[i], nil
}

// Get returns a new sequence holding the residues selected by sl, in slice
// order. The new sequence is rendered in Short mode.
func (s *Sequence) Get(sl Slice) *Sequence {
	residues := make([]Residue, 0, sl.Len(s.Len()))
	for i := range sl.Each(s.Len()) {
		residues = append(residues, s.residues[i])
	}
	return &Sequence{residues: residues, mode: Short}
}

// Set replaces the residue at position i. The value may be anything
// NewResidue accepts; a string is always a single token here, so "ALA"
// means alanine.
func (s *Sequence) Set(i int, value interface{}) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	r, err := NewResidue(value)
	if err != nil {
		return err
	}
	s.residues[i] = r
	return nil
}

// SetSlice sets every position selected by sl to the same residue. Nothing
// is written if value is not a valid residue.
func (s *Sequence) SetSlice(sl Slice, value interface{}) error {
	r, err := NewResidue(value)
	if err != nil {
		return err
	}
	for i := range sl.Each(s.Len()) {
		s.residues[i] = r
	}
	return nil
}

// Delete removes the residue at position i.
func (s *Sequence) Delete(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.residues = slices.Delete(s.residues, i, i+1)
	return nil
}

// DeleteSlice removes every residue selected by sl. The remaining residues
// keep their order.
func (s *Sequence) DeleteSlice(sl Slice) {
	n := s.Len()
	if sl.Len(n) == 0 {
		return
	}
	drop := make([]bool, n)
	for i := range sl.Each(n) {
		drop[i] = true
	}
	kept := s.residues[:0]
	for i, r := range s.residues {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	s.residues = kept
}

// DeleteRange removes the residues at start, start+step, ... up to but
// excluding stop. A step of zero means 1.
func (s *Sequence) DeleteRange(start, stop, step int) {
	s.DeleteSlice(Span(start, stop).By(step))
}

// Contains returns true if r occurs anywhere in the sequence.
func (s *Sequence) Contains(r Residue) bool {
	return slices.Contains(s.list(), r)
}

// Insert places the residues described by sub (anything New accepts) into
// the sequence as one contiguous block starting at position index. An index
// equal to Len appends. An index outside [0, Len] is an *IndexError: it is
// never clamped to the nearest end, and negative indices do not count back
// from the end. If sub cannot be parsed, the sequence is left as it was.
func (s *Sequence) Insert(sub interface{}, index int) error {
	if index < 0 || index > s.Len() {
		return &IndexError{Index: index, Length: s.Len()}
	}
	residues, err := toResidues(sub)
	if err != nil {
		return err
	}
	s.residues = slices.Insert(s.residues, index, residues...)
	return nil
}

// Extend appends the residues described by sub to the end of the sequence.
func (s *Sequence) Extend(sub interface{}) error {
	return s.Insert(sub, s.Len())
}

// HasSubSequence returns the position of the first occurrence of sub in s
// that begins at or after start, or NotFound.
//
// A *RangeError is returned when start is negative or when sub is too long
// to fit between start and the end of s. An empty sub matches at start.
func (s *Sequence) HasSubSequence(sub *Sequence, start int) (int, error) {
	n, m := s.Len(), sub.Len()
	if start < 0 || start+m > n {
		return NotFound, &RangeError{Start: start, SubLength: m, Length: n}
	}
	pattern := sub.list()
	for i := start; i+m <= n; i++ {
		if slices.Equal(s.residues[i:i+m], pattern) {
			return i, nil
		}
	}
	return NotFound, nil
}

// Remove deletes the first occurrence of sub in s that begins at or after
// start and returns its position. If there is none, s is unchanged and
// NotFound is returned. Errors are those of HasSubSequence.
func (s *Sequence) Remove(sub *Sequence, start int) (int, error) {
	m := sub.Len()
	i, err := s.HasSubSequence(sub, start)
	if err != nil || i == NotFound {
		return i, err
	}
	s.residues = slices.Delete(s.residues, i, i+m)
	return i, nil
}

// Count returns the number of non-overlapping occurrences of sub in s. An
// empty sub occurs Len()+1 times.
func (s *Sequence) Count(sub *Sequence) int {
	n, m := s.Len(), sub.Len()
	count := 0
	for start := 0; start+m <= n; {
		i, err := s.HasSubSequence(sub, start)
		if err != nil || i == NotFound {
			break
		}
		count++
		start = i + max(m, 1)
	}
	return count
}
