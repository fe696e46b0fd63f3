package seq

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for each kind of failure in this package. The typed
// errors below unwrap to one of these, so callers can test the kind with
// errors.Is and recover the details with errors.As.
var (
	ErrInvalidResidue       = errors.New("invalid residue")
	ErrInvalidSequenceInput = errors.New("invalid sequence input")
	ErrInvalidMode          = errors.New("invalid render mode")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrRange                = errors.New("sub-sequence does not fit")
)

// ResidueError is returned when a token cannot be resolved to a member of
// the amino acid alphabet.
//
// Pos is the position of the offending token within a multi-residue input
// (a short-form string or a list of tokens), or -1 when the token was given
// on its own.
type ResidueError struct {
	Token interface{}
	Pos   int
}

func (e *ResidueError) Error() string {
	var tok string
	switch t := e.Token.(type) {
	case string:
		tok = strconv.Quote(t)
	case byte:
		tok = strconv.QuoteRune(rune(t))
	case rune:
		tok = strconv.QuoteRune(t)
	case Residue:
		tok = fmt.Sprintf("Residue(%d)", byte(t))
	default:
		tok = fmt.Sprintf("%v (%T)", t, t)
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("invalid residue %s at position %d", tok, e.Pos)
	}
	return fmt.Sprintf("invalid residue %s", tok)
}

func (e *ResidueError) Unwrap() error { return ErrInvalidResidue }

// InputError is returned by New when it is given a value whose shape it
// does not recognize.
type InputError struct {
	Value interface{}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot build a sequence from %T", e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidSequenceInput }

// ModeError is returned when a render mode is not one of Short, Medium or
// Long.
type ModeError struct {
	Mode string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid render mode %q (want %q, %q or %q)",
		e.Mode, Short, Medium, Long)
}

func (e *ModeError) Unwrap() error { return ErrInvalidMode }

// IndexError is returned when a scalar index falls outside a sequence.
type IndexError struct {
	Index, Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for sequence of length %d",
		e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RangeError is returned by sub-sequence searches whose start index is
// negative, or which leave too little room after the start index for the
// sub-sequence to fit. It is distinct from a search that finds nothing.
type RangeError struct {
	Start, SubLength, Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sub-sequence of length %d does not fit in sequence "+
		"of length %d after index %d", e.SubLength, e.Length, e.Start)
}

func (e *RangeError) Unwrap() error { return ErrRange }
