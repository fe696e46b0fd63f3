package seq

import (
	"github.com/go-playground/validator/v10"
)

// Mode selects which naming convention is used to render a residue.
type Mode string

const (
	// Short renders the one letter code, e.g., "W".
	Short Mode = "short"

	// Medium renders the three letter code, e.g., "Trp".
	Medium Mode = "medium"

	// Long renders the full name, e.g., "Tryptophan".
	Long Mode = "long"
)

var validate = validator.New()

// ParseMode returns the Mode named by s. s must be exactly one of "short",
// "medium" or "long".
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate returns a *ModeError if m is not a recognized mode.
func (m Mode) Validate() error {
	if err := validate.Var(string(m), "required,oneof=short medium long"); err != nil {
		return &ModeError{Mode: string(m)}
	}
	return nil
}

func (m Mode) String() string {
	return string(m)
}
