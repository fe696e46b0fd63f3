package seq_test

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/protseq/seq"
)

func ExampleNew() {
	inputs := []interface{}{
		"MKW",
		"Trp",
		[]string{"Met", "lysine", "W"},
		"MKX",
		42,
	}
	for _, input := range inputs {
		s, err := seq.New(input)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(s.Len(), s)
	}
	// Output:
	// 3 MKW
	// 1 W
	// 3 MKW
	// error: invalid residue "X" at position 2
	// error: cannot build a sequence from int
}

func ExampleSequence_SetMode() {
	s := seq.MustNew("MKW")
	fmt.Println(s)
	s.SetMode(seq.Medium)
	fmt.Println(s)
	s.SetMode(seq.Long)
	fmt.Println(s)
	// Output:
	// MKW
	// MetLysTrp
	// MethionineLysineTryptophan
}

func ExampleSequence_HasSubSequence() {
	s := seq.MustNew("ACDEACD")
	sub := seq.MustNew("ACD")
	fmt.Println(s.HasSubSequence(sub, 0))
	fmt.Println(s.HasSubSequence(sub, 1))
	fmt.Println(s.HasSubSequence(seq.MustNew("WW"), 0))

	_, err := s.HasSubSequence(sub, 10)
	fmt.Println(errors.Is(err, seq.ErrRange))
	// Output:
	// 0 <nil>
	// 4 <nil>
	// -1 <nil>
	// true
}

func ExampleSequence_Get() {
	s := seq.MustNew("ACDEF")
	fmt.Println(s.Get(seq.Span(1, 3)))
	fmt.Println(s.Get(seq.Whole().By(-1)))
	fmt.Println(s.Get(seq.From(-2)))
	// Output:
	// CD
	// FEDCA
	// EF
}

func ExampleSequence_SetSlice() {
	s := seq.MustNew("WKDEF")
	s.SetSlice(seq.Span(0, 3), "Ala")
	fmt.Println(s)
	// Output:
	// AAAEF
}
