package seq

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceIndices(t *testing.T) {
	tests := []struct {
		name    string
		slice   Slice
		indices []int
	}{
		{"span", Span(1, 3), []int{1, 2}},
		{"zero value", Slice{}, nil},
		{"whole", Whole(), []int{0, 1, 2, 3, 4}},
		{"reversed", Whole().By(-1), []int{4, 3, 2, 1, 0}},
		{"stepped", Span(0, 5).By(2), []int{0, 2, 4}},
		{"from", From(3), []int{3, 4}},
		{"to", To(2), []int{0, 1}},
		{"from reversed", From(3).By(-1), []int{3, 2, 1, 0}},
		{"to reversed", To(1).By(-1), []int{4, 3, 2}},
		{"negative bounds", Span(-2, -1), []int{3}},
		{"clamped stop", Span(-2, 10), []int{3, 4}},
		{"clamped start", Span(-10, 2), []int{0, 1}},
		{"empty", Span(3, 1), nil},
		{"past the end", Span(10, 20), nil},
		{"past the end reversed", Span(10, 20).By(-1), nil},
		{"negative reversed", Span(-1, -6).By(-1), []int{4, 3, 2, 1, 0}},
		{"big step", Span(1, 5).By(3), []int{1, 4}},
		{"big negative step", Whole().By(-3), []int{4, 1}},
		{"huge step", Span(1, 5).By(math.MaxInt), []int{1}},
		{"huge negative step", Whole().By(math.MinInt), []int{4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := slices.Collect(test.slice.Each(5))
			assert.Equal(t, test.indices, got)
			assert.Equal(t, len(test.indices), test.slice.Len(5))
		})
	}
}

func TestSliceIndicesNormalized(t *testing.T) {
	start, stop, step := Whole().By(-1).Indices(5)
	assert.Equal(t, []int{4, -1, -1}, []int{start, stop, step})

	start, stop, step = Span(-2, 10).Indices(5)
	assert.Equal(t, []int{3, 5, 1}, []int{start, stop, step})
}

func TestSliceEmptySequence(t *testing.T) {
	for _, sl := range []Slice{Whole(), Whole().By(-1), Span(0, 1), Span(-1, 1)} {
		assert.Zero(t, sl.Len(0))
		assert.Empty(t, slices.Collect(sl.Each(0)))
	}
}

func TestSliceEachStopsEarly(t *testing.T) {
	var seen []int
	for i := range Whole().Each(10) {
		if i == 3 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
