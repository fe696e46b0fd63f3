package seq

import "iter"

// A Slice selects zero or more positions of a sequence with the familiar
// start/stop/step convention: Stop is exclusive, a negative Start or Stop
// counts back from the end of the sequence and out of range bounds are
// clamped. A Step of zero means 1, so Slice{Start: 1, Stop: 3} selects
// positions 1 and 2. A negative step walks backwards.
//
// OpenStart and OpenStop leave the corresponding bound unset, in which case
// it extends to the end of the sequence in the direction of the step.
type Slice struct {
	Start, Stop, Step   int
	OpenStart, OpenStop bool
}

// Span selects [start, stop).
func Span(start, stop int) Slice {
	return Slice{Start: start, Stop: stop}
}

// From selects everything from start onwards.
func From(start int) Slice {
	return Slice{Start: start, OpenStop: true}
}

// To selects everything before stop.
func To(stop int) Slice {
	return Slice{Stop: stop, OpenStart: true}
}

// Whole selects every position.
func Whole() Slice {
	return Slice{OpenStart: true, OpenStop: true}
}

// By returns a copy of s with the given step.
func (s Slice) By(step int) Slice {
	s.Step = step
	return s
}

func (s Slice) step() int {
	if s.Step == 0 {
		return 1
	}
	return s.Step
}

// Indices normalizes s against a sequence of the given length. The
// positions selected are start, start+step, ... up to but excluding stop.
func (s Slice) Indices(length int) (start, stop, step int) {
	step = s.step()
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	switch {
	case !s.OpenStart:
		start = clampIndex(s.Start, length, lower, upper)
	case step < 0:
		start = upper
	default:
		start = lower
	}
	switch {
	case !s.OpenStop:
		stop = clampIndex(s.Stop, length, lower, upper)
	case step < 0:
		stop = lower
	default:
		stop = upper
	}
	return
}

func clampIndex(i, length, lower, upper int) int {
	if i < 0 {
		i += length
		if i < lower {
			i = lower
		}
	} else if i > upper {
		i = upper
	}
	return i
}

// Len returns the number of positions s selects in a sequence of the given
// length.
func (s Slice) Len(length int) int {
	start, stop, step := s.Indices(length)
	switch {
	case step > 0 && start < stop:
		return (stop-start-1)/step + 1
	case step < 0 && stop < start:
		return (start-stop-1)/(-step) + 1
	}
	return 0
}

// Each iterates over the positions s selects in a sequence of the given
// length, in slice order.
func (s Slice) Each(length int) iter.Seq[int] {
	start, _, step := s.Indices(length)
	n := s.Len(length)
	return func(yield func(int) bool) {
		// Count the positions instead of comparing against stop: with a huge
		// step, i+step can overflow after the last position.
		for k, i := 0, start; k < n; k, i = k+1, i+step {
			if !yield(i) {
				return
			}
		}
	}
}
