package bible

import "github.com/mahesh-hegde/bibletext/app/common"

// Span selects a run of elements by 1-based logical position.
// Zero Start or Stop is open-ended, Stop is exclusive, negative values
// count from the end (-1 is the last element) and a negative Step walks
// backwards. Step must be non-zero, except in the zero Span which selects
// everything. Use Range to build forward spans.
type Span struct {
	Start int
	Stop  int
	Step  int
}

// All selects every element.
var All = Span{}

// Reversed selects every element, last first.
var Reversed = Span{Step: -1}

// Range is Span{Start: start, Stop: stop, Step: 1}.
func Range(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: 1}
}

func (s Span) indices(length int) ([]int, error) {
	step := s.Step
	if s == (Span{}) {
		step = 1
	}
	if step == 0 {
		return nil, &common.IndexError{Kind: "slice step", Index: 0, Len: length}
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	clamp := func(v int, open bool, dflt int) int {
		if open {
			return dflt
		}
		if v > 0 {
			v-- // 1-based to offset
		} else {
			v += length
		}
		if v < lower {
			return lower
		}
		if v > upper {
			return upper
		}
		return v
	}

	var start, stop int
	if step > 0 {
		start = clamp(s.Start, s.Start == 0, lower)
		stop = clamp(s.Stop, s.Stop == 0, upper)
	} else {
		start = clamp(s.Start, s.Start == 0, upper)
		stop = clamp(s.Stop, s.Stop == 0, lower)
	}

	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}
