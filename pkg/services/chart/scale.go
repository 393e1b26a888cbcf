package chart

import (
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// scale maps a domain value onto [0, size] pixels, rounded to the nearest pixel. A degenerate
// domain maps everything to the middle of the range.
type scale struct {
	rng    *gochart.ContinuousRange
	size   int
	invert bool
}

func newScale(min, max float64, size int, invert bool) scale {
	return scale{
		rng:    &gochart.ContinuousRange{Min: min, Max: max, Domain: size},
		size:   size,
		invert: invert,
	}
}

func newTimeScale(from, to time.Time, size int) scale {
	return newScale(gochart.TimeToFloat64(from), gochart.TimeToFloat64(to), size, false)
}

func (s scale) degenerate() bool {
	return s.rng.Max == s.rng.Min
}

func (s scale) apply(v float64) int {
	if s.degenerate() {
		return s.size / 2
	}
	ratio := (v - s.rng.Min) / s.rng.GetDelta()
	px := int(math.Round(ratio * float64(s.size)))
	if s.invert {
		return s.size - px
	}
	return px
}

func (s scale) applyTime(t time.Time) int {
	return s.apply(gochart.TimeToFloat64(t))
}
