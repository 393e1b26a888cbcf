package chart

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
)

const (
	valueTickCount = 10
	maxTimeTicks   = 10
)

// tickStep picks a 1-2-5 step giving roughly count ticks over [min, max].
func tickStep(min, max float64, count int) float64 {
	step0 := math.Abs(max-min) / float64(count)
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	e := step0 / step1
	switch {
	case e >= math.Sqrt(50):
		step1 *= 10
	case e >= math.Sqrt(10):
		step1 *= 5
	case e >= math.Sqrt2:
		step1 *= 2
	}
	return step1
}

func valueTicks(extent domain.Extent, sc scale) []domain.Tick {
	if sc.degenerate() {
		return []domain.Tick{{Value: extent.Min, Label: formatTick(extent.Min), Position: sc.apply(extent.Min)}}
	}

	step := tickStep(extent.Min, extent.Max, valueTickCount)
	// divide by the inverse for sub-unit steps to keep 0.1*3 == 0.3
	inv := 0.0
	if step < 1 {
		inv = math.Round(1 / step)
	}
	start := math.Ceil(extent.Min / step)
	stop := math.Floor(extent.Max / step)
	if inv > 0 {
		start = math.Ceil(extent.Min * inv)
		stop = math.Floor(extent.Max * inv)
	}

	ticks := make([]domain.Tick, 0, int(stop-start)+1)
	for i := start; i <= stop; i++ {
		v := i * step
		if inv > 0 {
			v = i / inv
		}
		ticks = append(ticks, domain.Tick{Value: v, Label: formatTick(v), Position: sc.apply(v)})
	}
	return ticks
}

// formatTick prints v with thousands separators.
func formatTick(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

var monthSteps = []int{1, 3, 6, 12, 24, 60, 120, 240}

// pickMonthStep returns the smallest calendar step keeping at most
// maxTimeTicks ticks over the span, and the label layout for it.
func pickMonthStep(from, to time.Time) (int, string) {
	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month()) + 1
	for _, step := range monthSteps {
		if months/step <= maxTimeTicks {
			if step >= 12 {
				return step, "2006"
			}
			return step, "Jan 2006"
		}
	}
	return monthSteps[len(monthSteps)-1], "2006"
}

// timeTicks returns calendar-aligned ticks inside [from, to].
func timeTicks(from, to time.Time, sc scale) []domain.Tick {
	step, layout := pickMonthStep(from, to)

	idx := from.Year()*12 + int(from.Month()) - 1
	if from.Day() != 1 || from.Hour() != 0 || from.Minute() != 0 || from.Second() != 0 || from.Nanosecond() != 0 {
		idx++
	}
	if rem := idx % step; rem != 0 {
		idx += step - rem
	}

	var ticks []domain.Tick
	for {
		t := time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, time.UTC)
		if t.After(to) {
			break
		}
		ticks = append(ticks, domain.Tick{
			Value:    float64(t.Unix()),
			Label:    t.Format(layout),
			Position: sc.applyTime(t),
		})
		idx += step
	}
	return ticks
}
