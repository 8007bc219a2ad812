package simpleplot

import (
	"math"
	"strconv"
)

// Tick is one tick mark on an axis. Minor ticks carry no label and draw
// at a thinner weight.
type Tick struct {
	Value float64
	Label string
	Minor bool
}

// Ticker generates tick placements for a data range. An Axis selects its
// Ticker from its logarithmic flag but a custom implementation may be
// installed with [Axis.SetTicker].
type Ticker interface {
	Ticks(min, max float64) []Tick
}

// LinearTicks places ticks in an arithmetic progression with a step
// chosen from the 1-2-5 ladder so that an axis shows roughly five major
// divisions. It is the default for non-logarithmic axes.
type LinearTicks struct{}

var _ Ticker = LinearTicks{}

// Ticks returns major ticks every step and minor ticks every step/5.
func (LinearTicks) Ticks(min, max float64) []Tick {
	if !(max > min) {
		return nil
	}
	major := niceStep(max - min)
	minor := major / 5

	var ticks []Tick
	start := math.Ceil(min/minor) * minor
	for v := start; v <= max+minor/2; v += minor {
		// Snap to the grid to keep accumulated float error out of labels.
		v = math.Round(v/minor) * minor
		if v < min || v > max {
			continue
		}
		onMajor := math.Abs(math.Remainder(v, major)) < minor/2
		if onMajor {
			ticks = append(ticks, Tick{Value: v, Label: formatTick(v)})
		} else {
			ticks = append(ticks, Tick{Value: v, Minor: true})
		}
	}
	return ticks
}

// niceStep picks a major step from the 1-2-5 ladder for the given span.
func niceStep(span float64) float64 {
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// LogTicks places major ticks at powers of ten and minor ticks at the
// 2..9 multiples inside each decade, a geometric progression. It is the
// default for logarithmic axes. Values at or below zero produce no ticks.
type LogTicks struct{}

var _ Ticker = LogTicks{}

// Ticks returns decade ticks covering [min, max].
func (LogTicks) Ticks(min, max float64) []Tick {
	if min <= 0 || !(max > min) {
		return nil
	}
	lo := math.Floor(math.Log10(min))
	hi := math.Ceil(math.Log10(max))

	var ticks []Tick
	for d := lo; d <= hi; d++ {
		decade := math.Pow(10, d)
		if decade >= min && decade <= max {
			ticks = append(ticks, Tick{Value: decade, Label: formatTick(decade)})
		}
		for m := 2.0; m <= 9; m++ {
			v := m * decade
			if v >= min && v <= max {
				ticks = append(ticks, Tick{Value: v, Minor: true})
			}
		}
	}
	return ticks
}

// formatTick renders a tick label compactly.
func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e7 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// majorStep returns the spacing between consecutive major ticks, or zero
// when fewer than two majors exist. Used to detect recomputation.
func majorStep(ticks []Tick) float64 {
	var prev float64
	seen := false
	for _, t := range ticks {
		if t.Minor {
			continue
		}
		if seen {
			return t.Value - prev
		}
		prev = t.Value
		seen = true
	}
	return 0
}
