package simpleplot

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Axis layout constants, in pixels.
const (
	axisPad       = 6
	tickLength    = 4
	tickFontSize  = 11
	labelFontSize = 13
)

// Axis computes tick placement and scale mapping for one dimension of a
// canvas and draws that dimension's gridlines, axis line, and text.
//
// The drawing methods share a three-corner convention: origin is the
// corner where both axes meet, axisEnd is the far corner along this
// axis's own direction, and gridEnd is the far corner along the other
// axis. Permuting axisEnd and gridEnd reuses the same code for the
// horizontal and the vertical axis.
//
// An Axis is owned by exactly one canvas and is not safe for concurrent
// use on its own; the canvas serializes access.
type Axis struct {
	// Label is drawn alongside the tick labels. Empty hides it and
	// shrinks the axis clearance.
	Label string

	// Logarithmic switches both the scale mapping and the tick
	// progression from arithmetic to geometric.
	Logarithmic bool

	// Grid enables gridlines across the plotting area.
	Grid bool

	min, max float64
	hasRange bool
	ticks    []Tick
	major    float64

	custom Ticker

	axisColor gg.RGBA
	gridColor gg.RGBA

	labelFace text.Face
	tickFace  text.Face
}

// NewAxis returns an axis styled from st. The range is unset until the
// first SetEnds call.
func NewAxis(label string, logarithmic bool, st Style) *Axis {
	return &Axis{
		Label:       label,
		Logarithmic: logarithmic,
		Grid:        true,
		axisColor:   st.Axis.Resolve(),
		gridColor:   st.Grid.Resolve(),
	}
}

// SetEnds updates the axis range and reports whether it changed. Tick
// placement is recomputed only on an actual change; repeating the same
// range is a no-op so per-frame calls stay cheap.
func (a *Axis) SetEnds(min, max float64) bool {
	if a.hasRange && min == a.min && max == a.max {
		return false
	}
	a.min, a.max = min, max
	a.hasRange = true
	a.ticks = a.ticker().Ticks(min, max)
	a.major = majorStep(a.ticks)
	return true
}

// Ends returns the current range.
func (a *Axis) Ends() (min, max float64) { return a.min, a.max }

// MajorStep returns the spacing between consecutive major ticks, zero
// when the range is unset or degenerate.
func (a *Axis) MajorStep() float64 { return a.major }

// Ticks returns the current tick placements.
func (a *Axis) Ticks() []Tick { return a.ticks }

// SetTicker installs a custom tick-generation strategy, replacing the
// one selected by the Logarithmic flag. Passing nil restores the
// default. The new strategy applies from the next SetEnds change.
func (a *Axis) SetTicker(t Ticker) { a.custom = t }

func (a *Axis) ticker() Ticker {
	if a.custom != nil {
		return a.custom
	}
	if a.Logarithmic {
		return LogTicks{}
	}
	return LinearTicks{}
}

// Clearance returns the pixel margin the axis decorations need between
// the window edge and the plotting rectangle. It depends only on fonts
// and the presence of a label, never on the data, so the draw space stays
// stable across frames.
func (a *Axis) Clearance() int {
	c := axisPad + tickLength + tickFontSize + axisPad
	if a.Label != "" {
		c += labelFontSize + axisPad
	}
	return c
}

// norm maps a data value to [0, 1] along the axis.
func (a *Axis) norm(x float64) float64 {
	if a.max == a.min {
		return 0
	}
	if a.Logarithmic && a.min > 0 && x > 0 {
		logMin := math.Log(a.min)
		return (math.Log(x) - logMin) / (math.Log(a.max) - logMin)
	}
	return (x - a.min) / (a.max - a.min)
}

// DrawGrid draws the gridlines for this axis into the rectangle spanned
// by origin, axisEnd, and gridEnd.
func (a *Axis) DrawGrid(dc *gg.Context, origin, axisEnd, gridEnd image.Point) {
	if !a.Grid || !a.hasRange {
		return
	}
	gx := float64(gridEnd.X - origin.X)
	gy := float64(gridEnd.Y - origin.Y)

	for _, t := range a.ticks {
		px, py := a.tickPoint(t.Value, origin, axisEnd)
		dc.SetColor(a.gridColor)
		if t.Minor {
			dc.SetLineWidth(0.5)
		} else {
			dc.SetLineWidth(1)
		}
		dc.DrawLine(px, py, px+gx, py+gy)
		if err := dc.Stroke(); err != nil {
			Logger().Warn("gridline stroke failed", "error", err)
			return
		}
	}
}

// DrawAxis draws the axis line, tick marks, tick labels, and the axis
// label. gridEnd tells the axis which side the plotting area is on; the
// decorations draw on the opposite side.
func (a *Axis) DrawAxis(dc *gg.Context, origin, axisEnd, gridEnd image.Point) {
	if !a.hasRange {
		return
	}
	a.ensureFaces()

	// Tick marks extend away from the plotting area.
	sx := -sign(gridEnd.X - origin.X)
	sy := -sign(gridEnd.Y - origin.Y)

	dc.SetColor(a.axisColor)
	dc.SetLineWidth(1.5)
	dc.DrawLine(float64(origin.X), float64(origin.Y), float64(axisEnd.X), float64(axisEnd.Y))
	if err := dc.Stroke(); err != nil {
		Logger().Warn("axis stroke failed", "error", err)
		return
	}

	dc.SetLineWidth(1)
	for _, t := range a.ticks {
		if t.Minor {
			continue
		}
		px, py := a.tickPoint(t.Value, origin, axisEnd)
		dc.DrawLine(px, py, px+sx*tickLength, py+sy*tickLength)
		if err := dc.Stroke(); err != nil {
			Logger().Warn("tick stroke failed", "error", err)
			return
		}
		a.drawTickLabel(dc, t.Label, px, py, sx, sy)
	}

	a.drawAxisLabel(dc, origin, axisEnd, sx, sy)
}

// tickPoint returns the pixel position of a tick along the axis line.
func (a *Axis) tickPoint(v float64, origin, axisEnd image.Point) (float64, float64) {
	f := a.norm(v)
	px := float64(origin.X) + f*float64(axisEnd.X-origin.X)
	py := float64(origin.Y) + f*float64(axisEnd.Y-origin.Y)
	return px, py
}

func (a *Axis) drawTickLabel(dc *gg.Context, label string, px, py, sx, sy float64) {
	if a.tickFace == nil || label == "" {
		return
	}
	dc.SetFont(a.tickFace)
	dc.SetColor(a.axisColor)
	if sy != 0 {
		// Horizontal axis: labels below the tick marks.
		dc.DrawStringAnchored(label, px, py+sy*(tickLength+axisPad), 0.5, 0)
	} else {
		// Vertical axis: labels left of the tick marks.
		dc.DrawStringAnchored(label, px+sx*(tickLength+axisPad), py, 1, 0.5)
	}
}

func (a *Axis) drawAxisLabel(dc *gg.Context, origin, axisEnd image.Point, sx, sy float64) {
	if a.labelFace == nil || a.Label == "" {
		return
	}
	dc.SetFont(a.labelFace)
	dc.SetColor(a.axisColor)
	if sy != 0 {
		mx := float64(origin.X+axisEnd.X) / 2
		my := float64(origin.Y) + sy*(tickLength+axisPad+tickFontSize+axisPad)
		dc.DrawStringAnchored(a.Label, mx, my, 0.5, 0)
	} else {
		// The vertical label draws horizontally above the axis top to
		// avoid rotated text in the backbuffer.
		tx := float64(axisEnd.X)
		ty := float64(axisEnd.Y) - labelFontSize - axisPad
		dc.DrawStringAnchored(a.Label, tx, ty, 0, 0)
	}
}

func (a *Axis) ensureFaces() {
	if a.tickFace != nil {
		return
	}
	src := defaultFontSource()
	if src == nil {
		return
	}
	a.tickFace = src.Face(tickFontSize)
	a.labelFace = src.Face(labelFontSize)
}

func sign(v int) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
