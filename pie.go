package simpleplot

import (
	"math"

	"github.com/gogpu/gg"
)

// Pie is a proportional wedge chart. It has the special axis type: it
// manages its own coordinate space, draws no Cartesian axes, and cannot
// share a canvas with any other plot.
type Pie struct {
	style    Style
	shared   []float64
	isolated []float64
}

// NewPie registers a pie chart over values and returns its id. Values
// are relative weights; non-positive entries are skipped. A nil style
// selects the default.
func NewPie(values []float64, style *Style) PlotID {
	p := &Pie{
		style:  styleOrDefault(style),
		shared: values,
	}
	return RegisterPlot(p)
}

func (p *Pie) Type() PlotType { return TypePie }
func (p *Pie) Axes() AxisType { return AxisSpecial }

// AxisLimits is nominal for special-axis plots; the canvas hands a pie
// the full window as draw space regardless.
func (p *Pie) AxisLimits() Limits {
	return Limits{MaxX: 1, MaxY: 1}
}

// Draw fills one wedge per value, alternating palette entries.
func (p *Pie) Draw(dc *gg.Context, _ Limits, space DrawSpace) {
	values := p.values()
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return
	}

	cx := float64(space.Origin.X+space.XEnd.X) / 2
	cy := float64(space.Origin.Y+space.YEnd.Y) / 2
	r := math.Min(math.Abs(float64(space.XEnd.X-space.Origin.X)), math.Abs(float64(space.Origin.Y-space.YEnd.Y))) / 2
	r -= axisPad

	wedgeColors := []Color{p.style.Fill, p.style.Line, p.style.Grid, p.style.Axis}

	angle := -math.Pi / 2
	for i, v := range values {
		if v <= 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		dc.SetColor(wedgeColors[i%len(wedgeColors)].Resolve())
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, angle, angle+sweep)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			Logger().Warn("pie fill failed", "error", err)
			return
		}
		angle += sweep
	}
}

// IsolateData snapshots the shared values into private ownership.
func (p *Pie) IsolateData() {
	if p.isolated != nil {
		return
	}
	cp := make([]float64, len(p.shared))
	copy(cp, p.shared)
	p.isolated = cp
}

// ReleaseData drops the private snapshot.
func (p *Pie) ReleaseData() {
	p.isolated = nil
}

func (p *Pie) values() []float64 {
	if p.isolated != nil {
		return p.isolated
	}
	return p.shared
}
