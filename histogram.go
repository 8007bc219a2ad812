package simpleplot

import "github.com/gogpu/gg"

// Histogram plots pre-binned counts as filled bars. Bar i covers the x
// interval [i*binWidth, (i+1)*binWidth). Histograms carry the highest
// Cartesian draw precedence, so they paint first and sit behind scatter
// points and series lines on a shared canvas.
type Histogram struct {
	style    Style
	binWidth float64
	shared   []float64
	isolated []float64
}

// NewHistogram registers a histogram over bins and returns its id. The
// bins slice stays shared with the caller. A nil style selects the
// default.
func NewHistogram(binWidth float64, bins []float64, style *Style) PlotID {
	h := &Histogram{
		style:    styleOrDefault(style),
		binWidth: binWidth,
		shared:   bins,
	}
	return RegisterPlot(h)
}

func (h *Histogram) Type() PlotType { return TypeHistogram }
func (h *Histogram) Axes() AxisType { return AxisCart2D }

// AxisLimits reports x spanning all bins and y from zero to the tallest
// bin, so bars always rise from the baseline.
func (h *Histogram) AxisLimits() Limits {
	bins := h.bins()
	lim := Limits{MaxX: float64(len(bins)) * h.binWidth}
	for _, v := range bins {
		if v > lim.MaxY {
			lim.MaxY = v
		}
		if v < lim.MinY {
			lim.MinY = v
		}
	}
	return lim
}

// Draw fills one bar per bin.
func (h *Histogram) Draw(dc *gg.Context, lim Limits, space DrawSpace) {
	dc.SetColor(h.style.Fill.Resolve())
	base := space.Y(lim, 0)
	for i, v := range h.bins() {
		x0 := space.X(lim, float64(i)*h.binWidth)
		x1 := space.X(lim, float64(i+1)*h.binWidth)
		top, bottom := space.Y(lim, v), base
		if top > bottom {
			top, bottom = bottom, top
		}
		dc.DrawRectangle(x0, top, x1-x0, bottom-top)
		if err := dc.Fill(); err != nil {
			Logger().Warn("histogram fill failed", "error", err)
			return
		}
	}
}

// IsolateData snapshots the shared bins into private ownership.
func (h *Histogram) IsolateData() {
	if h.isolated != nil {
		return
	}
	cp := make([]float64, len(h.shared))
	copy(cp, h.shared)
	h.isolated = cp
}

// ReleaseData drops the private snapshot.
func (h *Histogram) ReleaseData() {
	h.isolated = nil
}

func (h *Histogram) bins() []float64 {
	if h.isolated != nil {
		return h.isolated
	}
	return h.shared
}
