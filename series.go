package simpleplot

import "github.com/gogpu/gg"

// Real covers the numeric representations a series can plot. The original
// data slice is never converted; values are widened to float64 only at
// draw time.
type Real interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Series is a line-series plot over evenly spaced samples. The x
// coordinate of sample i is i*skip; the y coordinate is the sample value.
//
// The data slice stays shared with the caller, so appending or mutating
// it between frames animates the plot. When the owning canvas enters
// static mode the series snapshots the data and ignores later caller
// mutation until the mode is toggled back.
type Series[Y Real] struct {
	style    Style
	skip     float64
	shared   []Y
	isolated []Y
}

// NewSeries registers a line-series plot over data and returns its id.
// skip is the x distance between consecutive samples. A nil style selects
// the default.
func NewSeries[Y Real](skip float64, data []Y, style *Style) PlotID {
	s := &Series[Y]{
		style:  styleOrDefault(style),
		skip:   skip,
		shared: data,
	}
	return RegisterPlot(s)
}

func (s *Series[Y]) Type() PlotType { return TypeSeries }
func (s *Series[Y]) Axes() AxisType { return AxisCart2D }

// AxisLimits reports x spanning the sample positions and y spanning the
// sample values.
func (s *Series[Y]) AxisLimits() Limits {
	data := s.data()
	lim := Limits{MaxX: float64(len(data)-1) * s.skip}
	if len(data) == 0 {
		return lim
	}
	lim.MinY = float64(data[0])
	lim.MaxY = float64(data[0])
	for _, v := range data[1:] {
		f := float64(v)
		if f < lim.MinY {
			lim.MinY = f
		}
		if f > lim.MaxY {
			lim.MaxY = f
		}
	}
	return lim
}

// Draw strokes the polyline through all samples.
func (s *Series[Y]) Draw(dc *gg.Context, lim Limits, space DrawSpace) {
	data := s.data()
	if len(data) < 2 {
		return
	}
	dc.SetColor(s.style.Line.Resolve())
	dc.SetLineWidth(s.style.LineWidth)
	dc.MoveTo(space.X(lim, 0), space.Y(lim, float64(data[0])))
	for i, v := range data[1:] {
		x := float64(i+1) * s.skip
		dc.LineTo(space.X(lim, x), space.Y(lim, float64(v)))
	}
	if err := dc.Stroke(); err != nil {
		Logger().Warn("series stroke failed", "error", err)
	}
}

// IsolateData snapshots the shared slice into private ownership.
// Idempotent: a second call while already isolated keeps the existing
// snapshot.
func (s *Series[Y]) IsolateData() {
	if s.isolated != nil {
		return
	}
	cp := make([]Y, len(s.shared))
	copy(cp, s.shared)
	s.isolated = cp
}

// ReleaseData drops the private snapshot and reverts to the caller's
// slice. Idempotent.
func (s *Series[Y]) ReleaseData() {
	s.isolated = nil
}

func (s *Series[Y]) data() []Y {
	if s.isolated != nil {
		return s.isolated
	}
	return s.shared
}
