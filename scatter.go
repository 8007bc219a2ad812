package simpleplot

import "github.com/gogpu/gg"

// Point2 is one scatter sample in data coordinates.
type Point2 struct {
	X, Y float64
}

// Scatter plots unordered x/y samples as small filled circles. It draws
// behind series lines sharing the same canvas.
type Scatter struct {
	style    Style
	radius   float64
	shared   []Point2
	isolated []Point2
}

// NewScatter registers a scatter plot over points and returns its id.
// The points slice stays shared with the caller, like series data. A nil
// style selects the default.
func NewScatter(points []Point2, style *Style) PlotID {
	s := &Scatter{
		style:  styleOrDefault(style),
		radius: 2.5,
		shared: points,
	}
	return RegisterPlot(s)
}

func (s *Scatter) Type() PlotType { return TypeScatter }
func (s *Scatter) Axes() AxisType { return AxisCart2D }

// AxisLimits reports the bounding box of all points.
func (s *Scatter) AxisLimits() Limits {
	pts := s.points()
	if len(pts) == 0 {
		return Limits{}
	}
	lim := Limits{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		lim = lim.union(Limits{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y})
	}
	return lim
}

// Draw fills one circle per point.
func (s *Scatter) Draw(dc *gg.Context, lim Limits, space DrawSpace) {
	dc.SetColor(s.style.Line.Resolve())
	for _, p := range s.points() {
		dc.DrawCircle(space.X(lim, p.X), space.Y(lim, p.Y), s.radius)
		if err := dc.Fill(); err != nil {
			Logger().Warn("scatter fill failed", "error", err)
			return
		}
	}
}

// IsolateData snapshots the shared points into private ownership.
func (s *Scatter) IsolateData() {
	if s.isolated != nil {
		return
	}
	cp := make([]Point2, len(s.shared))
	copy(cp, s.shared)
	s.isolated = cp
}

// ReleaseData drops the private snapshot.
func (s *Scatter) ReleaseData() {
	s.isolated = nil
}

func (s *Scatter) points() []Point2 {
	if s.isolated != nil {
		return s.isolated
	}
	return s.shared
}
